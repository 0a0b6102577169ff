package embedded

import (
	"testing"
	"testing/fstest"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"data/valentine.yaml": &fstest.MapFile{Data: []byte("effectLifetime: 8\n")},
	}
}

// TestIsInitialized 测试初始化状态检测
func TestIsInitialized(t *testing.T) {
	initialized = false
	if IsInitialized() {
		t.Error("Expected IsInitialized() to return false before Init()")
	}

	Init(testFS())
	if !IsInitialized() {
		t.Error("Expected IsInitialized() to return true after Init()")
	}

	Init(nil)
	if IsInitialized() {
		t.Error("Init(nil) should leave the package uninitialized")
	}
}

func TestNotInitialized(t *testing.T) {
	Init(nil)

	if _, err := Open("data/valentine.yaml"); err != errNotInitialized {
		t.Errorf("Open: expected not-initialized error, got %v", err)
	}
	if _, err := ReadFile("data/valentine.yaml"); err != errNotInitialized {
		t.Errorf("ReadFile: expected not-initialized error, got %v", err)
	}
	if Exists("data/valentine.yaml") {
		t.Error("Exists should be false before Init()")
	}
}

func TestReadFile(t *testing.T) {
	Init(testFS())
	defer Init(nil)

	for _, path := range []string{"data/valentine.yaml", "./data/valentine.yaml"} {
		data, err := ReadFile(path)
		if err != nil {
			t.Fatalf("ReadFile(%q) failed: %v", path, err)
		}
		if string(data) != "effectLifetime: 8\n" {
			t.Errorf("ReadFile(%q) = %q", path, data)
		}
	}

	if _, err := ReadFile("data/missing.yaml"); err == nil {
		t.Error("missing file should fail")
	}
}

func TestInvalidPrefix(t *testing.T) {
	Init(testFS())
	defer Init(nil)

	if _, err := ReadFile("assets/heart.png"); err == nil {
		t.Error("paths outside data/ should be rejected")
	}
	if _, err := Open("valentine.yaml"); err == nil {
		t.Error("paths without a prefix should be rejected")
	}
}

func TestExists(t *testing.T) {
	Init(testFS())
	defer Init(nil)

	if !Exists("data/valentine.yaml") {
		t.Error("Expected data/valentine.yaml to exist")
	}
	if Exists("data/nope.yaml") {
		t.Error("Expected data/nope.yaml not to exist")
	}
}
