package config

import (
	"image"
	"testing"
)

func TestIsCompact(t *testing.T) {
	l := DefaultValentineConfig().Layout
	tests := []struct {
		height int
		want   bool
	}{
		{600, true},
		{999, true},
		{1000, false},
		{1440, false},
	}
	for _, tt := range tests {
		if got := l.IsCompact(tt.height); got != tt.want {
			t.Errorf("IsCompact(%d) = %v, want %v", tt.height, got, tt.want)
		}
	}
}

func TestComputePageLayoutCompact(t *testing.T) {
	p := ComputePageLayout(DefaultValentineConfig().Layout, 400, 700)
	if !p.Compact {
		t.Fatal("700px tall viewport should be compact")
	}
	if p.Container != image.Rect(0, 0, 400, 700) {
		t.Errorf("compact container = %v, want the whole viewport", p.Container)
	}
	if p.YesButton.X+p.YesButton.W > p.NoButton.X {
		t.Error("Yes and No buttons overlap")
	}
	if p.YesButton.X < 0 || p.NoButton.X+p.NoButton.W > 400 {
		t.Errorf("buttons out of viewport: %+v %+v", p.YesButton, p.NoButton)
	}
	if p.MascotPixel < 2 {
		t.Errorf("MascotPixel = %v, want >= 2", p.MascotPixel)
	}
}

func TestComputePageLayoutDesktop(t *testing.T) {
	p := ComputePageLayout(DefaultValentineConfig().Layout, 1920, 1200)
	if p.Compact {
		t.Fatal("1200px tall viewport should not be compact")
	}
	want := image.Rect(360, 0, 1560, 1200)
	if p.Container != want {
		t.Errorf("desktop container = %v, want %v", p.Container, want)
	}
	if p.CenterX != 960 {
		t.Errorf("CenterX = %v, want 960", p.CenterX)
	}
	if !(p.TitleY < p.SubtitleY && p.SubtitleY < p.MascotY && p.MascotY < p.YesButton.Y) {
		t.Errorf("vertical order broken: title %v subtitle %v mascot %v buttons %v",
			p.TitleY, p.SubtitleY, p.MascotY, p.YesButton.Y)
	}
}

func TestComputePageLayoutNarrowDesktop(t *testing.T) {
	// 窗口比容器窄时容器占满宽度
	p := ComputePageLayout(DefaultValentineConfig().Layout, 900, 1100)
	if p.Container != image.Rect(0, 0, 900, 1100) {
		t.Errorf("container = %v, want full width", p.Container)
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 10, W: 20, H: 10}
	if !r.Contains(10, 10) || !r.Contains(30, 20) || r.Contains(31, 15) || r.Contains(15, 9) {
		t.Error("Rect.Contains boundary mismatch")
	}
	if x, y := r.Center(); x != 20 || y != 15 {
		t.Errorf("Center = (%v, %v), want (20, 15)", x, y)
	}
}
