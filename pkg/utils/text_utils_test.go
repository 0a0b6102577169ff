package utils

import (
	"bytes"
	"strings"
	"testing"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

func newTestFace(t *testing.T, size float64) *text.GoTextFace {
	t.Helper()
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		t.Fatalf("无法创建字体源: %v", err)
	}
	return &text.GoTextFace{Source: src, Size: size}
}

// TestWrapText 测试文本换行功能
func TestWrapText(t *testing.T) {
	face := newTestFace(t, 20)
	subtitle := "Press Start to Begin Our Love Adventure!"

	tests := []struct {
		name      string
		input     string
		maxWidth  float64
		expectMin int // 期望最少的行数
	}{
		{name: "短文本不换行", input: "Hi", maxWidth: 1000, expectMin: 1},
		{name: "长文本自动换行", input: subtitle, maxWidth: 150, expectMin: 2},
		{name: "不限宽度", input: subtitle, maxWidth: 0, expectMin: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := WrapText(tt.input, face, tt.maxWidth)
			if len(lines) < tt.expectMin {
				t.Errorf("期望至少 %d 行，实际 %d 行: %q", tt.expectMin, len(lines), lines)
			}
			if tt.maxWidth > 0 {
				for _, line := range lines {
					if w := measureTextWidth(line, face); w > tt.maxWidth {
						t.Errorf("行 %q 宽度 %.1f 超过 %.1f", line, w, tt.maxWidth)
					}
				}
			}
		})
	}
}

// TestWrapTextKeepsWords 换行只发生在空格处，拼回后与原文一致
func TestWrapTextKeepsWords(t *testing.T) {
	face := newTestFace(t, 20)
	input := "Will You Be My Valentine?"

	lines := WrapText(input, face, 120)
	if len(lines) < 2 {
		t.Fatalf("expected wrapping, got %q", lines)
	}
	if got := strings.Join(lines, " "); got != input {
		t.Errorf("joined lines = %q, want %q", got, input)
	}
}

// TestWrapTextLongWord 超宽单词按字符断开
func TestWrapTextLongWord(t *testing.T) {
	face := newTestFace(t, 20)
	input := "Valentineeeeeeeeeeeeeee"

	lines := WrapText(input, face, 60)
	if len(lines) < 2 {
		t.Fatalf("long word should be broken, got %q", lines)
	}
	if got := strings.Join(lines, ""); got != input {
		t.Errorf("pieces = %q, do not rebuild %q", lines, input)
	}
}

func TestWrapTextNilFont(t *testing.T) {
	lines := WrapText("anything", nil, 10)
	if len(lines) != 1 || lines[0] != "anything" {
		t.Errorf("nil font should return the text unchanged, got %q", lines)
	}
}
