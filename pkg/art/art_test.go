package art

import (
	"image/color"
	"testing"
)

func TestMascotGridIsRectangular(t *testing.T) {
	w, h := MascotGridSize()
	if w == 0 || h == 0 {
		t.Fatal("empty mascot grid")
	}
	for i, line := range mascotPixels {
		if len(line) != w {
			t.Errorf("row %d has %d cells, want %d", i, len(line), w)
		}
		for j := 0; j < len(line); j++ {
			if line[j] == '.' {
				continue
			}
			if _, ok := mascotPalette[line[j]]; !ok {
				t.Errorf("row %d col %d uses unknown color %q", i, j, line[j])
			}
		}
	}
}

func TestMascotImageSize(t *testing.T) {
	w, h := MascotGridSize()
	img := MascotImage(4)
	b := img.Bounds()
	if b.Dx() != w*4 || b.Dy() != h*4 {
		t.Errorf("MascotImage(4) is %dx%d, want %dx%d", b.Dx(), b.Dy(), w*4, h*4)
	}

	// 左上角透明，第一个描边格不透明
	if _, _, _, a := img.At(0, 0).RGBA(); a != 0 {
		t.Error("top-left cell should be transparent")
	}
	if _, _, _, a := img.At(3*4+1, 1).RGBA(); a == 0 {
		t.Error("outline cell should be opaque")
	}
}

func TestHeartImage(t *testing.T) {
	red := color.RGBA{R: 255, A: 255}
	img := HeartImage(44, red)
	if b := img.Bounds(); b.Dx() != 44 || b.Dy() != 44 {
		t.Fatalf("HeartImage size = %v, want 44x44", b)
	}

	// 中心在心形内部，四角在外部
	if _, _, _, a := img.At(22, 22).RGBA(); a == 0 {
		t.Error("heart center should be filled")
	}
	for _, p := range [][2]int{{0, 0}, {43, 0}, {0, 43}, {43, 43}} {
		if _, _, _, a := img.At(p[0], p[1]).RGBA(); a != 0 {
			t.Errorf("corner %v should be transparent", p)
		}
	}
	// 顶部中间是两瓣之间的凹口
	if _, _, _, a := img.At(22, 17).RGBA(); a == 0 {
		t.Error("point below the notch should be filled")
	}
}

func TestHeartImageMinimumSize(t *testing.T) {
	if b := HeartImage(0, color.White).Bounds(); b.Dx() != 1 {
		t.Errorf("HeartImage(0) width = %d, want 1", b.Dx())
	}
}

func TestHeartAspect(t *testing.T) {
	if HeartAspect <= 0.8 || HeartAspect >= 0.9 {
		t.Errorf("HeartAspect = %v, want about 19/22", HeartAspect)
	}
}
