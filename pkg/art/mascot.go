package art

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
)

// mascotPixels 吉祥物像素画：白色小猫 + 红色蝴蝶结
// . 透明  K 描边  W 白  R 红  Y 黄  P 粉
var mascotPixels = []string{
	"...KK.......KKRRR.",
	"..KWWK.....KWRRRRR",
	"..KWWWKKKKKWWRRYRR",
	".KWWWWWWWWWWWRRRRR",
	".KWWWWWWWWWWWWRRR.",
	"KWWWWWWWWWWWWWWWK.",
	"KWWWKWWWWWWKWWWWK.",
	"KWWWKWWWWWWKWWWWK.",
	"KWPWWWWYYWWWWPWWK.",
	"KWWWWWWWWWWWWWWWK.",
	".KWWWWWWWWWWWWWK..",
	"..KKWWWWWWWWWKK...",
	"....KKKKKKKKK.....",
}

var mascotPalette = map[byte]color.RGBA{
	'K': {R: 40, G: 20, B: 30, A: 255},
	'W': {R: 255, G: 255, B: 255, A: 255},
	'R': {R: 230, G: 30, B: 70, A: 255},
	'Y': {R: 255, G: 200, B: 40, A: 255},
	'P': {R: 255, G: 170, B: 190, A: 255},
}

// MascotGridSize 返回像素画的格子数（宽、高）
func MascotGridSize() (int, int) {
	return len(mascotPixels[0]), len(mascotPixels)
}

// DrawMascot 以 (x, y) 为左上角绘制吉祥物，每格宽 pixel
func DrawMascot(dc *gg.Context, x, y, pixel float64) {
	for row, line := range mascotPixels {
		for col := 0; col < len(line); col++ {
			c, ok := mascotPalette[line[col]]
			if !ok {
				continue
			}
			dc.SetColor(c)
			dc.DrawRectangle(x+float64(col)*pixel, y+float64(row)*pixel, pixel, pixel)
			dc.Fill()
		}
	}
}

// MascotImage 按整数像素倍率渲染吉祥物
func MascotImage(pixel int) image.Image {
	if pixel < 1 {
		pixel = 1
	}
	w, h := MascotGridSize()
	dc := gg.NewContext(w*pixel, h*pixel)
	DrawMascot(dc, 0, 0, float64(pixel))
	return dc.Image()
}
