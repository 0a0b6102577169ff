package components

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// LabelComponent 文字标签，以 PositionComponent 为中心绘制
type LabelComponent struct {
	Text  string
	Font  *text.GoTextFace
	Color color.RGBA
	// ShadowOffset 像素风投影偏移，0 表示无投影
	ShadowOffset float64
	Shadow       color.RGBA
	// MaxWidth 超过此宽度时在空格处换行，0 表示不换行
	MaxWidth float64
}
