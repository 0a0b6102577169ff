// Package card 把贺卡页面渲染成可分享的静态图片
// 使用 gg 和 truetype Go 字体绘制，不需要窗口，可以在无头环境运行
package card

import (
	"fmt"
	"image"
	"math"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/decker502/valentine/pkg/art"
	"github.com/decker502/valentine/pkg/config"
)

// 卡片尺寸限制
const (
	DefaultWidth  = 800
	DefaultHeight = 600
	MinWidth      = 200
	MinHeight     = 150
)

// Options 控制卡片尺寸，零值使用默认尺寸
type Options struct {
	Width  int
	Height int
}

func (o Options) size() (int, int, error) {
	w, h := o.Width, o.Height
	if w == 0 {
		w = DefaultWidth
	}
	if h == 0 {
		h = DefaultHeight
	}
	if w < MinWidth || h < MinHeight {
		return 0, 0, fmt.Errorf("card size %dx%d is below the minimum %dx%d", w, h, MinWidth, MinHeight)
	}
	return w, h, nil
}

// 背景上点缀的小爱心，坐标和尺寸都是卡片宽高的比例
var scatteredHearts = []struct{ x, y, size float64 }{
	{0.08, 0.12, 0.05}, {0.90, 0.10, 0.06}, {0.15, 0.80, 0.04},
	{0.85, 0.78, 0.05}, {0.50, 0.06, 0.03}, {0.05, 0.48, 0.03},
	{0.95, 0.45, 0.04}, {0.30, 0.92, 0.03}, {0.70, 0.93, 0.03},
}

// Render 按页面配置绘制贺卡：背景爱心、标题、副标题、吉祥物和底部大爱心
func Render(cfg *config.ValentineConfig, opts Options) (image.Image, error) {
	if cfg == nil {
		cfg = config.DefaultValentineConfig()
	}
	w, h, err := opts.size()
	if err != nil {
		return nil, err
	}
	fw, fh := float64(w), float64(h)
	unit := math.Min(fw, fh)

	titleFace, err := loadFace(gobold.TTF, unit/14)
	if err != nil {
		return nil, err
	}
	subtitleFace, err := loadFace(goregular.TTF, unit/28)
	if err != nil {
		return nil, err
	}

	dc := gg.NewContext(w, h)
	dc.SetColor(config.BackgroundColor)
	dc.Clear()

	faded := config.HeartColor
	faded.A = 90
	dc.SetColor(faded)
	for _, s := range scatteredHearts {
		art.TraceHeart(dc, s.x*fw, s.y*fh, s.size*unit)
		dc.Fill()
	}

	// 标题带白色阴影
	maxTextWidth := fw * 0.9
	shadow := unit / 200
	dc.SetFontFace(titleFace)
	dc.SetColor(config.TitleShadowColor)
	dc.DrawStringWrapped(cfg.Text.Title, fw/2+shadow, fh*0.2+shadow, 0.5, 0.5, maxTextWidth, 1.2, gg.AlignCenter)
	dc.SetColor(config.TitleColor)
	dc.DrawStringWrapped(cfg.Text.Title, fw/2, fh*0.2, 0.5, 0.5, maxTextWidth, 1.2, gg.AlignCenter)

	dc.SetFontFace(subtitleFace)
	dc.SetColor(config.SubtitleColor)
	dc.DrawStringWrapped(cfg.Text.Subtitle, fw/2, fh*0.33, 0.5, 0.5, maxTextWidth, 1.2, gg.AlignCenter)

	// 吉祥物按整数像素缩放，保持像素画锐利
	gridW, gridH := art.MascotGridSize()
	pixel := math.Max(1, math.Floor(unit*0.3/float64(gridW)))
	mascotW, mascotH := float64(gridW)*pixel, float64(gridH)*pixel
	art.DrawMascot(dc, math.Round(fw/2-mascotW/2), math.Round(fh*0.58-mascotH/2), pixel)

	dc.SetColor(config.LeaderHeartColor)
	art.TraceHeart(dc, fw/2, fh*0.85, unit*0.12)
	dc.Fill()

	return dc.Image(), nil
}

func loadFace(ttf []byte, size float64) (font.Face, error) {
	f, err := truetype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	return truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	}), nil
}

// Greeting 返回卡片上的文字，供复制到剪贴板
func Greeting(cfg *config.ValentineConfig) string {
	if cfg == nil {
		cfg = config.DefaultValentineConfig()
	}
	return cfg.Text.Title + "\n" + cfg.Text.Subtitle
}

// SavePNG 把卡片写入 PNG 文件
func SavePNG(path string, img image.Image) error {
	if err := gg.SavePNG(path, img); err != nil {
		return fmt.Errorf("failed to save card %s: %w", path, err)
	}
	return nil
}
