package config

import (
	"image"
	"math"
)

// Rect 屏幕矩形（左上角 + 尺寸）
type Rect struct {
	X, Y, W, H float64
}

// Contains 判断点是否在矩形内（含边界）
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

// Center 返回矩形中心
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// PageLayout 按视口尺寸计算出的页面布局
type PageLayout struct {
	Width, Height int

	// Compact 紧凑布局（视口高度低于 CompactHeight）
	// 紧凑布局下拖尾绑定整个视口并支持触摸，否则绑定内容容器且只响应鼠标
	Compact bool

	// Container 内容容器；紧凑布局下等于整个视口
	Container image.Rectangle

	CenterX      float64
	TitleY       float64
	SubtitleY    float64
	TitleSize    float64
	SubtitleSize float64
	ButtonSize   float64 // 按钮文字字号

	// MascotX/MascotY 吉祥物中心
	MascotX, MascotY float64
	// MascotPixel 吉祥物像素画每格的边长
	MascotPixel float64

	YesButton Rect
	NoButton  Rect
}

// 布局基准（以 800x800 视口为参照）
const (
	layoutBaseSize     = 800.0
	layoutMinScale     = 0.5
	layoutMaxScale     = 1.6
	titleBaseSize      = 44.0
	subtitleBaseSize   = 20.0
	buttonTextBaseSize = 22.0
	buttonBaseWidth    = 140.0
	buttonBaseHeight   = 56.0
	buttonBaseGap      = 40.0
	mascotBasePixel    = 8.0
)

// IsCompact 视口高度是否低于紧凑布局阈值
func (l LayoutConfig) IsCompact(height int) bool {
	return height < l.CompactHeight
}

// ComputePageLayout 计算指定视口下的页面布局
func ComputePageLayout(l LayoutConfig, width, height int) PageLayout {
	w, h := float64(width), float64(height)
	scale := math.Min(w, h) / layoutBaseSize
	scale = math.Max(layoutMinScale, math.Min(layoutMaxScale, scale))

	p := PageLayout{
		Width:   width,
		Height:  height,
		Compact: l.IsCompact(height),
		CenterX: w / 2,
	}

	if p.Compact || l.ContainerMaxWidth <= 0 || width <= l.ContainerMaxWidth {
		p.Container = image.Rect(0, 0, width, height)
	} else {
		x0 := (width - l.ContainerMaxWidth) / 2
		p.Container = image.Rect(x0, 0, x0+l.ContainerMaxWidth, height)
	}

	// 标题不能超出视口宽度（约 0.55em/字符，25 个字符）
	p.TitleSize = math.Min(titleBaseSize*scale, w/14)
	p.SubtitleSize = math.Min(subtitleBaseSize*scale, w/24)
	p.ButtonSize = buttonTextBaseSize * scale

	p.TitleY = h*0.10 + p.TitleSize/2
	p.SubtitleY = p.TitleY + p.TitleSize*0.6 + p.SubtitleSize

	p.MascotX = w / 2
	p.MascotY = h * 0.45
	p.MascotPixel = math.Round(mascotBasePixel * scale)
	if p.MascotPixel < 2 {
		p.MascotPixel = 2
	}

	bw, bh, gap := buttonBaseWidth*scale, buttonBaseHeight*scale, buttonBaseGap*scale
	by := h * 0.72
	p.YesButton = Rect{X: w/2 - gap/2 - bw, Y: by, W: bw, H: bh}
	p.NoButton = Rect{X: w/2 + gap/2, Y: by, W: bw, H: bh}

	return p
}
