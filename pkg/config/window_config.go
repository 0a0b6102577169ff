package config

import "image/color"

// 窗口与页面的常量配置

const (
	// WindowTitle 窗口标题
	WindowTitle = "Will You Be My Valentine?"

	// DefaultWindowWidth/DefaultWindowHeight 桌面端启动窗口尺寸
	// 窗口可自由缩放，布局按实际尺寸计算
	DefaultWindowWidth  = 1024
	DefaultWindowHeight = 768

	// MinWindowWidth/MinWindowHeight 最小窗口尺寸
	MinWindowWidth  = 360
	MinWindowHeight = 480

	// DefaultConfigPath 嵌入的页面配置文件路径
	DefaultConfigPath = "data/valentine.yaml"

	// TickRate 逻辑帧率（ebiten 默认 60 TPS）
	TickRate = 60
)

// 页面配色（像素风粉色主题）
var (
	BackgroundColor    = color.RGBA{R: 255, G: 228, B: 236, A: 255}
	TitleColor         = color.RGBA{R: 214, G: 51, B: 108, A: 255}
	SubtitleColor      = color.RGBA{R: 120, G: 40, B: 80, A: 255}
	TitleShadowColor   = color.RGBA{R: 255, G: 255, B: 255, A: 200}
	HeartColor         = color.RGBA{R: 255, G: 77, B: 109, A: 255}
	LeaderHeartColor   = color.RGBA{R: 255, G: 20, B: 80, A: 255}
	ButtonFillColor    = color.RGBA{R: 255, G: 105, B: 150, A: 255}
	ButtonHoverColor   = color.RGBA{R: 255, G: 140, B: 175, A: 255}
	ButtonBorderColor  = color.RGBA{R: 90, G: 20, B: 50, A: 255}
	ButtonShadowColor  = color.RGBA{R: 160, G: 40, B: 90, A: 255}
	ButtonTextColor    = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	DisabledButtonFill = color.RGBA{R: 200, G: 170, B: 180, A: 255}
)
