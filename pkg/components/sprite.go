package components

import "github.com/hajimehoshi/ebiten/v2"

// SpriteComponent 存储实体的视觉表现(当前绘制的图像)
// 图像以 PositionComponent 为中心绘制
type SpriteComponent struct {
	Image *ebiten.Image
	Scale float64 // 0 视为 1
	Alpha float64 // 0 视为 1；需要完全透明时直接隐藏实体
	// Hidden 不绘制（如爱心尚未到达出发时间）
	Hidden bool
	// Layer 绘制层级，数值小的先画
	Layer int
}
