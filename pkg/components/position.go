package components

// PositionComponent 实体在屏幕上的位置（左上角原点，像素）
// 对按钮而言是左上角；对精灵而言是中心点
type PositionComponent struct {
	X float64
	Y float64
}
