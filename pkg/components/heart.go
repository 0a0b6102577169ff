package components

// RainHeartComponent 从顶部飘落到底部的爱心
// Left 为水平位置百分比 [0,100)，延迟结束后在 Duration 内完成一次下落，然后循环
type RainHeartComponent struct {
	Left     float64 // 百分比
	Delay    float64 // 秒
	Duration float64 // 秒
	Elapsed  float64 // 秒
}

// BurstHeartComponent 从吉祥物中心向外飞散的爱心
// 延迟结束后在 Duration 内移动 (DX, DY)，同时淡出缩小，只播放一次
type BurstHeartComponent struct {
	OriginX, OriginY float64
	DX, DY           float64
	Delay            float64
	Duration         float64
	Elapsed          float64
	Done             bool
}
