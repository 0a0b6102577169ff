package components

import "github.com/decker502/valentine/internal/keyframe"

// AnimTarget 动画轨道驱动的属性
type AnimTarget int

const (
	// AnimOffsetX 水平位移（像素）
	AnimOffsetX AnimTarget = iota
	// AnimOffsetY 垂直位移（像素，向下为正）
	AnimOffsetY
	// AnimScale 缩放倍率增量（0 表示原始大小）
	AnimScale
)

// AnimationTrack 一条关键帧曲线（相当于 CSS @keyframes）
type AnimationTrack struct {
	Target        AnimTarget
	Keyframes     []keyframe.Keyframe
	Interpolation string
	Duration      float64 // 秒
	Elapsed       float64 // 秒
	Loop          bool
	Playing       bool
}

// AnimationComponent 管理实体的关键帧动画
// 所有正在播放的轨道的值按属性叠加到 OffsetX/OffsetY/Scale
type AnimationComponent struct {
	Tracks map[string]*AnimationTrack

	OffsetX float64
	OffsetY float64
	Scale   float64
}
