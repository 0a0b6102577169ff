package trail

import "time"

// 默认参数，data/valentine.yaml 可以覆盖其中任何一项
const (
	DefaultVelocityThreshold = 600.0 // 单位/秒
	DefaultGravity           = 500.0 // 单位/秒²
	DefaultExitMargin        = 50.0  // 越过底边的单位数
)

// Vec2 中心原点坐标：x 向右为正，y 向上为正，(0, 0) 是渲染表面的中心
type Vec2 struct {
	X, Y float64
}

// Sub 返回 v - o
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Len 返回 v 的长度
func (v Vec2) Len() float64 {
	return hypot(v.X, v.Y)
}

// Leader 跟随指针的领头爱心
type Leader struct {
	Pos     Vec2
	Visible bool
}

// Particle 拖尾中下落的一颗爱心
type Particle struct {
	Pos       Vec2
	VelocityY float64       // 向下的速度，单位/秒
	Born      time.Duration // 生成它的移动事件的时间戳

	// updated 最近一次积分到的时间，初始为 Born
	updated time.Duration
}

// speedSample 上一次指针采样，用于差分估算速度
type speedSample struct {
	Pos   Vec2
	At    time.Duration
	valid bool
}

// Frame 每帧交给 Renderer 的只读快照
type Frame struct {
	Leader    Leader
	Particles []Particle
	Width     float64
	Height    float64
	Transform CoordinateTransform
}

// ScreenPos 把本帧的中心原点坐标换算回宿主坐标（左上角原点，y 向下）
func (f Frame) ScreenPos(p Vec2) Vec2 {
	if f.Transform == nil {
		return ViewportTransform{}.ToScreen(p, f.Width, f.Height)
	}
	return f.Transform.ToScreen(p, f.Width, f.Height)
}

// Config 动画器参数
// 页面上的两种拖尾只在 Transform、Touch 和 StartHidden 上不同
type Config struct {
	// VelocityThreshold 指针速度超过此值时生成粒子
	VelocityThreshold float64
	// Gravity 粒子的恒定向下加速度
	Gravity float64
	// ExitMargin 粒子越过底边多远后移除
	ExitMargin float64
	// StartHidden 第一次触摸前隐藏领头爱心
	StartHidden bool
	// Touch 是否处理触摸开始、移动、结束
	Touch bool
	// Transform 把宿主原始输入换算到中心原点坐标
	Transform CoordinateTransform
}

// DefaultConfig 返回相对视口、仅响应指针的默认配置
func DefaultConfig() Config {
	return Config{
		VelocityThreshold: DefaultVelocityThreshold,
		Gravity:           DefaultGravity,
		ExitMargin:        DefaultExitMargin,
		Transform:         ViewportTransform{},
	}
}
