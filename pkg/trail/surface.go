package trail

import (
	"errors"
	"time"
)

// ErrNoSurface Start 时表面缺少输入源、调度器或渲染器
var ErrNoSurface = errors.New("trail: surface is missing input, scheduler or renderer")

// Listener 接收宿主输入事件，坐标为宿主原始坐标，at 为单调时间戳
type Listener interface {
	OnPointerMove(raw Vec2, at time.Duration)
	OnTouchStart(raw Vec2, at time.Duration)
	OnTouchMove(raw Vec2, at time.Duration)
	// OnTouchEnd 同时表示触摸取消
	OnTouchEnd(at time.Duration)
}

// InputSource 向订阅者分发输入事件，返回的函数用于取消订阅
type InputSource interface {
	Subscribe(l Listener) (unsubscribe func())
}

// FrameID 待执行帧回调的标识，0 表示无效
type FrameID uint64

// Scheduler 在下一帧执行一次回调
type Scheduler interface {
	RequestFrame(cb func(now time.Duration)) FrameID
	CancelFrame(id FrameID)
}

// Renderer 绘制帧；Dispose 释放资源，之后动画器不再调用 Render
type Renderer interface {
	Render(f Frame)
	Dispose()
}

// Surface 动画器 Start 时挂载的全部宿主资源
type Surface struct {
	Input     InputSource
	Scheduler Scheduler
	Renderer  Renderer
	Width     float64
	Height    float64
}

func (s Surface) valid() bool {
	return s.Input != nil && s.Scheduler != nil && s.Renderer != nil
}
