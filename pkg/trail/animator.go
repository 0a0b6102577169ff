// Package trail 跟随指针的爱心及其下落拖尾
//
// Animator 维护一个由指针或触摸驱动的领头爱心。指针移动速度超过阈值时，
// 在指针位置生成一颗粒子；每帧粒子在恒定重力下下落，越过表面底边后移除。
//
// Animator 不直接依赖 ebiten，只挂载由 InputSource、Scheduler、Renderer
// 组成的 Surface，测试中可以完全确定地驱动。
package trail

import (
	"log"
	"time"
)

// Animator 持有领头爱心、存活粒子和帧循环
// 非并发安全：输入事件和帧回调必须来自同一个 goroutine（ebiten 的 Update）
type Animator struct {
	cfg Config

	surface     Surface
	running     bool
	unsubscribe func()
	frameID     FrameID // 0 表示没有待执行的帧
	// token 调度令牌：Stop 时递增，使 Stop 之前登记的帧回调全部失效
	token uint64

	leader    Leader
	particles []Particle
	sample    speedSample

	// lastTick 单调不减，时间戳回退的帧不会修改它
	lastTick  time.Duration
	hasTicked bool
}

// New 创建动画器，cfg 中的零值字段取 DefaultConfig 的默认值
func New(cfg Config) *Animator {
	def := DefaultConfig()
	if cfg.VelocityThreshold <= 0 {
		cfg.VelocityThreshold = def.VelocityThreshold
	}
	if cfg.Gravity == 0 {
		cfg.Gravity = def.Gravity
	}
	if cfg.ExitMargin == 0 {
		cfg.ExitMargin = def.ExitMargin
	}
	if cfg.Transform == nil {
		cfg.Transform = def.Transform
	}
	return &Animator{cfg: cfg}
}

// Config 返回生效的配置
func (a *Animator) Config() Config {
	return a.cfg
}

// Start 挂载到表面并登记第一帧
// 已在运行时重复调用不做任何事
func (a *Animator) Start(s Surface) error {
	if a.running {
		return nil
	}
	if !s.valid() {
		return ErrNoSurface
	}

	a.surface = s
	a.leader = Leader{Visible: !a.cfg.StartHidden}
	a.particles = a.particles[:0]
	a.sample = speedSample{}
	a.hasTicked = false
	a.token++
	a.running = true

	a.unsubscribe = s.Input.Subscribe(&listener{a: a, token: a.token})
	a.scheduleNext()

	log.Printf("[Trail] Started: surface %.0fx%.0f, touch=%v, hidden=%v",
		s.Width, s.Height, a.cfg.Touch, a.cfg.StartHidden)
	return nil
}

// Stop 取消全部订阅、取消待执行的帧并释放渲染器
// 未 Start 或重复调用都是安全的
func (a *Animator) Stop() {
	if !a.running {
		return
	}
	a.running = false
	a.token++

	if a.unsubscribe != nil {
		a.unsubscribe()
		a.unsubscribe = nil
	}
	if a.frameID != 0 {
		a.surface.Scheduler.CancelFrame(a.frameID)
		a.frameID = 0
	}
	a.surface.Renderer.Dispose()

	a.particles = nil
	a.sample = speedSample{}
	a.surface = Surface{}

	log.Printf("[Trail] Stopped")
}

// Running 是否挂载在表面上
func (a *Animator) Running() bool {
	return a.running
}

// Leader 返回当前的领头爱心
func (a *Animator) Leader() Leader {
	return a.leader
}

// Particles 返回存活粒子的副本
func (a *Animator) Particles() []Particle {
	out := make([]Particle, len(a.particles))
	copy(out, a.particles)
	return out
}

// OnPointerMove 移动领头爱心；与上一次采样相比速度超过阈值时生成粒子
func (a *Animator) OnPointerMove(raw Vec2, at time.Duration) {
	if !a.running {
		return
	}
	a.move(raw, at)
}

// OnTouchStart 在触点显示领头爱心
// 同时清空速度采样，按下后的第一次触摸移动不会生成粒子
func (a *Animator) OnTouchStart(raw Vec2, at time.Duration) {
	if !a.running || !a.cfg.Touch {
		return
	}
	a.leader.Visible = true
	a.leader.Pos = a.toCenter(raw)
	a.sample = speedSample{}
}

// OnTouchMove 主触点移动，行为同 OnPointerMove
func (a *Animator) OnTouchMove(raw Vec2, at time.Duration) {
	if !a.running || !a.cfg.Touch {
		return
	}
	a.move(raw, at)
}

// OnTouchEnd 隐藏领头爱心并丢弃速度采样，速度估算不会跨越一次抬起
func (a *Animator) OnTouchEnd(at time.Duration) {
	if !a.running || !a.cfg.Touch {
		return
	}
	a.leader.Visible = false
	a.sample = speedSample{}
}

// Tick 把每颗粒子推进到 now，移除离开表面的粒子，渲染并登记下一帧
//
// 每颗粒子从自己上一次积分的时间（初始为 Born）算起，帧中途生成的粒子
// 只积分它实际存在的时长。时间戳不前进的帧（重复或回退）不积分，但仍然渲染。
func (a *Animator) Tick(now time.Duration) {
	if !a.running {
		return
	}

	if !a.hasTicked || now > a.lastTick {
		a.lastTick = now
		a.hasTicked = true
	}

	a.integrate(a.lastTick)
	a.render()
	a.scheduleNext()
}

func (a *Animator) move(raw Vec2, at time.Duration) {
	pos := a.toCenter(raw)
	a.leader.Pos = pos

	if a.sample.valid {
		dt := (at - a.sample.At).Seconds()
		if dt > 0 {
			speed := pos.Sub(a.sample.Pos).Len() / dt
			if speed > a.cfg.VelocityThreshold {
				a.particles = append(a.particles, Particle{Pos: pos, VelocityY: 0, Born: at, updated: at})
			}
		}
	}
	a.sample = speedSample{Pos: pos, At: at, valid: true}
}

// integrate 在恒定重力下把粒子推进到时间 to
// 位移取新旧速度的平均值，对恒定加速度是精确的：
// 存在 t 秒后下落距离恒为 ½·g·t²，与帧如何切分无关
func (a *Animator) integrate(to time.Duration) {
	bottom := -a.surface.Height/2 - a.cfg.ExitMargin
	g := a.cfg.Gravity

	alive := a.particles[:0]
	for _, p := range a.particles {
		if dt := (to - p.updated).Seconds(); dt > 0 {
			v0 := p.VelocityY
			p.VelocityY += g * dt
			p.Pos.Y -= (v0 + p.VelocityY) / 2 * dt
			p.updated = to
		}
		if p.Pos.Y < bottom {
			continue
		}
		alive = append(alive, p)
	}
	a.particles = alive
}

func (a *Animator) render() {
	a.surface.Renderer.Render(Frame{
		Leader:    a.leader,
		Particles: a.Particles(),
		Width:     a.surface.Width,
		Height:    a.surface.Height,
		Transform: a.cfg.Transform,
	})
}

func (a *Animator) scheduleNext() {
	if a.frameID != 0 {
		a.surface.Scheduler.CancelFrame(a.frameID)
	}
	token := a.token
	a.frameID = a.surface.Scheduler.RequestFrame(func(now time.Duration) {
		if !a.running || token != a.token {
			return
		}
		a.Tick(now)
	})
}

func (a *Animator) toCenter(raw Vec2) Vec2 {
	return a.cfg.Transform.ToCenter(raw, a.surface.Width, a.surface.Height)
}

// listener 只在所属的挂载仍有效时转发宿主事件
type listener struct {
	a     *Animator
	token uint64
}

func (l *listener) live() bool {
	return l.a.running && l.token == l.a.token
}

func (l *listener) OnPointerMove(raw Vec2, at time.Duration) {
	if l.live() {
		l.a.OnPointerMove(raw, at)
	}
}

func (l *listener) OnTouchStart(raw Vec2, at time.Duration) {
	if l.live() {
		l.a.OnTouchStart(raw, at)
	}
}

func (l *listener) OnTouchMove(raw Vec2, at time.Duration) {
	if l.live() {
		l.a.OnTouchMove(raw, at)
	}
}

func (l *listener) OnTouchEnd(at time.Duration) {
	if l.live() {
		l.a.OnTouchEnd(at)
	}
}
