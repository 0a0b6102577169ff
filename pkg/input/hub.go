package input

import (
	"image"
	"time"

	"github.com/decker502/valentine/pkg/trail"
)

type subscription struct {
	id int
	l  trail.Listener
}

// Hub 把宿主输入事件分发给所有订阅者，实现 trail.InputSource
// 非并发安全
type Hub struct {
	subs   []subscription
	nextID int

	cursor bool
	prev   Snapshot
}

// NewHub 创建 Hub；cursor 为 false 时 Poll 忽略鼠标光标（纯触摸设备上报的光标位置是陈旧的）
func NewHub(cursor bool) *Hub {
	return &Hub{cursor: cursor}
}

// Subscribe 登记 l，返回的函数用于移除，重复调用无副作用
func (h *Hub) Subscribe(l trail.Listener) func() {
	h.nextID++
	id := h.nextID
	h.subs = append(h.subs, subscription{id: id, l: l})

	return func() {
		for i, s := range h.subs {
			if s.id == id {
				h.subs = append(h.subs[:i:i], h.subs[i+1:]...)
				return
			}
		}
	}
}

// ListenerCount 当前订阅数
func (h *Hub) ListenerCount() int {
	return len(h.subs)
}

// Feed 按顺序同步分发事件
// 分发过程中增删的订阅从下一个事件开始生效
func (h *Hub) Feed(events []Event) {
	for _, e := range events {
		subs := make([]subscription, len(h.subs))
		copy(subs, h.subs)
		for _, s := range subs {
			dispatch(s.l, e)
		}
	}
}

// Poll 读取 ebiten 当前输入状态，分发与上一次 Poll 的差异
// 必须在 ebiten 的 Update 中调用
func (h *Hub) Poll(at time.Duration) {
	cur := ReadSnapshot(h.cursor)
	events := Diff(h.prev, cur, at)
	h.prev = cur
	if len(events) > 0 {
		h.Feed(events)
	}
}

// Within 返回只转发原始坐标落在 r 内的事件的输入源，触摸结束总是转发
func (h *Hub) Within(r image.Rectangle) trail.InputSource {
	return &bounded{hub: h, rect: r}
}

func dispatch(l trail.Listener, e Event) {
	switch e.Kind {
	case PointerMove:
		l.OnPointerMove(e.Pos, e.At)
	case TouchStart:
		l.OnTouchStart(e.Pos, e.At)
	case TouchMove:
		l.OnTouchMove(e.Pos, e.At)
	case TouchEnd:
		l.OnTouchEnd(e.At)
	}
}

// bounded 只转发落在元素矩形内的事件
type bounded struct {
	hub  *Hub
	rect image.Rectangle
}

func (b *bounded) Subscribe(l trail.Listener) func() {
	return b.hub.Subscribe(&rectFilter{next: l, rect: b.rect})
}

type rectFilter struct {
	next trail.Listener
	rect image.Rectangle
}

func (f *rectFilter) inside(p trail.Vec2) bool {
	return p.X >= float64(f.rect.Min.X) && p.X < float64(f.rect.Max.X) &&
		p.Y >= float64(f.rect.Min.Y) && p.Y < float64(f.rect.Max.Y)
}

func (f *rectFilter) OnPointerMove(raw trail.Vec2, at time.Duration) {
	if f.inside(raw) {
		f.next.OnPointerMove(raw, at)
	}
}

func (f *rectFilter) OnTouchStart(raw trail.Vec2, at time.Duration) {
	if f.inside(raw) {
		f.next.OnTouchStart(raw, at)
	}
}

func (f *rectFilter) OnTouchMove(raw trail.Vec2, at time.Duration) {
	if f.inside(raw) {
		f.next.OnTouchMove(raw, at)
	}
}

func (f *rectFilter) OnTouchEnd(at time.Duration) {
	f.next.OnTouchEnd(at)
}
