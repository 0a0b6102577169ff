// Package frame 由 ebiten 游戏循环驱动的逐帧回调调度器
package frame

import (
	"time"

	"github.com/decker502/valentine/pkg/trail"
)

// Scheduler 登记在下一帧执行一次的回调
// 零值可直接使用，非并发安全
type Scheduler struct {
	pending map[trail.FrameID]func(now time.Duration)
	order   []trail.FrameID
	nextID  trail.FrameID
}

// NewScheduler 创建空调度器
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// RequestFrame 登记 cb，在下一次 RunFrame 时执行
func (s *Scheduler) RequestFrame(cb func(now time.Duration)) trail.FrameID {
	if s.pending == nil {
		s.pending = make(map[trail.FrameID]func(now time.Duration))
	}
	s.nextID++
	s.pending[s.nextID] = cb
	s.order = append(s.order, s.nextID)
	return s.nextID
}

// CancelFrame 取消待执行的回调，未知或已执行的 id 直接忽略
func (s *Scheduler) CancelFrame(id trail.FrameID) {
	delete(s.pending, id)
}

// RunFrame 按登记顺序执行调用时已在等待的回调
// 执行期间新登记的回调留到下一帧，执行期间被取消的回调跳过
func (s *Scheduler) RunFrame(now time.Duration) int {
	if len(s.order) == 0 {
		return 0
	}
	batch := s.order
	s.order = nil

	ran := 0
	for _, id := range batch {
		cb, ok := s.pending[id]
		if !ok {
			continue
		}
		delete(s.pending, id)
		cb(now)
		ran++
	}
	return ran
}

// Pending 返回等待下一帧的回调数
func (s *Scheduler) Pending() int {
	return len(s.pending)
}
