// Package input 把 ebiten 轮询到的光标和触摸状态转换为拖尾动画器使用的指针、触摸事件
package input

import (
	"image"
	"sort"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/valentine/pkg/trail"
)

// Kind 事件类型
type Kind int

const (
	PointerMove Kind = iota
	TouchStart
	TouchMove
	// TouchEnd 同时表示触摸取消
	TouchEnd
)

func (k Kind) String() string {
	switch k {
	case PointerMove:
		return "PointerMove"
	case TouchStart:
		return "TouchStart"
	case TouchMove:
		return "TouchMove"
	case TouchEnd:
		return "TouchEnd"
	}
	return "Unknown"
}

// Event 一次宿主输入事件，Pos 为原始屏幕坐标
type Event struct {
	Kind Kind
	Pos  trail.Vec2
	At   time.Duration
}

// Snapshot 单帧的原始输入状态
type Snapshot struct {
	Cursor   image.Point
	CursorOK bool
	Touches  map[ebiten.TouchID]image.Point
}

// primary 返回主触点
// ebiten 的触摸 ID 单调递增，最小的 ID 就是最早按下的手指
func (s Snapshot) primary() (ebiten.TouchID, image.Point, bool) {
	if len(s.Touches) == 0 {
		return 0, image.Point{}, false
	}
	ids := make([]ebiten.TouchID, 0, len(s.Touches))
	for id := range s.Touches {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids[0], s.Touches[ids[0]], true
}

// Diff 比较相邻两帧快照，按分发顺序返回期间发生的事件：
// 触摸结束、触摸开始、触摸移动、指针移动。只有主触点产生触摸事件
func Diff(prev, cur Snapshot, at time.Duration) []Event {
	var events []Event

	prevID, prevPos, hadTouch := prev.primary()
	curID, curPos, hasTouch := cur.primary()

	switch {
	case hadTouch && (!hasTouch || curID != prevID):
		// 主触点抬起；若还有其他手指，则由它开始新的触摸
		events = append(events, Event{Kind: TouchEnd, Pos: toVec(prevPos), At: at})
		if hasTouch {
			events = append(events, Event{Kind: TouchStart, Pos: toVec(curPos), At: at})
		}
	case !hadTouch && hasTouch:
		events = append(events, Event{Kind: TouchStart, Pos: toVec(curPos), At: at})
	case hadTouch && hasTouch && curPos != prevPos:
		events = append(events, Event{Kind: TouchMove, Pos: toVec(curPos), At: at})
	}

	if cur.CursorOK && (!prev.CursorOK || cur.Cursor != prev.Cursor) {
		events = append(events, Event{Kind: PointerMove, Pos: toVec(cur.Cursor), At: at})
	}

	return events
}

func toVec(p image.Point) trail.Vec2 {
	return trail.Vec2{X: float64(p.X), Y: float64(p.Y)}
}
