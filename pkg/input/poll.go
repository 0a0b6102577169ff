package input

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// ReadSnapshot 采集光标（withCursor 为 true 时）和所有活动触点
// 触点坐标为逻辑屏幕坐标
func ReadSnapshot(withCursor bool) Snapshot {
	s := Snapshot{}
	if withCursor {
		x, y := ebiten.CursorPosition()
		s.Cursor = image.Pt(x, y)
		s.CursorOK = true
	}

	ids := ebiten.AppendTouchIDs(nil)
	if len(ids) > 0 {
		s.Touches = make(map[ebiten.TouchID]image.Point, len(ids))
		for _, id := range ids {
			x, y := ebiten.TouchPosition(id)
			s.Touches[id] = image.Pt(x, y)
		}
	}
	return s
}
