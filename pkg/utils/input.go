// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// RawPointer 一帧的原始指针输入（触摸优先于鼠标）
type RawPointer struct {
	X, Y       int
	Down       bool
	IsTouching bool
}

// PointerState 按钮系统使用的指针状态
// 鼠标和触摸统一成一个指针
type PointerState struct {
	X, Y         float64
	Pressed      bool
	JustReleased bool
}

// PointerTracker 由逐帧的原始输入推导释放边沿
// 触摸抬起的那一帧没有坐标，沿用最后一次触摸位置
type PointerTracker struct {
	wasDown     bool
	wasTouching bool
	lastTouchX  int
	lastTouchY  int
}

// Update 输入本帧原始状态，返回统一后的指针状态
func (t *PointerTracker) Update(raw RawPointer) PointerState {
	state := PointerState{
		X:            float64(raw.X),
		Y:            float64(raw.Y),
		Pressed:      raw.Down,
		JustReleased: t.wasDown && !raw.Down,
	}

	switch {
	case raw.IsTouching:
		t.lastTouchX, t.lastTouchY = raw.X, raw.Y
	case t.wasTouching:
		state.X, state.Y = float64(t.lastTouchX), float64(t.lastTouchY)
	}

	t.wasDown = raw.Down
	t.wasTouching = raw.IsTouching
	return state
}

// ReadRawPointer 读取 ebiten 当前的指针输入
// 同时支持鼠标和触摸，优先检测触摸
func ReadRawPointer() RawPointer {
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		return RawPointer{X: x, Y: y, Down: true, IsTouching: true}
	}

	x, y := ebiten.CursorPosition()
	return RawPointer{X: x, Y: y, Down: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)}
}
