package systems

import (
	"github.com/decker502/valentine/pkg/components"
	"github.com/decker502/valentine/pkg/ecs"
	"github.com/decker502/valentine/pkg/utils"
)

// ButtonSystem 按钮交互系统
// 负责处理按钮的指针悬停、按下、点击等交互逻辑
//
// 职责：
//   - 检测指针悬停（更新按钮状态为 UIHovered）
//   - 检测指针在按钮内释放（触发 OnClick 回调）
//   - 根据 Enabled 状态决定是否响应交互
//
// 鼠标和触摸统一经由 utils.PointerTracker 处理
type ButtonSystem struct {
	entityManager *ecs.EntityManager
	tracker       utils.PointerTracker
	readPointer   func() utils.RawPointer
}

// NewButtonSystem 创建按钮交互系统
func NewButtonSystem(em *ecs.EntityManager) *ButtonSystem {
	return &ButtonSystem{
		entityManager: em,
		readPointer:   utils.ReadRawPointer,
	}
}

// SetPointerSource 替换指针输入来源（测试注入）
func (s *ButtonSystem) SetPointerSource(read func() utils.RawPointer) {
	s.readPointer = read
}

// Update 更新按钮交互状态
// 检测指针位置和释放，更新按钮状态并触发回调
func (s *ButtonSystem) Update(deltaTime float64) {
	pointer := s.tracker.Update(s.readPointer())

	// 回调可能修改实体（如清除特效），先收集再触发
	var clicked []func()

	entities := ecs.GetEntitiesWith2[*components.ButtonComponent, *components.PositionComponent](s.entityManager)
	for _, entityID := range entities {
		button, _ := ecs.GetComponent[*components.ButtonComponent](s.entityManager, entityID)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, entityID)

		if !button.Enabled {
			button.State = components.UIDisabled
			continue
		}

		x, y := pos.X, pos.Y
		if anim, ok := ecs.GetComponent[*components.AnimationComponent](s.entityManager, entityID); ok {
			x += anim.OffsetX
			y += anim.OffsetY
		}

		if !isPointInButton(pointer.X, pointer.Y, x, y, button.Width, button.Height) {
			button.State = components.UINormal
			continue
		}

		switch {
		case pointer.Pressed:
			button.State = components.UIClicked
		case pointer.JustReleased:
			if button.OnClick != nil {
				clicked = append(clicked, button.OnClick)
			}
			button.State = components.UIHovered
		default:
			button.State = components.UIHovered
		}
	}

	for _, onClick := range clicked {
		onClick()
	}
}

// isPointInButton 检测指针是否在按钮范围内
func isPointInButton(px, py, buttonX, buttonY, buttonWidth, buttonHeight float64) bool {
	return px >= buttonX &&
		px <= buttonX+buttonWidth &&
		py >= buttonY &&
		py <= buttonY+buttonHeight
}
