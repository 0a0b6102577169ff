package components

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// ButtonComponent 像素风按钮（ECS 架构）
// 包含按钮的所有数据：文字、尺寸、配色、状态、回调
//
// 设计原则：
//   - 纯数据组件，不包含任何方法
//   - 位置由 PositionComponent 给出（左上角）
//   - 抖动等位移由 AnimationComponent 叠加
type ButtonComponent struct {
	// Label 按钮上显示的文字
	Label string
	// Font 文字字体
	Font *text.GoTextFace

	// Width/Height 按钮尺寸（像素）
	Width  float64
	Height float64

	// 配色：填充、悬停填充、边框、阴影、文字
	Fill      color.RGBA
	HoverFill color.RGBA
	Border    color.RGBA
	Shadow    color.RGBA
	TextColor color.RGBA

	// State 当前交互状态（Normal/Hover/Clicked/Disabled）
	State UIState
	// Enabled 是否启用（禁用时不响应点击）
	Enabled bool

	// OnClick 点击回调函数（指针在按钮内释放时触发）
	OnClick func()
}
