package entities

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/decker502/valentine/pkg/components"
	"github.com/decker502/valentine/pkg/config"
	"github.com/decker502/valentine/pkg/ecs"
)

// 动画轨道名称
const (
	TrackBob   = "bob"
	TrackJump  = "jump"
	TrackShake = "shake"
)

// NewLabelEntity 创建居中显示的文字标签
func NewLabelEntity(em *ecs.EntityManager, s string, face *text.GoTextFace, c color.RGBA, x, y float64) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if face == nil {
		return 0, fmt.Errorf("label %q has no font", s)
	}

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, id, &components.LabelComponent{
		Text:         s,
		Font:         face,
		Color:        c,
		ShadowOffset: face.Size / 16,
		Shadow:       config.TitleShadowColor,
	})
	return id, nil
}

// NewPixelButtonEntity 创建像素风按钮
//
// 参数：
//   - em: 实体管理器
//   - label: 按钮文字
//   - face: 按钮字体
//   - rect: 按钮位置与尺寸
//   - onClick: 指针在按钮内释放时的回调
//
// 返回：
//   - ecs.EntityID: 按钮实体ID
//   - error: 参数无效时返回错误
func NewPixelButtonEntity(em *ecs.EntityManager, label string, face *text.GoTextFace, rect config.Rect, onClick func()) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if face == nil {
		return 0, fmt.Errorf("button %q has no font", label)
	}

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: rect.X, Y: rect.Y})
	ecs.AddComponent(em, id, &components.ButtonComponent{
		Label:     label,
		Font:      face,
		Width:     rect.W,
		Height:    rect.H,
		Fill:      config.ButtonFillColor,
		HoverFill: config.ButtonHoverColor,
		Border:    config.ButtonBorderColor,
		Shadow:    config.ButtonShadowColor,
		TextColor: config.ButtonTextColor,
		State:     components.UINormal,
		Enabled:   true,
		OnClick:   onClick,
	})
	ecs.AddComponent(em, id, &components.AnimationComponent{
		Tracks: map[string]*components.AnimationTrack{},
	})

	log.Printf("[Page Factory] Created button %q (ID: %d) at (%.0f, %.0f) %.0fx%.0f",
		label, id, rect.X, rect.Y, rect.W, rect.H)
	return id, nil
}

// NewMascotEntity 创建吉祥物：待机循环浮动，额外跳跃轨道默认不播放
func NewMascotEntity(em *ecs.EntityManager, image *ebiten.Image, x, y float64, bob, jump config.CurveSpec) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if image == nil {
		return 0, fmt.Errorf("mascot image cannot be nil")
	}

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, id, &components.SpriteComponent{Image: image, Layer: LayerMascot})
	ecs.AddComponent(em, id, &components.AnimationComponent{
		Tracks: map[string]*components.AnimationTrack{
			TrackBob:  NewAnimationTrack(components.AnimOffsetY, bob, true),
			TrackJump: NewAnimationTrack(components.AnimOffsetY, jump, false),
		},
	})
	return id, nil
}

// NewAnimationTrack 由解析后的曲线创建动画轨道
func NewAnimationTrack(target components.AnimTarget, curve config.CurveSpec, playing bool) *components.AnimationTrack {
	return &components.AnimationTrack{
		Target:        target,
		Keyframes:     curve.Keyframes,
		Interpolation: curve.Interpolation,
		Duration:      curve.Duration,
		Loop:          curve.Loop,
		Playing:       playing,
	}
}
