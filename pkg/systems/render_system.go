package systems

import (
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/valentine/pkg/components"
	"github.com/decker502/valentine/pkg/ecs"
	"github.com/decker502/valentine/pkg/utils"
)

// 像素风按钮的边框和投影宽度（像素）
const (
	buttonBorderWidth  = 3.0
	buttonShadowOffset = 4.0

	// labelLineSpacing 换行标签的行高（字号的倍数）
	labelLineSpacing = 1.25
)

// RenderSystem 绘制页面上的所有实体
//
// 渲染顺序（从底到顶）：
//   - 精灵（雨点爱心、吉祥物、爆裂爱心），按 Layer 升序，同层按创建顺序
//   - 文字标签
//   - 像素风按钮
//
// 光标跟随的爱心拖尾不是 ECS 实体，由场景在本系统之后绘制
type RenderSystem struct {
	entityManager *ecs.EntityManager
}

// NewRenderSystem 创建一个新的渲染系统
func NewRenderSystem(em *ecs.EntityManager) *RenderSystem {
	return &RenderSystem{
		entityManager: em,
	}
}

// Draw 绘制所有实体
func (s *RenderSystem) Draw(screen *ebiten.Image) {
	for _, id := range s.SpriteDrawOrder() {
		s.drawSprite(screen, id)
	}
	for _, id := range ecs.GetEntitiesWith2[*components.LabelComponent, *components.PositionComponent](s.entityManager) {
		s.drawLabel(screen, id)
	}
	for _, id := range ecs.GetEntitiesWith2[*components.ButtonComponent, *components.PositionComponent](s.entityManager) {
		s.drawButton(screen, id)
	}
}

// SpriteDrawOrder 返回可见精灵的绘制顺序
func (s *RenderSystem) SpriteDrawOrder() []ecs.EntityID {
	ids := ecs.GetEntitiesWith2[*components.SpriteComponent, *components.PositionComponent](s.entityManager)

	visible := ids[:0]
	layers := make(map[ecs.EntityID]int, len(ids))
	for _, id := range ids {
		sprite, _ := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)
		if sprite.Hidden || sprite.Image == nil {
			continue
		}
		layers[id] = sprite.Layer
		visible = append(visible, id)
	}

	// 查询结果已按 ID 升序，稳定排序保证同层按创建顺序绘制
	sort.SliceStable(visible, func(i, j int) bool {
		return layers[visible[i]] < layers[visible[j]]
	})
	return visible
}

// SpriteGeoM 计算精灵的变换：图像中心对齐到位置，叠加动画偏移和缩放
func (s *RenderSystem) SpriteGeoM(id ecs.EntityID) (ebiten.GeoM, bool) {
	var geo ebiten.GeoM
	sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)
	if !ok || sprite.Image == nil {
		return geo, false
	}
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
	if !ok {
		return geo, false
	}

	scale := sprite.Scale
	if scale == 0 {
		scale = 1
	}
	x, y := pos.X, pos.Y
	if anim, ok := ecs.GetComponent[*components.AnimationComponent](s.entityManager, id); ok {
		x += anim.OffsetX
		y += anim.OffsetY
		scale *= 1 + anim.Scale
	}

	b := sprite.Image.Bounds()
	geo.Translate(-float64(b.Dx())/2, -float64(b.Dy())/2)
	geo.Scale(scale, scale)
	geo.Translate(x, y)
	return geo, true
}

func (s *RenderSystem) drawSprite(screen *ebiten.Image, id ecs.EntityID) {
	geo, ok := s.SpriteGeoM(id)
	if !ok {
		return
	}
	sprite, _ := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)

	op := &ebiten.DrawImageOptions{}
	op.GeoM = geo
	if sprite.Alpha > 0 && sprite.Alpha < 1 {
		op.ColorScale.ScaleAlpha(float32(sprite.Alpha))
	}
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(sprite.Image, op)
}

func (s *RenderSystem) drawLabel(screen *ebiten.Image, id ecs.EntityID) {
	label, _ := ecs.GetComponent[*components.LabelComponent](s.entityManager, id)
	pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
	if label.Text == "" || label.Font == nil {
		return
	}

	// 多行文字整体以 pos 为中心
	lines := utils.WrapText(label.Text, label.Font, label.MaxWidth)
	lineHeight := label.Font.Size * labelLineSpacing
	y := pos.Y - lineHeight*float64(len(lines)-1)/2
	for _, line := range lines {
		if label.ShadowOffset > 0 {
			drawCenteredText(screen, line, label.Font, pos.X+label.ShadowOffset, y+label.ShadowOffset, label.Shadow)
		}
		drawCenteredText(screen, line, label.Font, pos.X, y, label.Color)
		y += lineHeight
	}
}

// drawButton 像素风按钮：底部投影 + 填充 + 边框 + 居中文字
// 按下时按钮下沉到投影位置
func (s *RenderSystem) drawButton(screen *ebiten.Image, id ecs.EntityID) {
	button, _ := ecs.GetComponent[*components.ButtonComponent](s.entityManager, id)
	pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

	x, y := pos.X, pos.Y
	if anim, ok := ecs.GetComponent[*components.AnimationComponent](s.entityManager, id); ok {
		x += anim.OffsetX
		y += anim.OffsetY
	}
	w, h := float32(button.Width), float32(button.Height)

	fill := button.Fill
	shadow := float32(buttonShadowOffset)
	switch button.State {
	case components.UIHovered:
		fill = button.HoverFill
	case components.UIClicked:
		fill = button.HoverFill
		y += buttonShadowOffset
		shadow = 0
	}

	fx, fy := float32(x), float32(y)
	if shadow > 0 {
		vector.DrawFilledRect(screen, fx+shadow, fy+shadow, w, h, button.Shadow, false)
	}
	vector.DrawFilledRect(screen, fx, fy, w, h, fill, false)
	vector.StrokeRect(screen, fx+buttonBorderWidth/2, fy+buttonBorderWidth/2,
		w-buttonBorderWidth, h-buttonBorderWidth, buttonBorderWidth, button.Border, false)

	if button.Label != "" && button.Font != nil {
		drawCenteredText(screen, button.Label, button.Font, x+button.Width/2, y+button.Height/2, button.TextColor)
	}
}

func drawCenteredText(screen *ebiten.Image, s string, face *text.GoTextFace, x, y float64, c color.RGBA) {
	op := &text.DrawOptions{}
	op.LayoutOptions.PrimaryAlign = text.AlignCenter
	op.LayoutOptions.SecondaryAlign = text.AlignCenter
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, face, op)
}
