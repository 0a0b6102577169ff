package scenes

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/decker502/valentine/pkg/components"
	"github.com/decker502/valentine/pkg/config"
	"github.com/decker502/valentine/pkg/ecs"
	"github.com/decker502/valentine/pkg/entities"
	"github.com/decker502/valentine/pkg/game"
)

// pageEntities 页面固定元素的实体 ID
type pageEntities struct {
	created  bool
	title    ecs.EntityID
	subtitle ecs.EntityID
	mascot   ecs.EntityID
	yes      ecs.EntityID
	no       ecs.EntityID
}

// layoutPage 第一次调用时创建页面实体，之后按当前布局更新位置、尺寸和字体
// 更新而不是重建，保证正在播放的抖动和跳跃不被打断
func (s *ValentineScene) layoutPage() error {
	l := s.layout

	titleFace, err := s.resourceManager.LoadFont(game.FontTitle, l.TitleSize)
	if err != nil {
		return err
	}
	subtitleFace, err := s.resourceManager.LoadFont(game.FontBody, l.SubtitleSize)
	if err != nil {
		return err
	}
	buttonFace, err := s.resourceManager.LoadFont(game.FontPixel, l.ButtonSize)
	if err != nil {
		return err
	}

	if !s.page.created {
		return s.createPage(titleFace, subtitleFace, buttonFace)
	}

	em := s.entityManager
	if label, ok := ecs.GetComponent[*components.LabelComponent](em, s.page.title); ok {
		label.Font = titleFace
		label.ShadowOffset = titleFace.Size / 16
	}
	setPosition(em, s.page.title, l.CenterX, l.TitleY)

	if label, ok := ecs.GetComponent[*components.LabelComponent](em, s.page.subtitle); ok {
		label.Font = subtitleFace
		label.ShadowOffset = subtitleFace.Size / 16
		label.MaxWidth = s.textWidth()
	}
	setPosition(em, s.page.subtitle, l.CenterX, l.SubtitleY)

	if sprite, ok := ecs.GetComponent[*components.SpriteComponent](em, s.page.mascot); ok {
		sprite.Image = s.resourceManager.MascotImage(int(l.MascotPixel))
	}
	setPosition(em, s.page.mascot, l.MascotX, l.MascotY)

	layoutButton(em, s.page.yes, l.YesButton, buttonFace)
	layoutButton(em, s.page.no, l.NoButton, buttonFace)
	return nil
}

func (s *ValentineScene) createPage(titleFace, subtitleFace, buttonFace *text.GoTextFace) error {
	l := s.layout
	em := s.entityManager
	words := s.cfg.Text
	var err error

	if s.page.title, err = entities.NewLabelEntity(em, words.Title, titleFace, config.TitleColor, l.CenterX, l.TitleY); err != nil {
		return err
	}
	if s.page.subtitle, err = entities.NewLabelEntity(em, words.Subtitle, subtitleFace, config.SubtitleColor, l.CenterX, l.SubtitleY); err != nil {
		return err
	}

	if label, ok := ecs.GetComponent[*components.LabelComponent](em, s.page.subtitle); ok {
		label.MaxWidth = s.textWidth()
	}

	mascotImage := s.resourceManager.MascotImage(int(l.MascotPixel))
	if s.page.mascot, err = entities.NewMascotEntity(em, mascotImage, l.MascotX, l.MascotY, s.tuning.Bob, s.tuning.Jump); err != nil {
		return err
	}

	if s.page.yes, err = entities.NewPixelButtonEntity(em, words.Yes, buttonFace, l.YesButton, s.onYesClicked); err != nil {
		return err
	}
	if s.page.no, err = entities.NewPixelButtonEntity(em, words.No, buttonFace, l.NoButton, s.onNoClicked); err != nil {
		return err
	}
	anim, ok := ecs.GetComponent[*components.AnimationComponent](em, s.page.no)
	if !ok {
		return fmt.Errorf("no button %d has no animation component", s.page.no)
	}
	anim.Tracks[entities.TrackShake] = entities.NewAnimationTrack(components.AnimOffsetX, s.tuning.Shake, false)

	s.page.created = true
	return nil
}

// textWidth 副标题的换行宽度：内容容器宽度的 90%
func (s *ValentineScene) textWidth() float64 {
	return float64(s.layout.Container.Dx()) * 0.9
}

func setPosition(em *ecs.EntityManager, id ecs.EntityID, x, y float64) {
	if pos, ok := ecs.GetComponent[*components.PositionComponent](em, id); ok {
		pos.X, pos.Y = x, y
	}
}

func layoutButton(em *ecs.EntityManager, id ecs.EntityID, rect config.Rect, face *text.GoTextFace) {
	setPosition(em, id, rect.X, rect.Y)
	if button, ok := ecs.GetComponent[*components.ButtonComponent](em, id); ok {
		button.Width, button.Height = rect.W, rect.H
		button.Font = face
	}
}
