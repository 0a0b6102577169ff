package entities

import (
	"bytes"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/decker502/valentine/internal/keyframe"
	"github.com/decker502/valentine/pkg/components"
	"github.com/decker502/valentine/pkg/config"
	"github.com/decker502/valentine/pkg/ecs"
)

func newTestFace(t *testing.T, size float64) *text.GoTextFace {
	t.Helper()
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		t.Fatalf("failed to load font: %v", err)
	}
	return &text.GoTextFace{Source: src, Size: size}
}

func TestNewLabelEntity(t *testing.T) {
	em := ecs.NewEntityManager()
	face := newTestFace(t, 32)

	id, err := NewLabelEntity(em, "Hello", face, config.TitleColor, 100, 50)
	if err != nil {
		t.Fatalf("NewLabelEntity failed: %v", err)
	}

	label, ok := ecs.GetComponent[*components.LabelComponent](em, id)
	if !ok {
		t.Fatal("label component missing")
	}
	if label.Text != "Hello" || label.Font != face || label.Color != config.TitleColor {
		t.Errorf("unexpected label %+v", label)
	}
	if label.ShadowOffset != 2 {
		t.Errorf("ShadowOffset = %v, want 2", label.ShadowOffset)
	}
	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
	if pos.X != 100 || pos.Y != 50 {
		t.Errorf("position = (%v,%v), want (100,50)", pos.X, pos.Y)
	}

	if _, err := NewLabelEntity(em, "x", nil, config.TitleColor, 0, 0); err == nil {
		t.Error("label without a font should fail")
	}
}

func TestNewPixelButtonEntity(t *testing.T) {
	em := ecs.NewEntityManager()
	clicked := 0
	rect := config.Rect{X: 10, Y: 20, W: 140, H: 56}

	id, err := NewPixelButtonEntity(em, "Yes", newTestFace(t, 20), rect, func() { clicked++ })
	if err != nil {
		t.Fatalf("NewPixelButtonEntity failed: %v", err)
	}

	button, ok := ecs.GetComponent[*components.ButtonComponent](em, id)
	if !ok {
		t.Fatal("button component missing")
	}
	if button.Width != 140 || button.Height != 56 || !button.Enabled {
		t.Errorf("unexpected button %+v", button)
	}
	if button.State != components.UINormal {
		t.Errorf("State = %v, want Normal", button.State)
	}
	button.OnClick()
	if clicked != 1 {
		t.Error("OnClick should call the callback")
	}

	anim, ok := ecs.GetComponent[*components.AnimationComponent](em, id)
	if !ok || anim.Tracks == nil {
		t.Error("button should carry an animation component for the shake track")
	}

	if _, err := NewPixelButtonEntity(nil, "Yes", newTestFace(t, 20), rect, nil); err == nil {
		t.Error("nil entity manager should fail")
	}
}

func TestNewMascotEntity(t *testing.T) {
	em := ecs.NewEntityManager()
	bob := config.CurveSpec{
		Keyframes: []keyframe.Keyframe{{Time: 0, Value: 0}, {Time: 0.5, Value: -10}, {Time: 1, Value: 0}},
		Duration:  1.2,
		Loop:      true,
	}
	jump := config.CurveSpec{
		Keyframes: []keyframe.Keyframe{{Time: 0, Value: 0}, {Time: 0.5, Value: -40}, {Time: 1, Value: 0}},
		Duration:  0.5,
	}

	id, err := NewMascotEntity(em, ebiten.NewImage(16, 16), 200, 300, bob, jump)
	if err != nil {
		t.Fatalf("NewMascotEntity failed: %v", err)
	}

	anim, ok := ecs.GetComponent[*components.AnimationComponent](em, id)
	if !ok {
		t.Fatal("mascot should have an animation component")
	}
	if tr := anim.Tracks[TrackBob]; tr == nil || !tr.Playing || !tr.Loop {
		t.Error("bob track should be playing and looping")
	}
	if tr := anim.Tracks[TrackJump]; tr == nil || tr.Playing || tr.Duration != 0.5 {
		t.Error("jump track should be present but idle")
	}

	sprite, _ := ecs.GetComponent[*components.SpriteComponent](em, id)
	if sprite == nil || sprite.Layer != LayerMascot || sprite.Hidden {
		t.Error("mascot sprite should be visible on the mascot layer")
	}

	if _, err := NewMascotEntity(em, nil, 0, 0, bob, jump); err == nil {
		t.Error("nil mascot image should fail")
	}
}
