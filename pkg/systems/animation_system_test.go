package systems

import (
	"math"
	"testing"

	"github.com/decker502/valentine/internal/keyframe"
	"github.com/decker502/valentine/pkg/components"
	"github.com/decker502/valentine/pkg/ecs"
)

// 0 → -10 → 0 的三角形曲线
var testBobKeyframes = []keyframe.Keyframe{{Time: 0, Value: 0}, {Time: 0.5, Value: -10}, {Time: 1, Value: 0}}

func newAnimatedEntity(em *ecs.EntityManager, tracks map[string]*components.AnimationTrack) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.AnimationComponent{Tracks: tracks})
	return id
}

func TestAnimationLoopingTrack(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewAnimationSystem(em)
	id := newAnimatedEntity(em, map[string]*components.AnimationTrack{
		"bob": {Target: components.AnimOffsetY, Keyframes: testBobKeyframes, Duration: 1.0, Loop: true, Playing: true},
	})
	anim, _ := ecs.GetComponent[*components.AnimationComponent](em, id)

	tests := []struct {
		dt   float64
		want float64
	}{
		{0.25, -5},
		{0.25, -10},
		{0.25, -5},
		{0.5, -5}, // 跨过终点后回绕到 0.25
	}
	for i, tt := range tests {
		system.Update(tt.dt)
		if math.Abs(anim.OffsetY-tt.want) > 1e-9 {
			t.Errorf("step %d: OffsetY = %v, want %v", i, anim.OffsetY, tt.want)
		}
	}
	if !system.IsPlaying(id, "bob") {
		t.Error("looping track should keep playing")
	}
}

func TestAnimationOneShotTrackStops(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewAnimationSystem(em)
	id := newAnimatedEntity(em, map[string]*components.AnimationTrack{
		"shake": {Target: components.AnimOffsetX, Keyframes: testBobKeyframes, Duration: 0.5},
	})
	anim, _ := ecs.GetComponent[*components.AnimationComponent](em, id)

	if system.IsPlaying(id, "shake") {
		t.Fatal("track should start idle")
	}
	if err := system.PlayAnimation(id, "shake"); err != nil {
		t.Fatalf("PlayAnimation failed: %v", err)
	}

	system.Update(0.25)
	if math.Abs(anim.OffsetX+10) > 1e-9 {
		t.Errorf("OffsetX at midpoint = %v, want -10", anim.OffsetX)
	}
	if !system.IsPlaying(id, "shake") {
		t.Error("shake should still be playing at its midpoint")
	}

	system.Update(0.25)
	if system.IsPlaying(id, "shake") {
		t.Error("shake should stop once its duration elapsed")
	}
	if anim.OffsetX != 0 {
		t.Errorf("OffsetX after stop = %v, want 0", anim.OffsetX)
	}
}

func TestAnimationTracksAccumulate(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewAnimationSystem(em)
	jump := []keyframe.Keyframe{{Time: 0, Value: 0}, {Time: 0.5, Value: -40}, {Time: 1, Value: 0}}
	id := newAnimatedEntity(em, map[string]*components.AnimationTrack{
		"bob":  {Target: components.AnimOffsetY, Keyframes: testBobKeyframes, Duration: 1.0, Loop: true, Playing: true},
		"jump": {Target: components.AnimOffsetY, Keyframes: jump, Duration: 0.5},
	})
	anim, _ := ecs.GetComponent[*components.AnimationComponent](em, id)

	if err := system.PlayAnimation(id, "jump"); err != nil {
		t.Fatal(err)
	}
	system.Update(0.25)

	// bob 在 0.25 处为 -5，jump 在中点为 -40
	if math.Abs(anim.OffsetY+45) > 1e-9 {
		t.Errorf("OffsetY = %v, want -45", anim.OffsetY)
	}
}

func TestAnimationRestartFromBeginning(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewAnimationSystem(em)
	id := newAnimatedEntity(em, map[string]*components.AnimationTrack{
		"jump": {Target: components.AnimOffsetY, Keyframes: testBobKeyframes, Duration: 1.0},
	})

	_ = system.PlayAnimation(id, "jump")
	system.Update(0.75)
	_ = system.PlayAnimation(id, "jump")

	anim, _ := ecs.GetComponent[*components.AnimationComponent](em, id)
	if anim.Tracks["jump"].Elapsed != 0 {
		t.Error("PlayAnimation should restart the track")
	}

	if err := system.StopAnimation(id, "jump"); err != nil {
		t.Fatal(err)
	}
	if system.IsPlaying(id, "jump") {
		t.Error("StopAnimation should stop the track")
	}
}

func TestAnimationErrors(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewAnimationSystem(em)

	plain := em.CreateEntity()
	if err := system.PlayAnimation(plain, "bob"); err == nil {
		t.Error("entity without AnimationComponent should fail")
	}

	id := newAnimatedEntity(em, map[string]*components.AnimationTrack{})
	if err := system.PlayAnimation(id, "missing"); err == nil {
		t.Error("unknown track should fail")
	}
	if system.IsPlaying(id, "missing") {
		t.Error("unknown track is never playing")
	}
}
