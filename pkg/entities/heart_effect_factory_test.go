package entities

import (
	"math"
	"math/rand"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/valentine/internal/keyframe"
	"github.com/decker502/valentine/pkg/components"
	"github.com/decker502/valentine/pkg/config"
	"github.com/decker502/valentine/pkg/ecs"
)

func testRainSpec() config.RainSpec {
	return config.RainSpec{
		Count:    20,
		Left:     keyframe.Range{Min: 0, Max: 100},
		Delay:    keyframe.Range{Min: 0, Max: 3},
		Duration: keyframe.Range{Min: 2, Max: 5},
		Size:     24,
	}
}

func testBurstSpec() config.BurstSpec {
	return config.BurstSpec{
		Count:    12,
		Distance: keyframe.Range{Min: 100, Max: 150},
		Delay:    keyframe.Range{Min: 0, Max: 0.3},
		Duration: keyframe.Range{Min: 0.8, Max: 1.3},
		Size:     20,
	}
}

func TestGenerateRainHearts(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	hearts := GenerateRainHearts(rng, testRainSpec())

	if len(hearts) != 20 {
		t.Fatalf("Expected 20 rain hearts, got %d", len(hearts))
	}
	for i, h := range hearts {
		if h.Left < 0 || h.Left >= 100 {
			t.Errorf("heart %d: Left=%v out of [0,100)", i, h.Left)
		}
		if h.Delay < 0 || h.Delay >= 3 {
			t.Errorf("heart %d: Delay=%v out of [0,3)", i, h.Delay)
		}
		if h.Duration < 2 || h.Duration >= 5 {
			t.Errorf("heart %d: Duration=%v out of [2,5)", i, h.Duration)
		}
	}
}

func TestGenerateRainHeartsZeroCount(t *testing.T) {
	rain := testRainSpec()
	rain.Count = 0
	if hearts := GenerateRainHearts(nil, rain); len(hearts) != 0 {
		t.Errorf("Expected no hearts, got %d", len(hearts))
	}
}

func TestGenerateBurstHeartsAngles(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	hearts := GenerateBurstHearts(rng, testBurstSpec())

	if len(hearts) != 12 {
		t.Fatalf("Expected 12 burst hearts, got %d", len(hearts))
	}
	for i, h := range hearts {
		wantAngle := 2 * math.Pi * float64(i) / 12
		if math.Abs(h.Angle-wantAngle) > 1e-9 {
			t.Errorf("heart %d: angle=%v, want %v", i, h.Angle, wantAngle)
		}
		if h.Distance < 100 || h.Distance >= 150 {
			t.Errorf("heart %d: distance=%v out of [100,150)", i, h.Distance)
		}
		if math.Abs(h.DX-h.Distance*math.Cos(wantAngle)) > 1e-9 ||
			math.Abs(h.DY-h.Distance*math.Sin(wantAngle)) > 1e-9 {
			t.Errorf("heart %d: offset (%v,%v) does not match angle and distance", i, h.DX, h.DY)
		}
		if got := math.Hypot(h.DX, h.DY); math.Abs(got-h.Distance) > 1e-9 {
			t.Errorf("heart %d: |offset|=%v, want %v", i, got, h.Distance)
		}
	}
}

func TestNewRainingHeartsEffect(t *testing.T) {
	em := ecs.NewEntityManager()
	img := ebiten.NewImage(8, 8)
	hearts := GenerateRainHearts(rand.New(rand.NewSource(3)), testRainSpec())

	ids, err := NewRainingHeartsEffect(em, 1, hearts, img, 6)
	if err != nil {
		t.Fatalf("NewRainingHeartsEffect failed: %v", err)
	}
	if len(ids) != len(hearts) {
		t.Fatalf("Expected %d entities, got %d", len(hearts), len(ids))
	}

	for i, id := range ids {
		rain, ok := ecs.GetComponent[*components.RainHeartComponent](em, id)
		if !ok {
			t.Fatalf("entity %d missing RainHeartComponent", id)
		}
		if rain.Left != hearts[i].Left || rain.Delay != hearts[i].Delay || rain.Duration != hearts[i].Duration {
			t.Errorf("entity %d: params %+v do not match %+v", id, rain, hearts[i])
		}
		sprite, ok := ecs.GetComponent[*components.SpriteComponent](em, id)
		if !ok || !sprite.Hidden || sprite.Layer != LayerRain {
			t.Errorf("entity %d: sprite should start hidden on the rain layer", id)
		}
		eff, _ := ecs.GetComponent[*components.EffectComponent](em, id)
		if eff == nil || eff.ID != 1 {
			t.Errorf("entity %d: expected effect ID 1", id)
		}
		life, _ := ecs.GetComponent[*components.LifetimeComponent](em, id)
		if life == nil || life.MaxLifetime != 6 {
			t.Errorf("entity %d: expected lifetime 6", id)
		}
	}
}

func TestNewBurstHeartsEffect(t *testing.T) {
	em := ecs.NewEntityManager()
	img := ebiten.NewImage(8, 8)
	hearts := GenerateBurstHearts(rand.New(rand.NewSource(3)), testBurstSpec())

	ids, err := NewBurstHeartsEffect(em, 4, 320, 240, hearts, img, 6)
	if err != nil {
		t.Fatalf("NewBurstHeartsEffect failed: %v", err)
	}
	if len(ids) != 12 {
		t.Fatalf("Expected 12 entities, got %d", len(ids))
	}
	for i, id := range ids {
		burst, _ := ecs.GetComponent[*components.BurstHeartComponent](em, id)
		if burst == nil {
			t.Fatalf("entity %d missing BurstHeartComponent", id)
		}
		if burst.OriginX != 320 || burst.OriginY != 240 {
			t.Errorf("entity %d: origin (%v,%v), want (320,240)", id, burst.OriginX, burst.OriginY)
		}
		if burst.DX != hearts[i].DX || burst.DY != hearts[i].DY {
			t.Errorf("entity %d: offset mismatch", id)
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		if pos.X != 320 || pos.Y != 240 {
			t.Errorf("entity %d: should start at the origin, got (%v,%v)", id, pos.X, pos.Y)
		}
	}
}

func TestHeartEffectFactoryErrors(t *testing.T) {
	img := ebiten.NewImage(4, 4)
	em := ecs.NewEntityManager()

	if _, err := NewRainingHeartsEffect(nil, 1, nil, img, 6); err == nil {
		t.Error("nil entity manager should fail")
	}
	if _, err := NewRainingHeartsEffect(em, 1, nil, nil, 6); err == nil {
		t.Error("nil rain image should fail")
	}
	if _, err := NewBurstHeartsEffect(nil, 1, 0, 0, nil, img, 6); err == nil {
		t.Error("nil entity manager should fail")
	}
	if _, err := NewBurstHeartsEffect(em, 1, 0, 0, nil, nil, 6); err == nil {
		t.Error("nil burst image should fail")
	}
	if em.EntityCount() != 0 {
		t.Errorf("failed calls should not create entities, got %d", em.EntityCount())
	}
}

func TestClearHeartEffects(t *testing.T) {
	em := ecs.NewEntityManager()
	img := ebiten.NewImage(4, 4)
	rng := rand.New(rand.NewSource(5))

	rainSpec := testRainSpec()
	rainSpec.Count = 3
	burstSpec := testBurstSpec()
	burstSpec.Count = 2

	for effectID := 1; effectID <= 2; effectID++ {
		if _, err := NewRainingHeartsEffect(em, effectID, GenerateRainHearts(rng, rainSpec), img, 6); err != nil {
			t.Fatal(err)
		}
		if _, err := NewBurstHeartsEffect(em, effectID, 0, 0, GenerateBurstHearts(rng, burstSpec), img, 6); err != nil {
			t.Fatal(err)
		}
	}

	// 非特效实体（吉祥物）不受影响
	mascot := em.CreateEntity()
	ecs.AddComponent(em, mascot, &components.SpriteComponent{Image: img})

	ids := ActiveEffectIDs(em)
	if len(ids) != 2 || ids[0] != 1 || ids[1] != 2 {
		t.Fatalf("ActiveEffectIDs = %v, want [1 2]", ids)
	}

	if n := ClearHeartEffects(em); n != 10 {
		t.Errorf("ClearHeartEffects marked %d entities, want 10", n)
	}
	em.RemoveMarkedEntities()

	if ids := ActiveEffectIDs(em); len(ids) != 0 {
		t.Errorf("ActiveEffectIDs after clear = %v, want none", ids)
	}
	if !em.Exists(mascot) {
		t.Error("mascot should survive ClearHeartEffects")
	}
}
