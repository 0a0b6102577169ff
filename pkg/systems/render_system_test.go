package systems

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/valentine/pkg/components"
	"github.com/decker502/valentine/pkg/ecs"
)

func newTestSprite(em *ecs.EntityManager, img *ebiten.Image, x, y float64, layer int) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, id, &components.SpriteComponent{Image: img, Layer: layer})
	return id
}

func TestSpriteDrawOrderByLayer(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewRenderSystem(em)
	img := ebiten.NewImage(4, 4)

	burst := newTestSprite(em, img, 0, 0, 30)
	rainA := newTestSprite(em, img, 0, 0, 10)
	mascot := newTestSprite(em, img, 0, 0, 20)
	rainB := newTestSprite(em, img, 0, 0, 10)

	got := system.SpriteDrawOrder()
	want := []ecs.EntityID{rainA, rainB, mascot, burst}
	if len(got) != len(want) {
		t.Fatalf("draw order = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("draw order = %v, want %v", got, want)
		}
	}
}

func TestSpriteDrawOrderSkipsHidden(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewRenderSystem(em)
	img := ebiten.NewImage(4, 4)

	visible := newTestSprite(em, img, 0, 0, 10)
	hidden := newTestSprite(em, img, 0, 0, 10)
	sprite, _ := ecs.GetComponent[*components.SpriteComponent](em, hidden)
	sprite.Hidden = true
	newTestSprite(em, nil, 0, 0, 10)

	got := system.SpriteDrawOrder()
	if len(got) != 1 || got[0] != visible {
		t.Errorf("draw order = %v, want only %d", got, visible)
	}
}

func TestSpriteGeoMCentersImage(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewRenderSystem(em)
	id := newTestSprite(em, ebiten.NewImage(20, 10), 100, 50, 0)

	geo, ok := system.SpriteGeoM(id)
	if !ok {
		t.Fatal("SpriteGeoM failed")
	}
	// 图像左上角 → (90, 45)，中心 → (100, 50)
	if x, y := geo.Apply(0, 0); x != 90 || y != 45 {
		t.Errorf("top-left maps to (%v,%v), want (90,45)", x, y)
	}
	if x, y := geo.Apply(10, 5); x != 100 || y != 50 {
		t.Errorf("center maps to (%v,%v), want (100,50)", x, y)
	}
}

func TestSpriteGeoMAppliesAnimation(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewRenderSystem(em)
	id := newTestSprite(em, ebiten.NewImage(20, 20), 100, 100, 0)
	sprite, _ := ecs.GetComponent[*components.SpriteComponent](em, id)
	sprite.Scale = 2
	ecs.AddComponent(em, id, &components.AnimationComponent{OffsetY: -40, Scale: 0.5})

	geo, _ := system.SpriteGeoM(id)
	if x, y := geo.Apply(10, 10); x != 100 || y != 60 {
		t.Errorf("center maps to (%v,%v), want (100,60)", x, y)
	}
	// 总缩放 2 × 1.5 = 3
	if x, _ := geo.Apply(0, 10); x != 70 {
		t.Errorf("left edge maps to x=%v, want 70", x)
	}
}

func TestRenderSystemDrawDoesNotPanic(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewRenderSystem(em)
	newTestSprite(em, ebiten.NewImage(8, 8), 10, 10, 0)
	newTestButton(em, 20, 20, nil)
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: 50, Y: 50})
	ecs.AddComponent(em, id, &components.LabelComponent{Text: "no font"})

	screen := ebiten.NewImage(200, 200)
	system.Draw(screen)
}
