package entities

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/valentine/pkg/components"
	"github.com/decker502/valentine/pkg/config"
	"github.com/decker502/valentine/pkg/ecs"
)

// 绘制层级
const (
	LayerRain   = 10
	LayerMascot = 20
	LayerBurst  = 30
)

// RainHeartParams 一颗雨点爱心的随机参数
type RainHeartParams struct {
	Left     float64 // 水平位置百分比 [0,100)
	Delay    float64 // 秒
	Duration float64 // 秒
}

// BurstHeartParams 一颗爆裂爱心的参数
// 第 i 颗的角度固定为 2π·i/N，距离、延迟、时长随机
type BurstHeartParams struct {
	Angle    float64
	Distance float64
	DX, DY   float64
	Delay    float64
	Duration float64
}

// GenerateRainHearts 生成 rain.Count 颗雨点爱心的参数
// rng 为 nil 时使用全局随机源
func GenerateRainHearts(rng *rand.Rand, rain config.RainSpec) []RainHeartParams {
	hearts := make([]RainHeartParams, rain.Count)
	for i := range hearts {
		hearts[i] = RainHeartParams{
			Left:     rain.Left.Sample(rng),
			Delay:    rain.Delay.Sample(rng),
			Duration: rain.Duration.Sample(rng),
		}
	}
	return hearts
}

// GenerateBurstHearts 生成 burst.Count 颗爆裂爱心的参数
func GenerateBurstHearts(rng *rand.Rand, burst config.BurstSpec) []BurstHeartParams {
	hearts := make([]BurstHeartParams, burst.Count)
	for i := range hearts {
		angle := 2 * math.Pi / float64(burst.Count) * float64(i)
		distance := burst.Distance.Sample(rng)
		hearts[i] = BurstHeartParams{
			Angle:    angle,
			Distance: distance,
			DX:       distance * math.Cos(angle),
			DY:       distance * math.Sin(angle),
			Delay:    burst.Delay.Sample(rng),
			Duration: burst.Duration.Sample(rng),
		}
	}
	return hearts
}

// NewRainingHeartsEffect 为一次"Yes"特效创建雨点爱心实体
//
// 参数：
//   - em: 实体管理器
//   - effectID: 特效 ID（同一次点击的所有实体共享）
//   - hearts: GenerateRainHearts 的结果
//   - image: 爱心图像
//   - lifetime: 特效持续时间（秒），到期后由 LifetimeSystem 清理
//
// 返回：
//   - []ecs.EntityID: 创建的实体
//   - error: 参数无效时返回错误
func NewRainingHeartsEffect(em *ecs.EntityManager, effectID int, hearts []RainHeartParams, image *ebiten.Image, lifetime float64) ([]ecs.EntityID, error) {
	if em == nil {
		return nil, fmt.Errorf("entity manager cannot be nil")
	}
	if image == nil {
		return nil, fmt.Errorf("rain heart image cannot be nil")
	}

	ids := make([]ecs.EntityID, 0, len(hearts))
	for _, h := range hearts {
		id := em.CreateEntity()
		ecs.AddComponent(em, id, &components.PositionComponent{})
		// 延迟结束前不可见，位置由 HeartEffectSystem 按视口计算
		ecs.AddComponent(em, id, &components.SpriteComponent{
			Image:  image,
			Hidden: true,
			Layer:  LayerRain,
		})
		ecs.AddComponent(em, id, &components.RainHeartComponent{
			Left:     h.Left,
			Delay:    h.Delay,
			Duration: h.Duration,
		})
		ecs.AddComponent(em, id, &components.EffectComponent{ID: effectID})
		ecs.AddComponent(em, id, &components.LifetimeComponent{MaxLifetime: lifetime})
		ids = append(ids, id)
	}
	return ids, nil
}

// NewBurstHeartsEffect 为一次"Yes"特效创建从 (originX, originY) 飞散的爱心实体
func NewBurstHeartsEffect(em *ecs.EntityManager, effectID int, originX, originY float64, hearts []BurstHeartParams, image *ebiten.Image, lifetime float64) ([]ecs.EntityID, error) {
	if em == nil {
		return nil, fmt.Errorf("entity manager cannot be nil")
	}
	if image == nil {
		return nil, fmt.Errorf("burst heart image cannot be nil")
	}

	ids := make([]ecs.EntityID, 0, len(hearts))
	for _, h := range hearts {
		id := em.CreateEntity()
		ecs.AddComponent(em, id, &components.PositionComponent{X: originX, Y: originY})
		ecs.AddComponent(em, id, &components.SpriteComponent{
			Image:  image,
			Hidden: true,
			Layer:  LayerBurst,
		})
		ecs.AddComponent(em, id, &components.BurstHeartComponent{
			OriginX:  originX,
			OriginY:  originY,
			DX:       h.DX,
			DY:       h.DY,
			Delay:    h.Delay,
			Duration: h.Duration,
		})
		ecs.AddComponent(em, id, &components.EffectComponent{ID: effectID})
		ecs.AddComponent(em, id, &components.LifetimeComponent{MaxLifetime: lifetime})
		ids = append(ids, id)
	}
	return ids, nil
}

// ClearHeartEffects 标记所有特效实体待删除，返回标记数量
func ClearHeartEffects(em *ecs.EntityManager) int {
	ids := ecs.GetEntitiesWith1[*components.EffectComponent](em)
	for _, id := range ids {
		em.DestroyEntity(id)
	}
	return len(ids)
}

// ActiveEffectIDs 返回仍存在实体的特效 ID（按创建顺序）
func ActiveEffectIDs(em *ecs.EntityManager) []int {
	seen := make(map[int]bool)
	var out []int
	for _, id := range ecs.GetEntitiesWith1[*components.EffectComponent](em) {
		eff, _ := ecs.GetComponent[*components.EffectComponent](em, id)
		if !seen[eff.ID] {
			seen[eff.ID] = true
			out = append(out, eff.ID)
		}
	}
	return out
}
