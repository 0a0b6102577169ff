package systems

import (
	"math"

	"github.com/decker502/valentine/pkg/components"
	"github.com/decker502/valentine/pkg/ecs"
	"github.com/decker502/valentine/pkg/utils"
)

// 爆裂爱心结束时的缩放比例
const burstEndScale = 0.5

// HeartEffectSystem 驱动"Yes"特效中的雨点爱心和爆裂爱心
//
// 职责：
//   - 雨点爱心：延迟结束后从顶部上方匀速落到底部下方，循环直到特效过期
//   - 爆裂爱心：延迟结束后从吉祥物中心飞向 (DX, DY)，同时淡出缩小，只播放一次
//
// 实体的删除由 LifetimeSystem 负责
type HeartEffectSystem struct {
	entityManager *ecs.EntityManager
	width         float64
	height        float64
}

// NewHeartEffectSystem 创建爱心特效系统
func NewHeartEffectSystem(em *ecs.EntityManager, width, height int) *HeartEffectSystem {
	s := &HeartEffectSystem{entityManager: em}
	s.SetViewport(width, height)
	return s
}

// SetViewport 更新视口尺寸，雨点爱心按视口宽度百分比定位
func (s *HeartEffectSystem) SetViewport(width, height int) {
	s.width = float64(width)
	s.height = float64(height)
}

// Update 推进所有爱心 deltaTime 秒
func (s *HeartEffectSystem) Update(deltaTime float64) {
	s.updateRain(deltaTime)
	s.updateBurst(deltaTime)
}

func (s *HeartEffectSystem) updateRain(dt float64) {
	ids := ecs.GetEntitiesWith3[*components.RainHeartComponent, *components.PositionComponent, *components.SpriteComponent](s.entityManager)
	for _, id := range ids {
		rain, _ := ecs.GetComponent[*components.RainHeartComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		sprite, _ := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)

		rain.Elapsed += dt
		active := rain.Elapsed - rain.Delay
		if active < 0 || rain.Duration <= 0 {
			sprite.Hidden = true
			continue
		}

		// 整段下落距离包含上下各一个爱心高度，保证进出画面时完全不可见
		size := spriteHeight(sprite)
		progress := math.Mod(active, rain.Duration) / rain.Duration
		pos.X = rain.Left / 100 * s.width
		pos.Y = utils.Lerp(-size, s.height+size, progress)
		sprite.Hidden = false
	}
}

func (s *HeartEffectSystem) updateBurst(dt float64) {
	ids := ecs.GetEntitiesWith3[*components.BurstHeartComponent, *components.PositionComponent, *components.SpriteComponent](s.entityManager)
	for _, id := range ids {
		burst, _ := ecs.GetComponent[*components.BurstHeartComponent](s.entityManager, id)
		if burst.Done {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		sprite, _ := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)

		burst.Elapsed += dt
		active := burst.Elapsed - burst.Delay
		if active < 0 {
			sprite.Hidden = true
			continue
		}

		progress := 1.0
		if burst.Duration > 0 {
			progress = active / burst.Duration
		}
		if progress >= 1 {
			burst.Done = true
			sprite.Hidden = true
			pos.X = burst.OriginX + burst.DX
			pos.Y = burst.OriginY + burst.DY
			continue
		}

		travel := utils.EaseOutCubic(progress)
		pos.X = burst.OriginX + burst.DX*travel
		pos.Y = burst.OriginY + burst.DY*travel
		sprite.Alpha = 1 - utils.EaseInQuad(progress)
		sprite.Scale = utils.Lerp(1, burstEndScale, progress)
		sprite.Hidden = false
	}
}

func spriteHeight(sprite *components.SpriteComponent) float64 {
	if sprite.Image == nil {
		return 0
	}
	scale := sprite.Scale
	if scale == 0 {
		scale = 1
	}
	return float64(sprite.Image.Bounds().Dy()) * scale
}
