package systems

import (
	"fmt"
	"math"

	"github.com/decker502/valentine/internal/keyframe"
	"github.com/decker502/valentine/pkg/components"
	"github.com/decker502/valentine/pkg/ecs"
)

// AnimationSystem 推进所有实体的关键帧动画轨道
// 每帧把正在播放的轨道的值按属性叠加到 AnimationComponent 的 OffsetX/OffsetY/Scale
type AnimationSystem struct {
	entityManager *ecs.EntityManager
}

// NewAnimationSystem 创建一个新的动画系统
func NewAnimationSystem(em *ecs.EntityManager) *AnimationSystem {
	return &AnimationSystem{
		entityManager: em,
	}
}

// Update 推进所有轨道 deltaTime 秒并重新计算叠加值
func (s *AnimationSystem) Update(deltaTime float64) {
	for _, id := range ecs.GetEntitiesWith1[*components.AnimationComponent](s.entityManager) {
		anim, _ := ecs.GetComponent[*components.AnimationComponent](s.entityManager, id)

		anim.OffsetX, anim.OffsetY, anim.Scale = 0, 0, 0
		for _, track := range anim.Tracks {
			if !track.Playing {
				continue
			}
			advanceTrack(track, deltaTime)
			if !track.Playing {
				continue
			}

			v := keyframe.EvaluateKeyframes(track.Keyframes, track.Elapsed/track.Duration, track.Interpolation)
			switch track.Target {
			case components.AnimOffsetX:
				anim.OffsetX += v
			case components.AnimOffsetY:
				anim.OffsetY += v
			case components.AnimScale:
				anim.Scale += v
			}
		}
	}
}

// advanceTrack 非循环轨道到达终点后停止并回到起点
func advanceTrack(track *components.AnimationTrack, dt float64) {
	if track.Duration <= 0 {
		track.Playing = false
		return
	}
	track.Elapsed += dt
	if track.Elapsed < track.Duration {
		return
	}
	if track.Loop {
		track.Elapsed = math.Mod(track.Elapsed, track.Duration)
		return
	}
	track.Elapsed = 0
	track.Playing = false
}

// PlayAnimation 从头播放实体的指定轨道
//
// 参数：
//   - entityID: 实体 ID
//   - track: 轨道名称（如 "shake"）
//
// 返回：
//   - error: 如果实体没有 AnimationComponent 或没有该轨道，返回错误
func (s *AnimationSystem) PlayAnimation(entityID ecs.EntityID, track string) error {
	tr, err := s.track(entityID, track)
	if err != nil {
		return err
	}
	tr.Elapsed = 0
	tr.Playing = true
	return nil
}

// StopAnimation 停止指定轨道，下一帧不再叠加其值
func (s *AnimationSystem) StopAnimation(entityID ecs.EntityID, track string) error {
	tr, err := s.track(entityID, track)
	if err != nil {
		return err
	}
	tr.Elapsed = 0
	tr.Playing = false
	return nil
}

// IsPlaying 报告指定轨道是否正在播放，轨道不存在时返回 false
func (s *AnimationSystem) IsPlaying(entityID ecs.EntityID, track string) bool {
	tr, err := s.track(entityID, track)
	return err == nil && tr.Playing
}

func (s *AnimationSystem) track(entityID ecs.EntityID, name string) (*components.AnimationTrack, error) {
	anim, ok := ecs.GetComponent[*components.AnimationComponent](s.entityManager, entityID)
	if !ok {
		return nil, fmt.Errorf("entity %d does not have AnimationComponent", entityID)
	}
	tr, ok := anim.Tracks[name]
	if !ok || tr == nil {
		return nil, fmt.Errorf("entity %d has no animation track %q", entityID, name)
	}
	return tr, nil
}
