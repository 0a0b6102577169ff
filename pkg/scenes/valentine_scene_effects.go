package scenes

import (
	"log"

	"github.com/decker502/valentine/pkg/config"
	"github.com/decker502/valentine/pkg/entities"
)

// onYesClicked 新建一次特效：整屏雨点爱心 + 从吉祥物中心飞散的爱心，吉祥物额外跳一下
// 每次点击的特效互相独立，各自在 EffectLifetime 秒后由 LifetimeSystem 清理
func (s *ValentineScene) onYesClicked() {
	s.nextEffectID++
	effectID := s.nextEffectID
	lifetime := s.cfg.EffectLifetime

	rain := entities.GenerateRainHearts(s.rng, s.tuning.Rain)
	rainImage := s.resourceManager.HeartImage(int(s.tuning.Rain.Size), config.HeartColor)
	if _, err := entities.NewRainingHeartsEffect(s.entityManager, effectID, rain, rainImage, lifetime); err != nil {
		log.Printf("[Valentine] Warning: failed to create rain hearts: %v", err)
	}

	burst := entities.GenerateBurstHearts(s.rng, s.tuning.Burst)
	burstImage := s.resourceManager.HeartImage(int(s.tuning.Burst.Size), config.HeartColor)
	if _, err := entities.NewBurstHeartsEffect(s.entityManager, effectID, s.layout.MascotX, s.layout.MascotY, burst, burstImage, lifetime); err != nil {
		log.Printf("[Valentine] Warning: failed to create burst hearts: %v", err)
	}

	if err := s.animationSystem.PlayAnimation(s.page.mascot, entities.TrackJump); err != nil {
		log.Printf("[Valentine] Warning: %v", err)
	}

	log.Printf("[Valentine] Yes #%d: %d rain + %d burst hearts for %.1fs",
		effectID, len(rain), len(burst), lifetime)
}

// onNoClicked 抖动期间再次点击被忽略；否则开始抖动并立即清除所有爱心特效
func (s *ValentineScene) onNoClicked() {
	if s.animationSystem.IsPlaying(s.page.no, entities.TrackShake) {
		return
	}
	if err := s.animationSystem.PlayAnimation(s.page.no, entities.TrackShake); err != nil {
		log.Printf("[Valentine] Warning: %v", err)
	}

	n := entities.ClearHeartEffects(s.entityManager)
	log.Printf("[Valentine] No: cleared %d heart(s)", n)
}
