package scenes

import (
	"log"

	"github.com/decker502/valentine/pkg/config"
	"github.com/decker502/valentine/pkg/trail"
)

// SetTrailEnabled 打开或关闭光标爱心拖尾
func (s *ValentineScene) SetTrailEnabled(enabled bool) {
	if s.trailEnabled == enabled {
		return
	}
	s.trailEnabled = enabled
	s.remountTrail()
}

// TrailEnabled 报告拖尾是否打开
func (s *ValentineScene) TrailEnabled() bool {
	return s.trailEnabled
}

// Animator 返回当前挂载的拖尾动画器，未挂载时返回 nil
func (s *ValentineScene) Animator() *trail.Animator {
	if s.animator == nil || !s.animator.Running() {
		return nil
	}
	return s.animator
}

// trailConfig 按布局模式生成拖尾配置
//
//   - 紧凑布局：坐标相对整个视口，响应触摸；触摸设备上领头爱心在第一次触摸前隐藏
//   - 桌面布局：坐标相对内容容器，领头爱心初始可见；非触摸设备只响应鼠标，触摸设备同时响应触摸
func (s *ValentineScene) trailConfig() trail.Config {
	cfg := trail.Config{
		VelocityThreshold: s.cfg.Trail.VelocityThreshold,
		Gravity:           s.cfg.Trail.Gravity,
		ExitMargin:        s.cfg.Trail.ExitMargin,
	}
	if s.layout.Compact {
		cfg.Transform = trail.ViewportTransform{}
		cfg.Touch = true
		cfg.StartHidden = s.touchCapable
	} else {
		origin := s.layout.Container.Min
		cfg.Transform = trail.ContainerTransform{Origin: trail.Vec2{X: float64(origin.X), Y: float64(origin.Y)}}
		cfg.Touch = s.touchCapable
	}
	return cfg
}

// trailSurface 按布局模式生成拖尾挂载的表面
func (s *ValentineScene) trailSurface(r trail.Renderer) trail.Surface {
	if s.layout.Compact {
		return trail.Surface{
			Input:     s.input,
			Scheduler: s.scheduler,
			Renderer:  r,
			Width:     float64(s.layout.Width),
			Height:    float64(s.layout.Height),
		}
	}
	c := s.layout.Container
	return trail.Surface{
		Input:     s.input.Within(c),
		Scheduler: s.scheduler,
		Renderer:  r,
		Width:     float64(c.Dx()),
		Height:    float64(c.Dy()),
	}
}

// remountTrail 卸载当前拖尾，并在拖尾打开且布局已知时按当前布局重新挂载
// 布局模式或尺寸变化后都要重新挂载，使渲染表面和新的边界一致
func (s *ValentineScene) remountTrail() {
	s.unmountTrail()
	if !s.trailEnabled || !s.hasLayout {
		return
	}

	leader := s.resourceManager.HeartImage(int(s.cfg.Trail.LeaderSize), config.LeaderHeartColor)
	particle := s.resourceManager.HeartImage(int(s.cfg.Trail.ParticleSize), config.HeartColor)
	renderer := NewTrailRenderer(leader, particle)

	animator := trail.New(s.trailConfig())
	if err := animator.Start(s.trailSurface(renderer)); err != nil {
		log.Printf("[Valentine] Warning: failed to start trail: %v", err)
		return
	}
	s.animator = animator
	s.trailRenderer = renderer
}

func (s *ValentineScene) unmountTrail() {
	if s.animator != nil {
		s.animator.Stop()
		s.animator = nil
	}
	s.trailRenderer = nil
}
