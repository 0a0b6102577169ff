package scenes

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/valentine/pkg/config"
	"github.com/decker502/valentine/pkg/ecs"
	"github.com/decker502/valentine/pkg/frame"
	"github.com/decker502/valentine/pkg/game"
	"github.com/decker502/valentine/pkg/input"
	"github.com/decker502/valentine/pkg/systems"
	"github.com/decker502/valentine/pkg/trail"
)

// ValentineSceneOptions 场景构造参数
type ValentineSceneOptions struct {
	// Config 页面配置，nil 时使用默认配置
	Config *config.ValentineConfig
	// TrailEnabled 是否显示光标爱心拖尾
	TrailEnabled bool
	// TouchCapable 运行在触摸设备上：紧凑布局下领头爱心在第一次触摸前隐藏，鼠标光标被忽略
	TouchCapable bool
	// Seed 随机种子，0 表示使用当前时间
	Seed int64
}

// ValentineScene 情人节贺卡页面
//
// 页面由两部分组成：
//   - ECS 实体：标题、吉祥物、Yes/No 按钮、雨点和爆裂爱心
//   - 爱心拖尾：trail.Animator，通过 input.Hub 接收指针事件，由 frame.Scheduler 驱动逐帧更新
//
// 视口尺寸变化时 SceneManager 调用 Resize：重新计算布局，并按新的布局模式重新挂载拖尾
type ValentineScene struct {
	resourceManager *game.ResourceManager
	cfg             *config.ValentineConfig
	tuning          *config.Tuning
	rng             *rand.Rand

	entityManager     *ecs.EntityManager
	lifetimeSystem    *systems.LifetimeSystem
	heartEffectSystem *systems.HeartEffectSystem
	animationSystem   *systems.AnimationSystem
	buttonSystem      *systems.ButtonSystem
	renderSystem      *systems.RenderSystem

	layout    config.PageLayout
	hasLayout bool
	page      pageEntities

	// 爱心拖尾
	input         *input.Hub
	scheduler     *frame.Scheduler
	animator      *trail.Animator
	trailRenderer *TrailRenderer
	trailEnabled  bool
	touchCapable  bool

	// clock 场景时钟，累加每帧的 deltaTime；输入事件和帧回调都使用它作为时间戳
	clock time.Duration

	// nextEffectID 每次"Yes"分配一个新的特效 ID
	nextEffectID int
}

// NewValentineScene 创建贺卡页面场景
// 页面实体在第一次 Resize 时才创建，因为布局依赖视口尺寸
func NewValentineScene(rm *game.ResourceManager, opts ValentineSceneOptions) (*ValentineScene, error) {
	if rm == nil {
		return nil, fmt.Errorf("resource manager cannot be nil")
	}

	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultValentineConfig()
	}
	tuning, err := cfg.Resolve()
	if err != nil {
		return nil, fmt.Errorf("invalid valentine config: %w", err)
	}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	em := ecs.NewEntityManager()
	s := &ValentineScene{
		resourceManager:   rm,
		cfg:               cfg,
		tuning:            tuning,
		rng:               rand.New(rand.NewSource(seed)),
		entityManager:     em,
		lifetimeSystem:    systems.NewLifetimeSystem(em),
		heartEffectSystem: systems.NewHeartEffectSystem(em, 0, 0),
		animationSystem:   systems.NewAnimationSystem(em),
		buttonSystem:      systems.NewButtonSystem(em),
		renderSystem:      systems.NewRenderSystem(em),
		input:             input.NewHub(!opts.TouchCapable),
		scheduler:         frame.NewScheduler(),
		trailEnabled:      opts.TrailEnabled,
		touchCapable:      opts.TouchCapable,
	}

	log.Printf("[Valentine] Scene created (trail=%v, touch=%v)", s.trailEnabled, s.touchCapable)
	return s, nil
}

// Update 每帧调用：读取输入，推进拖尾帧回调和所有系统
func (s *ValentineScene) Update(deltaTime float64) {
	s.clock += time.Duration(deltaTime * float64(time.Second))

	s.input.Poll(s.clock)
	s.buttonSystem.Update(deltaTime)
	s.advance(deltaTime)
}

// advance 推进一帧（不读取输入）
func (s *ValentineScene) advance(deltaTime float64) {
	s.scheduler.RunFrame(s.clock)

	s.animationSystem.Update(deltaTime)
	s.heartEffectSystem.Update(deltaTime)
	if n := s.lifetimeSystem.Update(deltaTime); n > 0 {
		log.Printf("[Valentine] %d heart(s) expired", n)
	}
	s.entityManager.RemoveMarkedEntities()
}

// Draw 绘制背景、页面实体，最后绘制拖尾
func (s *ValentineScene) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	s.renderSystem.Draw(screen)
	if s.trailRenderer != nil {
		s.trailRenderer.Draw(screen)
	}
}

// Resize 实现 game.Resizable
func (s *ValentineScene) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}

	prevCompact := s.layout.Compact
	hadLayout := s.hasLayout

	s.layout = config.ComputePageLayout(s.cfg.Layout, width, height)
	s.hasLayout = true
	s.heartEffectSystem.SetViewport(width, height)

	if err := s.layoutPage(); err != nil {
		log.Printf("[Valentine] Warning: failed to lay out page: %v", err)
	}

	if hadLayout && prevCompact != s.layout.Compact {
		log.Printf("[Valentine] Layout mode changed: compact=%v", s.layout.Compact)
	}
	s.remountTrail()
}

// Dispose 实现 game.Disposable：卸载拖尾，清空实体
func (s *ValentineScene) Dispose() {
	s.unmountTrail()
	for _, id := range s.entityManager.GetEntitiesWith() {
		s.entityManager.DestroyEntity(id)
	}
	s.entityManager.RemoveMarkedEntities()
	s.page = pageEntities{}
	log.Printf("[Valentine] Scene disposed")
}

// Layout 返回当前页面布局
func (s *ValentineScene) Layout() (config.PageLayout, bool) {
	return s.layout, s.hasLayout
}

// EntityManager 返回场景的实体管理器（调试和测试使用）
func (s *ValentineScene) EntityManager() *ecs.EntityManager {
	return s.entityManager
}
