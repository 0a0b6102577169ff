// Package app 提供贺卡应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/valentine/pkg/config"
	"github.com/decker502/valentine/pkg/embedded"
	"github.com/decker502/valentine/pkg/game"
	"github.com/decker502/valentine/pkg/scenes"
	"github.com/decker502/valentine/pkg/utils"
)

// StorageName gdata 存储使用的应用名
const StorageName = "valentine"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 外部页面配置文件，为空则使用嵌入的 data/valentine.yaml
	ConfigPath string
	// Fullscreen 以全屏启动（覆盖已保存的设置）
	Fullscreen bool
}

// App 是贺卡应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager             *game.SceneManager
	scene                    *scenes.ValentineScene
	settings                 *game.SettingsManager
	verbose                  bool
	outsideWidth             int
	outsideHeight            int
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化贺卡应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	// 设置存储不可用时进入降级模式（仅内存设置）
	storage, err := game.OpenStorage(StorageName)
	if err != nil {
		log.Printf("[App] Warning: %v (settings will not persist)", err)
	}
	settings := game.NewSettingsManager(storage)

	a, err := newApp(cfg, settings)
	if err != nil {
		return nil, err
	}

	if cfg.Fullscreen || settings.GetSettings().Fullscreen {
		ebiten.SetFullscreen(true)
	}
	return a, nil
}

// newApp 组装场景，不触碰窗口和存储
func newApp(cfg Config, settings *game.SettingsManager) (*App, error) {
	pageConfig := loadPageConfig(cfg.ConfigPath)

	scene, err := scenes.NewValentineScene(game.NewResourceManager(), scenes.ValentineSceneOptions{
		Config:       pageConfig,
		TrailEnabled: settings.GetSettings().TrailEnabled,
		TouchCapable: utils.IsMobile(),
	})
	if err != nil {
		return nil, fmt.Errorf("页面场景创建失败: %w", err)
	}

	sceneManager := game.NewSceneManager()
	sceneManager.SwitchTo(scene)
	log.Printf("[App] Valentine scene ready")

	return &App{
		sceneManager: sceneManager,
		scene:        scene,
		settings:     settings,
		verbose:      cfg.Verbose,
	}, nil
}

// loadPageConfig 加载页面配置
// 优先使用外部文件，其次是嵌入的 data/valentine.yaml；都失败时回退到默认值
func loadPageConfig(path string) *config.ValentineConfig {
	if path != "" {
		cfg, err := config.LoadValentineConfig(path)
		if err == nil {
			log.Printf("[Config] Loaded page config: %s", path)
			return cfg
		}
		log.Printf("[Config] Warning: %v (falling back to embedded config)", err)
	}

	data, err := embedded.ReadFile(config.DefaultConfigPath)
	if err != nil {
		log.Printf("[Config] Warning: embedded config unavailable: %v (using defaults)", err)
		return config.DefaultValentineConfig()
	}
	cfg, err := config.ParseValentineConfig(data)
	if err != nil {
		log.Printf("[Config] Warning: embedded config invalid: %v (using defaults)", err)
		return config.DefaultValentineConfig()
	}
	log.Printf("[Config] Loaded page config: %s", config.DefaultConfigPath)
	return cfg
}

// Update 更新页面逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.DefaultWindowWidth, config.DefaultWindowHeight)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", config.DefaultWindowWidth, config.DefaultWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}
	// T 切换爱心拖尾
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		a.toggleTrail()
	}

	a.step(1.0 / config.TickRate)
	return nil
}

// step 把最近一次 Layout 的尺寸交给场景，然后推进一帧
func (a *App) step(deltaTime float64) {
	if a.outsideWidth > 0 && a.outsideHeight > 0 {
		a.sceneManager.Resize(a.outsideWidth, a.outsideHeight)
	}
	a.sceneManager.Update(deltaTime)
}

func (a *App) toggleFullscreen() {
	if ebiten.IsFullscreen() {
		// 退出全屏
		ebiten.SetFullscreen(false)
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
		log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		a.settings.SetFullscreen(false)
	} else {
		ebiten.SetFullscreen(true)
		a.settings.SetFullscreen(true)
	}
	a.saveSettings()
}

func (a *App) toggleTrail() {
	enabled := !a.scene.TrailEnabled()
	a.scene.SetTrailEnabled(enabled)
	a.settings.SetTrailEnabled(enabled)
	a.saveSettings()
	log.Printf("[App] Trail enabled: %v", enabled)
}

func (a *App) saveSettings() {
	if err := a.settings.Save(); err != nil {
		log.Printf("[App] Warning: failed to save settings: %v", err)
	}
}

// Draw 绘制页面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 逻辑尺寸等于窗口尺寸，页面布局按实际视口计算
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	a.outsideWidth, a.outsideHeight = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

// GetSceneManager 返回场景管理器
// 用于在窗口关闭时释放场景
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
