package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a page scene.
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	// screen is the target image where the scene should be drawn.
	Draw(screen *ebiten.Image)
}

// Resizable 是一个可选接口，场景实现后会在视口尺寸变化时收到通知
type Resizable interface {
	// Resize 在视口尺寸变化后调用（包括第一次得知尺寸）
	Resize(width, height int)
}

// Disposable 是一个可选接口，场景在被切换掉或程序退出时释放资源
//
// 实现此接口的场景会在以下时机被调用 Dispose()：
//   - SceneManager 切换到另一个场景
//   - 游戏窗口关闭
type Disposable interface {
	Dispose()
}
