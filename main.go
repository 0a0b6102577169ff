// Command valentine 显示一张像素风情人节贺卡：标题、吉祥物、Yes/No 按钮，
// 以及跟随光标的爱心拖尾。
//
// 用法：
//
//	valentine [--verbose] [--config page.yaml] [--fullscreen]
//
// 快捷键：F11 切换全屏，T 切换爱心拖尾。
package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/valentine/pkg/app"
	"github.com/decker502/valentine/pkg/config"
	"github.com/decker502/valentine/pkg/embedded"
)

func main() {
	verbose := flag.Bool("verbose", false, "启用详细日志输出")
	configPath := flag.String("config", "", "外部页面配置文件（默认使用嵌入的 data/valentine.yaml）")
	fullscreen := flag.Bool("fullscreen", false, "以全屏启动")
	flag.Parse()

	embedded.Init(dataFS)

	ebiten.SetWindowSize(config.DefaultWindowWidth, config.DefaultWindowHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSizeLimits(config.MinWindowWidth, config.MinWindowHeight, -1, -1)

	gameApp, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		ConfigPath: *configPath,
		Fullscreen: *fullscreen,
	})
	if err != nil {
		log.Fatalf("贺卡初始化失败: %v", err)
	}
	defer gameApp.GetSceneManager().Close()

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}
}
