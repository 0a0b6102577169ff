// Command valentine_card 把贺卡页面渲染成一张静态 PNG，方便分享。
//
// 用法：
//
//	go run ./cmd/valentine_card -o card.png -width 800 -height 600 [-config page.yaml] [-copy]
//
// -copy 会把卡片上的问候语复制到剪贴板。
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/atotto/clipboard"

	"github.com/decker502/valentine/pkg/card"
	"github.com/decker502/valentine/pkg/config"
)

func main() {
	output := flag.String("o", "card.png", "输出 PNG 文件")
	width := flag.Int("width", card.DefaultWidth, "卡片宽度")
	height := flag.Int("height", card.DefaultHeight, "卡片高度")
	configPath := flag.String("config", "", "页面配置文件（默认使用内置配置）")
	copyText := flag.Bool("copy", false, "把问候语复制到剪贴板")
	flag.Parse()

	cfg := config.DefaultValentineConfig()
	if *configPath != "" {
		loaded, err := config.LoadValentineConfig(*configPath)
		if err != nil {
			log.Fatalf("配置加载失败: %v", err)
		}
		cfg = loaded
	}

	img, err := card.Render(cfg, card.Options{Width: *width, Height: *height})
	if err != nil {
		log.Fatalf("渲染失败: %v", err)
	}
	if err := card.SavePNG(*output, img); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("卡片已保存: %s (%dx%d)\n", *output, *width, *height)

	if *copyText {
		if err := clipboard.WriteAll(card.Greeting(cfg)); err != nil {
			log.Printf("Warning: failed to copy greeting: %v", err)
			return
		}
		fmt.Println("问候语已复制到剪贴板")
	}
}
