//go:build !mobile

package utils

import "os"

// EmulateMobileEnv 设为 "1" 时桌面端按移动端处理（本地调试触摸布局）
const EmulateMobileEnv = "VALENTINE_MOBILE_EMULATE"

// IsMobile 检测当前是否在移动设备上运行
// 桌面端编译时返回 false，除非设置了 VALENTINE_MOBILE_EMULATE=1
func IsMobile() bool {
	return os.Getenv(EmulateMobileEnv) == "1"
}
