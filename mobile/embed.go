//go:build mobile

// embed.go - 移动端资源嵌入声明
//
// 此文件仅在使用 -tags mobile 构建时编译。
// mobile/data/valentine.yaml 是 data/valentine.yaml 的副本，修改页面配置后需要同步：
//
//	cp data/valentine.yaml mobile/data/
//	go build -tags mobile ./mobile
package mobile

import "embed"

//go:embed data/valentine.yaml
var dataFS embed.FS
