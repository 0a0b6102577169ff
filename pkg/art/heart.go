// Package art 用 gg 光栅化页面上的矢量和像素画精灵
//
// 本包不依赖 ebiten，贺卡工具无需窗口即可渲染；场景用 ebiten.NewImageFromImage 包装结果
package art

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
)

// 心形路径（y 轴向下，尖端朝下），由一个起点和六段三次贝塞尔曲线组成
var (
	heartStart  = gg.Point{X: 5, Y: 5}
	heartCurves = [][3]gg.Point{
		{{X: 5, Y: 5}, {X: 4, Y: 0}, {X: 0, Y: 0}},
		{{X: -6, Y: 0}, {X: -6, Y: 7}, {X: -6, Y: 7}},
		{{X: -6, Y: 11}, {X: -3, Y: 15.4}, {X: 5, Y: 19}},
		{{X: 12, Y: 15.4}, {X: 16, Y: 11}, {X: 16, Y: 7}},
		{{X: 16, Y: 7}, {X: 16, Y: 0}, {X: 10, Y: 0}},
		{{X: 7, Y: 0}, {X: 5, Y: 5}, {X: 5, Y: 5}},
	}
)

// 路径包围盒
const (
	heartMinX = -6.0
	heartMaxX = 16.0
	heartMinY = 0.0
	heartMaxY = 19.0
)

// HeartAspect 心形的高宽比
const HeartAspect = (heartMaxY - heartMinY) / (heartMaxX - heartMinX)

// TraceHeart 把以 (cx, cy) 为中心、宽 width 的心形轮廓加入 dc 的当前路径
// 之后调用 dc.Fill 或 dc.Stroke
func TraceHeart(dc *gg.Context, cx, cy, width float64) {
	s := width / (heartMaxX - heartMinX)
	ox := cx - (heartMinX+heartMaxX)/2*s
	oy := cy - (heartMinY+heartMaxY)/2*s

	pt := func(p gg.Point) (float64, float64) {
		return ox + p.X*s, oy + p.Y*s
	}

	x, y := pt(heartStart)
	dc.MoveTo(x, y)
	for _, c := range heartCurves {
		x1, y1 := pt(c[0])
		x2, y2 := pt(c[1])
		x3, y3 := pt(c[2])
		dc.CubicTo(x1, y1, x2, y2, x3, y3)
	}
	dc.ClosePath()
}

// HeartImage 在边长 size 的正方形图片中绘制实心爱心
func HeartImage(size int, c color.Color) image.Image {
	if size < 1 {
		size = 1
	}
	dc := gg.NewContext(size, size)
	// 留 1px 边距，避免抗锯齿边缘被裁掉
	TraceHeart(dc, float64(size)/2, float64(size)/2, float64(size)-2)
	dc.SetColor(c)
	dc.Fill()
	return dc.Image()
}
