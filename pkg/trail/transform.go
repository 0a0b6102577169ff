package trail

import "math"

// CoordinateTransform 在宿主原始坐标（左上角原点，y 向下）和表面的中心原点坐标之间换算
type CoordinateTransform interface {
	ToCenter(raw Vec2, width, height float64) Vec2
	ToScreen(p Vec2, width, height float64) Vec2
}

// ViewportTransform 相对整个窗口的输入：
//
//	x' = x - w/2
//	y' = h/2 - y
type ViewportTransform struct{}

// ToCenter 实现 CoordinateTransform
func (ViewportTransform) ToCenter(raw Vec2, width, height float64) Vec2 {
	return Vec2{X: raw.X - width/2, Y: height/2 - raw.Y}
}

// ToScreen 实现 CoordinateTransform
func (ViewportTransform) ToScreen(p Vec2, width, height float64) Vec2 {
	return Vec2{X: p.X + width/2, Y: height/2 - p.Y}
}

// ContainerTransform 相对内容容器的输入，Origin 为容器左上角的窗口坐标
type ContainerTransform struct {
	Origin Vec2
}

// ToCenter 实现 CoordinateTransform
func (c ContainerTransform) ToCenter(raw Vec2, width, height float64) Vec2 {
	return Vec2{
		X: raw.X - c.Origin.X - width/2,
		Y: height/2 - (raw.Y - c.Origin.Y),
	}
}

// ToScreen 实现 CoordinateTransform
func (c ContainerTransform) ToScreen(p Vec2, width, height float64) Vec2 {
	return Vec2{
		X: p.X + width/2 + c.Origin.X,
		Y: height/2 - p.Y + c.Origin.Y,
	}
}

func hypot(x, y float64) float64 {
	return math.Hypot(x, y)
}
