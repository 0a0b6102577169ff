package scenes

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/valentine/pkg/trail"
)

// TrailRenderer 在 ebiten 画面上绘制爱心拖尾
// 动画器每帧通过 Render 交给它一份快照，场景在 Draw 中绘制最近一次的快照
type TrailRenderer struct {
	leader   *ebiten.Image
	particle *ebiten.Image

	frame    trail.Frame
	hasFrame bool
	disposed bool
}

// NewTrailRenderer 创建拖尾渲染器，领头爱心和粒子爱心可以使用不同的图像
func NewTrailRenderer(leader, particle *ebiten.Image) *TrailRenderer {
	return &TrailRenderer{leader: leader, particle: particle}
}

// Render 实现 trail.Renderer
func (r *TrailRenderer) Render(f trail.Frame) {
	if r.disposed {
		return
	}
	r.frame = f
	r.hasFrame = true
}

// Dispose 实现 trail.Renderer：丢弃快照，之后的 Render 被忽略
// 图像由 ResourceManager 缓存共享，这里不释放
func (r *TrailRenderer) Dispose() {
	r.disposed = true
	r.hasFrame = false
	r.frame = trail.Frame{}
}

// Disposed 报告渲染器是否已被释放
func (r *TrailRenderer) Disposed() bool {
	return r.disposed
}

// Frame 返回最近一次收到的快照
func (r *TrailRenderer) Frame() (trail.Frame, bool) {
	return r.frame, r.hasFrame
}

// Draw 把最近一次的快照画到 screen 上：先画下落的粒子，再画领头爱心
func (r *TrailRenderer) Draw(screen *ebiten.Image) {
	if !r.hasFrame {
		return
	}
	for _, p := range r.frame.Particles {
		drawCentered(screen, r.particle, r.frame.ScreenPos(p.Pos))
	}
	if r.frame.Leader.Visible {
		drawCentered(screen, r.leader, r.frame.ScreenPos(r.frame.Leader.Pos))
	}
}

func drawCentered(screen, img *ebiten.Image, at trail.Vec2) {
	if img == nil {
		return
	}
	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(at.X-float64(b.Dx())/2, at.Y-float64(b.Dy())/2)
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(img, op)
}
