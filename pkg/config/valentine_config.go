package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/decker502/valentine/internal/keyframe"
)

// ValentineConfig data/valentine.yaml 的顶层结构
// 所有字段都有默认值，YAML 中只需写出要覆盖的部分
type ValentineConfig struct {
	// Text 页面文案
	Text TextConfig `yaml:"text"`

	// Trail 光标爱心拖尾参数
	Trail TrailConfig `yaml:"trail"`

	// Rain 雨点爱心参数
	Rain RainConfig `yaml:"rain"`

	// Burst 爆裂爱心参数
	Burst BurstConfig `yaml:"burst"`

	// EffectLifetime 一次"Yes"特效的持续时间（秒）
	EffectLifetime float64 `yaml:"effect_lifetime"`

	// Animations 关键帧动画（CSS @keyframes 等价物）
	Animations AnimationsConfig `yaml:"animations"`

	// Layout 布局参数
	Layout LayoutConfig `yaml:"layout"`
}

// TextConfig 页面文案
type TextConfig struct {
	Title    string `yaml:"title"`
	Subtitle string `yaml:"subtitle"`
	Yes      string `yaml:"yes"`
	No       string `yaml:"no"`
}

// TrailConfig 拖尾物理参数
type TrailConfig struct {
	// VelocityThreshold 生成粒子的速度阈值（单位/秒）
	VelocityThreshold float64 `yaml:"velocity_threshold"`
	// Gravity 重力加速度（单位/秒²）
	Gravity float64 `yaml:"gravity"`
	// ExitMargin 粒子越过底边多少像素后移除
	ExitMargin float64 `yaml:"exit_margin"`
	// LeaderSize/ParticleSize 爱心精灵边长（像素）
	LeaderSize   float64 `yaml:"leader_size"`
	ParticleSize float64 `yaml:"particle_size"`
}

// RainConfig 雨点爱心，范围字段使用 "[min max]" 格式
type RainConfig struct {
	Count    int     `yaml:"count"`
	Left     string  `yaml:"left"`     // 水平位置百分比
	Delay    string  `yaml:"delay"`    // 秒
	Duration string  `yaml:"duration"` // 秒
	Size     float64 `yaml:"size"`
}

// BurstConfig 爆裂爱心，范围字段使用 "[min max]" 格式
type BurstConfig struct {
	Count    int     `yaml:"count"`
	Distance string  `yaml:"distance"` // 像素
	Delay    string  `yaml:"delay"`    // 秒
	Duration string  `yaml:"duration"` // 秒
	Size     float64 `yaml:"size"`
}

// CurveConfig 一条关键帧曲线
type CurveConfig struct {
	// Keyframes "value,timePercent" 列表，可带插值关键字前缀
	Keyframes string  `yaml:"keyframes"`
	Duration  float64 `yaml:"duration"`
	Loop      bool    `yaml:"loop"`
}

// AnimationsConfig 页面用到的动画
type AnimationsConfig struct {
	// Shake "No" 按钮抖动（水平位移）
	Shake CurveConfig `yaml:"shake"`
	// Jump 吉祥物额外跳跃（垂直位移）
	Jump CurveConfig `yaml:"jump"`
	// Bob 吉祥物待机上下浮动（垂直位移，循环）
	Bob CurveConfig `yaml:"bob"`
}

// LayoutConfig 布局参数
type LayoutConfig struct {
	// CompactHeight 视口高度低于此值时使用紧凑（移动端）布局
	CompactHeight int `yaml:"compact_height"`
	// ContainerMaxWidth 桌面布局下内容容器的最大宽度
	ContainerMaxWidth int `yaml:"container_max_width"`
}

// DefaultValentineConfig 返回内置默认配置
func DefaultValentineConfig() *ValentineConfig {
	return &ValentineConfig{
		Text: TextConfig{
			Title:    "Will You Be My Valentine?",
			Subtitle: "Press Start to Begin Our Love Adventure!",
			Yes:      "Yes",
			No:       "No",
		},
		Trail: TrailConfig{
			VelocityThreshold: 600,
			Gravity:           500,
			ExitMargin:        50,
			LeaderSize:        24,
			ParticleSize:      12,
		},
		Rain: RainConfig{
			Count:    20,
			Left:     "[0 100]",
			Delay:    "[0 3]",
			Duration: "[2 5]",
			Size:     24,
		},
		Burst: BurstConfig{
			Count:    12,
			Distance: "[100 150]",
			Delay:    "[0 0.3]",
			Duration: "[0.8 1.3]",
			Size:     20,
		},
		EffectLifetime: 8,
		Animations: AnimationsConfig{
			Shake: CurveConfig{Keyframes: "0,0 -10,10 10,30 -10,50 10,70 -10,90 0,100", Duration: 0.5},
			Jump:  CurveConfig{Keyframes: "EaseOut 0,0 -40,50 0,100", Duration: 0.5},
			Bob:   CurveConfig{Keyframes: "FastInOutWeak 0,0 -10,50 0,100", Duration: 1.2, Loop: true},
		},
		Layout: LayoutConfig{
			CompactHeight:     1000,
			ContainerMaxWidth: 1200,
		},
	}
}

// LoadValentineConfig 从文件加载配置
//
// 参数：
//   - path: 配置文件路径
//
// 返回：
//   - *ValentineConfig: 默认值叠加文件内容后的配置
//   - error: 读取、解析或校验错误
func LoadValentineConfig(path string) (*ValentineConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("无法读取配置文件 %s: %w", path, err)
	}
	cfg, err := ParseValentineConfig(data)
	if err != nil {
		return nil, fmt.Errorf("配置文件 %s 无效: %w", path, err)
	}
	return cfg, nil
}

// ParseValentineConfig 解析 YAML 数据
// 未出现的字段保留默认值
func ParseValentineConfig(data []byte) (*ValentineConfig, error) {
	cfg := DefaultValentineConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("YAML 解析失败: %w", err)
	}
	if _, err := cfg.Resolve(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// RainSpec 解析后的雨点参数
type RainSpec struct {
	Count    int
	Left     keyframe.Range
	Delay    keyframe.Range
	Duration keyframe.Range
	Size     float64
}

// BurstSpec 解析后的爆裂参数
type BurstSpec struct {
	Count    int
	Distance keyframe.Range
	Delay    keyframe.Range
	Duration keyframe.Range
	Size     float64
}

// CurveSpec 解析后的关键帧曲线
type CurveSpec struct {
	Keyframes     []keyframe.Keyframe
	Interpolation string
	Duration      float64
	Loop          bool
}

// Tuning 配置中所有字符串格式字段解析后的结果
type Tuning struct {
	Rain  RainSpec
	Burst BurstSpec
	Shake CurveSpec
	Jump  CurveSpec
	Bob   CurveSpec
}

// Resolve 解析并校验所有范围和曲线字段
func (c *ValentineConfig) Resolve() (*Tuning, error) {
	if c.Rain.Count < 0 || c.Burst.Count < 0 {
		return nil, fmt.Errorf("爱心数量不能为负数")
	}
	if c.EffectLifetime <= 0 {
		return nil, fmt.Errorf("effect_lifetime 必须大于 0，当前 %v", c.EffectLifetime)
	}
	if c.Layout.CompactHeight <= 0 {
		return nil, fmt.Errorf("layout.compact_height 必须大于 0")
	}

	t := &Tuning{}
	var err error

	t.Rain.Count = c.Rain.Count
	t.Rain.Size = c.Rain.Size
	if t.Rain.Left, err = parseRange("rain.left", c.Rain.Left); err != nil {
		return nil, err
	}
	if t.Rain.Delay, err = parseRange("rain.delay", c.Rain.Delay); err != nil {
		return nil, err
	}
	if t.Rain.Duration, err = parseRange("rain.duration", c.Rain.Duration); err != nil {
		return nil, err
	}
	if t.Rain.Duration.Min <= 0 {
		return nil, fmt.Errorf("rain.duration 必须大于 0")
	}

	t.Burst.Count = c.Burst.Count
	t.Burst.Size = c.Burst.Size
	if t.Burst.Distance, err = parseRange("burst.distance", c.Burst.Distance); err != nil {
		return nil, err
	}
	if t.Burst.Delay, err = parseRange("burst.delay", c.Burst.Delay); err != nil {
		return nil, err
	}
	if t.Burst.Duration, err = parseRange("burst.duration", c.Burst.Duration); err != nil {
		return nil, err
	}
	if t.Burst.Duration.Min <= 0 {
		return nil, fmt.Errorf("burst.duration 必须大于 0")
	}

	if t.Shake, err = parseCurve("animations.shake", c.Animations.Shake); err != nil {
		return nil, err
	}
	if t.Jump, err = parseCurve("animations.jump", c.Animations.Jump); err != nil {
		return nil, err
	}
	if t.Bob, err = parseCurve("animations.bob", c.Animations.Bob); err != nil {
		return nil, err
	}
	return t, nil
}

func parseRange(field, s string) (keyframe.Range, error) {
	r, err := keyframe.ParseRange(s)
	if err != nil {
		return keyframe.Range{}, fmt.Errorf("%s: %w", field, err)
	}
	return r, nil
}

func parseCurve(field string, c CurveConfig) (CurveSpec, error) {
	kf, interp, err := keyframe.ParseKeyframes(c.Keyframes)
	if err != nil {
		return CurveSpec{}, fmt.Errorf("%s.keyframes: %w", field, err)
	}
	if c.Duration <= 0 {
		return CurveSpec{}, fmt.Errorf("%s.duration 必须大于 0", field)
	}
	return CurveSpec{Keyframes: kf, Interpolation: interp, Duration: c.Duration, Loop: c.Loop}, nil
}
