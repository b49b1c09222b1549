package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"

	"github.com/decker502/birthday/pkg/celebration"
)

// DefaultConfigPath 内嵌默认配置在 embedded 包中的路径
const DefaultConfigPath = "data/celebration.yaml"

// CelebrationConfig 庆祝流程的完整配置
type CelebrationConfig struct {
	Window   WindowConfig     `yaml:"window"`   // 窗口设置
	Timing   TimingConfig     `yaml:"timing"`   // 各互动的延迟时长
	Knife    KnifeConfig      `yaml:"knife"`    // 刀的位置
	Bursts   BurstsConfig     `yaml:"bursts"`   // 彩纸预设
	Texts    TextConfig       `yaml:"texts"`    // 界面文字
	Letter   LetterConfig     `yaml:"letter"`   // 信件内容
	Floating []FloatingConfig `yaml:"floating"` // 漂浮装饰
}

// WindowConfig 窗口设置
type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// TimingConfig 时长配置（秒）
type TimingConfig struct {
	CandleCompletionDelay float64 `yaml:"candleCompletionDelay"` // 全部熄灭到完成信号
	BlowDuration          float64 `yaml:"blowDuration"`          // 蛋糕晃动
	CutDuration           float64 `yaml:"cutDuration"`           // 每一刀的锁定时长
}

// KnifeConfig 刀的横向位置（像素）
type KnifeConfig struct {
	StartX float64 `yaml:"startX"`
	Step   float64 `yaml:"step"`
}

// BurstConfig 单个彩纸预设
type BurstConfig struct {
	Count   int      `yaml:"count"`
	Spread  float64  `yaml:"spread"`
	OriginX float64  `yaml:"originX"`
	OriginY float64  `yaml:"originY"`
	Palette []string `yaml:"palette"`
}

// BurstsConfig 所有彩纸预设
type BurstsConfig struct {
	Start         BurstConfig `yaml:"start"`
	CandleSingle  BurstConfig `yaml:"candleSingle"`
	CandleBlowAll BurstConfig `yaml:"candleBlowAll"`
	CakeCut       BurstConfig `yaml:"cakeCut"`
}

// TextConfig 界面文字
type TextConfig struct {
	IntroTitle         string `yaml:"introTitle"`
	IntroSubtitle      string `yaml:"introSubtitle"`
	StartButton        string `yaml:"startButton"`
	StartHint          string `yaml:"startHint"`
	CandleTitle        string `yaml:"candleTitle"`
	CandleDescription  string `yaml:"candleDescription"`
	BlowInstruction    string `yaml:"blowInstruction"`
	BlowAllButton      string `yaml:"blowAllButton"`
	WishGranted        string `yaml:"wishGranted"`
	ContinueToCutting  string `yaml:"continueToCutting"`
	CuttingTitle       string `yaml:"cuttingTitle"`
	CuttingDescription string `yaml:"cuttingDescription"`
	CutInstruction     string `yaml:"cutInstruction"` // 包含一个 %d（剩余刀数）
	CakeReady          string `yaml:"cakeReady"`
	ContinueToLetter   string `yaml:"continueToLetter"`
	LetterTitle        string `yaml:"letterTitle"`
	LetterDescription  string `yaml:"letterDescription"`
	OpenInstruction    string `yaml:"openInstruction"`
	FinalMessage       string `yaml:"finalMessage"`
	NavCandles         string `yaml:"navCandles"`
	NavCutting         string `yaml:"navCutting"`
	NavLetter          string `yaml:"navLetter"`
}

// LetterConfig 信件内容
type LetterConfig struct {
	Greeting   string   `yaml:"greeting"`
	Paragraphs []string `yaml:"paragraphs"`
	Closing    string   `yaml:"closing"`
	Signature  string   `yaml:"signature"`
}

// FloatingConfig 一个漂浮装饰
type FloatingConfig struct {
	Kind     string  `yaml:"kind"`     // heart | star | sparkle | balloon
	Color    string  `yaml:"color"`    // #RRGGBB
	X        float64 `yaml:"x"`        // 横向位置（屏幕宽度比例）
	Delay    float64 `yaml:"delay"`    // 首次出现延迟（秒）
	Duration float64 `yaml:"duration"` // 从底部飘到顶部的时长（秒）
	Size     float64 `yaml:"size"`     // 尺寸（像素）
}

// 漂浮装饰种类
const (
	FloatingHeart   = "heart"
	FloatingStar    = "star"
	FloatingSparkle = "sparkle"
	FloatingBalloon = "balloon"
)

var (
	errConfigIsNotSet   = errors.New("configuration is not set")
	errEmptyPalette     = errors.New("palette must contain at least one color")
	errInvalidCount     = errors.New("burst count must be positive")
	errInvalidSpread    = errors.New("burst spread must be within [0, 360]")
	errInvalidOrigin    = errors.New("burst origin must be within [0, 1]")
	errNegativeDuration = errors.New("durations must not be negative")
	errInvalidWindow    = errors.New("window size must be positive")
	errUnknownFloating  = errors.New("unknown floating element kind")
)

// LoadCelebrationConfig 从 YAML 文件加载配置
func LoadCelebrationConfig(path string) (*CelebrationConfig, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to read celebration config: %w", err)
	}
	return ParseCelebrationConfig(data)
}

// ParseCelebrationConfig 解析 YAML 内容
// 未出现的字段保留默认值
func ParseCelebrationConfig(data []byte) (*CelebrationConfig, error) {
	cfg := DefaultCelebrationConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse celebration config YAML: %w", err)
	}

	if err := ValidateCelebrationConfig(cfg); err != nil {
		return nil, fmt.Errorf("invalid celebration config: %w", err)
	}

	return cfg, nil
}

// ValidateCelebrationConfig 验证配置的有效性
func ValidateCelebrationConfig(cfg *CelebrationConfig) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if cfg.Window.Width <= 0 || cfg.Window.Height <= 0 {
		return errInvalidWindow
	}

	t := cfg.Timing
	if t.CandleCompletionDelay < 0 || t.BlowDuration < 0 || t.CutDuration < 0 {
		return errNegativeDuration
	}

	presets := map[string]BurstConfig{
		"start":         cfg.Bursts.Start,
		"candleSingle":  cfg.Bursts.CandleSingle,
		"candleBlowAll": cfg.Bursts.CandleBlowAll,
		"cakeCut":       cfg.Bursts.CakeCut,
	}
	for name, b := range presets {
		if _, err := b.Burst(); err != nil {
			return fmt.Errorf("burst %s: %w", name, err)
		}
	}

	for i, f := range cfg.Floating {
		switch f.Kind {
		case FloatingHeart, FloatingStar, FloatingSparkle, FloatingBalloon:
		default:
			return fmt.Errorf("floating[%d] %q: %w", i, f.Kind, errUnknownFloating)
		}
		if _, err := ParseColor(f.Color); err != nil {
			return fmt.Errorf("floating[%d]: %w", i, err)
		}
		if f.Duration <= 0 || f.Delay < 0 {
			return fmt.Errorf("floating[%d]: %w", i, errNegativeDuration)
		}
	}

	return nil
}

// ParseColor 解析 #RRGGBB 颜色
func ParseColor(hex string) (color.RGBA, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}

// MustParseColor 解析颜色，失败时返回白色
// 仅用于已经通过 Validate 的配置
func MustParseColor(hex string) color.RGBA {
	c, err := ParseColor(hex)
	if err != nil {
		return color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	}
	return c
}

// Burst 转换为领域层的彩纸请求
func (b BurstConfig) Burst() (celebration.Burst, error) {
	if b.Count <= 0 {
		return celebration.Burst{}, errInvalidCount
	}
	if b.Spread < 0 || b.Spread > 360 {
		return celebration.Burst{}, errInvalidSpread
	}
	if b.OriginX < 0 || b.OriginX > 1 || b.OriginY < 0 || b.OriginY > 1 {
		return celebration.Burst{}, errInvalidOrigin
	}
	if len(b.Palette) == 0 {
		return celebration.Burst{}, errEmptyPalette
	}

	palette := make([]color.RGBA, 0, len(b.Palette))
	for _, hex := range b.Palette {
		c, err := ParseColor(hex)
		if err != nil {
			return celebration.Burst{}, err
		}
		palette = append(palette, c)
	}

	return celebration.Burst{
		Count:   b.Count,
		Spread:  b.Spread,
		OriginX: b.OriginX,
		OriginY: b.OriginY,
		Palette: palette,
	}, nil
}

// SessionOptions 将配置转换为会话参数
func (c *CelebrationConfig) SessionOptions() (celebration.SessionOptions, error) {
	if c == nil {
		return celebration.SessionOptions{}, errConfigIsNotSet
	}

	start, err := c.Bursts.Start.Burst()
	if err != nil {
		return celebration.SessionOptions{}, fmt.Errorf("burst start: %w", err)
	}
	single, err := c.Bursts.CandleSingle.Burst()
	if err != nil {
		return celebration.SessionOptions{}, fmt.Errorf("burst candleSingle: %w", err)
	}
	all, err := c.Bursts.CandleBlowAll.Burst()
	if err != nil {
		return celebration.SessionOptions{}, fmt.Errorf("burst candleBlowAll: %w", err)
	}
	cut, err := c.Bursts.CakeCut.Burst()
	if err != nil {
		return celebration.SessionOptions{}, fmt.Errorf("burst cakeCut: %w", err)
	}

	return celebration.SessionOptions{
		StartBurst: start,
		Candles: celebration.CandleOptions{
			CompletionDelay: c.Timing.CandleCompletionDelay,
			BlowDuration:    c.Timing.BlowDuration,
			SingleBurst:     single,
			BlowAllBurst:    all,
		},
		Cut: celebration.CutOptions{
			CutDuration: c.Timing.CutDuration,
			KnifeStartX: c.Knife.StartX,
			KnifeStep:   c.Knife.Step,
			Burst:       cut,
		},
	}, nil
}
