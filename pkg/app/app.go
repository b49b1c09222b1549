// Package app 提供庆祝应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"time"

	"github.com/decker502/birthday/internal/logger"
	"github.com/decker502/birthday/pkg/celebration"
	"github.com/decker502/birthday/pkg/config"
	"github.com/decker502/birthday/pkg/ecs"
	"github.com/decker502/birthday/pkg/embedded"
	"github.com/decker502/birthday/pkg/game"
	"github.com/decker502/birthday/pkg/scenes"
	"github.com/decker502/birthday/pkg/systems"
	"github.com/decker502/birthday/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// LogLevel 日志级别（debug/info/warn/error），仅在 Verbose 时生效
	LogLevel string
	// ConfigPath 庆祝配置文件路径，为空则使用内嵌的默认配置
	ConfigPath string
	// Seed 彩纸随机种子，0 表示使用当前时间
	Seed uint64
}

// App 是庆祝应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	config *config.CelebrationConfig

	session      *celebration.Session
	sceneManager *game.SceneManager
	navBar       *scenes.NavBar

	// world 存放彩纸与漂浮装饰，ui 存放可点击实体
	world *ecs.EntityManager
	ui    *ecs.EntityManager

	confetti    *systems.ConfettiSystem
	lifetime    *systems.LifetimeSystem
	floating    *systems.FloatingSystem
	input       *systems.InputSystem
	worldRender *systems.RenderSystem
	uiRender    *systems.RenderSystem

	background utils.TriangleBatch

	verbose                  bool
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化庆祝应用
//
// 使用内嵌配置时，调用此函数前必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	if err := logger.Configure(cfg.Verbose, cfg.LogLevel); err != nil {
		return nil, err
	}
	log := logger.Logger()

	celebrationConfig, err := LoadCelebrationConfig(cfg.ConfigPath)
	if err != nil {
		return nil, err
	}

	opts, err := celebrationConfig.SessionOptions()
	if err != nil {
		return nil, fmt.Errorf("invalid celebration config: %w", err)
	}

	fonts, err := utils.NewFontSet(utils.FontSizes{
		Hero:  config.FontSizeHero,
		Title: config.FontSizeTitle,
		Body:  config.FontSizeBody,
		Small: config.FontSizeSmall,
	})
	if err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	const w, h = float64(config.GameWindowWidth), float64(config.GameWindowHeight)

	world := ecs.NewEntityManager()
	confetti := systems.NewConfettiSystem(world, w, h, seed)
	floating := systems.NewFloatingSystem(world, w, h)
	if _, err := floating.Spawn(celebrationConfig.Floating); err != nil {
		return nil, fmt.Errorf("invalid floating decorations: %w", err)
	}

	session := celebration.NewSession(opts, confetti)
	log.Infow("[App] 会话已创建", "session", session.ID())

	ui := ecs.NewEntityManager()
	ctx := &scenes.Context{
		Session: session,
		Config:  celebrationConfig,
		UI:      ui,
		Fonts:   fonts,
	}

	sceneManager := game.NewSceneManager()
	sceneManager.SetSceneFactory(scenes.NewFactory(ctx))
	session.Flow().OnSceneChange(func(from, to celebration.Scene) {
		log.Infow("[App] 场景切换", "session", session.ID(), "from", from.String(), "to", to.String())
		sceneManager.Load(to)
	})
	sceneManager.Load(session.Flow().Scene())

	return &App{
		config:       celebrationConfig,
		session:      session,
		sceneManager: sceneManager,
		navBar:       scenes.NewNavBar(ctx),
		world:        world,
		ui:           ui,
		confetti:     confetti,
		lifetime:     systems.NewLifetimeSystem(world),
		floating:     floating,
		input:        systems.NewInputSystem(ui, nil),
		worldRender:  systems.NewRenderSystem(world),
		uiRender:     systems.NewRenderSystem(ui),
		verbose:      cfg.Verbose,
	}, nil
}

// LoadCelebrationConfig 加载庆祝配置
// path 为空时读取内嵌的默认配置
func LoadCelebrationConfig(path string) (*config.CelebrationConfig, error) {
	if path != "" {
		return config.LoadCelebrationConfig(path)
	}

	data, err := embedded.ReadFile(config.DefaultConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded config: %w", err)
	}
	cfg, err := config.ParseCelebrationConfig(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse embedded config: %w", err)
	}
	return cfg, nil
}

// Update 更新应用逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	a.handleFullscreen()

	deltaTime := 1.0 / 60.0
	a.tick(deltaTime)

	a.updateCursor()
	return nil
}

// tick 推进一帧：输入 → 会话计时 → 场景 → 导航栏 → 世界 → 清理
func (a *App) tick(deltaTime float64) {
	a.input.Update(deltaTime)
	a.session.Update(deltaTime)
	a.sceneManager.Update(deltaTime)
	a.navBar.Update(a.session.View())

	a.floating.Update(deltaTime)
	a.confetti.Update(deltaTime)
	a.lifetime.Update(deltaTime)

	a.world.RemoveMarkedEntities()
	a.ui.RemoveMarkedEntities()
}

// updateCursor 悬停在可点击区域上时显示手形光标（触摸设备没有光标）
func (a *App) updateCursor() {
	if utils.IsMobile() {
		return
	}
	if a.input.Hovering() {
		ebiten.SetCursorShape(ebiten.CursorShapePointer)
	} else {
		ebiten.SetCursorShape(ebiten.CursorShapeDefault)
	}
}

func (a *App) handleFullscreen() {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.config.Window.Width, a.config.Window.Height)
			logger.Logger().Debugf("[App] Delayed SetWindowSize(%d, %d)", a.config.Window.Width, a.config.Window.Height)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if !inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		return
	}
	if ebiten.IsFullscreen() {
		ebiten.SetFullscreen(false)
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
		logger.Logger().Debugf("[App] Exit fullscreen, will reset window size in 3 frames")
	} else {
		ebiten.SetFullscreen(true)
	}
}

// Draw 绘制画面
// 绘制顺序：背景 → 漂浮装饰 → 场景 → 按钮 → 彩纸
func (a *App) Draw(screen *ebiten.Image) {
	a.background.AddGradientRect(0, 0, config.GameWindowWidth, config.GameWindowHeight,
		scenes.BackgroundTop, scenes.BackgroundDown)
	a.background.Flush(screen)

	a.worldRender.DrawFloating(screen)
	a.sceneManager.Draw(screen)
	a.uiRender.DrawButtons(screen)
	a.worldRender.DrawConfetti(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	// 先填充背景色（全屏时两侧的留白）
	screen.Fill(color.RGBA{R: 0x1f, G: 0x0a, B: 0x1a, A: 0xff})
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear // 使用线性滤波减少锯齿和模糊
	screen.DrawImage(offscreen, op)
}

// Layout 返回逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}

// Close 结束会话并刷新日志
func (a *App) Close() {
	a.session.Close()
	logger.Sync()
}

// Session 返回当前会话
func (a *App) Session() *celebration.Session {
	return a.session
}

// WindowConfig 返回窗口设置
func (a *App) WindowConfig() config.WindowConfig {
	return a.config.Window
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
