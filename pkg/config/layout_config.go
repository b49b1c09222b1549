package config

// 布局配置常量
// 所有坐标均为逻辑屏幕坐标（800x600），窗口缩放由 Ebitengine 处理

// 窗口
const (
	// GameWindowWidth 逻辑屏幕宽度
	GameWindowWidth = 800
	// GameWindowHeight 逻辑屏幕高度
	GameWindowHeight = 600
)

// 导航栏
const (
	NavBarY          = 14.0
	NavBarHeight     = 40.0
	NavButtonWidth   = 150.0
	NavButtonSpacing = 8.0
)

// 场景标题
const (
	SceneTitleY       = 92.0
	SceneDescriptionY = 128.0
)

// 蛋糕与蜡烛（吹蜡烛场景）
const (
	// CakeCenterX 蛋糕中心横坐标
	CakeCenterX = GameWindowWidth / 2.0
	// CakeTopY 顶层蛋糕的上沿
	CakeTopY = 260.0

	CakeTopWidth     = 192.0
	CakeTopHeight    = 64.0
	CakeMiddleWidth  = 224.0
	CakeMiddleHeight = 56.0
	CakeBottomWidth  = 256.0
	CakeBottomHeight = 64.0
	CakePlateWidth   = 288.0
	CakePlateHeight  = 16.0

	CandleWidth   = 12.0
	CandleHeight  = 48.0
	CandleSpacing = 36.0
	// CandleHitPadding 蜡烛点击区域在四周额外扩展的像素（包含火焰）
	CandleHitPadding = 12.0
	FlameWidth       = 16.0
	FlameHeight      = 24.0
)

// 切蛋糕场景
const (
	CuttingCakeX      = GameWindowWidth/2.0 - 160
	CuttingCakeY      = 250.0
	CuttingCakeWidth  = 320.0
	CuttingCakeHeight = 128.0

	// KnifeBaseY 刀柄在空闲状态下的上沿
	KnifeBaseY = 170.0
	// KnifeCutDepth 切割时刀下压的距离
	KnifeCutDepth     = 50.0
	KnifeHandleWidth  = 24.0
	KnifeHandleHeight = 64.0
	KnifeBladeWidth   = 8.0
	KnifeBladeHeight  = 80.0
)

// 通用按钮
const (
	ButtonHeight       = 44.0
	ButtonMinWidth     = 220.0
	ButtonPaddingX     = 28.0
	ContinueButtonY    = 520.0
	PrimaryButtonY     = 470.0
	InstructionTextY   = 440.0
	ButtonCornerRadius = 10.0
)

// 信件场景
const (
	EnvelopeWidth  = 256.0
	EnvelopeHeight = 176.0
	EnvelopeY      = 200.0
	LetterPaperX   = 110.0
	LetterPaperY   = 150.0
	LetterPaperW   = GameWindowWidth - 2*LetterPaperX
	LetterPaperH   = 380.0
	LetterPadding  = 24.0
)

// 字号
const (
	FontSizeHero  = 56.0
	FontSizeTitle = 32.0
	FontSizeBody  = 18.0
	FontSizeSmall = 14.0
)

// CandleX 返回第 i 根蜡烛中心的横坐标（蜡烛在顶层蛋糕上均匀排开）
func CandleX(i, count int) float64 {
	span := float64(count-1) * CandleSpacing
	return CakeCenterX - span/2 + float64(i)*CandleSpacing
}

// CandleTopY 蜡烛上沿（火焰底部）
func CandleTopY() float64 {
	return CakeTopY - CandleHeight
}

// NavButtonX 返回导航栏第 i 个按钮的左上角横坐标（按钮整体水平居中）
func NavButtonX(i, count int) float64 {
	total := float64(count)*NavButtonWidth + float64(count-1)*NavButtonSpacing
	start := (GameWindowWidth - total) / 2
	return start + float64(i)*(NavButtonWidth+NavButtonSpacing)
}
