package config

// DefaultCelebrationConfig 返回内置默认配置
// 与 data/celebration.yaml 保持一致，YAML 中缺失的字段回落到这里
func DefaultCelebrationConfig() *CelebrationConfig {
	fullPalette := []string{"#ec4899", "#f472b6", "#fbbf24", "#a855f7", "#22d3ee"}

	return &CelebrationConfig{
		Window: WindowConfig{
			Title:  "Happy Birthday!",
			Width:  GameWindowWidth,
			Height: GameWindowHeight,
		},
		Timing: TimingConfig{
			CandleCompletionDelay: 0.5,
			BlowDuration:          0.3,
			CutDuration:           0.5,
		},
		Knife: KnifeConfig{StartX: 120, Step: 40},
		Bursts: BurstsConfig{
			Start:         BurstConfig{Count: 100, Spread: 70, OriginX: 0.5, OriginY: 0.6, Palette: fullPalette[:4]},
			CandleSingle:  BurstConfig{Count: 150, Spread: 100, OriginX: 0.5, OriginY: 0.6, Palette: fullPalette},
			CandleBlowAll: BurstConfig{Count: 200, Spread: 120, OriginX: 0.5, OriginY: 0.6, Palette: fullPalette},
			CakeCut:       BurstConfig{Count: 100, Spread: 70, OriginX: 0.5, OriginY: 0.7, Palette: []string{"#ec4899", "#fbbf24", "#a855f7"}},
		},
		Texts: TextConfig{
			IntroTitle:         "Happy Birthday!",
			IntroSubtitle:      "Let us celebrate it together!",
			StartButton:        "Start the Celebration",
			StartHint:          "Click to begin your birthday experience",
			CandleTitle:        "Make a Wish!",
			CandleDescription:  "Close your eyes, think of something wonderful, and blow out the candles",
			BlowInstruction:    "Click on each candle to blow it out, or...",
			BlowAllButton:      "Make a Wish & Blow!",
			WishGranted:        "Your wish is on its way!",
			ContinueToCutting:  "Continue to Cake Cutting",
			CuttingTitle:       "Time to Cut the Cake!",
			CuttingDescription: "Click the knife to slice up some delicious birthday cake",
			CutInstruction:     "Click the knife to cut the cake! (%d cuts remaining)",
			CakeReady:          "Time to enjoy some delicious cake!",
			ContinueToLetter:   "Read Your Special Letter",
			LetterTitle:        "A Special Message For You",
			LetterDescription:  "Open the envelope",
			OpenInstruction:    "Click to open your special letter",
			FinalMessage:       "Have the most wonderful birthday ever!",
			NavCandles:         "Blow Candles",
			NavCutting:         "Cut Cake",
			NavLetter:          "Letter",
		},
		Letter: LetterConfig{
			Greeting: "Dear You,",
			Paragraphs: []string{
				"Happiest birthday! Every moment with you feels like a precious gift.",
			},
			Closing:   "With all my love,",
			Signature: "Forever Yours",
		},
	}
}
