package celebration

// NavItem 导航栏中的一项
type NavItem struct {
	Scene    Scene
	Active   bool
	Unlocked bool
}

// View 渲染层所需的会话快照
type View struct {
	Scene      Scene
	NavVisible bool
	Nav        []NavItem

	Candles      [CandleCount]bool
	Blowing      bool
	CandlesOut   bool
	CandlesBlown bool

	KnifeX        float64
	Cutting       bool
	Slices        int
	CutsRemaining int
	CakeCut       bool

	LetterOpen    bool
	LetterElapsed float64
}

// View 生成当前状态的快照
func (s *Session) View() View {
	v := View{
		Scene:      s.flow.Scene(),
		NavVisible: s.flow.NavVisible(),

		Candles:      s.candles.Candles(),
		Blowing:      s.candles.IsBlowing(),
		CandlesOut:   s.candles.AllOut(),
		CandlesBlown: s.flow.CandlesBlown(),

		KnifeX:        s.cut.KnifeX(),
		Cutting:       s.cut.Cutting(),
		Slices:        s.cut.Slices(),
		CutsRemaining: s.cut.Remaining(),
		CakeCut:       s.flow.CakeCut(),

		LetterOpen:    s.letter.IsOpen(),
		LetterElapsed: s.letter.Elapsed(),
	}

	v.Nav = make([]NavItem, 0, len(NavigableScenes))
	for _, scene := range NavigableScenes {
		v.Nav = append(v.Nav, NavItem{
			Scene:    scene,
			Active:   scene == v.Scene,
			Unlocked: s.flow.Unlocked(scene),
		})
	}

	return v
}
