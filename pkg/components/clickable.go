package components

// ClickableComponent 标记实体可以被点击或触摸
// 定义了可点击区域的尺寸、是否启用以及点击回调
type ClickableComponent struct {
	Width     float64 // 可点击区域的宽度(像素)
	Height    float64 // 可点击区域的高度(像素)
	IsEnabled bool    // 是否可以被点击
	Hovered   bool    // 指针是否悬停在区域内
	OnClick   func()  // 点击回调
}
