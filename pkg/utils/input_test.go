package utils

import "testing"

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 100, Height: 50}

	tests := []struct {
		name   string
		x, y   float64
		inside bool
	}{
		{"左上角", 10, 20, true},
		{"中心", 60, 45, true},
		{"右边界外", 110, 45, false},
		{"下边界外", 60, 70, false},
		{"左侧", 9, 45, false},
		{"上方", 60, 19.5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.inside {
				t.Errorf("Contains(%v, %v) = %v, 期望 %v", tt.x, tt.y, got, tt.inside)
			}
		})
	}
}

func TestCenteredRect(t *testing.T) {
	r := CenteredRect(400, 300, 200, 60)

	if r.X != 300 || r.Y != 270 {
		t.Errorf("左上角 = (%v, %v), 期望 (300, 270)", r.X, r.Y)
	}
	if r.CenterX() != 400 || r.CenterY() != 300 {
		t.Errorf("中心 = (%v, %v), 期望 (400, 300)", r.CenterX(), r.CenterY())
	}
}
