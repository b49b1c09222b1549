package components

import "testing"

// TestUIState tests that UIState constants are defined correctly.
func TestUIState(t *testing.T) {
	tests := []struct {
		name  string
		state UIState
		value int
	}{
		{"UINormal should be 0", UINormal, 0},
		{"UIHovered should be 1", UIHovered, 1},
		{"UIClicked should be 2", UIClicked, 2},
		{"UIDisabled should be 3", UIDisabled, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if int(tt.state) != tt.value {
				t.Errorf("Expected %s to be %d, got %d", tt.name, tt.value, int(tt.state))
			}
		})
	}
}

// TestLifetimeProgress tests LifetimeComponent.Progress.
func TestLifetimeProgress(t *testing.T) {
	tests := []struct {
		name     string
		comp     LifetimeComponent
		expected float64
	}{
		{"just spawned", LifetimeComponent{MaxLifetime: 2}, 0},
		{"half way", LifetimeComponent{MaxLifetime: 2, CurrentLifetime: 1}, 0.5},
		{"past the end", LifetimeComponent{MaxLifetime: 2, CurrentLifetime: 3}, 1},
		{"zero lifetime", LifetimeComponent{}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.comp.Progress(); got != tt.expected {
				t.Errorf("Expected progress %v, got %v", tt.expected, got)
			}
		})
	}
}
