package components

import "testing"

// TestWallStateFor 测试生命值阈值划分
func TestWallStateFor(t *testing.T) {
	tests := []struct {
		name     string
		health   int
		expected WallState
	}{
		{"满血", 100, WallHealthy},
		{"完好下限", 70, WallHealthy},
		{"受损上限", 69, WallDamaged},
		{"受损下限", 40, WallDamaged},
		{"危急上限", 39, WallCritical},
		{"危急下限", 1, WallCritical},
		{"摧毁", 0, WallDestroyed},
		{"负数按摧毁处理", -10, WallDestroyed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WallStateFor(tt.health); got != tt.expected {
				t.Errorf("WallStateFor(%d) = %v, 期望 %v", tt.health, got, tt.expected)
			}
		})
	}
}

// TestWallStateString 测试状态名称
func TestWallStateString(t *testing.T) {
	names := map[WallState]string{
		WallHealthy:   "healthy",
		WallDamaged:   "damaged",
		WallCritical:  "critical",
		WallDestroyed: "destroyed",
		WallState(42): "unknown",
	}
	for state, want := range names {
		if got := state.String(); got != want {
			t.Errorf("WallState(%d).String() = %q, 期望 %q", int(state), got, want)
		}
	}
}
