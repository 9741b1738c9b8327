package geometry

import (
	"math/rand/v2"
	"testing"
)

func TestWrapAround(t *testing.T) {
	tests := []struct {
		name     string
		x        float64
		min, max float64
		want     float64
	}{
		{"Already in range", 5, 0, 800, 5},
		{"At min", 0, 0, 800, 0},
		{"At max wraps to min", 800, 0, 800, 0},
		{"Just below min", -1, 0, 800, 799},
		{"Just above max", 801, 0, 800, 1},
		{"Far below range", -1000, 0, 800, 600},
		{"Far above range", 5000, 0, 800, 200},
		{"Non-zero min", 12, 10, 20, 12},
		{"Non-zero min below", 3, 10, 20, 13},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WrapAround(tt.x, tt.min, tt.max)
			if !floatEquals(got, tt.want) {
				t.Errorf("WrapAround(%v, %v, %v) = %v; want %v", tt.x, tt.min, tt.max, got, tt.want)
			}
		})
	}
}

func TestWrapAround_AlwaysLandsInRange(t *testing.T) {
	// Result must be in [min, max) for any finite input, including values
	// many interval lengths away in either direction.
	for i := 0; i < 10000; i++ {
		x := (rand.Float64() - 0.5) * 1e6
		got := WrapAround(x, 0, 800)
		if got < 0 || got >= 800 {
			t.Fatalf("WrapAround(%v, 0, 800) = %v; want in [0, 800)", x, got)
		}
	}
}
