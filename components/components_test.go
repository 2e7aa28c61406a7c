package components

import (
	"math"
	"testing"
)

func TestPositionDistance(t *testing.T) {
	tests := []struct {
		name string
		a, b Position
		want float32
	}{
		{"same point", Position{1, 2, 3}, Position{1, 2, 3}, 0},
		{"unit x", Position{}, Position{X: 1}, 1},
		{"pythagorean", Position{}, Position{X: 1, Y: 2, Z: 2}, 3},
		{"negative coords", Position{X: -1, Y: -1, Z: -1}, Position{X: 1, Y: 1, Z: 1}, float32(2 * math.Sqrt(3))},
		{"symmetric", Position{X: 4, Z: -3}, Position{}, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.a.Distance(tt.b)
			if math.Abs(float64(got-tt.want)) > 1e-5 {
				t.Errorf("Distance = %v, want %v", got, tt.want)
			}
			back := tt.b.Distance(tt.a)
			if back != got {
				t.Errorf("Distance not symmetric: %v vs %v", got, back)
			}
		})
	}
}
