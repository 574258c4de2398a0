package student

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupTabulated(t *testing.T) {
	tests := []struct {
		n, sigma int
		want     float64
	}{
		{2, 1, 1.84},
		{2, 2, 13.97},
		{2, 3, 235.8},
		{20, 1, 1.029},
		{50, 1, 1.01},
		{50, 2, 2.05},
		{50, 3, 3.16},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, lookup(tt.n, tt.sigma), "lookup(%d, %d)", tt.n, tt.sigma)
	}
}

func TestLookupAsymptoticFallback(t *testing.T) {
	for sigma := 1; sigma <= 3; sigma++ {
		assert.Equal(t, float64(sigma), lookup(51, sigma))
		assert.Equal(t, float64(sigma), lookup(1, sigma))
		assert.Equal(t, float64(sigma), lookup(1000, sigma))
	}
}

// More samples must never increase the correction, and a higher confidence
// level must always increase it.
func TestTableMonotonic(t *testing.T) {
	for sigma := 1; sigma <= 3; sigma++ {
		for n := tMinN + 1; n <= tMaxN; n++ {
			assert.LessOrEqual(t, lookup(n, sigma), lookup(n-1, sigma),
				"t(%d, %d) > t(%d, %d)", n, sigma, n-1, sigma)
		}
	}
	for n := tMinN; n <= tMaxN; n++ {
		assert.Less(t, lookup(n, 1), lookup(n, 2), "n=%d", n)
		assert.Less(t, lookup(n, 2), lookup(n, 3), "n=%d", n)
	}
}
