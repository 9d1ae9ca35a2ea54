package scoring

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBaseAmount(t *testing.T) {
	// Doubling up to 4 faan, then midpoint insertions for odd faan
	want := []int{1, 2, 4, 8, 16, 24, 32, 48, 64, 96, 128}
	for faan, amount := range want {
		require.Equal(t, amount, BaseAmount(faan), "faan %d", faan)
	}
}

func TestBaseAmountMonotonic(t *testing.T) {
	prev := BaseAmount(0)
	for faan := 1; faan <= 20; faan++ {
		amount := BaseAmount(faan)
		require.GreaterOrEqual(t, amount, prev, "faan %d", faan)
		prev = amount
	}
}
