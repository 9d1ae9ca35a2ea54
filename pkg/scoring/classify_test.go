package scoring

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name   string
		tokens []string
		want   Outcome
	}{
		{
			name:   "draw 3 players",
			tokens: []string{"-", "-", "-"},
			want:   Outcome{Category: Draw, Winner: -1, Payer: -1},
		},
		{
			name:   "draw 4 players",
			tokens: []string{"-", "-", "-", "-"},
			want:   Outcome{Category: Draw, Winner: -1, Payer: -1},
		},
		{
			name:   "false win",
			tokens: []string{"-", "f", "-", "-"},
			want:   Outcome{Category: FalseWin, Winner: 1, Payer: -1},
		},
		{
			name:   "self-drawn win",
			tokens: []string{"-", "-", "3", "-"},
			want:   Outcome{Category: SelfDrawnWin, Winner: 2, Payer: -1, Faan: 3},
		},
		{
			name:   "discarded win",
			tokens: []string{"5", "-", "d", "-"},
			want:   Outcome{Category: DiscardedWin, Winner: 0, Payer: 2, Faan: 5},
		},
		{
			name:   "taken-on self-drawn win",
			tokens: []string{"-", "t", "8", "-"},
			want:   Outcome{Category: TakenOnSelfDrawnWin, Winner: 2, Payer: 1, Faan: 8},
		},
		{
			name:   "three-player discarded win",
			tokens: []string{"d", "2", "-"},
			want:   Outcome{Category: DiscardedWin, Winner: 1, Payer: 0, Faan: 2},
		},
		{
			name:   "zero faan self-drawn win",
			tokens: []string{"0", "-", "-"},
			want:   Outcome{Category: SelfDrawnWin, Winner: 0, Payer: -1, Faan: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Classify(tt.tokens)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestClassifyOversizedFaanToken(t *testing.T) {
	// A digit run too large for int still declares a winning faan
	got, err := Classify([]string{"99999999999999999999", "-", "-"})
	require.NoError(t, err)
	require.Equal(t, SelfDrawnWin, got.Category)
	require.Equal(t, 0, got.Winner)
	require.Equal(t, math.MaxInt, got.Faan)
}

func TestClassifyRejectsInvalidCombinations(t *testing.T) {
	tests := []struct {
		name   string
		tokens []string
	}{
		{name: "two integers no hyphens", tokens: []string{"1", "2", "3"}},
		{name: "two integers", tokens: []string{"1", "2", "-", "-"}},
		{name: "discard without winner", tokens: []string{"d", "-", "-", "-"}},
		{name: "take-on without winner", tokens: []string{"t", "-", "-"}},
		{name: "false win with faan", tokens: []string{"5", "f", "-", "-"}},
		{name: "false win with discard", tokens: []string{"f", "d", "-", "-"}},
		{name: "two false wins", tokens: []string{"f", "f", "-", "-"}},
		{name: "two discarders", tokens: []string{"3", "d", "d", "-"}},
		{name: "discard and take-on", tokens: []string{"3", "d", "t", "-"}},
		{name: "too few tokens", tokens: []string{"-", "-"}},
		{name: "too many tokens", tokens: []string{"-", "-", "-", "-", "-"}},
		{name: "unknown token", tokens: []string{"x", "-", "-"}},
		{name: "negative faan", tokens: []string{"-5", "-", "-"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Classify(tt.tokens)
			require.Error(t, err)
		})
	}
}
