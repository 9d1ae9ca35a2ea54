package scoring

import (
	"fmt"
	"math"
	"strconv"
)

// Category identifies which of the five mutually exclusive deal outcomes a
// line of tokens describes
type Category int

const (
	// Draw: nobody won, no scores change (摸和)
	Draw Category = iota
	// FalseWin: an invalid win claim, the claimant pays everyone (詐糊)
	FalseWin
	// SelfDrawnWin: the winner drew the winning tile, everyone pays (自摸)
	SelfDrawnWin
	// DiscardedWin: one player discarded the winning tile and pays the
	// winner alone under full responsibility (打出 / 全銃)
	DiscardedWin
	// TakenOnSelfDrawnWin: a designated player absorbs all losses for a
	// self-drawn win (包自摸)
	TakenOnSelfDrawnWin
)

// String returns a short name for the category
func (c Category) String() string {
	switch c {
	case Draw:
		return "draw"
	case FalseWin:
		return "false win"
	case SelfDrawnWin:
		return "self-drawn win"
	case DiscardedWin:
		return "discarded win"
	case TakenOnSelfDrawnWin:
		return "taken-on self-drawn win"
	}
	return "unknown"
}

// Outcome is a classified deal line: the category plus the seat indices and
// faan value extracted from the tokens. Winner is the false-winner's seat
// for FalseWin. Winner and Payer are -1 when the category has no such seat;
// Faan is the uncapped parsed value and is 0 when no faan was declared.
type Outcome struct {
	Category Category
	Winner   int
	Payer    int
	Faan     int
}

// Classify determines which deal category a line of outcome tokens
// describes. Each token must be a non-negative integer (the winning number
// of faan) or one of "d", "t", "f", "-". Exactly one category must match
// the structural counts of the tokens, otherwise the line does not properly
// specify a deal and an error is returned.
func Classify(tokens []string) (Outcome, error) {
	n := len(tokens)
	if n != 3 && n != 4 {
		return Outcome{}, fmt.Errorf("expected 3 or 4 outcome tokens, got %d", n)
	}

	// Count the structural elements of the line
	var hyphens, discards, takeOns, falseWins, integers int
	winnerIndex, payerIndex, faan := -1, -1, 0
	for i, token := range tokens {
		switch token {
		case "-":
			hyphens++
		case "d":
			discards++
			payerIndex = i
		case "t":
			takeOns++
			payerIndex = i
		case "f":
			falseWins++
			winnerIndex = i
		default:
			value, err := strconv.Atoi(token)
			if err != nil {
				// A digit run too large for int still declares a faan; it
				// caps at the maximum during settlement
				if !isDigits(token) {
					return Outcome{}, fmt.Errorf("invalid outcome token %q", token)
				}
				value = math.MaxInt
			} else if value < 0 {
				return Outcome{}, fmt.Errorf("invalid outcome token %q", token)
			}
			integers++
			winnerIndex = i
			faan = value
		}
	}

	// Match the counts against the five categories. The predicates are
	// mutually exclusive: each fixes the exact number of hyphens, integers
	// and marker tokens on the line.
	switch {
	case hyphens == n:
		return Outcome{Category: Draw, Winner: -1, Payer: -1}, nil

	case hyphens == n-1 && falseWins == 1:
		return Outcome{Category: FalseWin, Winner: winnerIndex, Payer: -1}, nil

	case hyphens == n-1 && integers == 1:
		return Outcome{Category: SelfDrawnWin, Winner: winnerIndex, Payer: -1, Faan: faan}, nil

	case hyphens == n-2 && integers == 1 && discards == 1:
		return Outcome{Category: DiscardedWin, Winner: winnerIndex, Payer: payerIndex, Faan: faan}, nil

	case hyphens == n-2 && integers == 1 && takeOns == 1:
		return Outcome{Category: TakenOnSelfDrawnWin, Winner: winnerIndex, Payer: payerIndex, Faan: faan}, nil
	}

	return Outcome{}, fmt.Errorf("tokens do not properly specify a game")
}

// isDigits reports whether a token is a non-empty run of decimal digits
func isDigits(token string) bool {
	if token == "" {
		return false
	}
	for _, r := range token {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
