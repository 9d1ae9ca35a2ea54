package scoring

// Settlement holds the per-seat result of one deal: a win flag (0 or 1) and
// a net score delta for every seat. The deltas always sum to exactly zero.
type Settlement struct {
	WinFlags []int
	Deltas   []int
}

// Settle computes the zero-sum score distribution for a classified deal
// among numPlayers seats. The declared faan is capped at maxFaan before the
// base amount is looked up; a false win always charges the penalty from
// maxFaan since no faan is declared on an invalid claim.
func Settle(outcome Outcome, numPlayers, maxFaan int) Settlement {
	settlement := Settlement{
		WinFlags: make([]int, numPlayers),
		Deltas:   make([]int, numPlayers),
	}

	switch outcome.Category {
	case Draw:
		// No changes

	case FalseWin:
		// The claimant pays twice the maximum base amount to each of the
		// N-1 other players
		amount := BaseAmount(maxFaan)
		for seat := range settlement.Deltas {
			if seat == outcome.Winner {
				settlement.Deltas[seat] = -2 * (numPlayers - 1) * amount
			} else {
				settlement.Deltas[seat] = 2 * amount
			}
		}

	case SelfDrawnWin:
		// The winner collects twice the base amount from each of the N-1
		// other players
		amount := BaseAmount(capFaan(outcome.Faan, maxFaan))
		settlement.WinFlags[outcome.Winner] = 1
		for seat := range settlement.Deltas {
			if seat == outcome.Winner {
				settlement.Deltas[seat] = 2 * (numPlayers - 1) * amount
			} else {
				settlement.Deltas[seat] = -2 * amount
			}
		}

	case DiscardedWin:
		// Full responsibility (全銃): the discarder alone pays the winner
		// N times the base amount, covering their own double portion plus
		// the N-2 bystanders' single portions
		amount := BaseAmount(capFaan(outcome.Faan, maxFaan))
		settlement.WinFlags[outcome.Winner] = 1
		settlement.Deltas[outcome.Winner] = numPlayers * amount
		settlement.Deltas[outcome.Payer] = -numPlayers * amount

	case TakenOnSelfDrawnWin:
		// The taking-on player absorbs the whole self-drawn payout
		amount := BaseAmount(capFaan(outcome.Faan, maxFaan))
		settlement.WinFlags[outcome.Winner] = 1
		settlement.Deltas[outcome.Winner] = 2 * (numPlayers - 1) * amount
		settlement.Deltas[outcome.Payer] = -2 * (numPlayers - 1) * amount
	}

	return settlement
}

// capFaan caps a declared number of faan at the configured maximum
func capFaan(faan, maxFaan int) int {
	if faan > maxFaan {
		return maxFaan
	}
	return faan
}
