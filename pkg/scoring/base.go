// Package scoring implements Kwong-tung full-responsibility scoring for a
// single Mahjong deal: the faan base-amount table, classification of a line
// of per-seat outcome tokens, and the zero-sum settlement of the deal.
package scoring

// BaseAmount returns the base stake for a given number of faan under
// one-n-two bucks with half-spicy increase:
//
//	Faan    0  1  2  3   4   5   6   7   8   9   10
//	Amount  1  2  4  8  16  24  32  48  64  96  128
//
// i.e. doubling up to 4 faan, then midpoint insertions for odd faan.
// The input must already be capped by the caller.
func BaseAmount(faan int) int {
	if faan <= 4 {
		return 1 << faan
	}
	if faan%2 == 1 {
		return 24 * (1 << ((faan - 5) / 2))
	}
	return 32 * (1 << ((faan - 6) / 2))
}
