// Package models contains data structures for Mahjong score statistics
package models

// PlayerStat holds the additive statistics for a player
type PlayerStat struct {
	Name        string
	GamesPlayed int
	GamesWon    int
	NetScore    int
}

// ReportRow holds one row of the final standings report, including the
// derived rates. RatesDefined is false when the player has played no games,
// in which case the rate fields are meaningless and rendered as NaN.
type ReportRow struct {
	Player       string
	GamesPlayed  int
	GamesWon     int
	NetScore     int
	GamesWonPc   int
	NetScoreAvg  float64
	RatesDefined bool
}

// Roster is the ordered list of 3 or 4 players seated for subsequent deals
type Roster struct {
	Names []string
}

// Size returns the number of seated players
func (r Roster) Size() int {
	return len(r.Names)
}
