// Package stats folds a chronological stream of roster and deal events into
// cumulative per-player statistics and produces the final standings
package stats

import (
	"fmt"
	"math"
	"sort"

	"github.com/myusername/mahjong-score-parser/pkg/models"
	"github.com/myusername/mahjong-score-parser/pkg/scoring"
)

// Default configuration values
const (
	DefaultMaxFaan   = 8
	DefaultStartDate = 0
	DefaultEndDate   = 100000000
)

// Session accumulates per-player statistics over one pass of a ledger. It
// owns the stats mapping exclusively; players are created on first
// appearance in a roster and never removed.
type Session struct {
	maxFaan   int
	startDate int
	endDate   int

	// Date window state, driven by the most recently seen date line.
	// Deals before any date line count as in range.
	startReached bool
	endExceeded  bool

	players map[string]*models.PlayerStat
	order   []string // insertion order, for deterministic iteration
	roster  *models.Roster
}

// NewSession creates a session with the given maximum faan and inclusive
// date window
func NewSession(maxFaan, startDate, endDate int) *Session {
	return &Session{
		maxFaan:      maxFaan,
		startDate:    startDate,
		endDate:      endDate,
		startReached: true,
		players:      make(map[string]*models.PlayerStat),
	}
}

// SetDate updates the date window membership from a yyyymmdd date line
func (s *Session) SetDate(yyyymmdd int) {
	s.startReached = yyyymmdd >= s.startDate
	s.endExceeded = yyyymmdd > s.endDate
}

// InRange reports whether subsequent roster and deal lines fall inside the
// configured date window
func (s *Session) InRange() bool {
	return s.startReached && !s.endExceeded
}

// RegisterRoster replaces the active roster with 3 or 4 player names,
// creating zeroed stat records for names never seen before. A duplicate
// name within the roster is an error and leaves the session untouched.
func (s *Session) RegisterRoster(names []string) error {
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if seen[name] {
			return fmt.Errorf("duplicate player %q", name)
		}
		seen[name] = true
	}

	for _, name := range names {
		if _, ok := s.players[name]; !ok {
			s.players[name] = &models.PlayerStat{Name: name}
			s.order = append(s.order, name)
		}
	}

	s.roster = &models.Roster{Names: names}
	return nil
}

// ApplyDeal scores one deal line against the active roster and folds the
// settlement into the players' running totals. Every seated player's games
// played count increases by one, winners' games won by one, and net scores
// by the zero-sum deltas.
func (s *Session) ApplyDeal(tokens []string) error {
	if s.roster == nil {
		return fmt.Errorf("players must be specified before a game")
	}
	if len(tokens) != s.roster.Size() {
		return fmt.Errorf("%d scores given for %d players", len(tokens), s.roster.Size())
	}

	outcome, err := scoring.Classify(tokens)
	if err != nil {
		return err
	}
	settlement := scoring.Settle(outcome, s.roster.Size(), s.maxFaan)

	for seat, name := range s.roster.Names {
		p := s.players[name]
		p.GamesPlayed++
		p.GamesWon += settlement.WinFlags[seat]
		p.NetScore += settlement.Deltas[seat]
	}
	return nil
}

// Finalize computes the derived rates for every player and returns the
// standings sorted by descending net score, ties broken by ascending name.
// The sort key is the raw integer net score, before any rounding of the
// displayed rates. Rates are undefined for a player with no games played
// and the row is flagged accordingly rather than dividing by zero.
func (s *Session) Finalize() []models.ReportRow {
	rows := make([]models.ReportRow, 0, len(s.order))
	for _, name := range s.order {
		p := s.players[name]
		row := models.ReportRow{
			Player:      p.Name,
			GamesPlayed: p.GamesPlayed,
			GamesWon:    p.GamesWon,
			NetScore:    p.NetScore,
		}
		if p.GamesPlayed > 0 {
			row.RatesDefined = true
			row.GamesWonPc = int(math.Round(float64(p.GamesWon) / float64(p.GamesPlayed) * 100))
			avg := float64(p.NetScore) / float64(p.GamesPlayed)
			row.NetScoreAvg = math.Round(avg*10) / 10
		}
		rows = append(rows, row)
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].NetScore != rows[j].NetScore {
			return rows[i].NetScore > rows[j].NetScore
		}
		return rows[i].Player < rows[j].Player
	})

	return rows
}
