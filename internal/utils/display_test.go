package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/myusername/mahjong-score-parser/pkg/models"
)

func TestSaveReportToCSV(t *testing.T) {
	rows := []models.ReportRow{
		{
			Player: "Alice", GamesPlayed: 3, GamesWon: 2, NetScore: 100,
			GamesWonPc: 67, NetScoreAvg: 33.3, RatesDefined: true,
		},
		{
			Player: "Bob", GamesPlayed: 3, GamesWon: 0, NetScore: -100,
			GamesWonPc: 0, NetScoreAvg: -33.3, RatesDefined: true,
		},
		{
			Player: "Carol", GamesPlayed: 0,
		},
	}

	path := filepath.Join(t.TempDir(), "scores.csv")
	require.NoError(t, SaveReportToCSV(rows, path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	want := "player,games_played,games_won,net_score,games_won_pc,net_score_avg\n" +
		"Alice,3,2,100,67,33.3\n" +
		"Bob,3,0,-100,0,-33.3\n" +
		"Carol,0,0,0,NaN,NaN\n"
	require.Equal(t, want, string(content))
}
