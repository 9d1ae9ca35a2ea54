// Package utils provides output helpers for the mahjong-score-parser
package utils

import (
	"fmt"
	"os"
	"strings"

	"github.com/myusername/mahjong-score-parser/pkg/models"
)

// csvHeader is the fixed header row of the exported statistics CSV
const csvHeader = "player,games_played,games_won,net_score,games_won_pc,net_score_avg\n"

// DisplayReport prints the final standings as a fixed-width table
func DisplayReport(rows []models.ReportRow) {
	fmt.Printf("\n=========== MAHJONG STANDINGS ===========\n")
	fmt.Printf("%-20s | %-6s | %-5s | %-9s | %-5s | %-9s\n",
		"Player", "Games", "Wins", "Net", "Win%", "Avg")
	fmt.Printf("%-20s | %-6s | %-5s | %-9s | %-5s | %-9s\n",
		strings.Repeat("-", 20), strings.Repeat("-", 6), strings.Repeat("-", 5),
		strings.Repeat("-", 9), strings.Repeat("-", 5), strings.Repeat("-", 9))

	for _, row := range rows {
		fmt.Printf("%-20s | %6d | %5d | %9d | %5s | %9s\n",
			row.Player, row.GamesPlayed, row.GamesWon, row.NetScore,
			formatWinPc(row), formatAvg(row))
	}

	fmt.Println(strings.Repeat("=", 68))
}

// SaveReportToCSV writes the final standings to a CSV file
func SaveReportToCSV(rows []models.ReportRow, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	// Write CSV header
	_, err = fmt.Fprint(f, csvHeader)
	if err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	// Write player rows
	for _, row := range rows {
		_, err = fmt.Fprintf(f, "%s,%d,%d,%d,%s,%s\n",
			row.Player, row.GamesPlayed, row.GamesWon, row.NetScore,
			formatWinPc(row), formatAvg(row))
		if err != nil {
			return fmt.Errorf("failed to write player data: %w", err)
		}
	}

	return nil
}

// formatWinPc renders the win percentage, or NaN when the player has no
// games played
func formatWinPc(row models.ReportRow) string {
	if !row.RatesDefined {
		return "NaN"
	}
	return fmt.Sprintf("%d", row.GamesWonPc)
}

// formatAvg renders the average net score to 1 decimal place, or NaN when
// the player has no games played
func formatAvg(row models.ReportRow) string {
	if !row.RatesDefined {
		return "NaN"
	}
	return fmt.Sprintf("%.1f", row.NetScoreAvg)
}
