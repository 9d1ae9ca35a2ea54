// Package main is the entry point for the mahjong-score-parser application
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/myusername/mahjong-score-parser/internal/utils"
	"github.com/myusername/mahjong-score-parser/pkg/parser"
	"github.com/myusername/mahjong-score-parser/pkg/scraper"
	"github.com/myusername/mahjong-score-parser/pkg/stats"
)

// Version is set during build using ldflags
var (
	version = "dev"
)

// txtSuffixRegex strips an optional trailing "." or ".txt" from the scores
// file argument
var txtSuffixRegex = regexp.MustCompile(`\.(txt)?$`)

func main() {
	// Define command-line flags
	var maxFaan, startDate, endDate int
	versionFlag := flag.Bool("version", false, "Print version information and exit")
	flag.IntVar(&maxFaan, "max", stats.DefaultMaxFaan, "Maximum number of faan")
	flag.IntVar(&maxFaan, "m", stats.DefaultMaxFaan, "Maximum number of faan (shorthand)")
	flag.IntVar(&startDate, "start", stats.DefaultStartDate, "Start date (yyyymmdd, inclusive)")
	flag.IntVar(&startDate, "s", stats.DefaultStartDate, "Start date (shorthand)")
	flag.IntVar(&endDate, "end", stats.DefaultEndDate, "End date (yyyymmdd, inclusive)")
	flag.IntVar(&endDate, "e", stats.DefaultEndDate, "End date (shorthand)")
	outputFlag := flag.String("output", "", "Output directory for the CSV file (default: current directory)")
	urlFlag := flag.String("url", "", "Fetch the scores ledger from a URL instead of a file")
	flag.Parse()

	// Print version and exit if requested
	if *versionFlag {
		fmt.Printf("mahjong-score-parser version %s\n", version)
		return
	}

	// Setup logging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.Println("Mahjong score parser starting...")
	log.Printf("Version: %s", version)
	log.Printf("Maximum faan: %d, date window: [%d, %d]", maxFaan, startDate, endDate)

	// Resolve the ledger text, its name for error messages, and the base
	// name of the exported CSV
	text, sourceName, exportBase, err := loadLedger(*urlFlag, flag.Args())
	if err != nil {
		log.Fatalf("Failed to load scores ledger: %v", err)
	}

	// Fold the ledger into per-player statistics
	session := stats.NewSession(maxFaan, startDate, endDate)
	if err := parser.ProcessLedger(text, sourceName, session); err != nil {
		log.Fatalf("Invalid scores ledger: %v", err)
	}

	rows := session.Finalize()
	if len(rows) == 0 {
		log.Println("No players found in the ledger")
	}
	for _, row := range rows {
		if !row.RatesDefined {
			log.Printf("Player %s has no games played; rates reported as NaN", row.Player)
		}
	}

	// Print the standings table
	utils.DisplayReport(rows)

	// Create output directory if specified
	outputDir := "."
	if *outputFlag != "" {
		outputDir = *outputFlag
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			log.Fatalf("Failed to create output directory: %v", err)
		}
		log.Printf("Using output directory: %s", outputDir)
	}

	// Non-default options are recorded in the export file name
	if maxFaan != stats.DefaultMaxFaan {
		exportBase += fmt.Sprintf("-m_%d", maxFaan)
	}
	if startDate != stats.DefaultStartDate {
		exportBase += fmt.Sprintf("-s_%d", startDate)
	}
	if endDate != stats.DefaultEndDate {
		exportBase += fmt.Sprintf("-e_%d", endDate)
	}

	csvPath := filepath.Join(outputDir, exportBase+".csv")
	if err := utils.SaveReportToCSV(rows, csvPath); err != nil {
		log.Fatalf("Failed to write CSV: %v", err)
	}
	log.Printf("Saved statistics to %s", csvPath)
}

// loadLedger returns the ledger text from a URL, a PDF file or a plain-text
// file, along with the name used in parse errors and the base name for the
// exported CSV
func loadLedger(url string, args []string) (text, sourceName, exportBase string, err error) {
	// URL input: fetch the page and extract the ledger text from the HTML
	if url != "" {
		htmlContent, err := scraper.FetchURL(url)
		if err != nil {
			return "", "", "", err
		}
		text, err := scraper.ExtractLedgerText(htmlContent)
		if err != nil {
			return "", "", "", err
		}
		return text, url, "ledger", nil
	}

	if len(args) < 1 {
		return "", "", "", fmt.Errorf("no scores file given (usage: mahjong-stats [flags] scores_file[.[txt]])")
	}
	fileName := args[0]

	// PDF input: flatten the document to plain text
	if strings.HasSuffix(fileName, ".pdf") {
		text, err := parser.ReadPDFText(fileName)
		if err != nil {
			return "", "", "", err
		}
		base := strings.TrimSuffix(filepath.Base(fileName), ".pdf")
		return text, fileName, base, nil
	}

	// Plain-text input: a trailing "." or ".txt" on the argument is
	// tolerated and the .txt extension re-appended
	baseName := txtSuffixRegex.ReplaceAllString(fileName, "")
	txtPath := baseName + ".txt"
	content, err := os.ReadFile(txtPath)
	if err != nil {
		return "", "", "", fmt.Errorf("error reading scores file: %w", err)
	}
	return string(content), txtPath, filepath.Base(baseName), nil
}
