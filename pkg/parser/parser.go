// Package parser provides line classification for plain-text Mahjong score
// ledgers and text extraction for ledgers exported to PDF
package parser

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/myusername/mahjong-score-parser/pkg/stats"
)

// Regular expression for a line specifying player names. A name cannot
// begin with a digit and cannot contain whitespace, commas or hyphens; the
// fourth name is optional (3-player games omit it).
var rosterRegex = regexp.MustCompile(
	`^([^0-9\s,\-][^\s,\-]*)\s+` +
		`([^0-9\s,\-][^\s,\-]*)\s+` +
		`([^0-9\s,\-][^\s,\-]*)` +
		`(?:\s+([^0-9\s,\-][^\s,\-]*))?$`,
)

// Regular expression for a line specifying a deal. Each token is a
// non-negative integer (the winning number of faan) or one of d, t, f, -;
// the fourth token is optional.
var dealRegex = regexp.MustCompile(
	`^([0-9]+|[dtf\-])\s+` +
		`([0-9]+|[dtf\-])\s+` +
		`([0-9]+|[dtf\-])` +
		`(?:\s+([0-9]+|[dtf\-]))?$`,
)

// Regular expression for a line specifying a date (digits only)
var dateRegex = regexp.MustCompile(`^[0-9]+$`)

// StripComment removes a # comment and leading/trailing whitespace from a
// raw ledger line
func StripComment(line string) string {
	if i := strings.Index(line, "#"); i >= 0 {
		line = line[:i]
	}
	return strings.TrimSpace(line)
}

// ParseDate reports whether a line specifies a date, returning the date as
// a yyyymmdd integer. Only the first 8 digits are significant; extra digits
// are permitted but ignored.
func ParseDate(line string) (int, bool) {
	if line == "" || !dateRegex.MatchString(line) {
		return 0, false
	}
	digits := line
	if len(digits) > 8 {
		digits = digits[:8]
	}
	yyyymmdd, err := strconv.Atoi(digits)
	if err != nil {
		return 0, false
	}
	return yyyymmdd, true
}

// ParseRoster reports whether a line specifies player names, returning the
// 3 or 4 names in seat order
func ParseRoster(line string) ([]string, bool) {
	match := rosterRegex.FindStringSubmatch(line)
	if match == nil {
		return nil, false
	}
	names := match[1:4]
	if match[4] != "" {
		names = append(names, match[4])
	}
	return names, true
}

// ParseDeal reports whether a line specifies a deal, returning the 3 or 4
// outcome tokens in seat order
func ParseDeal(line string) ([]string, bool) {
	match := dealRegex.FindStringSubmatch(line)
	if match == nil {
		return nil, false
	}
	tokens := match[1:4]
	if match[4] != "" {
		tokens = append(tokens, match[4])
	}
	return tokens, true
}

// ProcessLedger feeds a ledger's text line by line into a session. Date
// lines update the session's date window; roster and deal lines inside the
// window are registered and scored; anything else non-blank is a fatal
// error naming the source and its 1-based line number. Lines outside the
// date window are skipped without validation.
func ProcessLedger(text, sourceName string, session *stats.Session) error {
	for lineNum, rawLine := range strings.Split(text, "\n") {
		lineNum++
		line := StripComment(rawLine)

		// A date line updates window membership and nothing else
		if yyyymmdd, ok := ParseDate(line); ok {
			session.SetDate(yyyymmdd)
			continue
		}

		// Outside the date window the line is ignored entirely
		if !session.InRange() {
			continue
		}

		if names, ok := ParseRoster(line); ok {
			if err := session.RegisterRoster(names); err != nil {
				return fmt.Errorf("line %d of %s: %w", lineNum, sourceName, err)
			}
			continue
		}

		if tokens, ok := ParseDeal(line); ok {
			if err := session.ApplyDeal(tokens); err != nil {
				return fmt.Errorf("line %d of %s: %w", lineNum, sourceName, err)
			}
			continue
		}

		if line != "" {
			return fmt.Errorf(
				"line %d of %s: does not properly specify one of date, players or game",
				lineNum, sourceName,
			)
		}
	}

	return nil
}

// ReadPDFText reads a PDF ledger and returns its text content
func ReadPDFText(pdfPath string) (string, error) {
	// Open the PDF file
	f, r, err := pdf.Open(pdfPath)
	if err != nil {
		return "", fmt.Errorf("error opening PDF: %w", err)
	}
	defer f.Close()

	// Extract plain text from the PDF
	plainText, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("error extracting text from PDF: %w", err)
	}

	// Read the content into a string
	bytes, err := io.ReadAll(plainText)
	if err != nil {
		return "", fmt.Errorf("error reading plain text from PDF: %w", err)
	}

	return string(bytes), nil
}
