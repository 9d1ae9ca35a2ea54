// Package scraper provides functionality to fetch a score ledger published
// at a URL and extract its plain text from the HTML
package scraper

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// FetchURL downloads the HTML content from a URL and returns it as a string
func FetchURL(url string) (string, error) {
	log.Printf("Fetching URL: %s", url)

	// Create an HTTP client with a timeout
	client := &http.Client{
		Timeout: 30 * time.Second,
	}

	// Send the HTTP request
	resp, err := client.Get(url)
	if err != nil {
		return "", fmt.Errorf("error fetching URL: %w", err)
	}
	defer resp.Body.Close()

	// Check the response status code
	log.Printf("HTTP Status: %d (%s)", resp.StatusCode, resp.Status)
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("non-200 status code: %d %s", resp.StatusCode, resp.Status)
	}

	// Read the response body
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("error reading response body: %w", err)
	}

	return string(body), nil
}

// ExtractLedgerText extracts the ledger's plain text from an HTML page.
// Ledgers published on the web normally live inside <pre> blocks; if none
// are present the page's body text is used as-is.
func ExtractLedgerText(htmlContent string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return "", fmt.Errorf("error parsing HTML content: %w", err)
	}

	// Collect text from all <pre> blocks first
	var blocks []string
	doc.Find("pre").Each(func(i int, s *goquery.Selection) {
		blocks = append(blocks, s.Text())
	})
	if len(blocks) > 0 {
		log.Printf("Extracted ledger text from %d <pre> block(s)", len(blocks))
		return strings.Join(blocks, "\n"), nil
	}

	// Fall back to the body text
	log.Println("No <pre> blocks found, using body text")
	return doc.Find("body").Text(), nil
}
