// Package export writes a finished batch of profiles as CSV or JSON.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/scrapsterhq/scrapster/pkg/profile"
)

// csvHeader defines the CSV column order.
var csvHeader = []string{
	"name", "job_title", "company", "email", "profile_url",
	"snippet", "title", "relevance_score", "relevance_reason",
}

// maxSnippetLen truncates long raw text in CSV output so rows stay
// readable in a spreadsheet.
const maxSnippetLen = 500

// CSV writes the batch as CSV with a header row.
func CSV(w io.Writer, batch profile.Batch) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write CSV header: %w", err)
	}

	for _, p := range batch {
		snippet := p.Context.RawText
		if len(snippet) > maxSnippetLen {
			snippet = snippet[:maxSnippetLen]
		}
		row := []string{
			p.Context.Name,
			p.Context.JobTitle,
			p.Context.Company,
			p.Email,
			p.Context.URL,
			snippet,
			p.Context.Title,
			strconv.FormatFloat(p.Relevance.Score, 'f', 2, 64),
			p.Relevance.Reason,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write CSV row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// jsonRecord is the JSON shape of one exported profile.
type jsonRecord struct {
	Name            string  `json:"name"`
	JobTitle        string  `json:"job_title,omitempty"`
	Company         string  `json:"company,omitempty"`
	Email           string  `json:"email,omitempty"`
	ProfileURL      string  `json:"profile_url"`
	Snippet         string  `json:"snippet,omitempty"`
	Title           string  `json:"title,omitempty"`
	RelevanceScore  float64 `json:"relevance_score"`
	RelevanceReason string  `json:"relevance_reason,omitempty"`
}

// JSON writes the batch as an indented JSON array.
func JSON(w io.Writer, batch profile.Batch) error {
	records := make([]jsonRecord, 0, len(batch))
	for _, p := range batch {
		records = append(records, jsonRecord{
			Name:            p.Context.Name,
			JobTitle:        p.Context.JobTitle,
			Company:         p.Context.Company,
			Email:           p.Email,
			ProfileURL:      p.Context.URL,
			Snippet:         p.Context.RawText,
			Title:           p.Context.Title,
			RelevanceScore:  p.Relevance.Score,
			RelevanceReason: p.Relevance.Reason,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}
