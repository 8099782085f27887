// SPDX-License-Identifier: Apache-2.0

package models

import (
	"fmt"
	"strings"
	"time"
)

// ReadingStatus mirrors the status values the device reports back to the
// server. The wire strings must match the server's expectations exactly.
type ReadingStatus string

const (
	StatusNotStarted ReadingStatus = "ReadyToRead"
	StatusReading    ReadingStatus = "Reading"
	StatusFinished   ReadingStatus = "Finished"
)

// Book is one synced library entry as the device models it.
//
// Deleted marks a tombstone received from the server: the merge step consumes
// it by removing the book from the device state, it is never stored.
type Book struct {
	ID           string            `json:"id"`
	Title        string            `json:"title"`
	Authors      []string          `json:"authors,omitempty"`
	Series       string            `json:"series,omitempty"`
	SeriesIndex  float64           `json:"series_index,omitempty"`
	Publisher    string            `json:"publisher,omitempty"`
	Description  string            `json:"description,omitempty"`
	Language     string            `json:"language,omitempty"`
	CoverURL     string            `json:"cover_url,omitempty"`
	DownloadURLs map[string]string `json:"download_urls,omitempty"`
	FileSize     int64             `json:"file_size,omitempty"`
	LastModified time.Time         `json:"last_modified,omitzero"`

	ReadingStatus   ReadingStatus `json:"reading_status,omitempty"`
	ReadingProgress float64       `json:"reading_progress,omitempty"`

	Deleted bool `json:"-"`
}

// String renders a one-line description for shell output.
func (b Book) String() string {
	authors := "Unknown"
	if len(b.Authors) > 0 {
		authors = strings.Join(b.Authors, ", ")
	}

	status := fmt.Sprintf("[%s]", b.ReadingStatus)
	if b.ReadingProgress > 0 {
		status = fmt.Sprintf("[%d%%]", int(b.ReadingProgress*100))
	}

	series := ""
	if b.Series != "" {
		series = fmt.Sprintf(" (%s #%g)", b.Series, b.SeriesIndex)
	}

	return fmt.Sprintf("%s%s by %s %s", b.Title, series, authors, status)
}
