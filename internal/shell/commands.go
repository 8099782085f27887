package shell

import (
	"bufio"
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/readersim/readersim/models"
)

func (s *Shell) cmdSync(ctx context.Context, full bool) {
	mode := models.SyncIncremental
	if full {
		mode = models.SyncFull
		fmt.Fprintln(s.out, "Performing full sync (ignoring sync token)...")
	} else {
		fmt.Fprintln(s.out, "Performing incremental sync...")
	}

	stats, err := s.engine.Sync(ctx, mode)
	if err != nil {
		s.printErr(fmt.Errorf("sync failed: %w", err))
		// Partial counters still help diagnose where the server broke.
		if stats.Pages > 0 {
			fmt.Fprintln(s.out, helpStyle.Render(formatStats(stats)))
		}
		return
	}

	s.printOK("Sync complete!")
	fmt.Fprintln(s.out, formatStats(stats))

	if s.autoStatePath != "" {
		if err := s.store.Save(s.state, s.autoStatePath); err != nil {
			s.printErr(fmt.Errorf("auto-save failed: %w", err))
			return
		}
		fmt.Fprintf(s.out, "  State saved: %s\n", s.autoStatePath)
	}
}

func formatStats(stats models.SyncStats) string {
	return fmt.Sprintf("  Books: +%d ~%d -%d\n  Collections: +%d ~%d -%d\n  Pages: %d (%s)",
		stats.BooksAdded, stats.BooksUpdated, stats.BooksRemoved,
		stats.CollectionsAdded, stats.CollectionsUpdated, stats.CollectionsRemoved,
		stats.Pages, stats.Elapsed.Round(time.Millisecond))
}

func (s *Shell) cmdBooks(search string) {
	books := s.matchBooks(search)
	if len(books) == 0 {
		fmt.Fprintln(s.out, "No books found.")
		return
	}

	fmt.Fprintln(s.out, headerStyle.Render(fmt.Sprintf("%-40s %-25s %-12s", "Title", "Author", "Status")))
	for _, b := range books {
		fmt.Fprintf(s.out, "%-40s %-25s %-12s\n",
			truncate(b.Title, 40), truncate(strings.Join(b.Authors, ", "), 25), bookStatus(b))
	}
	fmt.Fprintf(s.out, "\nTotal: %d books\n", len(books))
}

func (s *Shell) cmdCollections() {
	if len(s.state.Collections) == 0 {
		fmt.Fprintln(s.out, "No collections synced.")
		return
	}

	cols := make([]models.Collection, 0, len(s.state.Collections))
	for _, c := range s.state.Collections {
		cols = append(cols, c)
	}
	sort.Slice(cols, func(i, j int) bool {
		return strings.ToLower(cols[i].Name) < strings.ToLower(cols[j].Name)
	})

	fmt.Fprintln(s.out, headerStyle.Render(fmt.Sprintf("%-40s %-10s", "Collection", "Books")))
	for _, c := range cols {
		fmt.Fprintf(s.out, "%-40s %-10d\n", truncate(c.Name, 40), len(c.BookIDs))
	}
	fmt.Fprintf(s.out, "\nTotal: %d collections\n", len(cols))
}

func (s *Shell) cmdCollection(name string) {
	if name == "" {
		fmt.Fprintln(s.out, "Usage: collection <name>")
		return
	}

	var match *models.Collection
	lower := strings.ToLower(name)
	for _, c := range s.state.Collections {
		if strings.Contains(strings.ToLower(c.Name), lower) {
			col := c
			match = &col
			break
		}
	}
	if match == nil {
		s.printErr(fmt.Errorf("collection %q not found", name))
		return
	}

	fmt.Fprintln(s.out, headerStyle.Render("Collection: "+match.Name))
	for _, id := range match.BookIDs {
		if book, ok := s.state.Books[id]; ok {
			fmt.Fprintf(s.out, "  • %s\n", book.Title)
		} else {
			fmt.Fprintf(s.out, "  • [Unknown: %s]\n", truncate(id, 8))
		}
	}
	fmt.Fprintf(s.out, "\nTotal: %d books\n", len(match.BookIDs))
}

func (s *Shell) cmdBook(title string) {
	title = strings.Trim(title, `"'`)
	if title == "" {
		fmt.Fprintln(s.out, "Usage: book <title>")
		return
	}

	matches := s.matchBooks(title)
	if len(matches) == 0 {
		s.printErr(fmt.Errorf("no books matching %q found", title))
		return
	}
	if len(matches) > 1 {
		fmt.Fprintf(s.out, "Found %d books matching %q; showing first match:\n", len(matches), title)
	}

	b := matches[0]
	fmt.Fprintln(s.out, headerStyle.Render(b.Title))
	fmt.Fprintf(s.out, "Authors:   %s\n", orUnknown(strings.Join(b.Authors, ", ")))
	if b.Series != "" {
		fmt.Fprintf(s.out, "Series:    %s #%g\n", b.Series, b.SeriesIndex)
	}
	fmt.Fprintf(s.out, "Publisher: %s\n", orUnknown(b.Publisher))
	fmt.Fprintf(s.out, "Language:  %s\n", orUnknown(b.Language))
	fmt.Fprintf(s.out, "ID:        %s\n", b.ID)
	fmt.Fprintf(s.out, "Status:    %s\n", bookStatus(b))
	formats := make([]string, 0, len(b.DownloadURLs))
	for f := range b.DownloadURLs {
		formats = append(formats, f)
	}
	sort.Strings(formats)
	fmt.Fprintf(s.out, "Formats:   %s\n", orUnknown(strings.Join(formats, ", ")))
}

func (s *Shell) cmdProgress(ctx context.Context, arg string) {
	pctStr, title, _ := strings.Cut(arg, " ")
	pct, err := strconv.Atoi(pctStr)
	if err != nil || pct < 0 || pct > 100 || strings.TrimSpace(title) == "" {
		fmt.Fprintln(s.out, "Usage: progress <0-100> <title>")
		return
	}

	matches := s.matchBooks(strings.TrimSpace(title))
	if len(matches) == 0 {
		s.printErr(fmt.Errorf("no books matching %q found", title))
		return
	}

	book := matches[0]
	progress := float64(pct) / 100
	status := models.StatusReading
	switch pct {
	case 0:
		status = models.StatusNotStarted
	case 100:
		status = models.StatusFinished
	}

	if err := s.library.UpdateReadingState(ctx, book.ID, progress, status); err != nil {
		s.printErr(fmt.Errorf("update reading state: %w", err))
		return
	}

	book.ReadingProgress = progress
	book.ReadingStatus = status
	s.state.Books[book.ID] = book
	s.printOK(fmt.Sprintf("%s: %d%% (%s)", book.Title, pct, status))
}

func (s *Shell) cmdStatus() {
	fmt.Fprintln(s.out, s.state.Summary())
	fmt.Fprintf(s.out, "Sync Token Empty: %v\n", s.state.Token.IsEmpty())
}

func (s *Shell) cmdToken() {
	if s.state.Token.IsEmpty() {
		fmt.Fprintln(s.out, "Sync token is empty (next sync will be a full sync).")
		return
	}
	fmt.Fprintf(s.out, "Sync Token: %s\n", s.state.Token.Abbrev())
}

func (s *Shell) cmdReset(scanner *bufio.Scanner) {
	fmt.Fprint(s.out, "This will clear all synced data. Continue? [y/N] ")
	if !scanner.Scan() || !strings.EqualFold(strings.TrimSpace(scanner.Text()), "y") {
		fmt.Fprintln(s.out, "Cancelled.")
		return
	}

	s.state.Reset()
	s.printOK("Device state reset.")
}

func (s *Shell) cmdSave(path string) {
	if path == "" {
		path = s.autoStatePath
	}
	if path == "" {
		fmt.Fprintln(s.out, "Usage: save <file> (no auto-state path configured)")
		return
	}

	if err := s.store.Save(s.state, path); err != nil {
		s.printErr(fmt.Errorf("save failed: %w", err))
		return
	}
	s.printOK("State saved to " + path)
}

func (s *Shell) cmdLoad(path string) {
	if path == "" {
		path = s.autoStatePath
	}
	if path == "" {
		fmt.Fprintln(s.out, "Usage: load <file> (no auto-state path configured)")
		return
	}

	loaded, err := s.store.Load(path)
	if err != nil {
		s.printErr(fmt.Errorf("load failed: %w", err))
		return
	}
	if loaded.DeviceID == "" {
		loaded.DeviceID = s.state.DeviceID
	}

	*s.state = *loaded
	s.printOK("State loaded from " + path)
}

// matchBooks returns books whose title or author contains the query
// (case-insensitive), sorted by title. An empty query matches everything.
func (s *Shell) matchBooks(query string) []models.Book {
	query = strings.ToLower(query)

	books := make([]models.Book, 0, len(s.state.Books))
	for _, b := range s.state.Books {
		if query == "" || strings.Contains(strings.ToLower(b.Title), query) || authorMatches(b, query) {
			books = append(books, b)
		}
	}
	sort.Slice(books, func(i, j int) bool {
		return strings.ToLower(books[i].Title) < strings.ToLower(books[j].Title)
	})
	return books
}

func authorMatches(b models.Book, query string) bool {
	for _, a := range b.Authors {
		if strings.Contains(strings.ToLower(a), query) {
			return true
		}
	}
	return false
}

func bookStatus(b models.Book) string {
	if b.ReadingProgress > 0 {
		return fmt.Sprintf("%d%%", int(b.ReadingProgress*100))
	}
	return string(b.ReadingStatus)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-2] + ".."
}

func orUnknown(s string) string {
	if s == "" {
		return "Unknown"
	}
	return s
}
