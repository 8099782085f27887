package service

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/readersim/readersim/models"
)

func rawItems(t *testing.T, items ...string) []json.RawMessage {
	t.Helper()
	out := make([]json.RawMessage, 0, len(items))
	for _, it := range items {
		out = append(out, json.RawMessage(it))
	}
	return out
}

const newBookItem = `{
	"NewEntitlement": {
		"BookEntitlement": {"Id": "b1", "LastModified": "2025-06-01T10:00:00Z"},
		"BookMetadata": {
			"Title": "Dune",
			"ContributorRoles": [
				{"Name": "Frank Herbert", "Role": "Author"},
				{"Name": "Someone Else", "Role": "Narrator"}
			],
			"Series": {"Name": "Dune Chronicles", "Number": 1},
			"Publisher": {"Name": "Chilton"},
			"Language": "en",
			"DownloadUrls": [
				{"Format": "KEPUB", "Url": "https://example.com/b1.kepub"},
				{"Format": "", "Url": "https://example.com/ignored"}
			],
			"FileSize": 1024
		}
	}
}`

// ── parsePage ────────────────────────────────────────────────────────────────

func TestParsePage_BookUpsert(t *testing.T) {
	delta, err := parsePage(1, rawItems(t, newBookItem))
	require.NoError(t, err)

	require.Len(t, delta.BookUpserts, 1)
	book := delta.BookUpserts[0]
	assert.Equal(t, "b1", book.ID)
	assert.Equal(t, "Dune", book.Title)
	assert.Equal(t, []string{"Frank Herbert"}, book.Authors)
	assert.Equal(t, "Dune Chronicles", book.Series)
	assert.Equal(t, float64(1), book.SeriesIndex)
	assert.Equal(t, "Chilton", book.Publisher)
	assert.Equal(t, map[string]string{"KEPUB": "https://example.com/b1.kepub"}, book.DownloadURLs)
	assert.Equal(t, models.StatusNotStarted, book.ReadingStatus)
	assert.False(t, book.LastModified.IsZero())
}

func TestParsePage_DeleteAndTags(t *testing.T) {
	delta, err := parsePage(1, rawItems(t,
		`{"DeletedEntitlement": {"BookEntitlement": {"Id": "b9"}}}`,
		`{"NewTag": {"Tag": {"Id": "c1", "Name": "Sci-Fi", "Items": [{"RevisionId": "b1"}, {"RevisionId": ""}]}}}`,
		`{"DeletedTag": {"Tag": {"Id": "c2"}}}`,
	))
	require.NoError(t, err)

	assert.Equal(t, []string{"b9"}, delta.BookDeletes)
	require.Len(t, delta.CollectionUpserts, 1)
	assert.Equal(t, "Sci-Fi", delta.CollectionUpserts[0].Name)
	assert.Equal(t, []string{"b1"}, delta.CollectionUpserts[0].BookIDs)
	assert.Equal(t, []string{"c2"}, delta.CollectionDeletes)
}

func TestParsePage_UnknownItemShapesSkipped(t *testing.T) {
	delta, err := parsePage(1, rawItems(t,
		`{"SomeFutureItem": {"Whatever": true}}`,
		newBookItem,
	))
	require.NoError(t, err)
	assert.Len(t, delta.BookUpserts, 1)
}

func TestParsePage_MalformedItemFailsWholePage(t *testing.T) {
	delta, err := parsePage(4, rawItems(t,
		newBookItem,
		`{"NewEntitlement": {"BookEntitlement": {"Id": ""}}}`,
	))

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, 4, parseErr.Page)
	assert.Equal(t, 1, parseErr.Item)
	assert.True(t, errors.Is(err, errEntitlementWithoutID))
	// All-or-nothing: even the valid leading item yields no delta.
	assert.True(t, delta.Empty())
}

func TestParsePage_InvalidJSON(t *testing.T) {
	_, err := parsePage(2, rawItems(t, `{"NewTag": not-json}`))

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, 2, parseErr.Page)
}

func TestParsePage_BadLastModified(t *testing.T) {
	_, err := parsePage(1, rawItems(t,
		`{"NewEntitlement": {"BookEntitlement": {"Id": "b1", "LastModified": "yesterday"}}}`,
	))

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
}

// ── signatures ───────────────────────────────────────────────────────────────

func TestSignatureIDs_TolerantExtraction(t *testing.T) {
	ids := signatureIDs(rawItems(t,
		`not even json`,
		newBookItem,
		`{"ChangedTag": {"Tag": {"Id": "c1"}}}`,
		`{"DeletedEntitlement": {"BookEntitlement": {"Id": "b2"}}}`,
		`{"UnknownShape": {}}`,
	))

	// Malformed and unknown items are skipped: loop detection must work on
	// pages that would fail strict parsing.
	assert.Equal(t, []string{"b1", "c1", "b2"}, ids)
}

func TestSignatureIDs_Limit(t *testing.T) {
	items := make([]json.RawMessage, 0, signatureIDLimit+5)
	for i := 0; i < signatureIDLimit+5; i++ {
		items = append(items, json.RawMessage(
			`{"ChangedTag": {"Tag": {"Id": "c`+string(rune('a'+i))+`"}}}`))
	}

	assert.Len(t, signatureIDs(items), signatureIDLimit)
}

func TestPageSignature_Deterministic(t *testing.T) {
	a := pageSignature("tok", []string{"b1", "b2"})

	assert.Equal(t, a, pageSignature("tok", []string{"b1", "b2"}))
	assert.NotEqual(t, a, pageSignature("other", []string{"b1", "b2"}))
	assert.NotEqual(t, a, pageSignature("tok", []string{"b2", "b1"}))
	// The id list is a delimited hash input, not a concatenation.
	assert.NotEqual(t, pageSignature("tok", []string{"ab", "c"}), pageSignature("tok", []string{"a", "bc"}))
}
