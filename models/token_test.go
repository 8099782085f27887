package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSyncToken_IsEmpty(t *testing.T) {
	assert.True(t, EmptySyncToken.IsEmpty())
	assert.True(t, ParseSyncToken("").IsEmpty())
	assert.False(t, ParseSyncToken("abc").IsEmpty())
}

func TestSyncToken_Equal(t *testing.T) {
	tests := []struct {
		name     string
		a, b     SyncToken
		expected bool
	}{
		{name: "both empty", a: "", b: "", expected: true},
		{name: "same value", a: "tok-1", b: "tok-1", expected: true},
		{name: "different values", a: "tok-1", b: "tok-2", expected: false},
		{name: "empty vs non-empty", a: "", b: "tok-1", expected: false},
		{name: "exact comparison, no trimming", a: "tok-1 ", b: "tok-1", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.a.Equal(tt.b))
		})
	}
}

func TestSyncToken_RoundTrip(t *testing.T) {
	// The token is opaque: whatever the server sent must survive unchanged,
	// including values that look like encodings or contain padding.
	raws := []string{
		"",
		"plain",
		"eyJ2ZXJzaW9uIjoiMS0xLTAifQ==",
		"with spaces and ☃",
	}

	for _, raw := range raws {
		token := ParseSyncToken(raw)
		assert.Equal(t, raw, token.String())
		assert.Equal(t, token, ParseSyncToken(token.String()))
	}
}

func TestSyncToken_Abbrev(t *testing.T) {
	assert.Equal(t, "short", ParseSyncToken("short").Abbrev())

	long := ParseSyncToken("0123456789abcdef0123456789abcdef")
	assert.Equal(t, "0123456789abcdef...", long.Abbrev())
}
