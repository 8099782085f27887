package service

import (
	"errors"
	"fmt"

	"github.com/readersim/readersim/models"
)

// Continuation-contract anomalies. A ProtocolError wraps exactly one of
// these; callers match with [errors.Is].
var (
	// ErrMissingToken means the server signalled "continue" without
	// supplying a next sync token. This is the literal failure mode a buggy
	// server exhibits; a real device retries and loops forever here.
	ErrMissingToken = errors.New("server signalled continue without a next sync token")

	// ErrRepeatedPage means the server returned a page identical (same sent
	// token, same leading item ids) to one seen earlier in this run.
	ErrRepeatedPage = errors.New("repeated sync page detected")

	// ErrPageLimitExceeded means the run fetched the configured maximum
	// number of pages without a completion signal.
	ErrPageLimitExceeded = errors.New("page limit exceeded without sync completion")
)

// ProtocolError reports a violation of the continuation contract. It carries
// the page number and the tokens involved, because diagnosing exactly where a
// server's pagination went wrong is the reason this client exists.
type ProtocolError struct {
	// Anomaly is one of the sentinel anomalies above.
	Anomaly error
	// Page is the 1-based page number at which the anomaly occurred.
	Page int
	// SentToken is the token the request was made with.
	SentToken models.SyncToken
	// NextToken is the token the response carried, if any.
	NextToken models.SyncToken
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("protocol error at page %d (sent_token=%q next_token=%q): %v",
		e.Page, e.SentToken.Abbrev(), e.NextToken.Abbrev(), e.Anomaly)
}

func (e *ProtocolError) Unwrap() error {
	return e.Anomaly
}

// ParseError reports malformed page content. The page it refers to was not
// merged at all; the device state is unchanged for that page.
type ParseError struct {
	// Page is the 1-based page number whose content failed to parse.
	Page int
	// Item is the 0-based index of the offending item, or -1 when the page
	// as a whole was malformed.
	Item int
	// Err is the underlying decode failure.
	Err error
}

func (e *ParseError) Error() string {
	if e.Item < 0 {
		return fmt.Sprintf("parse error at page %d: %v", e.Page, e.Err)
	}
	return fmt.Sprintf("parse error at page %d item %d: %v", e.Page, e.Item, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
