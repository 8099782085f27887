// SPDX-License-Identifier: Apache-2.0

package models

import (
	"fmt"
	"sort"
)

// Collection is a named shelf of book ids. Membership is a set: BookIDs is
// kept sorted and deduplicated so that replaying the same server delta is a
// no-op and snapshots compare byte-for-byte.
//
// Members may reference a book id that is not (or no longer) present in the
// device state, e.g. when the server emits the collection change before the
// matching book delete. That is tolerated, not an error.
type Collection struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	BookIDs []string `json:"book_ids,omitempty"`
}

// NormalizeMembers sorts and deduplicates the membership set in place.
func (c *Collection) NormalizeMembers() {
	if len(c.BookIDs) == 0 {
		return
	}

	seen := make(map[string]struct{}, len(c.BookIDs))
	out := c.BookIDs[:0]
	for _, id := range c.BookIDs {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	sort.Strings(out)
	c.BookIDs = out
}

// Contains reports whether the collection references the given book id.
func (c *Collection) Contains(bookID string) bool {
	for _, id := range c.BookIDs {
		if id == bookID {
			return true
		}
	}
	return false
}

// String renders a one-line description for shell output.
func (c Collection) String() string {
	return fmt.Sprintf("%s (%d books)", c.Name, len(c.BookIDs))
}
