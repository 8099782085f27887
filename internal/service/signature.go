package service

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"github.com/readersim/readersim/models"
)

// signatureIDLimit bounds how many leading item ids feed a page signature.
const signatureIDLimit = 10

// pageSignature fingerprints a fetched page for loop detection: the token the
// request was sent with plus the ordered leading item ids. Two fetches that
// produce the same signature within one run mean the server is re-serving the
// same page. Signatures are session-scoped and never persisted.
func pageSignature(sent models.SyncToken, ids []string) string {
	if len(ids) > signatureIDLimit {
		ids = ids[:signatureIDLimit]
	}

	h := sha256.New()
	h.Write([]byte(sent))
	for _, id := range ids {
		h.Write([]byte{0})
		h.Write([]byte(id))
	}
	return hex.EncodeToString(h.Sum(nil))
}

// signatureIDs extracts stable identifiers from raw page items for the
// signature. Extraction is deliberately tolerant: loop detection must work
// even on pages whose content would later fail strict parsing, so malformed
// items are simply skipped.
func signatureIDs(items []json.RawMessage) []string {
	ids := make([]string, 0, min(len(items), signatureIDLimit))

	for _, raw := range items {
		if len(ids) == signatureIDLimit {
			break
		}

		var item models.SyncItem
		if err := json.Unmarshal(raw, &item); err != nil {
			continue
		}

		if ent := firstEntitlement(item); ent != nil && ent.BookEntitlement.ID != "" {
			ids = append(ids, ent.BookEntitlement.ID)
			continue
		}
		if tag := firstTag(item); tag != nil && tag.Tag.ID != "" {
			ids = append(ids, tag.Tag.ID)
		}
	}

	return ids
}

func firstEntitlement(item models.SyncItem) *models.EntitlementItem {
	switch {
	case item.NewEntitlement != nil:
		return item.NewEntitlement
	case item.ChangedEntitlement != nil:
		return item.ChangedEntitlement
	case item.DeletedEntitlement != nil:
		return item.DeletedEntitlement
	}
	return nil
}

func firstTag(item models.SyncItem) *models.TagItem {
	switch {
	case item.NewTag != nil:
		return item.NewTag
	case item.ChangedTag != nil:
		return item.ChangedTag
	case item.DeletedTag != nil:
		return item.DeletedTag
	}
	return nil
}
