package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/readersim/readersim/models"
)

var (
	errEntitlementWithoutID = errors.New("entitlement carries no book id")
	errTagWithoutID         = errors.New("tag carries no collection id")
)

// parsePage strictly converts raw page items into a merge-ready delta.
//
// Parsing is all-or-nothing: any malformed item fails the whole page with a
// [ParseError] before the merge step runs, so the device state is never
// partially mutated by a bad page. Items whose shape is unknown (none of the
// six change keys present) are skipped for forward compatibility, the same
// way a real device ignores feed entries it does not understand.
func parsePage(page int, items []json.RawMessage) (models.PageDelta, error) {
	var delta models.PageDelta

	for i, raw := range items {
		var item models.SyncItem
		if err := json.Unmarshal(raw, &item); err != nil {
			return models.PageDelta{}, &ParseError{Page: page, Item: i, Err: err}
		}

		if err := applyItem(&delta, item); err != nil {
			return models.PageDelta{}, &ParseError{Page: page, Item: i, Err: err}
		}
	}

	return delta, nil
}

func applyItem(delta *models.PageDelta, item models.SyncItem) error {
	switch {
	case item.NewEntitlement != nil:
		return appendBookUpsert(delta, item.NewEntitlement)
	case item.ChangedEntitlement != nil:
		return appendBookUpsert(delta, item.ChangedEntitlement)
	case item.DeletedEntitlement != nil:
		id := item.DeletedEntitlement.BookEntitlement.ID
		if id == "" {
			return errEntitlementWithoutID
		}
		delta.BookDeletes = append(delta.BookDeletes, id)
	case item.NewTag != nil:
		return appendCollectionUpsert(delta, item.NewTag)
	case item.ChangedTag != nil:
		return appendCollectionUpsert(delta, item.ChangedTag)
	case item.DeletedTag != nil:
		id := item.DeletedTag.Tag.ID
		if id == "" {
			return errTagWithoutID
		}
		delta.CollectionDeletes = append(delta.CollectionDeletes, id)
	}
	// Unknown item shape: skipped.
	return nil
}

func appendBookUpsert(delta *models.PageDelta, ent *models.EntitlementItem) error {
	book, err := bookFromEntitlement(ent)
	if err != nil {
		return err
	}
	delta.BookUpserts = append(delta.BookUpserts, book)
	return nil
}

func appendCollectionUpsert(delta *models.PageDelta, tag *models.TagItem) error {
	col, err := collectionFromTag(tag)
	if err != nil {
		return err
	}
	delta.CollectionUpserts = append(delta.CollectionUpserts, col)
	return nil
}

func bookFromEntitlement(ent *models.EntitlementItem) (models.Book, error) {
	id := ent.BookEntitlement.ID
	if id == "" {
		return models.Book{}, errEntitlementWithoutID
	}

	meta := ent.BookMetadata

	var authors []string
	for _, c := range meta.ContributorRoles {
		if c.Role == "Author" && c.Name != "" {
			authors = append(authors, c.Name)
		}
	}

	var downloads map[string]string
	for _, link := range meta.DownloadURLs {
		if link.Format == "" || link.URL == "" {
			continue
		}
		if downloads == nil {
			downloads = make(map[string]string, len(meta.DownloadURLs))
		}
		downloads[link.Format] = link.URL
	}

	book := models.Book{
		ID:            id,
		Title:         meta.Title,
		Authors:       authors,
		Publisher:     publisherName(meta.Publisher),
		Description:   meta.Description,
		Language:      meta.Language,
		CoverURL:      meta.CoverImageURL,
		DownloadURLs:  downloads,
		FileSize:      meta.FileSize,
		ReadingStatus: models.StatusNotStarted,
	}
	if book.Title == "" {
		book.Title = "Unknown"
	}
	if meta.Series != nil {
		book.Series = meta.Series.Name
		book.SeriesIndex = meta.Series.Number
	}
	if ent.BookEntitlement.LastModified != "" {
		ts, err := time.Parse(time.RFC3339, ent.BookEntitlement.LastModified)
		if err != nil {
			return models.Book{}, fmt.Errorf("book %s last modified: %w", id, err)
		}
		book.LastModified = ts
	}

	return book, nil
}

func collectionFromTag(tag *models.TagItem) (models.Collection, error) {
	id := tag.Tag.ID
	if id == "" {
		return models.Collection{}, errTagWithoutID
	}

	col := models.Collection{
		ID:   id,
		Name: tag.Tag.Name,
	}
	if col.Name == "" {
		col.Name = "Unknown"
	}
	for _, member := range tag.Tag.Items {
		if member.RevisionID != "" {
			col.BookIDs = append(col.BookIDs, member.RevisionID)
		}
	}

	return col, nil
}

func publisherName(p *models.PublisherInfo) string {
	if p == nil {
		return ""
	}
	return p.Name
}
