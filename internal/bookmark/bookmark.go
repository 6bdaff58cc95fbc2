// Copyright (c) 2026 Linkmark. All rights reserved.
// Author: duc.haminh.dev@gmail.com

/*
Package bookmark implements the bookmark catalogue: the domain entity, its
storage contracts, the business-logic service, and the HTTP delivery layer.

Its list endpoint is the reference consumer of the pagination header
pipeline: every page of bookmarks is returned with RFC 5988 Link headers
plus Total / Per-Page counts derived from the collection totals.
*/
package bookmark

import "time"

// Bookmark is a saved web link with user-facing metadata.
type Bookmark struct {
	// ID is a time-ordered UUIDv7.
	ID string `json:"id"`

	// Title is the display name of the bookmark.
	Title string `json:"title"`

	// URL is the absolute target address. Unique per collection.
	URL string `json:"url"`

	// Tags are free-form labels used for filtered listing.
	Tags []string `json:"tags"`

	// Notes is optional free text.
	Notes string `json:"notes,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Filter narrows a bookmark listing.
//
// Zero-valued fields mean "no restriction"; the same filter value must be
// used for both the page query and the total count so that the pagination
// headers describe the filtered collection, not the whole table.
type Filter struct {
	// Tags restricts results to bookmarks carrying every listed tag.
	Tags []string

	// Search restricts results to titles containing the term (case-insensitive).
	Search string
}
