// Copyright (c) 2026 Linkmark. All rights reserved.
// Author: duc.haminh.dev@gmail.com

package bookmark

import "context"

// Store is the persistence contract for bookmarks.
//
// # Implementations
//
//   - [PostgresStore]: the primary relational storage.
//   - [CachedStore]: a decorator adding Redis-backed total caching.
type Store interface {
	// Create persists a new bookmark.
	Create(ctx context.Context, bookmark *Bookmark) error

	// FindByID retrieves one bookmark, or apperr.NotFound.
	FindByID(ctx context.Context, id string) (*Bookmark, error)

	// List returns one page of bookmarks matching the filter, newest first.
	List(ctx context.Context, filter Filter, limit, offset int) ([]Bookmark, error)

	// Count returns the total number of bookmarks matching the filter.
	Count(ctx context.Context, filter Filter) (int, error)

	// Delete removes one bookmark, or apperr.NotFound when absent.
	Delete(ctx context.Context, id string) error
}
