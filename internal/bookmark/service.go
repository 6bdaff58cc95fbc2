// Copyright (c) 2026 Linkmark. All rights reserved.
// Author: duc.haminh.dev@gmail.com

package bookmark

import (
	"context"

	"github.com/haminhduc/linkmark/internal/platform/validate"
	"github.com/haminhduc/linkmark/pkg/pagination"
	"github.com/haminhduc/linkmark/pkg/uuidv7"
)

// Service implements the bookmark use cases on top of a [Store].
//
// It is technology-agnostic: no HTTP, no SQL, only domain rules.
type Service struct {
	store Store
}

// NewService constructs a new [Service] with its storage dependency.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// CreateInput holds the data required to save a new bookmark.
type CreateInput struct {
	Title string
	URL   string
	Tags  []string
	Notes string
}

// Create validates the input and persists a new bookmark.
//
// # Returns
//   - The newly created [*Bookmark] with a generated UUIDv7 ID.
//   - [apperr.ValidationError] when a rule fails.
//   - [apperr.Conflict] when the URL is already bookmarked.
func (service *Service) Create(ctx context.Context, input CreateInput) (*Bookmark, error) {
	v := &validate.Validator{}
	v.Required("title", input.Title).
		MaxLen("title", input.Title, 200).
		Required("url", input.URL).
		URL("url", input.URL).
		MaxLen("notes", input.Notes, 2000).
		Range("tags", len(input.Tags), 0, 20)
	if err := v.Err(); err != nil {
		return nil, err
	}

	bookmark := &Bookmark{
		ID:    uuidv7.New(),
		Title: input.Title,
		URL:   input.URL,
		Tags:  input.Tags,
		Notes: input.Notes,
	}

	if err := service.store.Create(ctx, bookmark); err != nil {
		return nil, err
	}

	return bookmark, nil
}

// Get retrieves one bookmark by ID.
func (service *Service) Get(ctx context.Context, id string) (*Bookmark, error) {
	return service.store.FindByID(ctx, id)
}

// Delete removes one bookmark by ID.
func (service *Service) Delete(ctx context.Context, id string) error {
	return service.store.Delete(ctx, id)
}

// List returns one page of bookmarks plus the pagination metadata the
// presentation layer needs for both the response envelope and the
// navigation headers.
//
// The same filter drives the page query and the total count, so the
// reported totals always describe the filtered collection.
func (service *Service) List(ctx context.Context, filter Filter, params pagination.Params) ([]Bookmark, pagination.Meta, error) {
	total, err := service.store.Count(ctx, filter)
	if err != nil {
		return nil, pagination.Meta{}, err
	}

	bookmarks, err := service.store.List(ctx, filter, params.Limit, params.Offset())
	if err != nil {
		return nil, pagination.Meta{}, err
	}

	return bookmarks, pagination.NewMeta(params.Page, params.Limit, total), nil
}
