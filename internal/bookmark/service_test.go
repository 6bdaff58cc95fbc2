// Copyright (c) 2026 Linkmark. All rights reserved.
// Author: duc.haminh.dev@gmail.com

package bookmark_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haminhduc/linkmark/internal/bookmark"
	"github.com/haminhduc/linkmark/internal/platform/apperr"
	"github.com/haminhduc/linkmark/pkg/pagination"
)

// fakeStore is an in-memory Store for service tests.
type fakeStore struct {
	bookmarks []bookmark.Bookmark

	countCalls  int
	lastFilter  bookmark.Filter
	lastLimit   int
	lastOffset  int
	failWithErr error
}

func (store *fakeStore) Create(ctx context.Context, b *bookmark.Bookmark) error {
	if store.failWithErr != nil {
		return store.failWithErr
	}
	store.bookmarks = append(store.bookmarks, *b)
	return nil
}

func (store *fakeStore) FindByID(ctx context.Context, id string) (*bookmark.Bookmark, error) {
	for i := range store.bookmarks {
		if store.bookmarks[i].ID == id {
			return &store.bookmarks[i], nil
		}
	}
	return nil, apperr.NotFound("Bookmark")
}

func (store *fakeStore) List(ctx context.Context, filter bookmark.Filter, limit, offset int) ([]bookmark.Bookmark, error) {
	store.lastFilter = filter
	store.lastLimit = limit
	store.lastOffset = offset

	if offset >= len(store.bookmarks) {
		return nil, nil
	}
	end := offset + limit
	if end > len(store.bookmarks) {
		end = len(store.bookmarks)
	}
	return store.bookmarks[offset:end], nil
}

func (store *fakeStore) Count(ctx context.Context, filter bookmark.Filter) (int, error) {
	store.countCalls++
	return len(store.bookmarks), nil
}

func (store *fakeStore) Delete(ctx context.Context, id string) error {
	for i := range store.bookmarks {
		if store.bookmarks[i].ID == id {
			store.bookmarks = append(store.bookmarks[:i], store.bookmarks[i+1:]...)
			return nil
		}
	}
	return apperr.NotFound("Bookmark")
}

func seededStore(n int) *fakeStore {
	store := &fakeStore{}
	for i := 0; i < n; i++ {
		store.bookmarks = append(store.bookmarks, bookmark.Bookmark{
			ID:    string(rune('a' + i)),
			Title: "bookmark",
			URL:   "http://example.com",
		})
	}
	return store
}

/*
TestService_List verifies the page/meta assembly and the SQL paging values
handed to the store.
*/
func TestService_List(t *testing.T) {
	store := seededStore(45)
	service := bookmark.NewService(store)

	items, meta, err := service.List(context.Background(), bookmark.Filter{}, pagination.Params{Page: 2, Limit: 20})
	require.NoError(t, err)

	assert.Len(t, items, 20)
	assert.Equal(t, 20, store.lastLimit)
	assert.Equal(t, 20, store.lastOffset)

	assert.Equal(t, pagination.Meta{Page: 2, Limit: 20, Total: 45, TotalPages: 3}, meta)
}

/*
TestService_List_FilterReachesBothQueries verifies that the same filter
value drives the page query and the total count.
*/
func TestService_List_FilterReachesBothQueries(t *testing.T) {
	store := seededStore(3)
	service := bookmark.NewService(store)

	filter := bookmark.Filter{Tags: []string{"go"}, Search: "pagination"}
	_, _, err := service.List(context.Background(), filter, pagination.Params{Page: 1, Limit: 10})
	require.NoError(t, err)

	assert.Equal(t, 1, store.countCalls)
	assert.Equal(t, filter, store.lastFilter)
}

/*
TestService_Create covers validation and persistence of new bookmarks.
*/
func TestService_Create(t *testing.T) {
	tests := []struct {
		name      string
		input     bookmark.CreateInput
		wantError bool
	}{
		{
			name:      "valid_bookmark",
			input:     bookmark.CreateInput{Title: "Go blog", URL: "https://go.dev/blog", Tags: []string{"go"}},
			wantError: false,
		},
		{
			name:      "missing_title",
			input:     bookmark.CreateInput{URL: "https://go.dev/blog"},
			wantError: true,
		},
		{
			name:      "relative_url_rejected",
			input:     bookmark.CreateInput{Title: "Go blog", URL: "/blog"},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeStore{}
			service := bookmark.NewService(store)

			created, err := service.Create(context.Background(), tt.input)

			if tt.wantError {
				require.Error(t, err)
				ae := apperr.As(err)
				require.NotNil(t, ae)
				assert.Equal(t, "VALIDATION_ERROR", ae.Code)
				assert.Empty(t, store.bookmarks)
			} else {
				require.NoError(t, err)
				assert.NotEmpty(t, created.ID)
				assert.Len(t, store.bookmarks, 1)
			}
		})
	}
}

/*
TestService_Delete verifies removal and the not-found path.
*/
func TestService_Delete(t *testing.T) {
	store := seededStore(1)
	service := bookmark.NewService(store)

	require.NoError(t, service.Delete(context.Background(), "a"))

	err := service.Delete(context.Background(), "a")
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
}
