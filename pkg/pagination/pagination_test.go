// Copyright (c) 2026 Linkmark. All rights reserved.
// Author: duc.haminh.dev@gmail.com

package pagination_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/haminhduc/linkmark/pkg/linkheader"
	"github.com/haminhduc/linkmark/pkg/pagination"
)

/*
TestFromRequest_Clamping verifies that malformed or abusive query values
fall back to the documented defaults.
*/
func TestFromRequest_Clamping(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantPage  int
		wantLimit int
	}{
		{"defaults_when_absent", "", 1, 20},
		{"explicit_values", "page=3&limit=50", 3, 50},
		{"zero_page_clamped", "page=0", 1, 20},
		{"negative_page_clamped", "page=-4", 1, 20},
		{"non_numeric_page_clamped", "page=abc", 1, 20},
		{"limit_above_max_clamped", "limit=5000", 1, 20},
		{"zero_limit_clamped", "limit=0", 1, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest(http.MethodGet, "/bookmarks?"+tt.query, nil)
			params := pagination.FromRequest(request)

			assert.Equal(t, tt.wantPage, params.Page)
			assert.Equal(t, tt.wantLimit, params.Limit)
		})
	}
}

/*
TestParams_Offset checks the SQL OFFSET derivation.
*/
func TestParams_Offset(t *testing.T) {
	tests := []struct {
		name   string
		params pagination.Params
		want   int
	}{
		{"first_page", pagination.Params{Page: 1, Limit: 20}, 0},
		{"second_page", pagination.Params{Page: 2, Limit: 20}, 20},
		{"deep_page", pagination.Params{Page: 7, Limit: 25}, 150},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.params.Offset())
		})
	}
}

/*
TestNewMeta covers the total-pages arithmetic, including the empty set.
*/
func TestNewMeta(t *testing.T) {
	tests := []struct {
		name           string
		page           int
		limit          int
		total          int
		wantTotalPages int
	}{
		{"exact_division", 1, 10, 50, 5},
		{"remainder_rounds_up", 1, 10, 51, 6},
		{"empty_collection", 1, 10, 0, 0},
		{"zero_limit_guard", 1, 0, 50, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := pagination.NewMeta(tt.page, tt.limit, tt.total)
			assert.Equal(t, tt.wantTotalPages, meta.TotalPages)
			assert.Equal(t, tt.total, meta.Total)
		})
	}
}

/*
TestMeta_Descriptor verifies the bridge into the linkheader page descriptor.
*/
func TestMeta_Descriptor(t *testing.T) {
	meta := pagination.NewMeta(3, 10, 50)

	want := linkheader.Page{Number: 3, Size: 10, TotalPages: 5, TotalEntries: 50}
	assert.Equal(t, want, meta.Descriptor())
}
