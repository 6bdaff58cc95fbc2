// Copyright (c) 2026 Linkmark. All rights reserved.
// Author: duc.haminh.dev@gmail.com

package respond_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haminhduc/linkmark/internal/platform/apperr"
	"github.com/haminhduc/linkmark/internal/platform/respond"
	"github.com/haminhduc/linkmark/pkg/pagination"
)

/*
TestPaginated verifies that a list response carries both the JSON envelope
and the three navigation headers, with filters preserved in the links.
*/
func TestPaginated(t *testing.T) {
	request := httptest.NewRequest(http.MethodGet, "http://www.example.com/test?foo=bar", nil)
	writer := httptest.NewRecorder()

	meta := pagination.NewMeta(3, 10, 50)
	respond.Paginated(writer, request, []string{"a", "b"}, meta)

	result := writer.Result()
	defer result.Body.Close()

	assert.Equal(t, http.StatusOK, result.StatusCode)

	// Headers
	assert.Equal(t,
		`<http://www.example.com/test?foo=bar&page=1>; rel="first", `+
			`<http://www.example.com/test?foo=bar&page=5>; rel="last", `+
			`<http://www.example.com/test?foo=bar&page=4>; rel="next", `+
			`<http://www.example.com/test?foo=bar&page=2>; rel="prev"`,
		result.Header.Get("Link"),
	)
	assert.Equal(t, "50", result.Header.Get("Total"))
	assert.Equal(t, "10", result.Header.Get("Per-Page"))

	// Envelope
	var envelope struct {
		Data []string        `json:"data"`
		Meta pagination.Meta `json:"meta"`
	}
	require.NoError(t, json.NewDecoder(result.Body).Decode(&envelope))
	assert.Equal(t, []string{"a", "b"}, envelope.Data)
	assert.Equal(t, meta, envelope.Meta)
}

/*
TestError_MapsAppError verifies the error envelope for a known AppError.
*/
func TestError_MapsAppError(t *testing.T) {
	request := httptest.NewRequest(http.MethodGet, "/bookmarks/missing", nil)
	writer := httptest.NewRecorder()

	respond.Error(writer, request, apperr.NotFound("Bookmark"))

	result := writer.Result()
	defer result.Body.Close()

	assert.Equal(t, http.StatusNotFound, result.StatusCode)

	var envelope respond.ErrorEnvelope
	require.NoError(t, json.NewDecoder(result.Body).Decode(&envelope))
	assert.Equal(t, "NOT_FOUND", envelope.Code)
	assert.Equal(t, "Bookmark not found", envelope.Error)
}

/*
TestError_WrapsUnknownError verifies that unclassified errors surface as
opaque 500s without leaking their cause.
*/
func TestError_WrapsUnknownError(t *testing.T) {
	request := httptest.NewRequest(http.MethodGet, "/bookmarks", nil)
	writer := httptest.NewRecorder()

	respond.Error(writer, request, assert.AnError)

	result := writer.Result()
	defer result.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, result.StatusCode)

	var envelope respond.ErrorEnvelope
	require.NoError(t, json.NewDecoder(result.Body).Decode(&envelope))
	assert.Equal(t, "INTERNAL_SERVER_ERROR", envelope.Code)
	assert.NotContains(t, envelope.Error, assert.AnError.Error())
}
