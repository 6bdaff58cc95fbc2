// Copyright (c) 2026 Linkmark. All rights reserved.
// Author: duc.haminh.dev@gmail.com

package bookmark

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/haminhduc/linkmark/internal/platform/request"
	"github.com/haminhduc/linkmark/internal/platform/respond"
	"github.com/haminhduc/linkmark/pkg/pagination"
	"github.com/haminhduc/linkmark/pkg/query"
)

// Handler implements the bookmark HTTP endpoints.
//
// It contains no business logic or database queries: it parses requests,
// calls the [Service], and renders responses via the respond package.
type Handler struct {
	service *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] configured with the bookmark routes.
//
// # Endpoints
//   - GET    /               : Paginated listing with Link/Total/Per-Page headers.
//   - POST   /               : Saves a new bookmark.
//   - GET    /{bookmarkID}   : Fetches one bookmark.
//   - DELETE /{bookmarkID}   : Removes one bookmark.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.list)
	router.Post("/", handler.create)
	router.Get("/{bookmarkID}", handler.get)
	router.Delete("/{bookmarkID}", handler.remove)

	return router
}

// list handles GET /api/v1/bookmarks requests.
//
// Query parameters:
//   - page, limit : pagination (clamped by pkg/pagination).
//   - tags        : comma-separated tag filter, all must match.
//   - q           : case-insensitive title search.
//
// The response carries the paginated envelope plus the RFC 5988 Link
// header and the Total / Per-Page counts. Filter parameters survive in
// every navigation link, only the page parameter is rewritten.
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)
	filter := Filter{
		Tags:   query.StringSlice(request.URL.Query().Get("tags")),
		Search: request.URL.Query().Get("q"),
	}

	bookmarks, meta, err := handler.service.List(request.Context(), filter, params)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, request, bookmarks, meta)
}

// createRequest represents the JSON payload expected when saving a bookmark.
type createRequest struct {
	Title string   `json:"title"`
	URL   string   `json:"url"`
	Tags  []string `json:"tags"`
	Notes string   `json:"notes"`
}

// create handles POST /api/v1/bookmarks requests.
//
// # Returns
//   - Writes HTTP 201 Created on success with the saved bookmark.
//   - Writes HTTP 400 Bad Request if validation rules fail.
//   - Writes HTTP 409 Conflict if the URL is already bookmarked.
func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	var input createRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	bookmark, err := handler.service.Create(request.Context(), CreateInput{
		Title: input.Title,
		URL:   input.URL,
		Tags:  input.Tags,
		Notes: input.Notes,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, bookmark)
}

// get handles GET /api/v1/bookmarks/{bookmarkID} requests.
func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.Param(request, "bookmarkID")

	bookmark, err := handler.service.Get(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, bookmark)
}

// remove handles DELETE /api/v1/bookmarks/{bookmarkID} requests.
func (handler *Handler) remove(writer http.ResponseWriter, request *http.Request) {
	id := requestutil.Param(request, "bookmarkID")

	if err := handler.service.Delete(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
