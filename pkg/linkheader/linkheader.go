// Copyright (c) 2026 Linkmark. All rights reserved.
// Author: duc.haminh.dev@gmail.com

/*
Package linkheader builds RFC 5988 pagination headers for HTTP list
responses.

Given the origin of the inbound request (scheme, host, port, path, query
string) and a page descriptor computed by an upstream paginator, it derives
the navigation relations first/last/next/prev, reconstructs an absolute URL
for each one, and attaches three headers to the outbound response:

	Link: <http://host/items?page=1>; rel="first", <http://host/items?page=5>; rel="last", ...
	Total: 50
	Per-Page: 10

Design constraints:

  - Pure: no I/O, no shared state, safe for concurrent use. The only side
    effect is the header mutation performed by [Attach].
  - Permissive: inputs are never validated. An inconsistent descriptor
    (e.g. a page number beyond the last page) produces whatever links the
    arithmetic yields, exactly as supplied.
  - Framework-free: the core operates on plain values plus the one-method
    [HeaderSetter] interface. The net/http glue lives in http.go.
*/
package linkheader

import (
	"net/url"
	"strconv"
	"strings"
)

// Relations emitted for a paginated collection, in the fixed render order.
const (
	RelFirst = "first"
	RelLast  = "last"
	RelNext  = "next"
	RelPrev  = "prev"
)

// Canonical header spellings written by [Attach].
//
// HTTP header names are case-insensitive on the wire and transports may
// re-canonicalize them; this package always writes the capitalized-per-word
// form and never offers an alternative casing.
const (
	HeaderLink    = "Link"
	HeaderTotal   = "Total"
	HeaderPerPage = "Per-Page"
)

// pageParam is the query-string key overwritten per relation.
const pageParam = "page"

// Origin describes where the inbound request was addressed to. It is the
// read-only half of the builder's contract with the HTTP framework.
type Origin struct {
	// Scheme is the URL scheme token, typically "http" or "https".
	Scheme string

	// Host is the hostname without any port suffix.
	Host string

	// Port is the explicit request port. Zero means the request carried no
	// explicit port. Ports 80 and 443 are treated as defaults and omitted
	// from generated URLs regardless of scheme.
	Port int

	// Path is the request path, without the query string.
	Path string

	// RawQuery is the unparsed query string of the request, without the
	// leading "?". May be empty.
	RawQuery string
}

// Page is the page descriptor computed by the upstream paginator.
//
// All fields are taken at face value: the builder performs no bounds
// checks, so callers are expected to supply a consistent snapshot.
type Page struct {
	// Number is the current page, 1-based.
	Number int

	// Size is the number of items per page.
	Size int

	// TotalPages is the total number of pages in the collection.
	TotalPages int

	// TotalEntries is the total item count across all pages.
	TotalEntries int
}

// Entry is one rendered navigation link.
type Entry struct {
	Rel string
	URL string
}

// HeaderSetter is the single write operation the builder needs from the
// outbound response. Setting an existing header must overwrite it.
type HeaderSetter interface {
	SetHeader(name, value string)
}

// Build derives the navigation entries for the given origin and page.
//
// Relations are evaluated in the fixed order first, last, next, prev:
//
//   - first always targets page 1.
//   - last always targets TotalPages, with no special case for an empty
//     collection: when TotalPages is 0 the last link points at page 0 and
//     next is still emitted, mirroring the permissive arithmetic above.
//   - next targets Number+1 and is dropped when Number == TotalPages.
//   - prev targets Number-1 and is dropped when Number == 1.
//
// Dropped relations are absent from the result entirely.
func Build(origin Origin, page Page) []Entry {
	candidates := [...]struct {
		rel      string
		target   int
		included bool
	}{
		{RelFirst, 1, true},
		{RelLast, page.TotalPages, true},
		{RelNext, page.Number + 1, page.Number != page.TotalPages},
		{RelPrev, page.Number - 1, page.Number != 1},
	}

	entries := make([]Entry, 0, len(candidates))
	for _, candidate := range candidates {
		if !candidate.included {
			continue
		}
		entries = append(entries, Entry{
			Rel: candidate.rel,
			URL: origin.pageURL(candidate.target),
		})
	}

	return entries
}

// Value renders entries as a single Link header value:
// `<URL>; rel="REL"` pairs joined with ", ". An empty entry list yields
// an empty string.
func Value(entries []Entry) string {
	var builder strings.Builder
	for i, entry := range entries {
		if i > 0 {
			builder.WriteString(", ")
		}
		builder.WriteByte('<')
		builder.WriteString(entry.URL)
		builder.WriteString(`>; rel="`)
		builder.WriteString(entry.Rel)
		builder.WriteByte('"')
	}
	return builder.String()
}

// Attach computes the navigation entries and sets the three pagination
// headers on the outbound response. Calling it twice with the same inputs
// writes byte-identical values.
func Attach(setter HeaderSetter, origin Origin, page Page) {
	setter.SetHeader(HeaderLink, Value(Build(origin, page)))
	setter.SetHeader(HeaderTotal, strconv.Itoa(page.TotalEntries))
	setter.SetHeader(HeaderPerPage, strconv.Itoa(page.Size))
}

// pageURL reconstructs the absolute URL for one target page:
// scheme://host[:port]path[?query], with the port suffix suppressed for
// the default set {80, 443} and the "?" omitted when the merged query is
// empty.
func (origin Origin) pageURL(page int) string {
	var builder strings.Builder
	builder.WriteString(origin.Scheme)
	builder.WriteString("://")
	builder.WriteString(origin.Host)

	if origin.Port != 0 && origin.Port != 80 && origin.Port != 443 {
		builder.WriteByte(':')
		builder.WriteString(strconv.Itoa(origin.Port))
	}

	builder.WriteString(origin.Path)

	if query := mergePageParam(origin.RawQuery, page); query != "" {
		builder.WriteByte('?')
		builder.WriteString(query)
	}

	return builder.String()
}

// mergePageParam decodes rawQuery into an ordered key/value list,
// overwrites the "page" key in place (or appends it when absent), and
// re-encodes.
//
// Decoding is best-effort: a segment whose percent-encoding cannot be
// unescaped keeps its raw form, and a later duplicate key overwrites the
// earlier one without changing its position. All other parameters pass
// through unchanged.
func mergePageParam(rawQuery string, page int) string {
	type pair struct {
		key   string
		value string
	}

	pairs := make([]pair, 0, 8)
	position := make(map[string]int, 8)

	for _, segment := range strings.Split(rawQuery, "&") {
		if segment == "" {
			continue
		}

		rawKey, rawValue, _ := strings.Cut(segment, "=")
		key := unescape(rawKey)
		value := unescape(rawValue)

		if at, seen := position[key]; seen {
			pairs[at].value = value
			continue
		}

		position[key] = len(pairs)
		pairs = append(pairs, pair{key: key, value: value})
	}

	target := strconv.Itoa(page)
	if at, seen := position[pageParam]; seen {
		pairs[at].value = target
	} else {
		pairs = append(pairs, pair{key: pageParam, value: target})
	}

	var builder strings.Builder
	for i, p := range pairs {
		if i > 0 {
			builder.WriteByte('&')
		}
		builder.WriteString(url.QueryEscape(p.key))
		builder.WriteByte('=')
		builder.WriteString(url.QueryEscape(p.value))
	}

	return builder.String()
}

// unescape applies standard query unescaping, falling back to the raw
// input when the encoding is malformed.
func unescape(raw string) string {
	decoded, err := url.QueryUnescape(raw)
	if err != nil {
		return raw
	}
	return decoded
}
