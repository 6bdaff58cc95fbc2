// Copyright (c) 2026 Linkmark. All rights reserved.
// Author: duc.haminh.dev@gmail.com

package linkheader_test

import (
	"crypto/tls"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haminhduc/linkmark/pkg/linkheader"
)

/*
TestOriginFromRequest covers scheme detection, host/port splitting, and
proxy-forwarded scheme override.
*/
func TestOriginFromRequest(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *http.Request)
		want   linkheader.Origin
	}{
		{
			name:   "plain_http_without_port",
			mutate: func(r *http.Request) {},
			want: linkheader.Origin{
				Scheme:   "http",
				Host:     "www.example.com",
				Port:     0,
				Path:     "/test",
				RawQuery: "foo=bar",
			},
		},
		{
			name: "explicit_port_split_from_host",
			mutate: func(r *http.Request) {
				r.Host = "www.example.com:1337"
			},
			want: linkheader.Origin{
				Scheme:   "http",
				Host:     "www.example.com",
				Port:     1337,
				Path:     "/test",
				RawQuery: "foo=bar",
			},
		},
		{
			name: "tls_connection_yields_https",
			mutate: func(r *http.Request) {
				r.TLS = &tls.ConnectionState{}
			},
			want: linkheader.Origin{
				Scheme:   "https",
				Host:     "www.example.com",
				Port:     0,
				Path:     "/test",
				RawQuery: "foo=bar",
			},
		},
		{
			name: "forwarded_proto_overrides_tls_state",
			mutate: func(r *http.Request) {
				r.Header.Set("X-Forwarded-Proto", "https")
			},
			want: linkheader.Origin{
				Scheme:   "https",
				Host:     "www.example.com",
				Port:     0,
				Path:     "/test",
				RawQuery: "foo=bar",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest(http.MethodGet, "http://www.example.com/test?foo=bar", nil)
			tt.mutate(request)

			assert.Equal(t, tt.want, linkheader.OriginFromRequest(request))
		})
	}
}

/*
TestSetResponseHeaders exercises the full net/http path: headers land on
the ResponseWriter and Set semantics overwrite rather than append.
*/
func TestSetResponseHeaders(t *testing.T) {
	request := httptest.NewRequest(http.MethodGet, "http://www.example.com/test?foo=bar", nil)
	writer := httptest.NewRecorder()

	page := linkheader.Page{Number: 3, Size: 10, TotalPages: 5, TotalEntries: 50}

	// Attach twice: single-value semantics must leave exactly one value
	// per header.
	linkheader.SetResponseHeaders(writer, request, page)
	linkheader.SetResponseHeaders(writer, request, page)

	result := writer.Result()
	defer result.Body.Close()

	require.Len(t, result.Header.Values("Link"), 1)
	require.Len(t, result.Header.Values("Total"), 1)
	require.Len(t, result.Header.Values("Per-Page"), 1)

	assert.Equal(t,
		`<http://www.example.com/test?foo=bar&page=1>; rel="first", `+
			`<http://www.example.com/test?foo=bar&page=5>; rel="last", `+
			`<http://www.example.com/test?foo=bar&page=4>; rel="next", `+
			`<http://www.example.com/test?foo=bar&page=2>; rel="prev"`,
		result.Header.Get("Link"),
	)
	assert.Equal(t, "50", result.Header.Get("Total"))
	assert.Equal(t, "10", result.Header.Get("Per-Page"))
}
