// Copyright (c) 2026 Linkmark. All rights reserved.
// Author: duc.haminh.dev@gmail.com

package linkheader

import (
	"net"
	"net/http"
	"strconv"
)

// HTTPHeader adapts a standard [http.Header] to the [HeaderSetter]
// interface required by [Attach].
type HTTPHeader http.Header

// SetHeader implements [HeaderSetter]. It overwrites any existing value.
func (header HTTPHeader) SetHeader(name, value string) {
	http.Header(header).Set(name, value)
}

// OriginFromRequest extracts an [Origin] from an inbound request.
//
// The scheme is "https" when the request arrived over TLS, "http"
// otherwise; an X-Forwarded-Proto header set by a reverse proxy overrides
// both. Host and port are split from the request's Host value, leaving
// Port at zero when no explicit port was sent.
func OriginFromRequest(request *http.Request) Origin {
	scheme := "http"
	if request.TLS != nil {
		scheme = "https"
	}
	if forwarded := request.Header.Get("X-Forwarded-Proto"); forwarded != "" {
		scheme = forwarded
	}

	host := request.Host
	port := 0
	if splitHost, splitPort, err := net.SplitHostPort(request.Host); err == nil {
		host = splitHost
		if parsed, err := strconv.Atoi(splitPort); err == nil {
			port = parsed
		}
	}

	return Origin{
		Scheme:   scheme,
		Host:     host,
		Port:     port,
		Path:     request.URL.Path,
		RawQuery: request.URL.RawQuery,
	}
}

// SetResponseHeaders attaches the pagination headers for page to the
// response, deriving the origin from the inbound request. It must be
// called before the response status is written.
func SetResponseHeaders(writer http.ResponseWriter, request *http.Request, page Page) {
	Attach(HTTPHeader(writer.Header()), OriginFromRequest(request), page)
}
