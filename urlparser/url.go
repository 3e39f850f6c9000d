// Package urlparser splits an HTTP URL literal into its host, port, path,
// and query components. It supports plain "http://" URLs only.
package urlparser

import (
	"errors"
	"strings"
)

// ErrUnsupportedScheme is returned by Parse when the input does not
// contain an HTTP scheme.
var ErrUnsupportedScheme = errors.New("Only HTTP scheme is supported.")

// URL is the immutable result of a successful Parse. Port defaults to
// "80" when the input names no port; Path and Searchpart may be empty.
type URL struct {
	Raw        string
	Host       string
	Port       string
	Path       string
	Searchpart string
}

// Parse decomposes raw into host, port, path, and searchpart.
//
// The scheme check is a substring test, not a prefix test: any input
// containing "http://" anywhere is accepted, matching the original
// implementation this module is ported from. Only the first "/"
// delimits the authority from the path, and a bare "host:" with no
// digits after the colon yields an empty port, overriding the "80"
// default — both are preserved intentionally, not bugs to fix.
func Parse(raw string) (URL, error) {
	if !strings.Contains(raw, "http://") {
		return URL{}, ErrUnsupportedScheme
	}

	rest := strings.TrimPrefix(raw, "http://")

	authority := rest
	pathAndQuery := ""
	hasPathAndQuery := false
	if i := strings.IndexByte(rest, '/'); i >= 0 {
		authority = rest[:i]
		pathAndQuery = rest[i+1:]
		hasPathAndQuery = true
	}

	host := authority
	port := "80"
	if i := strings.IndexByte(authority, ':'); i >= 0 {
		host = authority[:i]
		port = authority[i+1:]
	}

	path, searchpart := "", ""
	if hasPathAndQuery {
		path = pathAndQuery
		if i := strings.IndexByte(pathAndQuery, '?'); i >= 0 {
			path = pathAndQuery[:i]
			searchpart = pathAndQuery[i+1:]
		}
	}

	return URL{
		Raw:        raw,
		Host:       host,
		Port:       port,
		Path:       path,
		Searchpart: searchpart,
	}, nil
}
