package urlparser

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want URL
	}{
		{
			name: "host only",
			raw:  "http://example.com",
			want: URL{Host: "example.com", Port: "80", Path: "", Searchpart: ""},
		},
		{
			name: "host and port",
			raw:  "http://example.com:8888",
			want: URL{Host: "example.com", Port: "8888", Path: "", Searchpart: ""},
		},
		{
			name: "host, port, and path",
			raw:  "http://example.com:8888/index.html",
			want: URL{Host: "example.com", Port: "8888", Path: "index.html", Searchpart: ""},
		},
		{
			name: "host and path, default port",
			raw:  "http://example.com/index.html",
			want: URL{Host: "example.com", Port: "80", Path: "index.html", Searchpart: ""},
		},
		{
			name: "host, port, path, and searchpart",
			raw:  "http://example.com:8888/index.html?a=123&b=456",
			want: URL{Host: "example.com", Port: "8888", Path: "index.html", Searchpart: "a=123&b=456"},
		},
		{
			name: "scheme substring anywhere still parses",
			raw:  "not-a-url-but-contains-http://example.com",
			want: URL{Host: "not-a-url-but-contains-http", Port: "", Path: "/example.com", Searchpart: ""},
		},
		{
			name: "colon with empty port overrides the default",
			raw:  "http://example.com:/index.html",
			want: URL{Host: "example.com", Port: "", Path: "index.html", Searchpart: ""},
		},
		{
			name: "extra slashes belong to the path",
			raw:  "http://example.com/a/b/c",
			want: URL{Host: "example.com", Port: "80", Path: "a/b/c", Searchpart: ""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.raw)
			require.NoError(t, err)
			tt.want.Raw = tt.raw
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_UnsupportedScheme(t *testing.T) {
	tests := []string{
		"example.com",
		"https://example.com:8888/index.html",
	}

	for _, raw := range tests {
		t.Run(raw, func(t *testing.T) {
			_, err := Parse(raw)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrUnsupportedScheme))
		})
	}
}
