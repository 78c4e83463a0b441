package media

import (
	"net/url"
	"strings"
)

// Image is a rendered or captured picture, carried either as an http(s) URL
// or as a data URI. The empty value means "no image".
type Image string

// Empty reports whether no image is present.
func (i Image) Empty() bool {
	return strings.TrimSpace(string(i)) == ""
}

// IsDataURI reports whether the image is inlined as a data URI.
func (i Image) IsDataURI() bool {
	return strings.HasPrefix(string(i), "data:")
}

// Valid reports whether a non-empty image is a data URI or an absolute http(s) URL.
func (i Image) Valid() bool {
	if i.Empty() {
		return false
	}
	if i.IsDataURI() {
		return strings.Contains(string(i), ",")
	}
	u, err := url.Parse(string(i))
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// Or returns i unless it is empty, in which case it returns fallback.
func (i Image) Or(fallback Image) Image {
	if i.Empty() {
		return fallback
	}
	return i
}
