package document

import (
	"errors"
	"fmt"
	"net/url"
	"path"
	"strings"
)

// SharePathSegment is the path segment that prefixes share tokens
const SharePathSegment = "share"

// ErrInvalidShareLink is returned when a link does not carry a share token
var ErrInvalidShareLink = errors.New("invalid share link")

// ShareLink derives the read-only link for a document id. Nothing is stored.
func ShareLink(base *url.URL, id string) string {
	if base == nil {
		base = &url.URL{Path: "/"}
	}
	return base.JoinPath(SharePathSegment, id).String()
}

// ShareToken extracts the document id from a link built by ShareLink
func ShareToken(link string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(link))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidShareLink, err)
	}

	p := strings.TrimSuffix(u.Path, "/")
	if path.Base(path.Dir(p)) != SharePathSegment {
		return "", fmt.Errorf("%w: %q has no /%s/ segment", ErrInvalidShareLink, link, SharePathSegment)
	}

	token := path.Base(p)
	if token == "" || token == "." || token == "/" {
		return "", fmt.Errorf("%w: empty token", ErrInvalidShareLink)
	}
	return token, nil
}
