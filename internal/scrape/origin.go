package scrape

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// ErrUnsupportedSource is returned when a locator's origin matches no known
// dialect. This is a hard failure: there is deliberately no generic
// best-effort fallback parse.
var ErrUnsupportedSource = errors.New("unsupported source")

// ErrInvalidRecord is returned when a local record file is malformed or
// fails structural validation.
var ErrInvalidRecord = errors.New("invalid specification record")

// FetchError reports a transport or HTTP status failure while retrieving a
// document. The underlying cause is preserved.
type FetchError struct {
	URL string
	// StatusCode is zero when the transport failed before any response
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch %s: status %d: %v", e.URL, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Origin identifies which known site a URL points at
type Origin string

const (
	// OriginMouser is the catalog-vendor dialect (structured listing pages)
	OriginMouser Origin = "mouser"
	// OriginST is the manufacturer dialect (prose datasheet pages)
	OriginST Origin = "st"
)

// ClassifyOrigin determines a URL's origin from its host alone. Document
// content never participates in the decision.
func ClassifyOrigin(rawURL string) (Origin, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnsupportedSource, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("%w: scheme %q", ErrUnsupportedSource, u.Scheme)
	}

	host := strings.ToLower(u.Hostname())
	switch {
	case host == "mouser.com" || strings.HasSuffix(host, ".mouser.com"):
		return OriginMouser, nil
	case host == "st.com" || strings.HasSuffix(host, ".st.com"):
		return OriginST, nil
	}
	return "", fmt.Errorf("%w: URL domain %s", ErrUnsupportedSource, host)
}
