package scrape

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/Jobenas/stm32bridge/internal/domain"
)

// DefaultTimeout bounds a single page fetch. Vendor pages are slow but one
// request either completes well inside this or is not going to.
const DefaultTimeout = 45 * time.Second

// DefaultCacheSize is the number of fetched documents kept in memory so
// repeated extractions against the same page skip the network
const DefaultCacheSize = 32

// maxDocumentBytes caps how much of a response body is read. Product pages
// are well under this; anything larger is not a page we can parse anyway.
const maxDocumentBytes = 8 << 20

const defaultUserAgent = "stm32bridge/1.0"

// Scraper orchestrates extraction from the three locator forms. It is safe
// for concurrent use: all lookup tables are read-only and the document
// cache is internally synchronized.
type Scraper struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
	cache     *lru.Cache[string, string]
}

// Option is a functional option for configuring a Scraper
type Option func(*Scraper)

// WithTimeout sets the per-fetch timeout
func WithTimeout(d time.Duration) Option {
	return func(s *Scraper) {
		if d > 0 {
			s.timeout = d
		}
	}
}

// WithHTTPClient replaces the HTTP client (tests inject counting transports here)
func WithHTTPClient(c *http.Client) Option {
	return func(s *Scraper) {
		if c != nil {
			s.client = c
		}
	}
}

// WithCacheSize sets the fetched-document cache capacity; zero disables
// caching entirely
func WithCacheSize(n int) Option {
	return func(s *Scraper) {
		s.cache = nil
		if n > 0 {
			// lru.New only fails for non-positive sizes
			if c, err := lru.New[string, string](n); err == nil {
				s.cache = c
			}
		}
	}
}

// WithUserAgent sets the User-Agent header sent with fetches
func WithUserAgent(ua string) Option {
	return func(s *Scraper) {
		if ua != "" {
			s.userAgent = ua
		}
	}
}

// New creates a Scraper with the default timeout and document cache
func New(opts ...Option) *Scraper {
	s := &Scraper{
		client:    &http.Client{},
		timeout:   DefaultTimeout,
		userAgent: defaultUserAgent,
	}
	if c, err := lru.New[string, string](DefaultCacheSize); err == nil {
		s.cache = c
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// FromURL classifies the URL's origin, fetches the document once, and
// parses it with the origin's dialect. Unsupported origins fail before any
// network activity.
func (s *Scraper) FromURL(ctx context.Context, rawURL string) (*domain.MCUSpec, error) {
	origin, err := ClassifyOrigin(rawURL)
	if err != nil {
		return nil, err
	}
	dialect, ok := dialectFor(origin)
	if !ok {
		return nil, fmt.Errorf("%w: origin %s has no dialect", ErrUnsupportedSource, origin)
	}

	body, err := s.fetch(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	doc, err := parseDocument(strings.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parse document from %s: %w", rawURL, err)
	}

	spec, err := dialect.Parse(doc, rawURL)
	if err != nil {
		return nil, err
	}
	log.Printf("Extracted %s from %s (%s dialect)", spec.PartNumber, rawURL, dialect.Name())
	return spec, nil
}

// FromRecordFile loads a previously saved specification record and
// validates it structurally. Malformed files fail with ErrInvalidRecord.
func (s *Scraper) FromRecordFile(path string) (*domain.MCUSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	}

	var spec domain.MCUSpec
	if err := json.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidRecord, path, err)
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidRecord, path, err)
	}
	return &spec, nil
}

// conservativeProfile is the minimal record built for a bare part number.
// Values deliberately underestimate so downstream memory limits never
// overshoot real hardware; extract from a real source for accurate figures.
var conservativeProfile = domain.MCUSpec{
	MaxFrequency:        "48000000L",
	FlashSizeKB:         64,
	RAMSizeKB:           16,
	Package:             defaultPackage,
	PinCount:            defaultPinCount,
	OperatingVoltageMin: defaultVoltageMin,
	OperatingVoltageMax: defaultVoltageMax,
	TemperatureMin:      defaultTemperatureMin,
	TemperatureMax:      defaultTemperatureMax,
}

// FromPartNumber builds a minimal record from the family table and the
// conservative default profile. This path performs no I/O of any kind.
func (s *Scraper) FromPartNumber(partNumber string) (*domain.MCUSpec, error) {
	family, err := domain.ResolveFamily(partNumber)
	if err != nil {
		return nil, err
	}

	spec := conservativeProfile
	spec.PartNumber = strings.TrimSpace(partNumber)
	spec.Family = family.Name
	spec.Core = family.DefaultCore
	return &spec, nil
}

// fetch retrieves a document body, serving from the cache when possible.
// A non-2xx status or transport failure surfaces as *FetchError; there is
// no retry here, that belongs to callers.
func (s *Scraper) fetch(ctx context.Context, rawURL string) (string, error) {
	if s.cache != nil {
		if body, ok := s.cache.Get(rawURL); ok {
			return body, nil
		}
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", &FetchError{URL: rawURL, Err: err}
	}
	req.Header.Set("User-Agent", s.userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", &FetchError{URL: rawURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &FetchError{
			URL:        rawURL,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("unexpected status %s", resp.Status),
		}
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentBytes))
	if err != nil {
		return "", &FetchError{URL: rawURL, StatusCode: resp.StatusCode, Err: err}
	}

	body := string(data)
	if s.cache != nil {
		s.cache.Add(rawURL, body)
	}
	return body, nil
}
