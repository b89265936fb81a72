package service

import (
	"context"
	"errors"
	"log"
	"os"
	"strings"

	"github.com/Jobenas/stm32bridge/internal/board"
	"github.com/Jobenas/stm32bridge/internal/domain"
	"github.com/Jobenas/stm32bridge/internal/repository"
	"github.com/Jobenas/stm32bridge/internal/scrape"
)

// ErrCacheDisabled is returned by cache management operations when no
// persistent cache is configured
var ErrCacheDisabled = errors.New("specification cache is disabled")

// BridgeService coordinates extraction, caching and board generation
type BridgeService struct {
	scraper   *scrape.Scraper
	store     repository.SpecStore
	generator *board.Generator
}

// New creates a bridge service. store may be nil when the persistent cache
// is disabled; extraction still works, nothing is remembered.
func New(scraper *scrape.Scraper, store repository.SpecStore, generator *board.Generator) *BridgeService {
	return &BridgeService{
		scraper:   scraper,
		store:     store,
		generator: generator,
	}
}

// ResolveSpec turns a locator into a specification record. Locators are
// vendor page URLs, paths to saved record files, or bare part numbers.
//
// URL extractions are written to the cache on success. Part-number lookups
// consult the cache first and only then fall back to the minimal offline
// record. Record files bypass the cache in both directions: the file is
// already a local copy.
func (s *BridgeService) ResolveSpec(ctx context.Context, locator string) (*domain.MCUSpec, error) {
	switch {
	case strings.HasPrefix(locator, "http://"), strings.HasPrefix(locator, "https://"):
		spec, err := s.scraper.FromURL(ctx, locator)
		if err != nil {
			return nil, err
		}
		if s.store != nil {
			if err := s.store.SaveSpec(ctx, spec); err != nil {
				log.Printf("Warning: could not cache %s: %v", spec.PartNumber, err)
			}
		}
		return spec, nil

	case isRecordFile(locator):
		return s.scraper.FromRecordFile(locator)

	default:
		if s.store != nil {
			cached, err := s.store.GetSpec(ctx, locator)
			if err != nil {
				return nil, err
			}
			if cached != nil {
				log.Printf("Using cached record for %s", cached.PartNumber)
				return cached, nil
			}
		}
		return s.scraper.FromPartNumber(locator)
	}
}

// GenerateBoard resolves the locator and synthesizes a board configuration
// from the record. boardName overrides the derived display name when
// non-empty.
func (s *BridgeService) GenerateBoard(ctx context.Context, locator, boardName string) (*domain.BoardConfig, error) {
	spec, err := s.ResolveSpec(ctx, locator)
	if err != nil {
		return nil, err
	}
	return s.generator.Synthesize(spec, boardName), nil
}

// ListSpecs returns all cached records
func (s *BridgeService) ListSpecs(ctx context.Context) ([]*domain.MCUSpec, error) {
	if s.store == nil {
		return nil, ErrCacheDisabled
	}
	return s.store.ListSpecs(ctx)
}

// DeleteSpec removes a record from the cache
func (s *BridgeService) DeleteSpec(ctx context.Context, partNumber string) error {
	if s.store == nil {
		return ErrCacheDisabled
	}
	return s.store.DeleteSpec(ctx, partNumber)
}

// isRecordFile reports whether a locator names a saved record file rather
// than a part number. A .json suffix always wins; otherwise any existing
// path counts.
func isRecordFile(locator string) bool {
	if strings.HasSuffix(locator, ".json") {
		return true
	}
	_, err := os.Stat(locator)
	return err == nil
}
