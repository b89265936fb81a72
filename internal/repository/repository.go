package repository

import (
	"context"

	"github.com/Jobenas/stm32bridge/internal/domain"
)

// SpecStore defines the interface for cached specification records
type SpecStore interface {
	// SaveSpec inserts or replaces the record for its part number
	SaveSpec(ctx context.Context, spec *domain.MCUSpec) error

	// GetSpec returns the record for a part number, or nil when absent.
	// Lookup is case-insensitive.
	GetSpec(ctx context.Context, partNumber string) (*domain.MCUSpec, error)

	// ListSpecs returns all cached records ordered by part number
	ListSpecs(ctx context.Context) ([]*domain.MCUSpec, error)

	// DeleteSpec removes the record for a part number; absent is not an error
	DeleteSpec(ctx context.Context, partNumber string) error

	// Close releases resources
	Close() error
}
