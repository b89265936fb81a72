package codec

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/Jobenas/stm32bridge/internal/domain"
)

// JSONCodec handles JSON import/export. This is the format PlatformIO
// reads from its boards directory.
type JSONCodec struct{}

// NewJSONCodec creates a new JSON codec
func NewJSONCodec() *JSONCodec {
	return &JSONCodec{}
}

// Format returns the codec format identifier
func (c *JSONCodec) Format() string {
	return "json"
}

// Parse imports a board configuration from JSON
func (c *JSONCodec) Parse(r io.Reader) (*domain.BoardConfig, error) {
	var cfg domain.BoardConfig
	decoder := json.NewDecoder(r)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}

	return &cfg, nil
}

// Export exports a board configuration to JSON
func (c *JSONCodec) Export(cfg *domain.BoardConfig, w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}

	return nil
}
