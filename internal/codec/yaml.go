package codec

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/Jobenas/stm32bridge/internal/domain"
)

// YAMLCodec handles YAML import/export
type YAMLCodec struct{}

// NewYAMLCodec creates a new YAML codec
func NewYAMLCodec() *YAMLCodec {
	return &YAMLCodec{}
}

// Format returns the codec format identifier
func (c *YAMLCodec) Format() string {
	return "yaml"
}

// Parse imports a board configuration from YAML
func (c *YAMLCodec) Parse(r io.Reader) (*domain.BoardConfig, error) {
	var cfg domain.BoardConfig
	decoder := yaml.NewDecoder(r)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	return &cfg, nil
}

// Export exports a board configuration to YAML
func (c *YAMLCodec) Export(cfg *domain.BoardConfig, w io.Writer) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	defer encoder.Close()

	if err := encoder.Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}

	return nil
}
