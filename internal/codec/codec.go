package codec

import (
	"io"

	"github.com/Jobenas/stm32bridge/internal/domain"
)

// Importer interface for importing board configurations from various formats
type Importer interface {
	Parse(r io.Reader) (*domain.BoardConfig, error)
	Format() string
}

// Exporter interface for exporting board configurations to various formats
type Exporter interface {
	Export(cfg *domain.BoardConfig, w io.Writer) error
	Format() string
}

// ExporterFor returns the exporter registered under the given format name.
// PlatformIO consumes the json form; yaml and ini exist for humans.
func ExporterFor(format string) (Exporter, bool) {
	switch format {
	case "json":
		return NewJSONCodec(), true
	case "yaml", "yml":
		return NewYAMLCodec(), true
	case "ini":
		return NewIniCodec(), true
	}
	return nil, false
}
