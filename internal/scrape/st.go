package scrape

import (
	"fmt"
	"regexp"

	"golang.org/x/net/html"

	"github.com/Jobenas/stm32bridge/internal/domain"
)

// stPartRe captures the part-number stem as ST datasheet pages present it:
// series, pin-count letter and flash-size code, without packaging or
// temperature suffixes (STM32F103C8, not STM32F103C8T6).
var stPartRe = regexp.MustCompile(`(?i)\bSTM32[A-Z]\d{2,3}[A-Z0-9]{2}`)

// STDialect parses st.com product pages. These are prose datasheet pages:
// the heading carries the part stem and the specification list is free
// text, so everything beyond the part number comes from the extractor
// sweep.
type STDialect struct{}

// Name implements Dialect
func (d *STDialect) Name() string { return "st" }

// Parse implements Dialect
func (d *STDialect) Parse(doc *html.Node, sourceURL string) (*domain.MCUSpec, error) {
	part := stPartRe.FindString(elementText(doc, "h1"))
	if part == "" {
		part = stPartRe.FindString(elementText(doc, "title"))
	}
	text := pageText(doc)
	if part == "" {
		part = stPartRe.FindString(text)
	}
	if part == "" {
		return nil, fmt.Errorf("st: no STM32 part number in page %s", sourceURL)
	}

	spec, err := assembleSpec(part, text)
	if err != nil {
		return nil, fmt.Errorf("st: %w", err)
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("st: incomplete extraction from %s: %w", sourceURL, err)
	}
	return spec, nil
}
