package scrape

import (
	"fmt"
	"regexp"

	"golang.org/x/net/html"

	"github.com/Jobenas/stm32bridge/internal/domain"
)

// mouserPartRe captures the full vendor order code, e.g. STM32L432KCU6.
// Catalog listings always carry the complete orderable part.
var mouserPartRe = regexp.MustCompile(`(?i)\bSTM32[A-Z0-9]{4,}`)

// MouserDialect parses Mouser catalog product pages. These are structured
// listings: the order code sits in the page heading (or title) and the
// specification bullets live in the product-detail blocks, so a sweep of
// the extractors over the flattened text is reliable.
type MouserDialect struct{}

// Name implements Dialect
func (d *MouserDialect) Name() string { return "mouser" }

// Parse implements Dialect
func (d *MouserDialect) Parse(doc *html.Node, sourceURL string) (*domain.MCUSpec, error) {
	part := mouserPartRe.FindString(elementText(doc, "h1"))
	if part == "" {
		part = mouserPartRe.FindString(elementText(doc, "title"))
	}
	text := pageText(doc)
	if part == "" {
		// Some listings only carry the part in body copy
		part = mouserPartRe.FindString(text)
	}
	if part == "" {
		return nil, fmt.Errorf("mouser: no STM32 part number in page %s", sourceURL)
	}

	spec, err := assembleSpec(part, text)
	if err != nil {
		return nil, fmt.Errorf("mouser: %w", err)
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("mouser: incomplete extraction from %s: %w", sourceURL, err)
	}
	return spec, nil
}
