// Package scrape turns a source locator into a canonical MCU specification
// record.
//
// A locator is one of: a product-page URL on a supported vendor site, a
// local JSON record file, or a bare part number. The Scraper orchestrates
// the three paths; per-source document shapes are handled by a small closed
// set of dialects selected by origin classification (which site the URL
// points at), never by sniffing page content. An origin that matches no
// known dialect fails loudly with ErrUnsupportedSource: guessing at unknown
// layouts has produced superficially valid but wrong records before.
//
// Extraction is all-or-nothing: every path either yields a record that
// passes domain.MCUSpec.Validate or returns an error.
package scrape
