// Package service implements the extraction pipeline for stm32bridge.
//
// BridgeService coordinates the scraper, the persistent specification
// cache, and the board generator. It owns locator handling: deciding
// whether an input names a vendor page, a saved record file, or a bare
// part number, and how the cache participates in each case.
//
// The CLI is a thin shell over this package.
package service
