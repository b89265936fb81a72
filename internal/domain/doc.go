// Package domain defines the core domain types for stm32bridge.
//
// This package contains the value objects shared by the extraction and
// synthesis layers: the canonical MCU specification record, the PlatformIO
// board configuration tree, and the STM32 family table.
//
// # Core Types
//
// MCUSpec is the canonical, source-independent description of one
// microcontroller's hardware capabilities. It is constructed once by a
// dialect parser (or loaded from a prior record) and is read-only
// afterwards.
//
// BoardConfig is the structured build/debug/upload description synthesized
// from an MCUSpec for a named board. It has no identity beyond its
// serialized form and survives repeated serialize/deserialize round trips.
//
// Family groups part numbers that share a core architecture and HAL driver
// namespace. ResolveFamily maps a part-number prefix to its family using a
// fixed, order-significant table.
//
// # Design Principles
//
// - Immutable value objects where possible
// - No network, database, or external dependencies
// - Pure domain logic without infrastructure concerns
// - Fixed lookup tables built once as package-level constants
package domain
