// Package board synthesizes PlatformIO board configurations from
// specification records. Synthesis is pure and deterministic: the same
// record always yields the same configuration, byte for byte once encoded.
package board
