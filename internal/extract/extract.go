// Package extract implements the text feature extractors used by the
// source-dialect parsers.
//
// Each extractor is a pure function from unstructured page text to one
// attribute of an MCU specification. Extractors never fail: a missing
// attribute is reported through an ok boolean (or a documented default),
// and the calling dialect parser decides whether that is fatal.
//
// The pattern tables are order-significant. Ambiguous entries carry a
// comment stating the ordering invariant so it stays visible in code
// rather than accidental.
package extract

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/Jobenas/stm32bridge/internal/domain"
)

// corePattern pairs a lowercase substring with the core it identifies
type corePattern struct {
	substr string
	core   domain.Core
}

// corePatterns is scanned in order and the first hit wins. Longer variants
// must precede shorter ones that are textual prefixes of them:
// "cortex-m33" contains "cortex-m3", and "cortex-m0plus"/"cortex-m0+"
// contain "cortex-m0", so the longer forms go first or they never match.
var corePatterns = []corePattern{
	{"cortex-m33", domain.CoreM33},
	{"cortex-m0plus", domain.CoreM0Plus},
	{"cortex-m0+", domain.CoreM0Plus},
	{"cortex-m7", domain.CoreM7},
	{"cortex-m4", domain.CoreM4},
	{"cortex-m3", domain.CoreM3},
	{"cortex-m0", domain.CoreM0},
}

// Core scans text for an ARM core name. When nothing matches it returns
// the assume-capable default (cortex-m4) with ok=false so callers can tell
// a detected value from the fallback policy.
func Core(text string) (core domain.Core, ok bool) {
	lower := strings.ToLower(text)
	// Tolerate "Cortex M4" and "Cortex–M4" spellings
	lower = strings.ReplaceAll(lower, "cortex m", "cortex-m")
	lower = strings.ReplaceAll(lower, "cortex–m", "cortex-m")

	for _, p := range corePatterns {
		if strings.Contains(lower, p.substr) {
			return p.core, true
		}
	}
	return domain.DefaultCore, false
}

// frequencyRe matches a whole-number MHz figure, with or without a space
// before the unit. Qualifier words ("up to", "max") are simply not part of
// the match, so they are ignored.
var frequencyRe = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*MHz`)

// Frequency returns the first MHz figure in text converted to Hz and
// formatted with the trailing numeric literal marker, e.g. "80000000L".
// Documents are assumed to present the primary frequency first.
func Frequency(text string) (string, bool) {
	m := frequencyRe.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	mhz, err := strconv.ParseFloat(m[1], 64)
	if err != nil || mhz <= 0 {
		return "", false
	}
	return fmt.Sprintf("%dL", int64(mhz*1_000_000)), true
}

// MemoryKind selects which memory figure to extract
type MemoryKind string

const (
	MemoryFlash MemoryKind = "flash"
	MemoryRAM   MemoryKind = "ram"
)

// Memory patterns: a KB figure qualified by a nearby flash/ram keyword, in
// both "256 KB Flash" and "Flash: 256 Kbytes" word orders. MB-scaled values
// are deliberately not matched: silently truncating megabytes to kilobytes
// would produce a plausible-looking but wrong record.
//
// The value-first forms refuse a keyword followed by a colon ("64 Kbytes
// SRAM: 20 Kbytes" flattened from adjacent labels), where the keyword
// belongs to the NEXT figure; the keyword forms require the separator for
// the same reason.
var (
	flashValueFirstRe = regexp.MustCompile(`(?i)(\d+)\s*K(?:B|bytes?)?\s+(?:of\s+)?(?:flash|rom)(?:[^:]|$)`)
	flashKeywordRe    = regexp.MustCompile(`(?i)(?:flash|rom)\s*(?:memory\s*)?[:=]\s*(?:up\s+to\s+)?(\d+)\s*K(?:B|bytes?)\b`)
	ramValueFirstRe   = regexp.MustCompile(`(?i)(\d+)\s*K(?:B|bytes?)?\s+(?:of\s+)?S?RAM(?:[^:]|$)`)
	ramKeywordRe      = regexp.MustCompile(`(?i)S?RAM\s*[:=]\s*(?:up\s+to\s+)?(\d+)\s*K(?:B|bytes?)\b`)
)

// Memory returns the first KB-scaled figure for the requested kind.
func Memory(text string, kind MemoryKind) (int, bool) {
	var patterns []*regexp.Regexp
	switch kind {
	case MemoryFlash:
		patterns = []*regexp.Regexp{flashValueFirstRe, flashKeywordRe}
	case MemoryRAM:
		patterns = []*regexp.Regexp{ramValueFirstRe, ramKeywordRe}
	default:
		return 0, false
	}

	for _, re := range patterns {
		if m := re.FindStringSubmatch(text); m != nil {
			kb, err := strconv.Atoi(m[1])
			if err != nil || kb <= 0 {
				continue
			}
			return kb, true
		}
	}
	return 0, false
}

// packageRe matches the fixed package vocabulary with an optional pin-count
// suffix. Composite names (UFQFPN, UFBGA, TFBGA, LQFP, TQFP) precede the
// plain stems (QFN, BGA, QFP) they contain, first alternative wins.
var packageRe = regexp.MustCompile(`(?i)\b(UFQFPN|UFBGA|TFBGA|WLCSP|LQFP|TQFP|TSSOP|QFN|BGA|SO8)[-\s]?(\d{1,3})?\b`)

// Package returns the package-family token (upper case) and the pin count
// when the designator carries one (zero otherwise).
func Package(text string) (pkg string, pins int, ok bool) {
	m := packageRe.FindStringSubmatch(text)
	if m == nil {
		return "", 0, false
	}
	pkg = strings.ToUpper(m[1])
	if m[2] != "" {
		pins, _ = strconv.Atoi(m[2])
	}
	return pkg, pins, true
}

// featurePattern pairs a lowercase page substring with the capability tag
// it implies
type featurePattern struct {
	substr string
	tag    string
}

// featurePatterns is scanned in order; each tag is emitted at most once.
var featurePatterns = []featurePattern{
	{"fpu", "fpu"},
	{"floating point", "fpu"},
	{"dsp", "dsp"},
	{"crypto", "crypto"},
	{"aes", "crypto"},
	{"usb", "usb"},
	{"ethernet", "ethernet"},
	{"bluetooth", "bluetooth"},
	{"lcd", "lcd"},
	// "can" as a bare word is too common in prose, require the bus form
	{"can bus", "can"},
	{"can-fd", "can"},
	{"canfd", "can"},
	{"bxcan", "can"},
	{"fdcan", "can"},
}

// Features returns the lowercase capability tags found in text, in table
// order. Order is not significant to consumers.
func Features(text string) []string {
	lower := strings.ToLower(text)
	var tags []string
	seen := make(map[string]bool)
	for _, p := range featurePatterns {
		if seen[p.tag] {
			continue
		}
		if strings.Contains(lower, p.substr) {
			seen[p.tag] = true
			tags = append(tags, p.tag)
		}
	}
	return tags
}

// peripheralRe matches "3x USART" / "2 x SPI" style instance counts
var peripheralRe = regexp.MustCompile(`(?i)(\d+)\s*[x×]\s*(USART|UART|SPI|I2C|ADC|DAC|CAN|TIMERS?|TIM|USB)`)

// peripheralNames normalizes matched tokens to canonical class names
var peripheralNames = map[string]string{
	"USART": "USART", "UART": "UART", "SPI": "SPI", "I2C": "I2C",
	"ADC": "ADC", "DAC": "DAC", "CAN": "CAN", "USB": "USB",
	"TIM": "TIMER", "TIMER": "TIMER", "TIMERS": "TIMER",
}

// Peripherals returns instance counts per peripheral class. A class that
// never appears is absent from the map, never zero.
func Peripherals(text string) map[string]int {
	matches := peripheralRe.FindAllStringSubmatch(text, -1)
	if matches == nil {
		return nil
	}
	out := make(map[string]int)
	for _, m := range matches {
		count, err := strconv.Atoi(m[1])
		if err != nil || count <= 0 {
			continue
		}
		name := peripheralNames[strings.ToUpper(m[2])]
		if name == "" {
			continue
		}
		// First occurrence wins, pages often repeat summaries
		if _, dup := out[name]; !dup {
			out[name] = count
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

var voltageRangeRe = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*V?\s*(?:to|[-\x{2013}])\s*(\d+(?:\.\d+)?)\s*V\b`)

// VoltageRange returns an operating voltage range when the page states one
// in "1.71 V to 3.6 V" form.
func VoltageRange(text string) (min, max float64, ok bool) {
	m := voltageRangeRe.FindStringSubmatch(text)
	if m == nil {
		return 0, 0, false
	}
	min, err1 := strconv.ParseFloat(m[1], 64)
	max, err2 := strconv.ParseFloat(m[2], 64)
	if err1 != nil || err2 != nil {
		return 0, 0, false
	}
	return min, max, true
}

var temperatureRangeRe = regexp.MustCompile(`(-?\d+)\s*(?:\x{00b0}C)?\s*to\s*\+?(\d+)\s*\x{00b0}C`)

// TemperatureRange returns an operating temperature range when the page
// states one in "-40 to 85 °C" form.
func TemperatureRange(text string) (min, max float64, ok bool) {
	m := temperatureRangeRe.FindStringSubmatch(text)
	if m == nil {
		return 0, 0, false
	}
	min, err1 := strconv.ParseFloat(m[1], 64)
	max, err2 := strconv.ParseFloat(m[2], 64)
	if err1 != nil || err2 != nil {
		return 0, 0, false
	}
	return min, max, true
}
