package scrape

import (
	"golang.org/x/net/html"

	"github.com/Jobenas/stm32bridge/internal/domain"
	"github.com/Jobenas/stm32bridge/internal/extract"
)

// Dialect parses one known document shape into a specification record
type Dialect interface {
	// Name identifies the dialect in errors and logs
	Name() string
	// Parse assembles a complete record from the document, or fails.
	// There is no partially extracted record.
	Parse(doc *html.Node, sourceURL string) (*domain.MCUSpec, error)
}

// dialectFor maps a classified origin to its parser. The set is closed:
// supporting a new site means adding an Origin constant and a Dialect here,
// not extending a conditional chain.
func dialectFor(o Origin) (Dialect, bool) {
	switch o {
	case OriginMouser:
		return &MouserDialect{}, true
	case OriginST:
		return &STDialect{}, true
	}
	return nil, false
}

// Conservative environmental defaults applied when a page never states
// voltage or temperature ranges. Values cover the common industrial-grade
// STM32 envelope.
const (
	defaultVoltageMin     = 1.71
	defaultVoltageMax     = 3.6
	defaultTemperatureMin = -40
	defaultTemperatureMax = 85
)

// Fallback physical defaults for attributes a page may omit without making
// the record useless
const (
	defaultPackage  = "LQFP"
	defaultPinCount = 64
)

// assembleSpec runs the feature extractors over flattened page text and
// builds the record shared by both dialects. The part number has already
// been established by the caller; family resolution failures propagate.
func assembleSpec(partNumber, text string) (*domain.MCUSpec, error) {
	family, err := domain.ResolveFamily(partNumber)
	if err != nil {
		return nil, err
	}

	// Prefer the family's documented core over the extractor's global
	// default when the page never names one
	core, matched := extract.Core(text)
	if !matched {
		core = family.DefaultCore
	}

	spec := &domain.MCUSpec{
		PartNumber:          partNumber,
		Family:              family.Name,
		Core:                core,
		Package:             defaultPackage,
		PinCount:            defaultPinCount,
		OperatingVoltageMin: defaultVoltageMin,
		OperatingVoltageMax: defaultVoltageMax,
		TemperatureMin:      defaultTemperatureMin,
		TemperatureMax:      defaultTemperatureMax,
		Peripherals:         extract.Peripherals(text),
		Features:            extract.Features(text),
	}

	if freq, ok := extract.Frequency(text); ok {
		spec.MaxFrequency = freq
	}
	if kb, ok := extract.Memory(text, extract.MemoryFlash); ok {
		spec.FlashSizeKB = kb
	}
	if kb, ok := extract.Memory(text, extract.MemoryRAM); ok {
		spec.RAMSizeKB = kb
	}
	if pkg, pins, ok := extract.Package(text); ok {
		spec.Package = pkg
		if pins > 0 {
			spec.PinCount = pins
		}
	}
	if min, max, ok := extract.VoltageRange(text); ok {
		spec.OperatingVoltageMin = min
		spec.OperatingVoltageMax = max
	}
	if min, max, ok := extract.TemperatureRange(text); ok {
		spec.TemperatureMin = min
		spec.TemperatureMax = max
	}

	return spec, nil
}
