package board

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Jobenas/stm32bridge/internal/domain"
)

// DefaultHSEValue is the external oscillator frequency assumed when the
// caller does not override it. 8 MHz crystals are the de facto standard on
// STM32 boards.
const DefaultHSEValue = 8_000_000

// openocdTargets maps a family to its OpenOCD target script name
var openocdTargets = map[string]string{
	"STM32F0": "stm32f0x",
	"STM32F1": "stm32f1x",
	"STM32F2": "stm32f2x",
	"STM32F3": "stm32f3x",
	"STM32F4": "stm32f4x",
	"STM32F7": "stm32f7x",
	"STM32G0": "stm32g0x",
	"STM32G4": "stm32g4x",
	"STM32H7": "stm32h7x",
	"STM32L0": "stm32l0",
	"STM32L1": "stm32l1",
	"STM32L4": "stm32l4x",
	"STM32L5": "stm32l5x",
	"STM32U5": "stm32u5x",
	"STM32WB": "stm32wbx",
	"STM32WL": "stm32wlx",
}

// fallbackOpenOCDTarget is used for families missing from the table. A
// wrong target still lets PlatformIO resolve the board; the user corrects
// it in platformio.ini.
const fallbackOpenOCDTarget = "stm32f4x"

// productLineRe captures the product-line stem of a part number: series
// letter(s) and the three-digit line, e.g. STM32L432 out of STM32L432KCU6.
var productLineRe = regexp.MustCompile(`^STM32[A-Z]{1,2}\d{2,3}`)

// uploadProtocols is every upload method advertised on generated boards
var uploadProtocols = []string{"jlink", "stlink", "blackmagic", "mbed"}

// stlinkHWID is the USB vendor/product pair of the on-board ST-LINK probe
var stlinkHWID = []string{"0x0483", "0x374B"}

// Generator synthesizes board configurations. The zero value is not
// usable; construct with NewGenerator.
type Generator struct {
	hseValue int64
}

// GeneratorOption is a functional option for configuring a Generator
type GeneratorOption func(*Generator)

// WithHSEValue overrides the assumed external oscillator frequency in Hz
func WithHSEValue(hz int64) GeneratorOption {
	return func(g *Generator) {
		if hz > 0 {
			g.hseValue = hz
		}
	}
}

// NewGenerator creates a Generator with the default oscillator assumption
func NewGenerator(opts ...GeneratorOption) *Generator {
	g := &Generator{hseValue: DefaultHSEValue}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Synthesize builds a complete board configuration from a specification
// record. boardName overrides the derived display name when non-empty.
// The record is read, never mutated, and synthesis performs no I/O.
func (g *Generator) Synthesize(spec *domain.MCUSpec, boardName string) *domain.BoardConfig {
	part := strings.ToUpper(strings.TrimSpace(spec.PartNumber))

	// Records normally arrive validated, but synthesis must not fail
	core := spec.Core
	if !domain.ValidCore(core) {
		core = domain.DefaultCore
	}

	name := boardName
	if name == "" {
		name = fmt.Sprintf("%s (%dKB flash, %dKB RAM)", part, spec.FlashSizeKB, spec.RAMSizeKB)
	}

	return &domain.BoardConfig{
		Build: domain.BuildSection{
			Core:        "stm32",
			CPU:         string(core),
			ExtraFlags:  g.extraFlags(spec, part),
			FCPU:        spec.MaxFrequency,
			HWIDs:       [][]string{stlinkHWID},
			MCU:         strings.ToLower(part),
			ProductLine: productLine(part),
			Variant:     part,
			Peripherals: spec.Peripherals,
			Features:    spec.Features,
		},
		Connectivity: connectivity(spec),
		Debug: domain.DebugSection{
			JLinkDevice:   part,
			OpenOCDTarget: openocdTarget(spec.Family),
			SVDPath:       part + ".svd",
		},
		// Vendor framework first, then the community core
		Frameworks: []string{"stm32cube", "arduino"},
		Name:       name,
		Upload: domain.UploadSection{
			MaximumRAMSize: spec.RAMSizeKB * 1024,
			MaximumSize:    spec.FlashSizeKB * 1024,
			Protocol:       "stlink",
			Protocols:      uploadProtocols,
		},
		URL:    "https://www.st.com/en/microcontrollers-microprocessors/" + strings.ToLower(part) + ".html",
		Vendor: "ST",
	}
}

// extraFlags renders the compiler defines for the part. The HSE value
// always carries the U suffix: HAL clock code compares it against unsigned
// constants and a bare literal trips sign-conversion warnings into errors.
func (g *Generator) extraFlags(spec *domain.MCUSpec, part string) string {
	flags := fmt.Sprintf("-D%s -D%s -DHSE_VALUE=%dU", part, spec.Family, g.hseValue)
	if spec.Core.HasFPU() && spec.HasFeature("fpu") {
		flags += " -mfpu=fpv4-sp-d16 -mfloat-abi=hard"
	}
	return flags
}

// productLine derives the HAL product-line macro stem, e.g. STM32L432xx.
// Parts too short to carry a line keep the whole part with the xx suffix.
func productLine(part string) string {
	if stem := productLineRe.FindString(part); stem != "" {
		return stem + "xx"
	}
	return part + "xx"
}

func openocdTarget(family string) string {
	if target, ok := openocdTargets[strings.ToUpper(family)]; ok {
		return target
	}
	return fallbackOpenOCDTarget
}

// connectivity lists the transports the part actually exposes, in a fixed
// order so generated boards stay diffable
func connectivity(spec *domain.MCUSpec) []string {
	var tags []string
	for _, c := range []string{"usb", "can", "ethernet", "bluetooth"} {
		if spec.PeripheralCount(strings.ToUpper(c)) > 0 || spec.HasFeature(c) {
			tags = append(tags, c)
		}
	}
	return tags
}
