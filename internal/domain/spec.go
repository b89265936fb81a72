package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Core identifies an ARM Cortex-M core variant
type Core string

const (
	CoreM0     Core = "cortex-m0"
	CoreM0Plus Core = "cortex-m0plus"
	CoreM3     Core = "cortex-m3"
	CoreM4     Core = "cortex-m4"
	CoreM7     Core = "cortex-m7"
	CoreM33    Core = "cortex-m33"
)

// DefaultCore is the assume-capable fallback used when a source never names
// the core. It is a policy value, not a detected one.
const DefaultCore = CoreM4

// ValidCore reports whether c is one of the known core variants
func ValidCore(c Core) bool {
	switch c {
	case CoreM0, CoreM0Plus, CoreM3, CoreM4, CoreM7, CoreM33:
		return true
	}
	return false
}

// HasFPU reports whether the core variant can carry a hardware FPU
func (c Core) HasFPU() bool {
	switch c {
	case CoreM4, CoreM7, CoreM33:
		return true
	}
	return false
}

// MCUSpec is the canonical specification record for one microcontroller.
// It is constructed by a dialect parser or loaded from a record file and
// must not be mutated afterwards.
type MCUSpec struct {
	PartNumber string `json:"part_number" yaml:"part_number"`
	Family     string `json:"family" yaml:"family"`
	Core       Core   `json:"core" yaml:"core"`
	// MaxFrequency is the maximum clock in Hz with a trailing numeric
	// literal marker, e.g. "80000000L".
	MaxFrequency        string         `json:"max_frequency" yaml:"max_frequency"`
	FlashSizeKB         int            `json:"flash_size_kb" yaml:"flash_size_kb"`
	RAMSizeKB           int            `json:"ram_size_kb" yaml:"ram_size_kb"`
	Package             string         `json:"package" yaml:"package"`
	PinCount            int            `json:"pin_count" yaml:"pin_count"`
	OperatingVoltageMin float64        `json:"operating_voltage_min" yaml:"operating_voltage_min"`
	OperatingVoltageMax float64        `json:"operating_voltage_max" yaml:"operating_voltage_max"`
	TemperatureMin      float64        `json:"temperature_min" yaml:"temperature_min"`
	TemperatureMax      float64        `json:"temperature_max" yaml:"temperature_max"`
	Peripherals         map[string]int `json:"peripherals,omitempty" yaml:"peripherals,omitempty"`
	Features            []string       `json:"features,omitempty" yaml:"features,omitempty"`
}

// FrequencyHz parses the MaxFrequency field back into Hz
func (s *MCUSpec) FrequencyHz() (int64, error) {
	raw := strings.TrimSuffix(s.MaxFrequency, "L")
	hz, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse max_frequency %q: %w", s.MaxFrequency, err)
	}
	if hz <= 0 {
		return 0, fmt.Errorf("max_frequency %q is not positive", s.MaxFrequency)
	}
	return hz, nil
}

// HasFeature reports whether the spec carries the given lowercase capability tag
func (s *MCUSpec) HasFeature(tag string) bool {
	for _, f := range s.Features {
		if f == tag {
			return true
		}
	}
	return false
}

// PeripheralCount returns the instance count for a peripheral class, zero if absent
func (s *MCUSpec) PeripheralCount(class string) int {
	return s.Peripherals[class]
}

// Validate performs the structural check applied to records loaded from
// files. Extraction either yields a record that passes this check or fails
// outright; there is no partially valid record.
func (s *MCUSpec) Validate() error {
	if s.PartNumber == "" {
		return fmt.Errorf("part_number is empty")
	}
	if s.Family == "" {
		return fmt.Errorf("family is empty")
	}
	if !ValidCore(s.Core) {
		return fmt.Errorf("core %q is not a known core variant", s.Core)
	}
	if _, err := s.FrequencyHz(); err != nil {
		return err
	}
	if s.FlashSizeKB <= 0 {
		return fmt.Errorf("flash_size_kb must be positive, got %d", s.FlashSizeKB)
	}
	if s.RAMSizeKB <= 0 {
		return fmt.Errorf("ram_size_kb must be positive, got %d", s.RAMSizeKB)
	}
	if s.Package == "" {
		return fmt.Errorf("package is empty")
	}
	if s.PinCount <= 0 {
		return fmt.Errorf("pin_count must be positive, got %d", s.PinCount)
	}
	for class, count := range s.Peripherals {
		if count < 0 {
			return fmt.Errorf("peripheral %s has negative count %d", class, count)
		}
	}
	return nil
}

// String returns a short identifying summary
func (s *MCUSpec) String() string {
	return fmt.Sprintf("%s (%s, %s, %dKB flash, %dKB RAM)",
		s.PartNumber, s.Family, s.Core, s.FlashSizeKB, s.RAMSizeKB)
}
