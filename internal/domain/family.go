package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownFamily is returned when a part-number prefix matches no known
// family. Callers must treat this as a hard stop: defaulting the family
// silently produces wrong build flags downstream.
var ErrUnknownFamily = errors.New("unknown MCU family")

// Family groups part numbers sharing a core architecture and HAL driver
// namespace
type Family struct {
	Name      string `json:"name" yaml:"name"`
	HALDriver string `json:"hal_driver" yaml:"hal_driver"`
	CMSIS     string `json:"cmsis" yaml:"cmsis"`
	// DefaultCore is the documented core for parts in this family, used
	// when a source never names the core explicitly.
	DefaultCore Core `json:"default_core" yaml:"default_core"`
}

// families is the fixed, order-significant family table. Every entry key is
// exactly seven characters, so no shorter prefix can shadow a longer one;
// keep it that way when adding families.
var families = []Family{
	{Name: "STM32F0", HALDriver: "STM32F0xx_HAL_Driver", CMSIS: "STM32F0xx", DefaultCore: CoreM0},
	{Name: "STM32F1", HALDriver: "STM32F1xx_HAL_Driver", CMSIS: "STM32F1xx", DefaultCore: CoreM3},
	{Name: "STM32F2", HALDriver: "STM32F2xx_HAL_Driver", CMSIS: "STM32F2xx", DefaultCore: CoreM3},
	{Name: "STM32F3", HALDriver: "STM32F3xx_HAL_Driver", CMSIS: "STM32F3xx", DefaultCore: CoreM4},
	{Name: "STM32F4", HALDriver: "STM32F4xx_HAL_Driver", CMSIS: "STM32F4xx", DefaultCore: CoreM4},
	{Name: "STM32F7", HALDriver: "STM32F7xx_HAL_Driver", CMSIS: "STM32F7xx", DefaultCore: CoreM7},
	{Name: "STM32G0", HALDriver: "STM32G0xx_HAL_Driver", CMSIS: "STM32G0xx", DefaultCore: CoreM0Plus},
	{Name: "STM32G4", HALDriver: "STM32G4xx_HAL_Driver", CMSIS: "STM32G4xx", DefaultCore: CoreM4},
	{Name: "STM32H7", HALDriver: "STM32H7xx_HAL_Driver", CMSIS: "STM32H7xx", DefaultCore: CoreM7},
	{Name: "STM32L0", HALDriver: "STM32L0xx_HAL_Driver", CMSIS: "STM32L0xx", DefaultCore: CoreM0Plus},
	{Name: "STM32L1", HALDriver: "STM32L1xx_HAL_Driver", CMSIS: "STM32L1xx", DefaultCore: CoreM3},
	{Name: "STM32L4", HALDriver: "STM32L4xx_HAL_Driver", CMSIS: "STM32L4xx", DefaultCore: CoreM4},
	{Name: "STM32L5", HALDriver: "STM32L5xx_HAL_Driver", CMSIS: "STM32L5xx", DefaultCore: CoreM33},
	{Name: "STM32U5", HALDriver: "STM32U5xx_HAL_Driver", CMSIS: "STM32U5xx", DefaultCore: CoreM33},
	{Name: "STM32WB", HALDriver: "STM32WBxx_HAL_Driver", CMSIS: "STM32WBxx", DefaultCore: CoreM4},
	{Name: "STM32WL", HALDriver: "STM32WLxx_HAL_Driver", CMSIS: "STM32WLxx", DefaultCore: CoreM4},
}

// ResolveFamily maps a part number to its family by prefix match against the
// fixed family table. Matching is case-insensitive; the part number's case
// is otherwise preserved by callers.
func ResolveFamily(partNumber string) (Family, error) {
	upper := strings.ToUpper(strings.TrimSpace(partNumber))
	if upper == "" {
		return Family{}, fmt.Errorf("%w: empty part number", ErrUnknownFamily)
	}
	for _, f := range families {
		if strings.HasPrefix(upper, f.Name) {
			return f, nil
		}
	}
	return Family{}, fmt.Errorf("%w: %s", ErrUnknownFamily, partNumber)
}

// Families returns a copy of the family table in table order
func Families() []Family {
	out := make([]Family, len(families))
	copy(out, families)
	return out
}
