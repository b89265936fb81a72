package board

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"testing"

	"github.com/Jobenas/stm32bridge/internal/domain"
)

// l432Spec returns a fresh STM32L432KC record matching the real part
func l432Spec() *domain.MCUSpec {
	return &domain.MCUSpec{
		PartNumber:          "STM32L432KC",
		Family:              "STM32L4",
		Core:                domain.CoreM4,
		MaxFrequency:        "80000000L",
		FlashSizeKB:         256,
		RAMSizeKB:           64,
		Package:             "LQFP",
		PinCount:            32,
		OperatingVoltageMin: 1.71,
		OperatingVoltageMax: 3.6,
		TemperatureMin:      -40,
		TemperatureMax:      85,
		Peripherals:         map[string]int{"USART": 3, "SPI": 2, "I2C": 2, "USB": 1},
		Features:            []string{"fpu", "usb"},
	}
}

func TestGenerator_Synthesize(t *testing.T) {
	g := NewGenerator()

	t.Run("build section", func(t *testing.T) {
		cfg := g.Synthesize(l432Spec(), "")

		if cfg.Build.Core != "stm32" {
			t.Errorf("core = %s, want stm32", cfg.Build.Core)
		}
		if cfg.Build.CPU != "cortex-m4" {
			t.Errorf("cpu = %s, want cortex-m4", cfg.Build.CPU)
		}
		if cfg.Build.FCPU != "80000000L" {
			t.Errorf("f_cpu = %s, want 80000000L", cfg.Build.FCPU)
		}
		if cfg.Build.MCU != "stm32l432kc" {
			t.Errorf("mcu = %s, want stm32l432kc", cfg.Build.MCU)
		}
		if cfg.Build.ProductLine != "STM32L432xx" {
			t.Errorf("product_line = %s, want STM32L432xx", cfg.Build.ProductLine)
		}
		if cfg.Build.Variant != "STM32L432KC" {
			t.Errorf("variant = %s, want STM32L432KC", cfg.Build.Variant)
		}
		if len(cfg.Build.HWIDs) != 1 || cfg.Build.HWIDs[0][0] != "0x0483" || cfg.Build.HWIDs[0][1] != "0x374B" {
			t.Errorf("hwids = %v, want the ST-LINK pair", cfg.Build.HWIDs)
		}
	})

	t.Run("extra flags carry part, family and unsigned HSE define", func(t *testing.T) {
		cfg := g.Synthesize(l432Spec(), "")
		want := "-DSTM32L432KC -DSTM32L4 -DHSE_VALUE=8000000U -mfpu=fpv4-sp-d16 -mfloat-abi=hard"
		if cfg.Build.ExtraFlags != want {
			t.Errorf("extra_flags = %q, want %q", cfg.Build.ExtraFlags, want)
		}
	})

	t.Run("HSE define is unsigned for every family", func(t *testing.T) {
		hseRe := regexp.MustCompile(`-DHSE_VALUE=\d+U(\s|$)`)
		for _, fam := range domain.Families() {
			spec := l432Spec()
			spec.Family = fam.Name
			spec.PartNumber = fam.Name + "00AA"
			spec.Core = fam.DefaultCore
			cfg := g.Synthesize(spec, "")
			if !hseRe.MatchString(cfg.Build.ExtraFlags) {
				t.Errorf("%s: extra_flags %q missing U-suffixed HSE define", fam.Name, cfg.Build.ExtraFlags)
			}
		}
	})

	t.Run("FPU flags require both a capable core and the feature", func(t *testing.T) {
		noFeature := l432Spec()
		noFeature.Features = []string{"usb"}
		if flags := g.Synthesize(noFeature, "").Build.ExtraFlags; strings.Contains(flags, "-mfpu") {
			t.Errorf("FPU flags emitted without the fpu feature: %q", flags)
		}

		noFPUCore := l432Spec()
		noFPUCore.Core = domain.CoreM0
		if flags := g.Synthesize(noFPUCore, "").Build.ExtraFlags; strings.Contains(flags, "-mfpu") {
			t.Errorf("FPU flags emitted for a core without an FPU: %q", flags)
		}
	})

	t.Run("memory limits are exact byte counts", func(t *testing.T) {
		cfg := g.Synthesize(l432Spec(), "")
		if cfg.Upload.MaximumSize != 262144 {
			t.Errorf("maximum_size = %d, want 262144", cfg.Upload.MaximumSize)
		}
		if cfg.Upload.MaximumRAMSize != 65536 {
			t.Errorf("maximum_ram_size = %d, want 65536", cfg.Upload.MaximumRAMSize)
		}
	})

	t.Run("debug section", func(t *testing.T) {
		cfg := g.Synthesize(l432Spec(), "")
		if cfg.Debug.JLinkDevice != "STM32L432KC" {
			t.Errorf("jlink_device = %s, want STM32L432KC", cfg.Debug.JLinkDevice)
		}
		if cfg.Debug.OpenOCDTarget != "stm32l4x" {
			t.Errorf("openocd_target = %s, want stm32l4x", cfg.Debug.OpenOCDTarget)
		}
		if cfg.Debug.SVDPath != "STM32L432KC.svd" {
			t.Errorf("svd_path = %s, want STM32L432KC.svd", cfg.Debug.SVDPath)
		}
	})

	t.Run("every known family has an openocd target", func(t *testing.T) {
		for _, fam := range domain.Families() {
			if target := openocdTarget(fam.Name); target == "" {
				t.Errorf("%s: empty openocd target", fam.Name)
			}
		}
	})

	t.Run("unknown family falls back to the generic target", func(t *testing.T) {
		if target := openocdTarget("STM32ZZ"); target != "stm32f4x" {
			t.Errorf("fallback target = %s, want stm32f4x", target)
		}
	})

	t.Run("frameworks list vendor framework first", func(t *testing.T) {
		cfg := g.Synthesize(l432Spec(), "")
		if len(cfg.Frameworks) != 2 || cfg.Frameworks[0] != "stm32cube" || cfg.Frameworks[1] != "arduino" {
			t.Errorf("frameworks = %v, want [stm32cube arduino]", cfg.Frameworks)
		}
	})

	t.Run("derived name includes memory figures", func(t *testing.T) {
		cfg := g.Synthesize(l432Spec(), "")
		if cfg.Name != "STM32L432KC (256KB flash, 64KB RAM)" {
			t.Errorf("name = %q", cfg.Name)
		}
	})

	t.Run("explicit board name wins", func(t *testing.T) {
		cfg := g.Synthesize(l432Spec(), "nucleo_l432kc")
		if cfg.Name != "nucleo_l432kc" {
			t.Errorf("name = %q, want nucleo_l432kc", cfg.Name)
		}
	})

	t.Run("connectivity reflects peripherals and features", func(t *testing.T) {
		cfg := g.Synthesize(l432Spec(), "")
		if len(cfg.Connectivity) != 1 || cfg.Connectivity[0] != "usb" {
			t.Errorf("connectivity = %v, want [usb]", cfg.Connectivity)
		}

		rich := l432Spec()
		rich.Peripherals["CAN"] = 2
		rich.Features = append(rich.Features, "ethernet")
		cfg = g.Synthesize(rich, "")
		want := []string{"usb", "can", "ethernet"}
		if fmt.Sprint(cfg.Connectivity) != fmt.Sprint(want) {
			t.Errorf("connectivity = %v, want %v", cfg.Connectivity, want)
		}
	})

	t.Run("url and vendor point at ST", func(t *testing.T) {
		cfg := g.Synthesize(l432Spec(), "")
		if cfg.Vendor != "ST" {
			t.Errorf("vendor = %s, want ST", cfg.Vendor)
		}
		if cfg.URL != "https://www.st.com/en/microcontrollers-microprocessors/stm32l432kc.html" {
			t.Errorf("url = %s", cfg.URL)
		}
	})
}

func TestGenerator_Deterministic(t *testing.T) {
	g := NewGenerator()

	first, err := json.Marshal(g.Synthesize(l432Spec(), ""))
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 10; i++ {
		next, err := json.Marshal(g.Synthesize(l432Spec(), ""))
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(first, next) {
			t.Fatalf("run %d: encoded output differs from first run", i)
		}
	}
}

func TestGenerator_HSEOverride(t *testing.T) {
	g := NewGenerator(WithHSEValue(25_000_000))
	cfg := g.Synthesize(l432Spec(), "")
	if !strings.Contains(cfg.Build.ExtraFlags, "-DHSE_VALUE=25000000U") {
		t.Errorf("extra_flags = %q, want a 25 MHz unsigned HSE define", cfg.Build.ExtraFlags)
	}
}
