package codec

import (
	"fmt"
	"io"
	"strings"

	"github.com/Jobenas/stm32bridge/internal/domain"
)

// IniCodec renders a ready-to-paste platformio.ini environment section for
// a board. Export only: an ini section carries too little of the board to
// round-trip back into a configuration.
type IniCodec struct{}

// NewIniCodec creates a new platformio.ini codec
func NewIniCodec() *IniCodec {
	return &IniCodec{}
}

// Format returns the codec format identifier
func (c *IniCodec) Format() string {
	return "ini"
}

// Export writes an [env:...] section referencing the board by its MCU name
func (c *IniCodec) Export(cfg *domain.BoardConfig, w io.Writer) error {
	var b strings.Builder

	fmt.Fprintf(&b, "[env:%s]\n", cfg.Build.MCU)
	fmt.Fprintf(&b, "platform = ststm32\n")
	fmt.Fprintf(&b, "board = %s\n", cfg.Build.MCU)
	if len(cfg.Frameworks) > 0 {
		fmt.Fprintf(&b, "framework = %s\n", cfg.Frameworks[0])
	}
	if cfg.Upload.Protocol != "" {
		fmt.Fprintf(&b, "upload_protocol = %s\n", cfg.Upload.Protocol)
		fmt.Fprintf(&b, "debug_tool = %s\n", cfg.Upload.Protocol)
	}
	if cfg.Build.ExtraFlags != "" {
		fmt.Fprintf(&b, "build_flags = %s\n", cfg.Build.ExtraFlags)
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("failed to write ini section: %w", err)
	}
	return nil
}
