package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Jobenas/stm32bridge/internal/codec"
)

var (
	boardName    string
	boardOutput  string
	boardFormat  string
	boardTimeout time.Duration
	boardHSE     int64
	boardNoCache bool
)

func boardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board <locator>",
		Short: "Generate a PlatformIO board configuration",
		Long: `Generate a PlatformIO board configuration from a vendor product page,
a saved record file, or a bare part number.

Examples:
  # From a Mouser product page
  stm32bridge board https://www.mouser.com/ProductDetail/STMicroelectronics/STM32L432KCU6

  # From an ST product page, writing to a file
  stm32bridge board https://www.st.com/en/microcontrollers/stm32l432kc.html --out boards/stm32l432kc.json

  # From a saved record, as a platformio.ini snippet
  stm32bridge board stm32l432kc.json --format ini

  # Offline, from a bare part number (conservative defaults)
  stm32bridge board STM32L432KC`,
		Args: cobra.ExactArgs(1),
		RunE: runBoard,
	}

	cmd.Flags().StringVarP(&boardName, "name", "n", "", "Board display name (default: derived from the part)")
	cmd.Flags().StringVarP(&boardOutput, "out", "o", "", "Output file (default: stdout)")
	cmd.Flags().StringVarP(&boardFormat, "format", "f", "", "Output format: json, yaml or ini (default: from config)")
	cmd.Flags().DurationVar(&boardTimeout, "timeout", 0, "Page fetch timeout (default: from config)")
	cmd.Flags().Int64Var(&boardHSE, "hse", 0, "External oscillator frequency in Hz (default: from config)")
	cmd.Flags().BoolVar(&boardNoCache, "no-cache", false, "Skip the persistent specification cache")

	return cmd
}

func runBoard(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if boardNoCache {
		cfg.Cache.Enabled = false
	}

	format := boardFormat
	if format == "" {
		format = cfg.Board.Format
	}
	exporter, ok := codec.ExporterFor(format)
	if !ok {
		return fmt.Errorf("unknown format %q (want json, yaml or ini)", format)
	}

	svc, cleanup, err := newService(cfg, boardTimeout, boardHSE)
	if err != nil {
		return err
	}
	defer cleanup()

	boardCfg, err := svc.GenerateBoard(cmd.Context(), args[0], boardName)
	if err != nil {
		return err
	}

	out := os.Stdout
	if boardOutput != "" {
		if dir := filepath.Dir(boardOutput); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
		}
		out, err = os.Create(boardOutput)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer func() { _ = out.Close() }()
	}

	if err := exporter.Export(boardCfg, out); err != nil {
		return fmt.Errorf("failed to export board: %w", err)
	}
	if boardOutput != "" {
		fmt.Printf("Wrote %s board %q to %s\n", exporter.Format(), strings.ToUpper(boardCfg.Build.Variant), boardOutput)
	}
	return nil
}
