package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	specOutput  string
	specTimeout time.Duration
	specNoCache bool
)

func specCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "spec <locator>",
		Short: "Extract a specification record",
		Long: `Extract a specification record from a vendor product page, a saved
record file, or a bare part number, and print it as JSON.

The output is a record file: it can be fed back into the board command.

Examples:
  # Extract and save a record
  stm32bridge spec https://www.mouser.com/ProductDetail/STMicroelectronics/STM32L432KCU6 --out stm32l432kc.json

  # Inspect what a bare part number resolves to
  stm32bridge spec STM32F103C8`,
		Args: cobra.ExactArgs(1),
		RunE: runSpec,
	}

	cmd.Flags().StringVarP(&specOutput, "out", "o", "", "Output file (default: stdout)")
	cmd.Flags().DurationVar(&specTimeout, "timeout", 0, "Page fetch timeout (default: from config)")
	cmd.Flags().BoolVar(&specNoCache, "no-cache", false, "Skip the persistent specification cache")

	cmd.AddCommand(specListCmd())
	cmd.AddCommand(specDeleteCmd())

	return cmd
}

func runSpec(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if specNoCache {
		cfg.Cache.Enabled = false
	}

	svc, cleanup, err := newService(cfg, specTimeout, 0)
	if err != nil {
		return err
	}
	defer cleanup()

	spec, err := svc.ResolveSpec(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	out := os.Stdout
	if specOutput != "" {
		out, err = os.Create(specOutput)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer func() { _ = out.Close() }()
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(spec); err != nil {
		return fmt.Errorf("failed to encode record: %w", err)
	}
	if specOutput != "" {
		fmt.Printf("Wrote record for %s to %s\n", spec.PartNumber, specOutput)
	}
	return nil
}

func specListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List cached specification records",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			svc, cleanup, err := newService(cfg, 0, 0)
			if err != nil {
				return err
			}
			defer cleanup()

			specs, err := svc.ListSpecs(cmd.Context())
			if err != nil {
				return err
			}
			if len(specs) == 0 {
				fmt.Println("No cached records")
				return nil
			}

			fmt.Printf("%-16s %-10s %-12s %8s %8s\n", "Part", "Family", "Core", "Flash", "RAM")
			for _, spec := range specs {
				fmt.Printf("%-16s %-10s %-12s %6dKB %6dKB\n",
					spec.PartNumber, spec.Family, spec.Core, spec.FlashSizeKB, spec.RAMSizeKB)
			}
			return nil
		},
	}
}

func specDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <part-number>",
		Short: "Remove a record from the cache",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			svc, cleanup, err := newService(cfg, 0, 0)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := svc.DeleteSpec(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Deleted %s\n", args[0])
			return nil
		},
	}
}
