package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var configPath string

func main() {
	// A missing .env is fine; it only exists in dev checkouts
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "stm32bridge",
		Short: "STM32 specification extractor and PlatformIO board generator",
		Long: `stm32bridge extracts STM32 microcontroller specifications from vendor
product pages (Mouser, ST) or saved records and synthesizes PlatformIO
board configuration files from them.`,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file path (default: search standard locations)")

	rootCmd.AddCommand(boardCmd())
	rootCmd.AddCommand(specCmd())
	rootCmd.AddCommand(familiesCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
