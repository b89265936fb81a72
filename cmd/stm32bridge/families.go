package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Jobenas/stm32bridge/internal/domain"
)

func familiesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "families",
		Short: "List supported STM32 families",
		Long:  "List the STM32 families stm32bridge recognizes, with their default core and HAL driver names.",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("%-10s %-14s %-24s %s\n", "Family", "Core", "HAL Driver", "CMSIS")
			for _, fam := range domain.Families() {
				fmt.Printf("%-10s %-14s %-24s %s\n", fam.Name, fam.DefaultCore, fam.HALDriver, fam.CMSIS)
			}
		},
	}
}
