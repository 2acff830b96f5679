package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "fooding",
	Short: "Food search and pantry tracking API",
	Long: `fooding serves food search over USDA FoodData Central, per-user pantries,
custom foods and recipe suggestions.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
