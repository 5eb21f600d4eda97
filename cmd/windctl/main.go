package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var serverURL string

var rootCmd = &cobra.Command{
	Use:   "windctl",
	Short: "Wind power prediction client",
	Long: `windctl talks to the wind power prediction API: submit meteorological
readings for a power estimate, check service health, and inspect the loaded model.`,
	SilenceUsage: true,
}

func main() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "http://localhost:5000",
		"base URL of the prediction API")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
