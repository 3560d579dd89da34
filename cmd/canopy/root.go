package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/canopy/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "canopy",
	Short: "Canopy renders composite component trees",
	Long:  `Canopy builds trees of leaf and branch components from YAML definitions and renders them as a single aggregate value.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
}

// newLogger builds the CLI logger honoring --verbose.
func newLogger(cmd *cobra.Command) *slog.Logger {
	verbose, _ := cmd.Flags().GetBool("verbose")
	if verbose {
		return logging.New(slog.LevelDebug)
	}
	return logging.New(slog.LevelInfo)
}

// readDefinition loads a tree definition from the given path, or from
// stdin when path is "-".
func readDefinition(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}
