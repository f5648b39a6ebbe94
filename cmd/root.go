package cmd

import (
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"
)

var debug bool
var configPath string

var rootCmd = &cobra.Command{
	Use:   "launchyargs",
	Short: "launchyargs resolves the main class and arguments to start minecraft",
	Long: `launchyargs resolves the main class and the game arguments needed to start a minecraft client.
It knows every launch protocol from 1.5.2 up to 1.13+ with Fabric or Forge, and prints the exact argument vector a launcher must use.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "Enable debug mode")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to a launch profile (yaml)")
}

// newLogger writes to stderr in debug mode and discards otherwise.
func newLogger(cmd *cobra.Command) *log.Logger {
	if debug {
		return log.New(cmd.ErrOrStderr(), "[launchyargs] ", log.LstdFlags)
	}
	return log.New(io.Discard, "", 0)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
