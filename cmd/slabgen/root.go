package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"slabgen/internal/config"
)

var (
	flagConfig  string
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:   "slabgen",
	Short: "Build CUBIT/Trelis slab surfaces from Slab 1.0 contours",
	Long: `slabgen reads depth contours of a subducting plate (Slab 1.0
format) and writes a CUBIT/Trelis journal script that skins the
contours into ACIS NURBS surfaces for the slab top, slab bottom, and a
splay fault, ready for volume mesh generation.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", "", "YAML run parameters (built-in Cascadia defaults when omitted)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(previewCmd)
}

func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if flagVerbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func loadConfig() (config.Config, error) {
	if flagConfig == "" {
		return config.Default(), nil
	}
	return config.Load(flagConfig)
}
