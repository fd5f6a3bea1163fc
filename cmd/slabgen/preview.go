package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"slabgen/internal/contour"
	"slabgen/internal/slab"
	"slabgen/internal/tui"
)

var previewStride int

var previewCmd = &cobra.Command{
	Use:   "preview [contour-file]",
	Short: "Inspect contours in the terminal before generating",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runPreview,
}

func init() {
	previewCmd.Flags().IntVar(&previewStride, "stride", 1, "decimate points for display")
}

func runPreview(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	path := cfg.Contours
	if len(args) == 1 {
		path = args[0]
	}
	set, err := contour.Read(path)
	if err != nil {
		return err
	}
	if previewStride > 1 {
		slab.NewExtender(set).Decimate(previewStride)
	}
	m := tui.New(path, set)
	_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run()
	return err
}
