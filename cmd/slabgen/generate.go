package main

import (
	"github.com/spf13/cobra"

	"slabgen/internal/contour"
	"slabgen/internal/journal"
	"slabgen/internal/pipeline"
	"slabgen/internal/proj"
	"slabgen/internal/slab"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Run the contour pipeline and write the journal script",
	RunE:  runGenerate,
}

func runGenerate(cmd *cobra.Command, args []string) error {
	log := newLogger()
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	set, err := contour.Read(cfg.Contours)
	if err != nil {
		return err
	}
	log.Info("contours read", "file", cfg.Contours, "contours", set.Len())

	ext := slab.NewExtender(set)
	ext.Decimate(cfg.PointsStride)
	log.Debug("decimated", "stride", cfg.PointsStride)

	mesh, err := proj.NewMesh(cfg.Projection)
	if err != nil {
		return err
	}
	if err := ext.ProjectToMeshFrame(mesh); err != nil {
		return err
	}

	if err := ext.ExtendUpDip(slab.ExtensionParams{
		Elev:    cfg.UpDip.Elevation * 1.0e+3,
		Strike:  cfg.UpDip.Strike,
		Dip:     cfg.UpDip.Dip,
		MaxDist: cfg.UpDip.Distance * 1.0e+3,
	}); err != nil {
		return err
	}
	log.Debug("up-dip extension", "layers", len(ext.UpDipContours()))

	jf, err := journal.Create(cfg.Journal)
	if err != nil {
		return err
	}
	defer jf.Discard()

	if err := pipeline.New(ext, jf.Writer, cfg).Run(); err != nil {
		return err
	}
	if err := jf.Commit(); err != nil {
		return err
	}
	log.Info("journal written", "file", cfg.Journal)
	return nil
}
