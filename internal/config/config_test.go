package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 20, cfg.PointsStride)
	assert.Equal(t, 10, cfg.Spacing)
	assert.Equal(t, 10.0, cfg.UpDip.Dip)
	assert.Equal(t, 600.0, cfg.UpDip.Distance)
	assert.Equal(t, 50.0, cfg.Slab.Thickness)
	assert.Equal(t, 15, cfg.Splay.Contour)
	assert.Equal(t, "surf_slabtop.sat", cfg.Surfaces.Top)
}

func TestLoad_OverlaysDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join("testdata", "run.yaml"))
	require.NoError(t, err)

	// overridden
	assert.Equal(t, "alu_contours_dep.in.txt", cfg.Contours)
	assert.Equal(t, 12.5, cfg.UpDip.Dip)
	assert.Equal(t, 5, cfg.Spacing)
	// inherited from defaults
	assert.Equal(t, 20, cfg.PointsStride)
	assert.Equal(t, 600.0, cfg.UpDip.Distance)
	assert.Equal(t, "surf_splay.sat", cfg.Surfaces.Splay)
}

func TestLoad_RejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"zero dip", "up_dip:\n  dip: 0\n"},
		{"steep dip", "up_dip:\n  dip: 95\n"},
		{"zero thickness", "slab:\n  thickness: 0\n"},
		{"empty journal", "journal: \"\"\n"},
		{"zero stride", "points_stride: 0\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "run.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.yaml), 0o644))
			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoad_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte("contours: [unclosed\n"), 0o644))
	_, err := Load(path)
	require.Error(t, err)
}
