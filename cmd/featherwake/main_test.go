package main

import (
	"io"
	"log/slog"
	"testing"

	"github.com/milk9111/featherwake/config"
	"github.com/milk9111/featherwake/gameerr"
	"github.com/milk9111/featherwake/levels"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadLayoutDefaultsToEmbeddedMap(t *testing.T) {
	layout, err := loadLayout("")
	require.NoError(t, err)
	require.NoError(t, layout.Validate())
	assert.Equal(t, [2]int{layout.Boundary.Cols() * 64, layout.Boundary.Rows() * 64}, floorSize(layout, 64))
}

func TestLoadLayoutMissingDir(t *testing.T) {
	_, err := loadLayout(t.TempDir())
	require.Error(t, err)
}

func TestFloorSize(t *testing.T) {
	l := &levels.Layout{Boundary: levels.Grid{{-1, -1, -1}, {-1, -1, -1}}}
	assert.Equal(t, [2]int{192, 128}, floorSize(l, 64))
}

func TestClipCacheWithoutPlaceholdersReportsMissingArt(t *testing.T) {
	cfg := config.Default()
	layout, err := loadLayout("")
	require.NoError(t, err)

	clips := newClipCache(t.TempDir(), false, cfg, layout, slog.New(slog.NewTextHandler(io.Discard, nil)))
	_, err = clips.Get(cfg.Clips.Floor)
	require.Error(t, err)
	assert.True(t, gameerr.IsAssetMissing(err), "%v", err)
}
