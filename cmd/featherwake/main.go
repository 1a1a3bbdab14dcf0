// Command featherwake runs the game.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/featherwake/asset"
	"github.com/milk9111/featherwake/assets"
	"github.com/milk9111/featherwake/clock"
	"github.com/milk9111/featherwake/config"
	"github.com/milk9111/featherwake/content"
	"github.com/milk9111/featherwake/gameerr"
	"github.com/milk9111/featherwake/levels"
	"github.com/milk9111/featherwake/metrics"
	"github.com/milk9111/featherwake/render"
	"github.com/milk9111/featherwake/world"
	"github.com/spf13/cobra"
)

var (
	configPath   string
	levelDir     string
	contentDir   string
	assetsDir    string
	placeholders bool
	watch        bool
	debug        bool
)

var rootCmd = &cobra.Command{
	Use:          "featherwake",
	Short:        "Top-down action game",
	Long:         `featherwake explores a tile map, cutting grass and fighting squids and raccoons with weapons and spells.`,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	f := rootCmd.Flags()
	f.StringVar(&configPath, "config", "", "YAML config file (default $"+config.EnvPath+")")
	f.StringVar(&levelDir, "level", "", "directory with boundary, grass, objects and entities CSV layers (default embedded map)")
	f.StringVar(&contentDir, "content", "", "directory with "+content.FileName+" (default embedded table)")
	f.StringVar(&assetsDir, "assets", "", "art tree with one folder of PNG frames per clip (default embedded)")
	f.BoolVar(&placeholders, "placeholders", false, "draw flat colored frames for clips with no art instead of failing")
	f.BoolVar(&watch, "watch", false, "reload templates from --content when they change")
	f.BoolVar(&debug, "debug", false, "debug logging and overlay")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(log)

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	cfg.Debug = cfg.Debug || debug

	table, err := content.Load(contentDir)
	if err != nil {
		return err
	}
	layout, err := loadLayout(levelDir)
	if err != nil {
		return err
	}

	clips := newClipCache(assetsDir, placeholders, cfg, layout, log)

	w, err := world.Build(world.Options{
		Config:  cfg,
		Content: table,
		Layout:  layout,
		Assets:  clips,
		Clock:   clock.NewReal(),
		Metrics: metrics.New(),
		Logger:  log,
	})
	if err != nil {
		return err
	}

	var watcher *content.Watcher
	if watch {
		if contentDir == "" {
			return gameerr.Configurationf("--watch needs --content")
		}
		watcher, err = content.NewWatcher(contentDir)
		if err != nil {
			return fmt.Errorf("watch %s: %w", contentDir, err)
		}
		defer watcher.Close()
		log.Info("watching content", "dir", contentDir)
	}

	ebiten.SetWindowSize(cfg.Display.Width, cfg.Display.Height)
	ebiten.SetWindowTitle(cfg.Display.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.Display.FPS)

	g := newGame(w, render.NewRenderer(clips, cfg.Debug), cfg, log)
	g.watcher = watcher
	g.contentDir = contentDir

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

func loadLayout(dir string) (*levels.Layout, error) {
	if dir == "" {
		return levels.LoadDefault()
	}
	return levels.Load(os.DirFS(dir), ".")
}

// newClipCache resolves clips from the art tree. Only with usePlaceholders does a
// clip without art get flat colored frames; otherwise it fails the world
// build as AssetMissing.
func newClipCache(dir string, usePlaceholders bool, cfg *config.Config, layout *levels.Layout, log *slog.Logger) *asset.Cache {
	var fallback asset.Source
	if usePlaceholders {
		p := render.NewPlaceholder(int(cfg.TileSize))
		p.Sizes[cfg.Clips.Floor] = floorSize(layout, cfg.TileSize)
		fallback = p
		log.Warn("clips without art use placeholders")
	}
	return asset.NewCache(render.NewDirSource(assets.FS(dir), fallback, log))
}

// floorSize covers the whole map.
func floorSize(l *levels.Layout, tile float64) [2]int {
	return [2]int{int(float64(l.Boundary.Cols()) * tile), int(float64(l.Boundary.Rows()) * tile)}
}
