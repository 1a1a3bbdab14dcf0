package main

import (
	"log/slog"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/featherwake/actor"
	"github.com/milk9111/featherwake/config"
	"github.com/milk9111/featherwake/content"
	"github.com/milk9111/featherwake/render"
	"github.com/milk9111/featherwake/world"
)

type game struct {
	world    *world.World
	renderer *render.Renderer
	pause    *ebitenui.UI
	cfg      *config.Config
	log      *slog.Logger

	watcher    *content.Watcher
	contentDir string

	paused bool
	quit   bool
}

func newGame(w *world.World, r *render.Renderer, cfg *config.Config, log *slog.Logger) *game {
	g := &game{world: w, renderer: r, cfg: cfg, log: log}
	g.pause = render.NewPauseUI(cfg.Display.Width, cfg.Display.Height,
		func() { g.paused = false },
		func() { g.quit = true },
	)
	return g
}

func (g *game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	g.reload()

	if render.PausePressed(inpututil.IsKeyJustPressed) {
		g.paused = !g.paused
	}
	if g.paused {
		g.pause.Update()
		return nil
	}

	in := render.PollInput()
	if g.world.Defeated() {
		in = actor.Input{}
	}
	return g.world.Update(in)
}

// reload applies template edits between frames, never mid-frame.
func (g *game) reload() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case err := <-g.watcher.Errors:
			g.log.Warn("content watch failed", "err", err)
			continue
		default:
		}

		path, ok := g.watcher.Poll()
		if !ok {
			return
		}
		table, err := content.Load(g.contentDir)
		if err != nil {
			g.log.Warn("content reload rejected", "path", path, "err", err)
			continue
		}
		g.world.SetContent(table)
		g.log.Info("content reloaded", "path", path)
	}
}

func (g *game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.world.DrawList(), g.world.HUD())
	if g.paused {
		g.pause.Draw(screen)
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Display.Width, g.cfg.Display.Height
}
