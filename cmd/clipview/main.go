// Command clipview previews clips from an art tree the way the game resolves
// them. Left and right arrows step between clips.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/featherwake/asset"
	"github.com/milk9111/featherwake/assets"
	"github.com/milk9111/featherwake/common"
	"github.com/milk9111/featherwake/component"
	"github.com/milk9111/featherwake/render"
	"github.com/spf13/cobra"
)

const viewSize = 512

var (
	assetsDir    string
	placeholders bool
)

var rootCmd = &cobra.Command{
	Use:          "clipview clip [clip...]",
	Short:        "Preview animation clips",
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVar(&assetsDir, "assets", "", "art tree with one folder of PNG frames or one sheet per clip (default embedded)")
	rootCmd.Flags().BoolVar(&placeholders, "placeholders", false, "show flat colored frames for clips with no art")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	var fallback asset.Source
	if placeholders {
		fallback = render.NewPlaceholder(common.TileSize)
	}
	clips := asset.NewCache(render.NewDirSource(assets.FS(assetsDir), fallback, log))
	if err := clips.Preload(args...); err != nil {
		return err
	}

	v := &viewer{clips: clips, names: args, anim: component.NewAnimator(component.DefaultAnimationSpeed)}
	ebiten.SetWindowSize(viewSize, viewSize)
	ebiten.SetWindowTitle("clipview")
	return ebiten.RunGame(v)
}

type viewer struct {
	clips   *asset.Cache
	names   []string
	current int
	anim    component.Animator
}

func (v *viewer) clip() asset.Clip {
	c, _ := v.clips.Get(v.names[v.current])
	return c
}

func (v *viewer) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight):
		v.current = (v.current + 1) % len(v.names)
		v.anim.Reset()
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft):
		v.current = (v.current + len(v.names) - 1) % len(v.names)
		v.anim.Reset()
	}
	v.anim.Advance(v.clip().Len())
	return nil
}

func (v *viewer) Draw(screen *ebiten.Image) {
	c := v.clip()
	i := v.anim.Frame(c.Len())
	f := c.At(i)
	if img, ok := f.Image.(*ebiten.Image); ok && img != nil {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(viewSize-f.W)/2, float64(viewSize-f.H)/2)
		op.Filter = ebiten.FilterNearest
		screen.DrawImage(img, op)
	}
	ebitenutil.DebugPrint(screen, fmt.Sprintf("%s  frame %d/%d  %dx%d", c.Name, i+1, c.Len(), f.W, f.H))
}

func (v *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return viewSize, viewSize
}
