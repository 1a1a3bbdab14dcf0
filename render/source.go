// Package render draws a world.DrawList with ebiten and supplies the clips,
// keyboard input and pause menu the game loop needs.
package render

import (
	"bytes"
	"errors"
	"image"
	_ "image/png"
	"io/fs"
	"log/slog"
	"path"
	"sort"
	"strconv"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/featherwake/asset"
	"github.com/milk9111/featherwake/gameerr"
)

// DirSource loads clips from an art tree. A clip is either a folder with a PNG
// per frame or a horizontal sheet <clip>.png of square frames. Clips with
// neither come from the fallback source when there is one and are
// AssetMissing otherwise.
type DirSource struct {
	fsys     fs.FS
	fallback asset.Source
	log      *slog.Logger
}

func NewDirSource(fsys fs.FS, fallback asset.Source, log *slog.Logger) *DirSource {
	if log == nil {
		log = slog.Default()
	}
	return &DirSource{fsys: fsys, fallback: fallback, log: log}
}

func (s *DirSource) Clip(name string) (asset.Clip, error) {
	paths, err := framePaths(s.fsys, name)
	if err != nil {
		return asset.Clip{}, gameerr.Wrap(gameerr.CodeAssetMissing, err, "render: list %s", name)
	}
	if len(paths) == 0 {
		if clip, ok, err := s.sheet(name); ok || err != nil {
			return clip, err
		}
		if s.fallback == nil {
			return asset.Clip{}, gameerr.AssetMissingf("render: no frames for %s", name)
		}
		s.log.Warn("clip has no art, using fallback", "clip", name)
		return s.fallback.Clip(name)
	}

	clip := asset.Clip{Name: name, Frames: make([]asset.Frame, 0, len(paths))}
	for _, p := range paths {
		data, err := fs.ReadFile(s.fsys, p)
		if err != nil {
			return asset.Clip{}, gameerr.Wrap(gameerr.CodeAssetMissing, err, "render: read %s", p)
		}
		img, _, err := image.Decode(bytes.NewReader(data))
		if err != nil {
			return asset.Clip{}, gameerr.Wrap(gameerr.CodeAssetMissing, err, "render: decode %s", p)
		}
		b := img.Bounds()
		clip.Frames = append(clip.Frames, asset.Frame{W: b.Dx(), H: b.Dy(), Image: ebiten.NewImageFromImage(img)})
	}
	return clip, nil
}

// sheet loads <name>.png and cuts it into square frames as tall as the
// sheet. It reports false when there is no such file.
func (s *DirSource) sheet(name string) (asset.Clip, bool, error) {
	data, err := fs.ReadFile(s.fsys, name+".png")
	if errors.Is(err, fs.ErrNotExist) {
		return asset.Clip{}, false, nil
	}
	if err != nil {
		return asset.Clip{}, true, gameerr.Wrap(gameerr.CodeAssetMissing, err, "render: read sheet %s", name)
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return asset.Clip{}, true, gameerr.Wrap(gameerr.CodeAssetMissing, err, "render: decode sheet %s", name)
	}
	rects := sheetFrames(img.Bounds().Dx(), img.Bounds().Dy())
	if len(rects) == 0 {
		return asset.Clip{}, true, gameerr.AssetMissingf("render: sheet %s is empty", name)
	}
	full := ebiten.NewImageFromImage(img)
	clip := asset.Clip{Name: name, Frames: make([]asset.Frame, len(rects))}
	for i, r := range rects {
		clip.Frames[i] = asset.Frame{W: r.Dx(), H: r.Dy(), Image: full.SubImage(r).(*ebiten.Image)}
	}
	return clip, true, nil
}

// sheetFrames cuts a w by h strip into h by h squares, dropping a partial
// trailing frame.
func sheetFrames(w, h int) []image.Rectangle {
	if h <= 0 || w < h {
		return nil
	}
	rects := make([]image.Rectangle, 0, w/h)
	for x := 0; x+h <= w; x += h {
		rects = append(rects, image.Rect(x, 0, x+h, h))
	}
	return rects
}

// framePaths lists a clip's frames in frame order. Numeric names sort by
// value so 10.png follows 9.png.
func framePaths(fsys fs.FS, clip string) ([]string, error) {
	if fsys == nil {
		return nil, nil
	}
	paths, err := fs.Glob(fsys, path.Join(clip, "*.png"))
	if err != nil {
		return nil, err
	}
	sort.Slice(paths, func(i, j int) bool {
		return frameLess(path.Base(paths[i]), path.Base(paths[j]))
	})
	return paths, nil
}

func frameLess(a, b string) bool {
	na, errA := strconv.Atoi(strings.TrimSuffix(a, ".png"))
	nb, errB := strconv.Atoi(strings.TrimSuffix(b, ".png"))
	switch {
	case errA == nil && errB == nil:
		return na < nb
	case errA == nil:
		return true
	case errB == nil:
		return false
	default:
		return a < b
	}
}
