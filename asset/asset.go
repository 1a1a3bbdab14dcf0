// Package asset resolves logical clip names into frame sequences. The
// simulation only reads clip lengths and frame sizes; images are opaque.
package asset

import (
	"fmt"
	"sort"

	"github.com/milk9111/featherwake/gameerr"
)

// Frame is one image of a clip. Image is whatever the renderer needs.
type Frame struct {
	W, H  int
	Image any
}

// Clip is an ordered run of frames under a logical name.
type Clip struct {
	Name   string
	Frames []Frame
}

func (c Clip) Len() int {
	return len(c.Frames)
}

// At returns the frame at index i, clamped into range. An empty clip yields
// the zero frame.
func (c Clip) At(i int) Frame {
	if len(c.Frames) == 0 {
		return Frame{}
	}
	if i < 0 {
		i = 0
	}
	if i >= len(c.Frames) {
		i = len(c.Frames) - 1
	}
	return c.Frames[i]
}

//go:generate mockgen -destination=mock/mock.go -package=mock github.com/milk9111/featherwake/asset Source

// Source loads clips by name.
type Source interface {
	Clip(name string) (Clip, error)
}

// Cache loads each clip from its Source once.
type Cache struct {
	src   Source
	clips map[string]Clip
}

func NewCache(src Source) *Cache {
	return &Cache{src: src, clips: make(map[string]Clip)}
}

// Get returns the named clip, loading it on first use. A source failure or an
// empty clip is an AssetMissing error and is not cached.
func (c *Cache) Get(name string) (Clip, error) {
	if clip, ok := c.clips[name]; ok {
		return clip, nil
	}
	if c.src == nil {
		return Clip{}, gameerr.AssetMissingf("asset: no source for %q", name)
	}
	clip, err := c.src.Clip(name)
	if err != nil {
		return Clip{}, gameerr.Wrap(gameerr.CodeAssetMissing, err, "asset: load %q", name)
	}
	if clip.Len() == 0 {
		return Clip{}, gameerr.AssetMissingf("asset: clip %q has no frames", name)
	}
	if clip.Name == "" {
		clip.Name = name
	}
	c.clips[name] = clip
	return clip, nil
}

// Clip makes a Cache a Source, so the world and the renderer can share one
// load of each clip.
func (c *Cache) Clip(name string) (Clip, error) {
	return c.Get(name)
}

// Preload loads every named clip, stopping at the first failure.
func (c *Cache) Preload(names ...string) error {
	for _, name := range names {
		if _, err := c.Get(name); err != nil {
			return fmt.Errorf("asset: preload: %w", err)
		}
	}
	return nil
}

// Loaded lists cached clip names in sorted order.
func (c *Cache) Loaded() []string {
	names := make([]string, 0, len(c.clips))
	for name := range c.clips {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
