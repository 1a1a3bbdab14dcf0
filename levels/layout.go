// Package levels reads map layouts: one CSV grid of integer codes per layer,
// -1 marking an empty cell.
package levels

import (
	"embed"
	"encoding/csv"
	"errors"
	"io"
	"io/fs"
	"path"
	"strconv"
	"strings"

	"github.com/milk9111/featherwake/gameerr"
)

// Empty marks a cell with nothing in it.
const Empty = -1

// Layer file names inside a level directory.
const (
	BoundaryFile = "boundary.csv"
	GrassFile    = "grass.csv"
	ObjectsFile  = "objects.csv"
	EntitiesFile = "entities.csv"
)

//go:embed default/*.csv
var DefaultFS embed.FS

// DefaultDir is the embedded level's directory within DefaultFS.
const DefaultDir = "default"

// Grid is a rectangular grid of codes indexed [row][col].
type Grid [][]int

func (g Grid) Rows() int { return len(g) }

func (g Grid) Cols() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// At returns the code at a cell, or Empty outside the grid.
func (g Grid) At(row, col int) int {
	if row < 0 || row >= len(g) || col < 0 || col >= len(g[row]) {
		return Empty
	}
	return g[row][col]
}

// Each calls fn for every non-empty cell in row-major order.
func (g Grid) Each(fn func(row, col, code int)) {
	for r, cells := range g {
		for c, code := range cells {
			if code != Empty {
				fn(r, c, code)
			}
		}
	}
}

// Layout is the full set of layers for one map.
type Layout struct {
	Boundary Grid
	Grass    Grid
	Objects  Grid
	Entities Grid
}

// Parse reads one CSV layer. Every row must have the same number of cells and
// every cell must be an integer.
func Parse(r io.Reader) (Grid, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 0
	cr.TrimLeadingSpace = true

	var g Grid
	for line := 1; ; line++ {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, gameerr.Wrap(gameerr.CodeConfiguration, err, "levels: row %d", line)
		}
		row := make([]int, len(record))
		for i, cell := range record {
			v, err := strconv.Atoi(strings.TrimSpace(cell))
			if err != nil {
				return nil, gameerr.Configurationf("levels: row %d col %d: %q is not a code", line, i+1, cell)
			}
			row[i] = v
		}
		g = append(g, row)
	}
	if len(g) == 0 {
		return nil, gameerr.Configurationf("levels: empty layer")
	}
	return g, nil
}

// Load reads the four layer files from dir in fsys and checks they share one
// size.
func Load(fsys fs.FS, dir string) (*Layout, error) {
	read := func(name string) (Grid, error) {
		f, err := fsys.Open(path.Join(dir, name))
		if err != nil {
			return nil, gameerr.Wrap(gameerr.CodeConfiguration, err, "levels: open %s", name)
		}
		defer f.Close()
		g, err := Parse(f)
		if err != nil {
			return nil, gameerr.Wrap(gameerr.CodeConfiguration, err, "levels: parse %s", name)
		}
		return g, nil
	}

	var l Layout
	layers := []struct {
		name string
		dst  *Grid
	}{
		{BoundaryFile, &l.Boundary},
		{GrassFile, &l.Grass},
		{ObjectsFile, &l.Objects},
		{EntitiesFile, &l.Entities},
	}
	for _, layer := range layers {
		g, err := read(layer.name)
		if err != nil {
			return nil, err
		}
		*layer.dst = g
	}
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return &l, nil
}

// LoadDefault loads the embedded level.
func LoadDefault() (*Layout, error) {
	return Load(DefaultFS, DefaultDir)
}

func (l *Layout) Validate() error {
	rows, cols := l.Boundary.Rows(), l.Boundary.Cols()
	layers := []struct {
		name string
		g    Grid
	}{
		{GrassFile, l.Grass},
		{ObjectsFile, l.Objects},
		{EntitiesFile, l.Entities},
	}
	for _, layer := range layers {
		if layer.g.Rows() != rows || layer.g.Cols() != cols {
			return gameerr.Configurationf("levels: %s is %dx%d, want %dx%d",
				layer.name, layer.g.Rows(), layer.g.Cols(), rows, cols)
		}
	}
	return nil
}
