package physics

import (
	"sort"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/featherwake/common"
)

// Obstacles answers which static boxes overlap a region.
type Obstacles interface {
	// Overlapping returns the boxes strictly intersecting r, in a stable order.
	Overlapping(r common.Rect) []common.Rect
}

// Grid indexes static obstacle hitboxes. Broad phase uses the chipmunk
// static shape tree; the narrow phase is the strict AABB test.
type Grid struct {
	space  *cp.Space
	shapes map[uint64]*cp.Shape
	boxes  map[uint64]common.Rect
}

func NewGrid() *Grid {
	return &Grid{
		space:  cp.NewSpace(),
		shapes: make(map[uint64]*cp.Shape),
		boxes:  make(map[uint64]common.Rect),
	}
}

// Add indexes box under key, replacing any previous box for that key.
func (g *Grid) Add(key uint64, box common.Rect) {
	if g == nil {
		return
	}
	g.Remove(key)
	shape := cp.NewBox2(g.space.StaticBody, box.BB(), 0)
	shape.UserData = key
	g.space.AddShape(shape)
	g.shapes[key] = shape
	g.boxes[key] = box
}

// Remove drops key from the index. It reports whether key was present.
func (g *Grid) Remove(key uint64) bool {
	if g == nil {
		return false
	}
	shape, ok := g.shapes[key]
	if !ok {
		return false
	}
	g.space.RemoveShape(shape)
	delete(g.shapes, key)
	delete(g.boxes, key)
	return true
}

func (g *Grid) Has(key uint64) bool {
	if g == nil {
		return false
	}
	_, ok := g.shapes[key]
	return ok
}

func (g *Grid) Len() int {
	if g == nil {
		return 0
	}
	return len(g.shapes)
}

func (g *Grid) Overlapping(r common.Rect) []common.Rect {
	keys := g.OverlappingKeys(r)
	if len(keys) == 0 {
		return nil
	}
	out := make([]common.Rect, 0, len(keys))
	for _, k := range keys {
		out = append(out, g.boxes[k])
	}
	return out
}

// OverlappingKeys returns the keys of boxes strictly intersecting r in
// ascending key order.
func (g *Grid) OverlappingKeys(r common.Rect) []uint64 {
	if g == nil || len(g.shapes) == 0 {
		return nil
	}
	var keys []uint64
	g.space.BBQuery(r.BB(), cp.SHAPE_FILTER_ALL, func(shape *cp.Shape, _ interface{}) {
		key, ok := shape.UserData.(uint64)
		if !ok {
			return
		}
		if box, ok := g.boxes[key]; ok && box.Intersects(r) {
			keys = append(keys, key)
		}
	}, nil)
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
