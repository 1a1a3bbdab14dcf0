package ecs

// Group is a membership set of entities. An entity may belong to any number
// of groups; the world decides which passes see it by group, not by type.
type Group struct {
	name string
	set  SparseSet[struct{}]
}

func NewGroup(name string) *Group {
	return &Group{name: name}
}

func (g *Group) Name() string {
	if g == nil {
		return ""
	}
	return g.name
}

func (g *Group) Add(e Entity) {
	if g == nil {
		return
	}
	g.set.Set(e, struct{}{})
}

func (g *Group) Remove(e Entity) bool {
	if g == nil {
		return false
	}
	return g.set.Remove(e)
}

func (g *Group) Contains(e Entity) bool {
	if g == nil {
		return false
	}
	return g.set.Has(e)
}

func (g *Group) Len() int {
	if g == nil {
		return 0
	}
	return g.set.Len()
}

// Members returns a copy of the current membership, safe to iterate while
// the group changes.
func (g *Group) Members() []Entity {
	if g == nil {
		return nil
	}
	return g.set.Snapshot()
}
