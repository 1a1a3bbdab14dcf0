package ecs

// Registry tracks entity generations and free slot ids.
type Registry struct {
	gen  []generation
	free []entityID
	live int
}

func NewRegistry() *Registry {
	return &Registry{}
}

// Create allocates a handle, reusing freed slots first.
func (r *Registry) Create() Entity {
	var id entityID
	if n := len(r.free); n > 0 {
		id = r.free[n-1]
		r.free = r.free[:n-1]
	} else {
		r.gen = append(r.gen, 0)
		id = entityID(len(r.gen))
	}
	r.live++
	return makeEntity(id, r.gen[id-1])
}

// Destroy retires e. It returns false if e was already dead.
func (r *Registry) Destroy(e Entity) bool {
	if !r.Alive(e) {
		return false
	}
	idx := e.id() - 1
	r.gen[idx]++
	r.free = append(r.free, e.id())
	r.live--
	return true
}

func (r *Registry) Alive(e Entity) bool {
	if r == nil || !e.Valid() || int(e.id()) > len(r.gen) {
		return false
	}
	return r.gen[e.id()-1] == e.generation()
}

// Len returns the number of live entities.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return r.live
}
