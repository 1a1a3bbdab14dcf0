package component

// HitMemory records which targets one attack spawn has already damaged, so a
// single swing lands at most once per target.
type HitMemory struct {
	hit map[uint64]struct{}
}

// Mark records target and reports whether this is its first hit.
func (m *HitMemory) Mark(target uint64) bool {
	if m == nil {
		return false
	}
	if m.hit == nil {
		m.hit = make(map[uint64]struct{})
	}
	if _, ok := m.hit[target]; ok {
		return false
	}
	m.hit[target] = struct{}{}
	return true
}

func (m *HitMemory) Seen(target uint64) bool {
	if m == nil || m.hit == nil {
		return false
	}
	_, ok := m.hit[target]
	return ok
}

func (m *HitMemory) Len() int {
	if m == nil {
		return 0
	}
	return len(m.hit)
}
