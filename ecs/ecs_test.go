package ecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryLifecycle(t *testing.T) {
	cases := []struct {
		name         string
		create       int
		destroyIndex int // -1 = none
	}{
		{"single", 1, 0},
		{"three_create_destroy_middle", 3, 1},
		{"none_destroy", 2, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r := NewRegistry()
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				ents = append(ents, r.Create())
			}
			require.Equal(t, c.create, r.Len())
			if c.destroyIndex >= 0 {
				require.True(t, r.Destroy(ents[c.destroyIndex]))
				assert.False(t, r.Alive(ents[c.destroyIndex]))
				assert.False(t, r.Destroy(ents[c.destroyIndex]), "double destroy")
				assert.Equal(t, c.create-1, r.Len())
			}
		})
	}
}

func TestRegistryReusesSlotWithNewGeneration(t *testing.T) {
	r := NewRegistry()
	a := r.Create()
	require.True(t, r.Destroy(a))
	b := r.Create()

	assert.Equal(t, a.id(), b.id())
	assert.NotEqual(t, a, b)
	assert.False(t, r.Alive(a))
	assert.True(t, r.Alive(b))
	assert.False(t, Entity(0).Valid())
}

func TestSparseSetRejectsStaleHandles(t *testing.T) {
	r := NewRegistry()
	s := NewSparseSet[int]()

	a := r.Create()
	s.Set(a, 7)
	r.Destroy(a)
	b := r.Create()

	_, ok := s.Get(b)
	assert.False(t, ok, "reused slot must not see the old value")
	v, ok := s.Get(a)
	require.True(t, ok)
	assert.Equal(t, 7, v)
}

func TestSparseSetSwapRemove(t *testing.T) {
	r := NewRegistry()
	s := NewSparseSet[string]()
	e1, e2, e3 := r.Create(), r.Create(), r.Create()
	s.Set(e1, "a")
	s.Set(e2, "b")
	s.Set(e3, "c")

	require.True(t, s.Remove(e1))
	assert.False(t, s.Remove(e1))
	assert.Equal(t, 2, s.Len())
	assert.ElementsMatch(t, []Entity{e2, e3}, s.Entities())

	v, ok := s.Get(e3)
	require.True(t, ok)
	assert.Equal(t, "c", v)

	p := s.Ptr(e2)
	require.NotNil(t, p)
	*p = "bb"
	v, _ = s.Get(e2)
	assert.Equal(t, "bb", v)
}

func TestGroupMembership(t *testing.T) {
	r := NewRegistry()
	visible := NewGroup("visible")
	obstacles := NewGroup("obstacles")
	e := r.Create()

	visible.Add(e)
	obstacles.Add(e)
	visible.Add(e)
	assert.Equal(t, 1, visible.Len())
	assert.True(t, obstacles.Contains(e))

	members := visible.Members()
	visible.Remove(e)
	assert.Len(t, members, 1, "snapshot survives removal")
	assert.False(t, visible.Contains(e))
	assert.True(t, obstacles.Contains(e))
	assert.Equal(t, "visible", visible.Name())
}
