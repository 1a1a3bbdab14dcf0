package levels

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/milk9111/featherwake/gameerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	g, err := Parse(strings.NewReader("-1,395,-1\n 2, -1,394\n"))
	require.NoError(t, err)
	assert.Equal(t, Grid{{-1, 395, -1}, {2, -1, 394}}, g)
	assert.Equal(t, 2, g.Rows())
	assert.Equal(t, 3, g.Cols())
	assert.Equal(t, 394, g.At(1, 2))
	assert.Equal(t, Empty, g.At(5, 0))
}

func TestParseRejects(t *testing.T) {
	cases := []struct {
		name string
		data string
	}{
		{"ragged", "1,2,3\n4,5\n"},
		{"not_a_number", "1,x,3\n"},
		{"empty", ""},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(c.data))
			require.Error(t, err)
			assert.True(t, gameerr.IsConfiguration(err), "%v", err)
		})
	}
}

func TestEach(t *testing.T) {
	g := Grid{{-1, 7}, {8, -1}}
	var got [][3]int
	g.Each(func(r, c, code int) { got = append(got, [3]int{r, c, code}) })
	assert.Equal(t, [][3]int{{0, 1, 7}, {1, 0, 8}}, got)
}

func mapFS(layers map[string]string) fstest.MapFS {
	fsys := fstest.MapFS{}
	for name, data := range layers {
		fsys["lvl/"+name] = &fstest.MapFile{Data: []byte(data)}
	}
	return fsys
}

func TestLoad(t *testing.T) {
	fsys := mapFS(map[string]string{
		BoundaryFile: "395,395\n395,-1\n",
		GrassFile:    "-1,-1\n-1,0\n",
		ObjectsFile:  "-1,-1\n-1,-1\n",
		EntitiesFile: "-1,-1\n-1,394\n",
	})
	l, err := Load(fsys, "lvl")
	require.NoError(t, err)
	assert.Equal(t, 394, l.Entities.At(1, 1))
	assert.Equal(t, 0, l.Grass.At(1, 1))
}

func TestLoadRejectsMismatchedLayers(t *testing.T) {
	fsys := mapFS(map[string]string{
		BoundaryFile: "395,395\n",
		GrassFile:    "-1,-1\n",
		ObjectsFile:  "-1,-1\n",
		EntitiesFile: "-1,-1,394\n",
	})
	_, err := Load(fsys, "lvl")
	require.Error(t, err)
	assert.True(t, gameerr.IsConfiguration(err))
}

func TestLoadMissingLayer(t *testing.T) {
	fsys := mapFS(map[string]string{BoundaryFile: "1\n"})
	_, err := Load(fsys, "lvl")
	require.Error(t, err)
	assert.True(t, gameerr.IsConfiguration(err))
}

func TestDefaultLevel(t *testing.T) {
	l, err := LoadDefault()
	require.NoError(t, err)

	players := 0
	l.Entities.Each(func(_, _, code int) {
		if code == 394 {
			players++
		}
	})
	assert.Equal(t, 1, players)
	assert.Equal(t, 395, l.Boundary.At(0, 0))
}

func TestValidateReportsFirstMismatchedLayer(t *testing.T) {
	l := &Layout{
		Boundary: Grid{{-1, -1}},
		Grass:    Grid{{-1}},
		Objects:  Grid{{-1, -1, -1}},
		Entities: Grid{{-1}, {-1}},
	}
	for i := 0; i < 20; i++ {
		err := l.Validate()
		require.Error(t, err)
		assert.True(t, gameerr.IsConfiguration(err))
		assert.Contains(t, err.Error(), GrassFile)
	}
}
