package islandio

import (
	"strings"
	"testing"

	"github.com/osuushi/navmesh/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadText(t *testing.T) {
	t.Run("islands separated by blank lines", func(t *testing.T) {
		input := `# two islands
50 0
100 25
100 -25

50,100
100,125
100,75
`
		islands, err := ReadText(strings.NewReader(input))
		require.NoError(t, err)
		assert.Equal(t, [][]geom.Point{
			{{X: 50, Y: 0}, {X: 100, Y: 25}, {X: 100, Y: -25}},
			{{X: 50, Y: 100}, {X: 100, Y: 125}, {X: 100, Y: 75}},
		}, islands)
	})

	t.Run("trailing island without newline", func(t *testing.T) {
		islands, err := ReadText(strings.NewReader("0 0\n1 0\n1 1"))
		require.NoError(t, err)
		require.Len(t, islands, 1)
		assert.Len(t, islands[0], 3)
	})

	t.Run("extra blank lines", func(t *testing.T) {
		islands, err := ReadText(strings.NewReader("\n\n0 0\n1 0\n1 1\n\n\n"))
		require.NoError(t, err)
		assert.Len(t, islands, 1)
	})

	t.Run("bad coordinate", func(t *testing.T) {
		_, err := ReadText(strings.NewReader("0 0\n1 x\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "line 2")
	})

	t.Run("wrong arity", func(t *testing.T) {
		_, err := ReadText(strings.NewReader("0 0 0\n"))
		assert.Error(t, err)
	})
}

func TestReadSVG(t *testing.T) {
	t.Run("every polygon in order", func(t *testing.T) {
		input := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 200 200">
  <polygon id="big" points="50,0 100,25 100,-25" />
  <g>
    <polygon points="50 100 100 125 100 75" />
  </g>
</svg>`
		islands, err := ReadSVG(strings.NewReader(input))
		require.NoError(t, err)
		assert.Equal(t, [][]geom.Point{
			{{X: 50, Y: 0}, {X: 100, Y: 25}, {X: 100, Y: -25}},
			{{X: 50, Y: 100}, {X: 100, Y: 125}, {X: 100, Y: 75}},
		}, islands)
	})

	t.Run("no polygons", func(t *testing.T) {
		_, err := ReadSVG(strings.NewReader(`<svg xmlns="http://www.w3.org/2000/svg"></svg>`))
		assert.Error(t, err)
	})

	t.Run("odd coordinate count", func(t *testing.T) {
		_, err := ReadSVG(strings.NewReader(`<svg xmlns="http://www.w3.org/2000/svg"><polygon id="broken" points="1,2 3" /></svg>`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "polygon broken")
	})
}

func TestParsePoint(t *testing.T) {
	for _, input := range []string{"3,-4.5", "3 -4.5", " 3, -4.5 "} {
		p, err := ParsePoint(input)
		require.NoError(t, err, input)
		assert.Equal(t, geom.Point{X: 3, Y: -4.5}, p, input)
	}
	_, err := ParsePoint("3")
	assert.Error(t, err)
}

func TestReadGeoJSON(t *testing.T) {
	t.Run("polygons and multipolygons", func(t *testing.T) {
		input := `{
  "type": "FeatureCollection",
  "features": [
    {"type": "Feature", "properties": {"name": "rock"}, "geometry": {
      "type": "Polygon",
      "coordinates": [[[0, 0], [10, 0], [10, 10], [0, 0]], [[2, 1], [8, 1], [8, 7], [2, 1]]]
    }},
    {"type": "Feature", "properties": {}, "geometry": {"type": "Point", "coordinates": [5, 5]}},
    {"type": "Feature", "properties": {}, "geometry": {
      "type": "MultiPolygon",
      "coordinates": [[[[20, 0], [30, 0], [30, 10], [20, 0]]], [[[40, 0], [50, 0], [50, 10], [40, 0]]]]
    }}
  ]
}`
		islands, err := ReadGeoJSON(strings.NewReader(input))
		require.NoError(t, err)
		require.Len(t, islands, 3)
		assert.Equal(t, []geom.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 0}}, islands[0])
		assert.Equal(t, geom.Point{X: 40, Y: 0}, islands[2][0])
	})

	t.Run("no polygons", func(t *testing.T) {
		_, err := ReadGeoJSON(strings.NewReader(`{"type": "FeatureCollection", "features": []}`))
		assert.Error(t, err)
	})

	t.Run("not json", func(t *testing.T) {
		_, err := ReadGeoJSON(strings.NewReader("50 0\n"))
		assert.Error(t, err)
	})
}
