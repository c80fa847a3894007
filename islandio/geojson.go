package islandio

import (
	"io"

	"github.com/osuushi/navmesh/geom"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"
)

// Read every Polygon and MultiPolygon feature of a GeoJSON feature collection
// as islands, in feature order. Only outer rings are used. Holes in an island
// are water that no ship can reach, so they are dropped. Other geometry types
// are skipped.
func ReadGeoJSON(r io.Reader) ([][]geom.Point, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "reading geojson")
	}
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, errors.Wrap(err, "parsing geojson")
	}

	islands := [][]geom.Point{}
	for _, feature := range fc.Features {
		switch g := feature.Geometry.(type) {
		case orb.Polygon:
			islands = appendOuterRing(islands, g)
		case orb.MultiPolygon:
			for _, polygon := range g {
				islands = appendOuterRing(islands, polygon)
			}
		}
	}
	if len(islands) == 0 {
		return nil, errors.New("no polygons found in geojson")
	}
	return islands, nil
}

func appendOuterRing(islands [][]geom.Point, polygon orb.Polygon) [][]geom.Point {
	if len(polygon) == 0 {
		return islands
	}
	ring := make([]geom.Point, len(polygon[0]))
	for i, p := range polygon[0] {
		ring[i] = geom.Point{X: p.X(), Y: p.Y()}
	}
	return append(islands, ring)
}
