package islandio

import (
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/JoshVarga/svgparser"
	"github.com/osuushi/navmesh/geom"
	"github.com/pkg/errors"
)

// Read every <polygon> element of an SVG document as an island, in document
// order. Coordinates are taken as written, so y grows downward as it does in
// the SVG. Transforms are not applied.
func ReadSVG(r io.Reader) ([][]geom.Point, error) {
	root, err := svgparser.Parse(r, false)
	if err != nil {
		return nil, errors.Wrap(err, "parsing svg")
	}

	elements := root.FindAll("polygon")
	if len(elements) == 0 {
		return nil, errors.New("no polygons found in svg")
	}

	islands := make([][]geom.Point, 0, len(elements))
	for i, element := range elements {
		points, err := parsePointList(element.Attributes["points"])
		if err != nil {
			id := element.Attributes["id"]
			if id == "" {
				id = strconv.Itoa(i)
			}
			return nil, errors.Wrapf(err, "polygon %s", id)
		}
		islands = append(islands, points)
	}
	return islands, nil
}

// Parse an SVG points attribute. Commas and whitespace are interchangeable
// separators, so "1,2 3,4" and "1 2 3 4" are the same list.
func parsePointList(attr string) ([]geom.Point, error) {
	fields := strings.FieldsFunc(attr, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	if len(fields)%2 != 0 {
		return nil, errors.Errorf("odd number of coordinates in %q", attr)
	}

	points := make([]geom.Point, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		x, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid x value %q", fields[i])
		}
		y, err := strconv.ParseFloat(fields[i+1], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid y value %q", fields[i+1])
		}
		points = append(points, geom.Point{X: x, Y: y})
	}
	return points, nil
}
