// Package islandio reads island outlines from the formats the command line
// tool accepts. Every loader returns one ring of points per island, exactly as
// written; cleanup and validation happen when the map is built.
package islandio

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/osuushi/navmesh/geom"
	"github.com/pkg/errors"
)

// Read islands as newline separated points in the form "x y", with each
// island separated by a blank line. Lines starting with # are ignored.
func ReadText(r io.Reader) ([][]geom.Point, error) {
	islands := [][]geom.Point{}
	scanner := bufio.NewScanner(r)
	points := []geom.Point{}
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, "#") {
			continue
		}

		// A blank line ends the island, if we collected any points
		if line == "" {
			if len(points) > 0 {
				islands = append(islands, points)
				points = []geom.Point{}
			}
			continue
		}

		point, err := ParsePoint(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		points = append(points, point)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading islands")
	}

	// Handle trailing island if any
	if len(points) > 0 {
		islands = append(islands, points)
	}
	return islands, nil
}

// Parse a single point, "x y" or "x,y".
func ParsePoint(line string) (geom.Point, error) {
	parts := strings.FieldsFunc(line, isSeparator)
	if len(parts) != 2 {
		return geom.Point{}, errors.Errorf("expected two coordinates, got %q", line)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return geom.Point{}, errors.Wrapf(err, "invalid x value %q", parts[0])
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return geom.Point{}, errors.Wrapf(err, "invalid y value %q", parts[1])
	}
	return geom.Point{X: x, Y: y}, nil
}

func isSeparator(r rune) bool {
	return r == ',' || r == ' ' || r == '\t'
}
