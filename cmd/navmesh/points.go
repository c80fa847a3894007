package main

import (
	"strings"

	"github.com/osuushi/navmesh/geom"
	"github.com/osuushi/navmesh/islandio"
	"gopkg.in/alecthomas/kingpin.v2"
)

type pointValue geom.Point

func (v *pointValue) Set(s string) error {
	p, err := islandio.ParsePoint(s)
	if err != nil {
		return err
	}
	*v = pointValue(p)
	return nil
}

func (v *pointValue) String() string {
	return formatPoint(geom.Point(*v))
}

func pointArg(s kingpin.Settings) *geom.Point {
	p := &geom.Point{}
	s.SetValue((*pointValue)(p))
	return p
}

type pointListValue []geom.Point

func (v *pointListValue) Set(s string) error {
	p, err := islandio.ParsePoint(s)
	if err != nil {
		return err
	}
	*v = append(*v, p)
	return nil
}

func (v *pointListValue) String() string {
	parts := make([]string, len(*v))
	for i, p := range *v {
		parts[i] = formatPoint(p)
	}
	return strings.Join(parts, " ")
}

func (v *pointListValue) IsCumulative() bool {
	return true
}

func pointListArg(s kingpin.Settings) *[]geom.Point {
	points := &[]geom.Point{}
	s.SetValue((*pointListValue)(points))
	return points
}
