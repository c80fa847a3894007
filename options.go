package navmesh

import (
	"log/slog"

	"github.com/osuushi/navmesh/geom"
)

type Options struct {
	// Half width of the sentinel trapezoid that the decomposition starts from.
	// Islands reaching past it widen it automatically.
	WorldBound float64
	// Distance each corner node is pushed along each of its edges, away from
	// the island.
	CornerClearance float64
	// Distance ClosestPointOnEdge steps off the boundary.
	EdgeClearance float64
	// How far along a candidate diagonal the triangulator probes to check that
	// it heads into the island.
	InteriorProbe float64
	// Reject self-intersecting rings instead of triangulating them as well as
	// possible.
	StrictRings bool
	// If set, a picture of each island's trapezoid map is saved here.
	DebugDir string
	Logger   *slog.Logger
}

type Option func(*Options)

func DefaultOptions() Options {
	return Options{
		WorldBound:      10000,
		CornerClearance: 1,
		EdgeClearance:   1,
		InteriorProbe:   geom.Tolerance,
	}
}

func WithWorldBound(bound float64) Option {
	return func(o *Options) { o.WorldBound = bound }
}

func WithCornerClearance(d float64) Option {
	return func(o *Options) { o.CornerClearance = d }
}

func WithEdgeClearance(d float64) Option {
	return func(o *Options) { o.EdgeClearance = d }
}

func WithInteriorProbe(d float64) Option {
	return func(o *Options) { o.InteriorProbe = d }
}

func WithStrictRings(strict bool) Option {
	return func(o *Options) { o.StrictRings = strict }
}

func WithDebugDir(dir string) Option {
	return func(o *Options) { o.DebugDir = dir }
}

func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

func newOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Logger == nil {
		o.Logger = Logger()
	}
	return o
}
