package navmesh

import "github.com/pkg/errors"

var (
	ErrEmptyIsland      = errors.New("island has no points")
	ErrSelfIntersecting = errors.New("island ring intersects itself")
	ErrNotTriangles     = errors.New("island is not a list of triangles")
)
