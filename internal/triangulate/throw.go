package triangulate

import "github.com/pkg/errors"

// A broken invariant inside the decomposition. Threading errors through every
// recursive step of building the trapezoid map would bury the geometry, so
// these travel up as panics and are turned back into errors where an island is
// triangulated.
type TriangulateError struct {
	cause error
}

func (e *TriangulateError) Error() string { return e.cause.Error() }
func (e *TriangulateError) Unwrap() error { return e.cause }

// For errors.Cause
func (e *TriangulateError) Cause() error { return e.cause }

func fatalf(format string, args ...interface{}) {
	panic(&TriangulateError{cause: errors.Errorf(format, args...)})
}

// Turn a recovered value back into an error. Only a TriangulateError is ours;
// anything else, runtime errors included, is a bug and panics again.
func HandleTriangulatePanicRecover(r interface{}) error {
	if r == nil {
		return nil
	}
	if err, ok := r.(*TriangulateError); ok {
		return err
	}
	panic(r)
}
