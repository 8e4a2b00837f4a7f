package sfcm

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidConfig = errors.New("invalid configuration")
	ErrShape         = errors.New("data has to be 2d or 3d")
	ErrNotFitted     = errors.New("engine has to be fitted first")
	ErrNotConverged  = errors.New("centroids did not converge")
	ErrNumeric       = errors.New("centroids are not finite")
)

// ShapeError reports input whose shape can't be viewed as an (H, W, D) image.
type ShapeError struct {
	Shape  []int
	Reason string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s: shape %v: %s", ErrShape, e.Shape, e.Reason)
}

func (e *ShapeError) Is(target error) bool { return target == ErrShape }

// NotConvergedError is returned by Fit when the iteration cap is reached.
// The engine keeps the last centroids it computed.
type NotConvergedError struct {
	Iterations int
	Shift      float64
}

func (e *NotConvergedError) Error() string {
	return fmt.Sprintf("%s after %d iterations, last shift %g", ErrNotConverged, e.Iterations, e.Shift)
}

func (e *NotConvergedError) Is(target error) bool { return target == ErrNotConverged }

func configError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}
