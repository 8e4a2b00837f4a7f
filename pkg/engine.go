// Package sfcm segments images with spatially regularized fuzzy c-means.
//
// An Engine is created Unfitted. Fit estimates c centroids from an image,
// after which Predict and Membership may be called any number of times
// against the frozen centroids. Fitting again starts over.
package sfcm

import (
	"fmt"
	"math"

	"github.com/sourcegraph/conc/iter"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// minChunk is the smallest number of pixels handed to one goroutine.
const minChunk = 1024

// Engine is a spatial fuzzy c-means clusterer. It is not safe for
// concurrent use; segment independent frames with independent engines.
type Engine struct {
	c    int
	opts options

	// nil until the first Fit
	v          *mat.Dense
	iterations int
}

// New creates an Unfitted engine for c clusters.
func New(c int, opts ...Option) (*Engine, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.validate(c); err != nil {
		return nil, err
	}
	o.logger = o.logger.WithClusters(c)
	return &Engine{c: c, opts: o}, nil
}

func (e *Engine) Clusters() int { return e.c }

func (e *Engine) Fitted() bool { return e.v != nil }

// Iterations returns the number of iterations the last Fit ran.
func (e *Engine) Iterations() int { return e.iterations }

// Centroids returns a copy of the c x D centroid matrix, or nil before Fit.
func (e *Engine) Centroids() *mat.Dense {
	if e.v == nil {
		return nil
	}
	return mat.DenseCopyOf(e.v)
}

// Fit estimates the centroids of a. It alternates membership computation,
// optional spatial smoothing and centroid update until no centroid moves
// by the tolerance or more.
//
// When the iteration cap is hit Fit keeps the last centroids, so the engine
// is Fitted, and returns a *NotConvergedError. When an update produces a
// NaN or infinite centroid Fit returns ErrNumeric and leaves the engine as
// it was before the call.
func (e *Engine) Fit(a Array, spatial bool) error {
	ds, err := newDataset(a)
	if err != nil {
		return err
	}
	v, err := e.initialCentroids(ds)
	if err != nil {
		return err
	}

	shift := math.Inf(1)
	iterations := 0
	for shift >= e.opts.tolerance {
		if e.opts.maxIterations > 0 && iterations == e.opts.maxIterations {
			e.v, e.iterations = v, iterations
			err := &NotConvergedError{Iterations: iterations, Shift: shift}
			e.opts.logger.logFit(iterations, shift, err)
			return err
		}
		u := e.membership(ds, v)
		if spatial {
			u = e.smooth(u, ds.h, ds.w)
		}
		next := updateCentroids(ds.x, u, v)
		if !allFinite(next) {
			err := fmt.Errorf("%w: iteration %d", ErrNumeric, iterations+1)
			e.opts.logger.logFit(iterations, shift, err)
			return err
		}
		shift = maxShift(v, next)
		v = next
		iterations++
		e.opts.logger.logIteration(iterations, shift)
	}

	e.v, e.iterations = v, iterations
	e.opts.logger.logFit(iterations, shift, nil)
	return nil
}

func (e *Engine) initialCentroids(ds *dataset) (*mat.Dense, error) {
	if e.opts.initPoints == nil {
		return initCentroids(ds.x, e.c, e.opts.rnd), nil
	}
	if _, d := e.opts.initPoints.Dims(); d != ds.d {
		return nil, &ShapeError{
			Shape:  []int{ds.h, ds.w, ds.d},
			Reason: "channel count does not match init points",
		}
	}
	return mat.DenseCopyOf(e.opts.initPoints), nil
}

// Membership returns the N x c soft membership of every pixel of a, N = H*W
// in row-major order, against the fitted centroids.
func (e *Engine) Membership(a Array, spatial bool) (*mat.Dense, error) {
	if e.v == nil {
		return nil, ErrNotFitted
	}
	ds, err := newDataset(a)
	if err != nil {
		return nil, err
	}
	if _, d := e.v.Dims(); d != ds.d {
		return nil, &ShapeError{
			Shape:  a.Shape(),
			Reason: "channel count does not match fitted centroids",
		}
	}
	u := e.membership(ds, e.v)
	if spatial {
		u = e.smooth(u, ds.h, ds.w)
	}
	return u, nil
}

// Predict labels every pixel of a with its cluster of maximum membership.
// Ties go to the lowest cluster index.
func (e *Engine) Predict(a Array, spatial bool) (*LabelMap, error) {
	u, err := e.Membership(a, spatial)
	if err != nil {
		return nil, err
	}
	shape := a.Shape()
	return labelsOf(u, shape[0], shape[1]), nil
}

func labelsOf(u *mat.Dense, h, w int) *LabelMap {
	labels := &LabelMap{H: h, W: w, Labels: make([]int, h*w)}
	for i := range labels.Labels {
		labels.Labels[i] = floats.MaxIdx(u.RawRowView(i))
	}
	return labels
}

// parallel splits [0, n) into spans and runs fn on them with at most
// workers goroutines.
func (e *Engine) parallel(n int, fn func(lo, hi int)) {
	size := max((n+e.opts.workers-1)/e.opts.workers, minChunk)
	spans := make([][2]int, 0, n/size+1)
	for lo := 0; lo < n; lo += size {
		spans = append(spans, [2]int{lo, min(lo+size, n)})
	}
	if len(spans) == 1 {
		fn(spans[0][0], spans[0][1])
		return
	}
	iter.Iterator[[2]int]{MaxGoroutines: e.opts.workers}.ForEach(spans, func(span *[2]int) {
		fn(span[0], span[1])
	})
}
