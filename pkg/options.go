package sfcm

import (
	"math"
	"math/rand"
	"runtime"
	"time"

	"gonum.org/v1/gonum/mat"
)

const (
	DefaultFuzziness     = 2.0
	DefaultWindow        = 3
	DefaultTolerance     = 0.05
	DefaultMaxIterations = 1000
)

// DegeneratePolicy decides the membership of a pixel that lies exactly on
// one or more centroids.
type DegeneratePolicy int

const (
	// DegenerateOneHot splits the membership evenly between the centroids at
	// zero distance and gives 0 to the others.
	DegenerateOneHot DegeneratePolicy = iota
	// DegenerateNaNToOne evaluates the formula as is and replaces every NaN
	// entry with 1, without renormalizing. Two coinciding centroids give the
	// pixel a membership vector summing to more than 1.
	DegenerateNaNToOne
)

type options struct {
	m, p, q       float64
	nb            int
	initPoints    *mat.Dense
	rnd           *rand.Rand
	maxIterations int
	tolerance     float64
	degenerate    DegeneratePolicy
	workers       int
	logger        *Logger
}

// Option configures an Engine.
type Option func(*options)

// WithFuzziness sets the fuzziness exponent m. It must be greater than 1.
func WithFuzziness(m float64) Option {
	return func(o *options) { o.m = m }
}

// WithExponents sets the powers applied to the raw membership (p) and to
// its neighbourhood sum (q) during spatial smoothing.
func WithExponents(p, q float64) Option {
	return func(o *options) {
		o.p = p
		o.q = q
	}
}

// WithWindow sets the side of the square smoothing window. It must be odd.
func WithWindow(nb int) Option {
	return func(o *options) { o.nb = nb }
}

// WithInitPoints skips seeding and starts every Fit from the given c x D
// centroids. The matrix is copied.
func WithInitPoints(v mat.Matrix) Option {
	return func(o *options) {
		if v == nil {
			o.initPoints = nil
			return
		}
		o.initPoints = mat.DenseCopyOf(v)
	}
}

// WithRand sets the random source used for seeding. It must not be nil.
func WithRand(r *rand.Rand) Option {
	return func(o *options) { o.rnd = r }
}

// WithMaxIterations caps the number of Fit iterations. Zero removes the cap.
func WithMaxIterations(n int) Option {
	return func(o *options) { o.maxIterations = n }
}

// WithTolerance sets the centroid shift under which Fit stops.
func WithTolerance(t float64) Option {
	return func(o *options) { o.tolerance = t }
}

func WithDegeneratePolicy(p DegeneratePolicy) Option {
	return func(o *options) { o.degenerate = p }
}

// WithWorkers bounds the goroutines used for per-pixel and per-cluster work.
func WithWorkers(n int) Option {
	return func(o *options) { o.workers = n }
}

func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

func defaultOptions() options {
	return options{
		m:             DefaultFuzziness,
		p:             1,
		q:             1,
		nb:            DefaultWindow,
		maxIterations: DefaultMaxIterations,
		tolerance:     DefaultTolerance,
		degenerate:    DegenerateOneHot,
		rnd:           rand.New(rand.NewSource(time.Now().UnixNano())),
		workers:       runtime.GOMAXPROCS(0),
		logger:        NoopLogger(),
	}
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

func (o *options) validate(c int) error {
	switch {
	case c < 2:
		return configError("number of clusters cannot be less than 2, got %d", c)
	case !isFinite(o.m) || o.m <= 1:
		return configError("fuzziness m must be greater than 1, got %g", o.m)
	case !isFinite(o.p) || !isFinite(o.q) || o.p < 0 || o.q < 0:
		return configError("exponents must be finite and non-negative, got p=%g q=%g", o.p, o.q)
	case o.nb < 1 || o.nb%2 == 0:
		return configError("window size must be positive and odd, got %d", o.nb)
	case o.maxIterations < 0:
		return configError("max iterations cannot be negative, got %d", o.maxIterations)
	case !isFinite(o.tolerance) || o.tolerance <= 0:
		return configError("tolerance must be positive, got %g", o.tolerance)
	case o.degenerate != DegenerateOneHot && o.degenerate != DegenerateNaNToOne:
		return configError("unknown degenerate policy %d", o.degenerate)
	case o.rnd == nil:
		return configError("random source cannot be nil")
	case o.workers < 1:
		return configError("workers must be at least 1, got %d", o.workers)
	}
	if o.initPoints != nil {
		if rows, _ := o.initPoints.Dims(); rows != c {
			return configError("got %d init points for %d clusters", rows, c)
		}
	}
	return nil
}
