package sfcm

import (
	"errors"
	"fmt"
	"image"
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// SegmentConfig describes one run of the segmentation pipeline:
// optional blur, feature extraction, optional median, fit, predict.
type SegmentConfig struct {
	Clusters      int
	Fuzziness     float64
	P, Q          float64
	Window        int
	Spatial       bool
	MaxIterations int
	// Seed makes seeding reproducible. Zero seeds from the clock.
	Seed         int64
	Space        ColorSpace
	BlurRadius   float64
	MedianWindow int
	// HuePalette paints labels with distinct hues instead of centroid colors.
	HuePalette bool
	Logger     *Logger
}

// DefaultSegmentConfig mirrors the engine defaults on a grayscale image.
func DefaultSegmentConfig() SegmentConfig {
	return SegmentConfig{
		Clusters:      2,
		Fuzziness:     DefaultFuzziness,
		P:             1,
		Q:             1,
		Window:        DefaultWindow,
		Spatial:       true,
		MaxIterations: DefaultMaxIterations,
		Space:         Gray,
	}
}

func (cfg SegmentConfig) options() []Option {
	opts := []Option{
		WithFuzziness(cfg.Fuzziness),
		WithExponents(cfg.P, cfg.Q),
		WithWindow(cfg.Window),
		WithMaxIterations(cfg.MaxIterations),
		WithLogger(cfg.Logger),
	}
	if cfg.Seed != 0 {
		opts = append(opts, WithRand(rand.New(rand.NewSource(cfg.Seed))))
	}
	return opts
}

// Segmentation is the outcome of Segment.
type Segmentation struct {
	Labels     *LabelMap
	Membership *mat.Dense
	Centroids  *mat.Dense
	Space      ColorSpace
	Iterations int
}

// Image renders the label map.
func (s *Segmentation) Image(huePalette bool) *image.RGBA {
	palette := CentroidPalette(s.Centroids, s.Space)
	if huePalette {
		palette = HuePalette(len(palette))
	}
	return LabelImage(s.Labels, palette)
}

// Segment runs the pipeline on im with a fresh engine. Hitting the iteration
// cap is not fatal: the last centroids are used and the engine logs a warning.
func Segment(im image.Image, cfg SegmentConfig) (*Segmentation, error) {
	engine, err := New(cfg.Clusters, cfg.options()...)
	if err != nil {
		return nil, err
	}

	var a Array = ImageArray(Blur(im, cfg.BlurRadius), cfg.Space)
	if cfg.MedianWindow > 1 {
		if a, err = Median(a, cfg.MedianWindow); err != nil {
			return nil, err
		}
	}

	if err := engine.Fit(a, cfg.Spatial); err != nil && !errors.Is(err, ErrNotConverged) {
		return nil, err
	}
	u, err := engine.Membership(a, cfg.Spatial)
	if err != nil {
		return nil, err
	}
	shape := a.Shape()
	return &Segmentation{
		Labels:     labelsOf(u, shape[0], shape[1]),
		Membership: u,
		Centroids:  engine.Centroids(),
		Space:      cfg.Space,
		Iterations: engine.Iterations(),
	}, nil
}

func segmentFile(sourceImageFilename string, cfg SegmentConfig) (*Segmentation, error) {
	im, err := LoadImageFile(sourceImageFilename)
	if err != nil {
		return nil, fmt.Errorf("error occured while loading image: %w", err)
	}
	return Segment(im, cfg)
}

// ApplySegmentationFilter writes the label map of sourceImageFilename as a
// PNG to resultImageFilename.
func ApplySegmentationFilter(sourceImageFilename, resultImageFilename string, cfg SegmentConfig) error {
	s, err := segmentFile(sourceImageFilename, cfg)
	if err != nil {
		return err
	}
	return SaveImage(s.Image(cfg.HuePalette), resultImageFilename)
}

// ApplyMembershipFilter writes the soft membership of cluster k as a
// grayscale PNG.
func ApplyMembershipFilter(sourceImageFilename, resultImageFilename string, cfg SegmentConfig, k int) error {
	if k < 0 || k >= cfg.Clusters {
		return fmt.Errorf("cluster must be in [0, %d), you gave k=%d", cfg.Clusters, k)
	}
	s, err := segmentFile(sourceImageFilename, cfg)
	if err != nil {
		return err
	}
	return SaveImage(MembershipImage(s.Membership, s.Labels.H, s.Labels.W, k), resultImageFilename)
}
