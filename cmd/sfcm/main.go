package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"runtime"

	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"

	sfcm "github.com/rprtr258/sfcm/pkg"
)

var (
	_flagInput = &cli.StringSliceFlag{
		Name:    "input",
		Aliases: []string{"i"},
		Usage:   "input image, may be repeated to segment several frames",
	}
	_flagOutput = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "output image, only with a single input; defaults to <input>.sfcm.png",
	}
	_flagJobs = &cli.IntFlag{
		Name:  "jobs",
		Usage: "frames segmented concurrently",
		Value: runtime.GOMAXPROCS(0),
	}
	_flagVerbose = &cli.BoolFlag{
		Name:  "verbose",
		Usage: "log every fit iteration",
	}
)

func segmentFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{Name: "n", Usage: "number of clusters", Value: 2, EnvVars: []string{"SFCM_CLUSTERS"}},
		&cli.Float64Flag{Name: "m", Usage: "fuzziness, greater than 1", Value: sfcm.DefaultFuzziness, EnvVars: []string{"SFCM_FUZZINESS"}},
		&cli.Float64Flag{Name: "p", Usage: "power of the raw membership", Value: 1},
		&cli.Float64Flag{Name: "q", Usage: "power of the neighbourhood membership", Value: 1},
		&cli.IntFlag{Name: "nb", Usage: "odd side of the smoothing window", Value: sfcm.DefaultWindow, EnvVars: []string{"SFCM_WINDOW"}},
		&cli.BoolFlag{Name: "no-spatial", Usage: "plain fuzzy c-means, no neighbourhood smoothing"},
		&cli.IntFlag{Name: "max-iter", Usage: "iteration cap, 0 for none", Value: sfcm.DefaultMaxIterations},
		&cli.Int64Flag{Name: "seed", Usage: "seed for centroid seeding, 0 for random", EnvVars: []string{"SFCM_SEED"}},
		&cli.StringFlag{Name: "space", Usage: "pixel features: gray, rgb, lab, hsv", Value: string(sfcm.Gray)},
		&cli.Float64Flag{Name: "blur", Usage: "gaussian pre-blur radius, 0 to disable"},
		&cli.IntFlag{Name: "median", Usage: "odd median pre-filter window, 0 to disable"},
		&cli.BoolFlag{Name: "hue", Usage: "paint labels with distinct hues instead of centroid colors"},
	}
}

func configFromContext(ctx *cli.Context, logger *sfcm.Logger) (sfcm.SegmentConfig, error) {
	space, err := sfcm.ParseColorSpace(ctx.String("space"))
	if err != nil {
		return sfcm.SegmentConfig{}, err
	}
	return sfcm.SegmentConfig{
		Clusters:      ctx.Int("n"),
		Fuzziness:     ctx.Float64("m"),
		P:             ctx.Float64("p"),
		Q:             ctx.Float64("q"),
		Window:        ctx.Int("nb"),
		Spatial:       !ctx.Bool("no-spatial"),
		MaxIterations: ctx.Int("max-iter"),
		Seed:          ctx.Int64("seed"),
		Space:         space,
		BlurRadius:    ctx.Float64("blur"),
		MedianWindow:  ctx.Int("median"),
		HuePalette:    ctx.Bool("hue"),
		Logger:        logger,
	}, nil
}

func newLogger(ctx *cli.Context) *sfcm.Logger {
	level := slog.LevelInfo
	if ctx.Bool(_flagVerbose.Name) {
		level = slog.LevelDebug
	}
	return sfcm.NewTextLogger(level)
}

// forEachInput runs filter on every input with at most --jobs frames in
// flight and prints the result filenames in input order.
func forEachInput(ctx *cli.Context, suffix string, filter func(src, dst string) error) error {
	inputs := ctx.StringSlice(_flagInput.Name)
	if len(inputs) == 0 {
		return fmt.Errorf("no input image given, use -i")
	}
	output := ctx.String(_flagOutput.Name)
	if output != "" && len(inputs) > 1 {
		return fmt.Errorf("--output can only be used with a single input, got %d inputs", len(inputs))
	}

	results := make([]string, len(inputs))
	var g errgroup.Group
	g.SetLimit(max(ctx.Int(_flagJobs.Name), 1))
	for i, src := range inputs {
		i, src := i, src
		dst := output
		if dst == "" {
			dst = src + suffix
		}
		g.Go(func() error {
			if err := filter(src, dst); err != nil {
				return fmt.Errorf("%s: %w", src, err)
			}
			results[i] = dst
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	for _, dst := range results {
		fmt.Println(dst)
	}
	return nil
}

func main() {
	if err := (&cli.App{
		Name:  "sfcm",
		Usage: "segment images with spatial fuzzy c-means",
		Flags: []cli.Flag{_flagInput, _flagOutput, _flagJobs, _flagVerbose},
		Commands: []*cli.Command{
			{
				Name:  "segment",
				Usage: "write the hard label map of each input",
				Flags: segmentFlags(),
				Action: func(ctx *cli.Context) error {
					cfg, err := configFromContext(ctx, newLogger(ctx))
					if err != nil {
						return err
					}
					return forEachInput(ctx, ".sfcm.png", func(src, dst string) error {
						return sfcm.ApplySegmentationFilter(src, dst, cfg)
					})
				},
			},
			{
				Name:  "membership",
				Usage: "write the soft membership of one cluster as a grayscale image",
				Flags: append(segmentFlags(), &cli.IntFlag{Name: "k", Usage: "cluster index"}),
				Action: func(ctx *cli.Context) error {
					cfg, err := configFromContext(ctx, newLogger(ctx))
					if err != nil {
						return err
					}
					k := ctx.Int("k")
					return forEachInput(ctx, fmt.Sprintf(".k%d.sfcm.png", k), func(src, dst string) error {
						return sfcm.ApplyMembershipFilter(src, dst, cfg, k)
					})
				},
			},
		},
	}).Run(os.Args); err != nil {
		log.Fatal(err.Error())
	}
}
