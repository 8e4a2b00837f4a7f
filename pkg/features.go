package sfcm

import (
	"fmt"
	"image"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/gonum/mat"
)

// ColorSpace selects the per-pixel features extracted from an image.
type ColorSpace string

const (
	// Gray is one channel of luma in [0, 255].
	Gray ColorSpace = "gray"
	// RGB is three channels in [0, 255].
	RGB ColorSpace = "rgb"
	// Lab is CIE L*a*b* with L in [0, 100].
	Lab ColorSpace = "lab"
	// HSV is hue in degrees, saturation and value in [0, 100]. Hue does not
	// wrap, so reds near 0 and 360 land far apart.
	HSV ColorSpace = "hsv"
)

func ParseColorSpace(s string) (ColorSpace, error) {
	switch space := ColorSpace(s); space {
	case Gray, RGB, Lab, HSV:
		return space, nil
	default:
		return "", fmt.Errorf("unknown color space %q, expected one of gray, rgb, lab, hsv", s)
	}
}

// Channels is the D of arrays built in this space.
func (s ColorSpace) Channels() int {
	if s == Gray {
		return 1
	}
	return 3
}

// ImageArray converts im into an (H, W, D) array of the space's features.
func ImageArray(im image.Image, space ColorSpace) *Dense {
	b := im.Bounds()
	d := space.Channels()
	values := make([]float64, 0, b.Dx()*b.Dy()*d)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			values = append(values, pixelFeatures(im.At(x, y), space)...)
		}
	}
	return NewDense([]int{b.Dy(), b.Dx(), d}, values)
}

func pixelFeatures(c color.Color, space ColorSpace) []float64 {
	switch space {
	case Gray:
		return []float64{float64(color.Gray16Model.Convert(c).(color.Gray16).Y) / 0x101}
	case Lab:
		cc, _ := colorful.MakeColor(c)
		l, a, b := cc.Lab()
		return []float64{l * 100, a * 100, b * 100}
	case HSV:
		cc, _ := colorful.MakeColor(c)
		h, sat, v := cc.Hsv()
		return []float64{h, sat * 100, v * 100}
	default:
		r, g, b, _ := c.RGBA()
		return []float64{float64(r) / 0x101, float64(g) / 0x101, float64(b) / 0x101}
	}
}

// featureColor is the inverse of pixelFeatures.
func featureColor(f []float64, space ColorSpace) color.Color {
	switch space {
	case Gray:
		return color.Gray16{Y: uint16(clampFloat(f[0], 0, 255) * 0x101)}
	case Lab:
		return colorful.Lab(f[0]/100, f[1]/100, f[2]/100).Clamped()
	case HSV:
		return colorful.Hsv(clampFloat(f[0], 0, 360), clampFloat(f[1]/100, 0, 1), clampFloat(f[2]/100, 0, 1))
	default:
		return color.RGBA64{
			R: uint16(clampFloat(f[0], 0, 255) * 0x101),
			G: uint16(clampFloat(f[1], 0, 255) * 0x101),
			B: uint16(clampFloat(f[2], 0, 255) * 0x101),
			A: 0xFFFF,
		}
	}
}

func clampFloat(x, lo, hi float64) float64 {
	return min(max(x, lo), hi)
}

// CentroidPalette paints every cluster with the color of its centroid.
func CentroidPalette(centroids *mat.Dense, space ColorSpace) []color.Color {
	rows, _ := centroids.Dims()
	palette := make([]color.Color, rows)
	for k := range palette {
		palette[k] = featureColor(centroids.RawRowView(k), space)
	}
	return palette
}

// HuePalette returns c evenly spaced, well distinguishable hues.
func HuePalette(c int) []color.Color {
	palette := make([]color.Color, c)
	for k := range palette {
		palette[k] = colorful.Hsv(360*float64(k)/float64(c), 0.75, 0.9)
	}
	return palette
}
