package sfcm

import (
	"image"
	"image/color"

	"gonum.org/v1/gonum/mat"
)

// LabelImage paints pixel (x, y) with palette[labels.At(y, x)].
func LabelImage(labels *LabelMap, palette []color.Color) *image.RGBA {
	im := image.NewRGBA(image.Rect(0, 0, labels.W, labels.H))
	for y := 0; y < labels.H; y++ {
		for x := 0; x < labels.W; x++ {
			im.Set(x, y, palette[labels.At(y, x)])
		}
	}
	return im
}

// MembershipImage renders the membership of cluster k as a grayscale
// image, white meaning full membership.
func MembershipImage(u *mat.Dense, h, w, k int) *image.Gray16 {
	im := image.NewGray16(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			im.SetGray16(x, y, color.Gray16{Y: uint16(clampFloat(u.At(y*w+x, k), 0, 1) * 0xFFFF)})
		}
	}
	return im
}
