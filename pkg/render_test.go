package sfcm

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"
)

func TestLabelImage(t *testing.T) {
	labels := &LabelMap{H: 2, W: 3, Labels: []int{0, 1, 1, 1, 0, 0}}
	palette := []color.Color{color.RGBA{A: 255}, color.RGBA{R: 255, A: 255}}

	im := LabelImage(labels, palette)
	assert.Equal(t, 3, im.Bounds().Dx())
	assert.Equal(t, 2, im.Bounds().Dy())
	assert.Equal(t, color.RGBA{A: 255}, im.RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{R: 255, A: 255}, im.RGBAAt(2, 0))
	assert.Equal(t, color.RGBA{R: 255, A: 255}, im.RGBAAt(0, 1))
}

func TestMembershipImage(t *testing.T) {
	u := mat.NewDense(2, 2, []float64{
		1, 0,
		0.5, 0.5,
	})
	im := MembershipImage(u, 1, 2, 0)
	assert.Equal(t, color.Gray16{Y: 0xFFFF}, im.Gray16At(0, 0))
	assert.Equal(t, color.Gray16{Y: 0x7FFF}, im.Gray16At(1, 0))

	im = MembershipImage(u, 1, 2, 1)
	assert.Equal(t, color.Gray16{Y: 0}, im.Gray16At(0, 0))
}
