package launchericon

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
	"github.com/medistock/launchericon/imop"
	"golang.org/x/image/vector"
)

const (
	crossThicknessRatio = 0.11
	crossLengthRatio    = 0.44

	// fadeRatio is the fraction of opacity lost from the top to the bottom row
	// when the background fade is enabled.
	fadeRatio = 0.4
)

// Palette holds the colors of the icon layers.
type Palette struct {
	Background color.NRGBA
	Diamond    color.NRGBA
	Cross      color.NRGBA
	Highlight  color.NRGBA
}

// DefaultPalette is the cyan/teal Medistock theme.
var DefaultPalette = Palette{
	Background: color.NRGBA{R: 0x00, G: 0xac, B: 0xc1, A: 0xff}, // #00ACC1
	Diamond:    color.NRGBA{R: 0x00, G: 0x97, B: 0xa7, A: 0x99}, // #0097A7 at 60%
	Cross:      color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	Highlight:  color.NRGBA{R: 0x80, G: 0xde, B: 0xea, A: 0xff}, // #80DEEA
}

// Renderer draws the launcher icon. A Renderer has no mutable state once
// configured, so it can be shared between goroutines.
type Renderer struct {
	Palette Palette
	// Fade applies the per row opacity fade to the background.
	// When false the background is a flat opaque color.
	Fade bool
}

// NewRenderer returns a Renderer using the default palette and a flat background.
func NewRenderer() *Renderer {
	return &Renderer{Palette: DefaultPalette}
}

// CrossMetrics returns the bar thickness and length of the cross for an icon of the given size.
func CrossMetrics(size int) (thickness, length int) {
	thickness = int(math.Round(float64(size) * crossThicknessRatio))
	length = int(math.Round(float64(size) * crossLengthRatio))
	return
}

// RowAlpha returns the background opacity of row i when the fade is enabled.
func RowAlpha(i, size int) uint8 {
	return uint8(255 * (1 - float64(i)/float64(size)*fadeRatio))
}

// Render draws the icon on a new size x size canvas.
// Every pixel of the returned image is written by the drawing steps below,
// so the output only depends on the size and the renderer settings.
func (r *Renderer) Render(size int) (*image.NRGBA, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	var (
		img    = imaging.New(size, size, color.NRGBA{})
		op     = imop.InitOp()
		center = size / 2
	)

	r.drawBackground(img, op, size)
	r.drawDiamond(img, op, size, center)

	thickness, length := CrossMetrics(size)
	op.Set(imop.Copy)
	op.Fill(img, centeredRect(center, thickness, length), r.Palette.Cross, nil)
	op.Fill(img, centeredRect(center, length, thickness), r.Palette.Cross, nil)

	if side := thickness - 2; side > 0 {
		op.Fill(img, centeredRect(center, side, side), r.Palette.Highlight, nil)
	}

	return img, nil
}

// drawBackground fills the canvas row by row.
func (r *Renderer) drawBackground(img *image.NRGBA, op *imop.Composite, size int) {
	op.Set(imop.Copy)
	for i := 0; i < size; i++ {
		col := r.Palette.Background
		if r.Fade {
			col.A = RowAlpha(i, size)
		}
		op.Fill(img, image.Rect(0, i, size, i+1), col, nil)
	}
}

// drawDiamond overlays the quadrilateral joining the middle of each canvas edge.
func (r *Renderer) drawDiamond(img *image.NRGBA, op *imop.Composite, size, center int) {
	var (
		s = float32(size)
		c = float32(center)
	)
	z := vector.NewRasterizer(size, size)
	z.MoveTo(0, c)
	z.LineTo(c, 0)
	z.LineTo(s, c)
	z.LineTo(c, s)
	z.ClosePath()

	mask := image.NewAlpha(image.Rect(0, 0, size, size))
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})

	op.Set(imop.SrcOver)
	op.Fill(img, img.Bounds(), r.Palette.Diamond, mask)
}

// centeredRect returns the w x h rectangle centered on (c, c).
func centeredRect(c, w, h int) image.Rectangle {
	x0, y0 := c-w/2, c-h/2
	return image.Rect(x0, y0, x0+w, y0+h)
}
