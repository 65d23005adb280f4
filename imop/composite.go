// Package imop implements the straight-alpha Porter-Duff operations used for
// laying the icon layers on top of each other.
//
// The image/draw core package composites in premultiplied 16 bit space, which
// round-trips every pixel of an *image.NRGBA canvas through a lossy conversion.
// The operations below work directly on the 8 bit straight-alpha pixels, so the
// exact layer colors survive wherever a layer is opaque.
package imop

import (
	"image"
	"image/color"

	"github.com/medistock/launchericon/utils"
)

const (
	Copy    = "copy"
	SrcOver = "src_over"
)

// Composite holds the currently active composition operation.
type Composite struct {
	current string
	ops     []string
}

// InitOp initializes a new Composite with source-over as the active operation.
func InitOp() *Composite {
	return &Composite{
		current: SrcOver,
		ops: []string{
			Copy,
			SrcOver,
		},
	}
}

// Set activates one of the supported composition operations.
// Unsupported operations are ignored.
func (op *Composite) Set(cop string) {
	if utils.Contains(op.ops, cop) {
		op.current = cop
	}
}

// Get returns the currently active composition operation.
func (op *Composite) Get() string {
	return op.current
}

// Fill composites the uniform color c into the r region of dst.
// The optional mask holds the per pixel coverage of the shape; a nil mask
// means the whole region is covered.
func (op *Composite) Fill(dst *image.NRGBA, r image.Rectangle, c color.NRGBA, mask *image.Alpha) {
	r = r.Intersect(dst.Bounds())
	if mask != nil {
		r = r.Intersect(mask.Bounds())
	}
	if r.Empty() {
		return
	}

	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			cov := uint8(0xff)
			if mask != nil {
				cov = mask.AlphaAt(x, y).A
			}
			if cov == 0 {
				continue
			}
			i := dst.PixOffset(x, y)
			d := color.NRGBA{R: dst.Pix[i], G: dst.Pix[i+1], B: dst.Pix[i+2], A: dst.Pix[i+3]}

			var res color.NRGBA
			switch op.current {
			case Copy:
				res = copyOp(c, d, cov)
			case SrcOver:
				res = srcOver(c, d, cov)
			}
			dst.Pix[i+0] = res.R
			dst.Pix[i+1] = res.G
			dst.Pix[i+2] = res.B
			dst.Pix[i+3] = res.A
		}
	}
}

// srcOver applies the source-over-destination formula on straight-alpha colors.
func srcOver(src, dst color.NRGBA, cov uint8) color.NRGBA {
	asn := float64(src.A) / 255 * float64(cov) / 255
	abn := float64(dst.A) / 255

	an := asn + abn*(1-asn)
	if an == 0 {
		return color.NRGBA{}
	}
	mix := func(s, d uint8) uint8 {
		v := (float64(s)*asn + float64(d)*abn*(1-asn)) / an
		return uint8(utils.Clamp(v+0.5, 0, 255))
	}

	return color.NRGBA{
		R: mix(src.R, dst.R),
		G: mix(src.G, dst.G),
		B: mix(src.B, dst.B),
		A: uint8(utils.Clamp(an*255+0.5, 0, 255)),
	}
}

// copyOp replaces the destination with the source. Partially covered pixels
// are interpolated between the two in premultiplied space.
func copyOp(src, dst color.NRGBA, cov uint8) color.NRGBA {
	if cov == 0xff {
		return src
	}
	m := float64(cov) / 255
	asn := float64(src.A) / 255
	abn := float64(dst.A) / 255

	an := asn*m + abn*(1-m)
	if an == 0 {
		return color.NRGBA{}
	}
	mix := func(s, d uint8) uint8 {
		v := (float64(s)*asn*m + float64(d)*abn*(1-m)) / an
		return uint8(utils.Clamp(v+0.5, 0, 255))
	}

	return color.NRGBA{
		R: mix(src.R, dst.R),
		G: mix(src.G, dst.G),
		B: mix(src.B, dst.B),
		A: uint8(utils.Clamp(an*255+0.5, 0, 255)),
	}
}
