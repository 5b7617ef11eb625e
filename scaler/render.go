package scaler

import (
	"image"
	"math"

	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// Source is one place a glyph image can be rendered from. Sources are tried
// in the order the caller lists them; the first one that yields an image
// wins.
type Source uint8

const (
	// SourceColorOutline is a layered color outline (COLR) with the first
	// palette. The sfnt loader exposes no color tables, so this source is
	// currently never available; it stays in the priority list so that the
	// render policy carries over unchanged once color support exists.
	SourceColorOutline Source = iota
	// SourceColorBitmapBestFit is an embedded color bitmap strike with
	// best-fit size selection. Unavailable for the same reason as
	// SourceColorOutline.
	SourceColorBitmapBestFit
	// SourceOutline is the standard monochrome scalable outline.
	SourceOutline
)

// Render configures one rasterization pass over a source priority list.
type Render struct {
	sources  []Source
	format   Content
	offsetX  float32
	offsetY  float32
	embolden float32
}

// NewRender creates a render pass trying the given sources in order.
func NewRender(sources ...Source) *Render {
	return &Render{sources: sources, format: ContentMask}
}

// Format selects the pixel format of the rendered image.
func (r *Render) Format(c Content) *Render {
	r.format = c
	return r
}

// Offset applies a fractional pen offset, x to the right and y downward,
// in pixels.
func (r *Render) Offset(x, y float32) *Render {
	r.offsetX = x
	r.offsetY = y
	return r
}

// Embolden thickens the glyph by roughly the given amount in pixels.
func (r *Render) Embolden(amount float32) *Render {
	r.embolden = amount
	return r
}

// Render rasterizes one glyph through the source priority list. Returns nil
// if no source can produce an image, which is the normal outcome for
// whitespace and for glyph IDs the face does not cover.
func (r *Render) Render(sc *Scaler, glyphID uint16) *Image {
	for _, src := range r.sources {
		switch src {
		case SourceColorOutline, SourceColorBitmapBestFit:
			// no color table support in the outline loader
			continue
		case SourceOutline:
			if img := r.renderOutline(sc, glyphID); img != nil {
				return img
			}
		}
	}
	return nil
}

func (r *Render) renderOutline(sc *Scaler, glyphID uint16) *Image {
	segs := sc.loadGlyph(glyphID)
	if segs == nil {
		return nil
	}
	offX := fixed.Int26_6(r.offsetX * 64)
	offY := fixed.Int26_6(r.offsetY * 64)
	bounds := segs.Bounds()
	left := (bounds.Min.X + offX).Floor()
	top := (bounds.Min.Y + offY).Floor()
	right := (bounds.Max.X + offX).Ceil()
	bottom := (bounds.Max.Y + offY).Ceil()
	if r.embolden > 0 {
		right += int(math.Ceil(float64(r.embolden)))
	}
	width, height := right-left, bottom-top
	if width <= 0 || height <= 0 {
		return nil
	}

	rast := vector.NewRasterizer(width, height)
	appendSegments(rast, segs, r.offsetX-float32(left), r.offsetY-float32(top))
	if r.embolden > 0 {
		// faux-bold: overlay a horizontally shifted copy of the outline
		appendSegments(rast, segs, r.offsetX-float32(left)+r.embolden, r.offsetY-float32(top))
	}
	dst := image.NewAlpha(image.Rect(0, 0, width, height))
	rast.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})

	return &Image{
		Placement: Placement{
			Left:   left,
			Top:    -top, // segment space is y-down, placement is y-up
			Width:  width,
			Height: height,
		},
		Content: ContentMask,
		Data:    dst.Pix,
	}
}

// appendSegments walks SFNT outline segments into the rasterizer, shifted
// by (dx, dy) pixels.
func appendSegments(rast *vector.Rasterizer, segs sfnt.Segments, dx, dy float32) {
	for _, seg := range segs {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			rast.MoveTo(dx+float32(seg.Args[0].X)/64, dy+float32(seg.Args[0].Y)/64)
		case sfnt.SegmentOpLineTo:
			rast.LineTo(dx+float32(seg.Args[0].X)/64, dy+float32(seg.Args[0].Y)/64)
		case sfnt.SegmentOpQuadTo:
			rast.QuadTo(
				dx+float32(seg.Args[0].X)/64, dy+float32(seg.Args[0].Y)/64,
				dx+float32(seg.Args[1].X)/64, dy+float32(seg.Args[1].Y)/64,
			)
		case sfnt.SegmentOpCubeTo:
			rast.CubeTo(
				dx+float32(seg.Args[0].X)/64, dy+float32(seg.Args[0].Y)/64,
				dx+float32(seg.Args[1].X)/64, dy+float32(seg.Args[1].Y)/64,
				dx+float32(seg.Args[2].X)/64, dy+float32(seg.Args[2].Y)/64,
			)
		}
	}
	rast.ClosePath()
}
