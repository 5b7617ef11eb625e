package fontsys

import (
	"github.com/npillmayer/fontsys/facedb"
	"golang.org/x/image/math/fixed"
)

// SubpixelBin is a quantized fractional pen offset. Real-valued pen
// positions are bucketed into quarter-pixel bins, which bounds the number
// of distinct raster variants of one glyph to a small constant however many
// positions occur during layout: positional precision traded for cache hit
// rate.
type SubpixelBin uint8

const (
	BinZero SubpixelBin = iota
	BinQuarter
	BinHalf
	BinThreeQuarters
)

// NewSubpixelBin splits a pen coordinate into its integer pixel position
// and the bin of its fractional part. Offsets round to the nearest bin, so
// e.g. 1.9 becomes (2, BinZero).
func NewSubpixelBin(pos float32) (int32, SubpixelBin) {
	trunc := int32(pos)
	fract := pos - float32(trunc)
	if fract < 0 {
		trunc--
		fract++
	}
	switch {
	case fract < 0.125:
		return trunc, BinZero
	case fract < 0.375:
		return trunc, BinQuarter
	case fract < 0.625:
		return trunc, BinHalf
	case fract < 0.875:
		return trunc, BinThreeQuarters
	}
	return trunc + 1, BinZero
}

// Offset returns the bin's representative fractional offset in pixels.
func (b SubpixelBin) Offset() float32 {
	switch b {
	case BinQuarter:
		return 0.25
	case BinHalf:
		return 0.5
	case BinThreeQuarters:
		return 0.75
	}
	return 0
}

// CacheKey identifies one rasterization request precisely: face, glyph
// index, quantized size and quantized sub-pixel position. Keys are
// comparable; equal requests memoize to one cache entry.
type CacheKey struct {
	FontID   facedb.FaceID
	GlyphID  uint16
	FontSize fixed.Int26_6 // pixel size quantized to 1/64
	XBin     SubpixelBin
	YBin     SubpixelBin
	Flags    uint8 // reserved rendering-mode flags, part of the key's identity
}

// NewCacheKey builds a key for rendering glyph glyphID of a face at a pixel
// size and an exact pen position. The returned ints are the integer pixel
// coordinates the rendered image should be placed at; the fractional
// remainders are quantized into the key's bins.
func NewCacheKey(id facedb.FaceID, glyphID uint16, size float64, x, y float32, flags uint8) (CacheKey, int32, int32) {
	xInt, xBin := NewSubpixelBin(x)
	yInt, yBin := NewSubpixelBin(y)
	return CacheKey{
		FontID:   id,
		GlyphID:  glyphID,
		FontSize: fixed.Int26_6(size * 64),
		XBin:     xBin,
		YBin:     yBin,
		Flags:    flags,
	}, xInt, yInt
}

// Size returns the key's font size in pixels.
func (key CacheKey) Size() float64 {
	return float64(key.FontSize) / 64
}
