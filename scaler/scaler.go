/*
Package scaler turns glyphs of a parsed font face into rasterized images or
outline command sequences at a given size.

A Context owns the reusable working state (sfnt buffer, rasterizer); create
one per worker and build a Scaler from it for every (face, size) pair:

	ctx := scaler.NewContext()
	sc := ctx.Builder(font, 16).Hint(true).Build()
	img := scaler.NewRender(scaler.SourceOutline).Render(sc, glyphID)

A Context is not safe for concurrent use.

______________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package scaler

import (
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// tracer writes to trace with key 'fontsys.scaler'
func tracer() tracing.Trace {
	return tracing.Select("fontsys.scaler")
}

// Context holds reusable scratch state for scaling and rasterizing glyphs.
type Context struct {
	buf sfnt.Buffer
}

// NewContext creates an empty scaling context.
func NewContext() *Context {
	return &Context{}
}

// Builder starts configuration of a Scaler for one face at a pixel size.
func (ctx *Context) Builder(f *sfnt.Font, size float64) *Builder {
	return &Builder{
		ctx:  ctx,
		font: f,
		ppem: fixed.Int26_6(size * 64),
	}
}

// Builder configures a Scaler.
type Builder struct {
	ctx  *Context
	font *sfnt.Font
	ppem fixed.Int26_6
	hint bool
}

// Hint toggles glyph hinting. The sfnt outline loader performs no hinting,
// so this currently only records the caller's intent; the option is kept so
// that platform rendering policies keep their full shape.
func (b *Builder) Hint(on bool) *Builder {
	b.hint = on
	return b
}

// Build returns the configured Scaler.
func (b *Builder) Build() *Scaler {
	return &Scaler{
		ctx:  b.ctx,
		font: b.font,
		ppem: b.ppem,
		hint: b.hint,
	}
}

// Scaler scales glyphs of one face at one size. It borrows its Context's
// scratch state and must not outlive it.
type Scaler struct {
	ctx  *Context
	font *sfnt.Font
	ppem fixed.Int26_6
	hint bool
}

// loadGlyph fetches the scaled outline segments for a glyph, or nil if the
// glyph does not exist or has no outline (e.g. whitespace).
func (sc *Scaler) loadGlyph(glyphID uint16) sfnt.Segments {
	if sc.font == nil {
		return nil
	}
	segs, err := sc.font.LoadGlyph(&sc.ctx.buf, sfnt.GlyphIndex(glyphID), sc.ppem, nil)
	if err != nil {
		tracer().Debugf("no outline for glyph %d: %v", glyphID, err)
		return nil
	}
	if len(segs) == 0 {
		return nil
	}
	return segs
}
