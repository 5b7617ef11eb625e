/*
Package fontsys provides shared, concurrency-safe access to installed and
loaded font faces, and a memoized pipeline from a (font, glyph, size,
sub-pixel position) tuple to a rasterized image or vector outline.

Two engines make up the package:

▪︎ FontSystem resolves family/style queries to concrete face identities and
memoizes construction of usable Font objects from raw face data. It is safe
for concurrent use and meant to be constructed once, at the application's
composition root, and shared by reference everywhere fonts are needed;
building one enumerates and parses fonts, which is expensive.

▪︎ GlyphCache memoizes glyph rasterization per CacheKey, both raster images
and outline command sequences. It is deliberately not synchronized: glyph
rasterization belongs to a single rendering pass, so use one GlyphCache per
worker (all of them may share one FontSystem).

Lookups in either engine are total: absence (no matching face, unparsable
face data, a glyph with nothing to render) comes back as nil, never as an
error, and is itself memoized so the failing path runs at most once per key.
Only explicit single-file loading returns an error.

The font database and the glyph scaler are collaborators with their own
packages, facedb and scaler.

______________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package fontsys

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'fontsys'
func tracer() tracing.Trace {
	return tracing.Select("fontsys")
}
