package fontsys

import (
	"image/color"
	"runtime"

	"github.com/npillmayer/fontsys/scaler"
)

// renderPolicy holds the platform-dependent rendering constants. Mac
// rendering comes out noticeably lighter than elsewhere, which we
// compensate with a fixed embolden amount and disabled hinting.
type renderPolicy struct {
	hinting  bool
	embolden float32
}

// renderPolicies is the per-platform configuration table; platforms not
// listed use hinting and no emboldening.
var renderPolicies = map[string]renderPolicy{
	"darwin": {hinting: false, embolden: 0.2},
	"ios":    {hinting: false, embolden: 0.2},
}

var platformPolicy = resolveRenderPolicy(runtime.GOOS)

func resolveRenderPolicy(goos string) renderPolicy {
	if p, ok := renderPolicies[goos]; ok {
		return p
	}
	return renderPolicy{hinting: true}
}

// glyphSources is the fixed source priority for every rasterization: color
// outline with the first palette, then a best-fit color bitmap strike, then
// the standard scalable outline.
var glyphSources = []scaler.Source{
	scaler.SourceColorOutline,
	scaler.SourceColorBitmapBestFit,
	scaler.SourceOutline,
}

// GlyphCache memoizes glyph rasterization results per CacheKey: rendered
// images and outline command sequences. Entries live as long as the cache;
// there is no eviction.
//
// A GlyphCache is not safe for concurrent use; use one per rendering
// worker. All workers may share the FontSystem, which carries its own
// synchronization.
type GlyphCache struct {
	sys      *FontSystem
	ctx      *scaler.Context
	images   map[CacheKey]*scaler.Image
	outlines map[CacheKey][]scaler.Command
}

// NewGlyphCache creates an empty glyph cache resolving fonts through sys.
func NewGlyphCache(sys *FontSystem) *GlyphCache {
	return &GlyphCache{
		sys:      sys,
		ctx:      scaler.NewContext(),
		images:   make(map[CacheKey]*scaler.Image),
		outlines: make(map[CacheKey][]scaler.Command),
	}
}

// GetImageUncached rasterizes a glyph without touching the cache, for
// one-shot rendering the caller does not want memoized.
func (gc *GlyphCache) GetImageUncached(key CacheKey) *scaler.Image {
	return gc.renderImage(key)
}

// GetImage returns the memoized rasterization of a glyph. The returned
// image stays valid as long as the cache lives and must not be modified.
// nil means the glyph has no renderable content, a frequent and normal
// outcome (whitespace, unknown face IDs) that is memoized like any other.
func (gc *GlyphCache) GetImage(key CacheKey) *scaler.Image {
	if img, ok := gc.images[key]; ok {
		return img
	}
	img := gc.renderImage(key)
	gc.images[key] = img
	return img
}

// GetOutlineCommands returns the memoized vector outline of a glyph: the
// standard scalable outline if the face has one, else a color outline, else
// nil. The returned slice must not be modified.
func (gc *GlyphCache) GetOutlineCommands(key CacheKey) []scaler.Command {
	if cmds, ok := gc.outlines[key]; ok {
		return cmds
	}
	cmds := gc.scaleOutline(key)
	gc.outlines[key] = cmds
	return cmds
}

func (gc *GlyphCache) renderImage(key CacheKey) *scaler.Image {
	font := gc.sys.GetFont(key.FontID)
	if font == nil {
		tracer().Infof("did not find font %d", key.FontID)
		return nil
	}
	sc := gc.ctx.Builder(font.SFNT(), key.Size()).
		Hint(platformPolicy.hinting).
		Build()
	return scaler.NewRender(glyphSources...).
		Format(scaler.ContentMask).
		Offset(key.XBin.Offset(), key.YBin.Offset()).
		Embolden(platformPolicy.embolden).
		Render(sc, key.GlyphID)
}

func (gc *GlyphCache) scaleOutline(key CacheKey) []scaler.Command {
	font := gc.sys.GetFont(key.FontID)
	if font == nil {
		tracer().Infof("did not find font %d", key.FontID)
		return nil
	}
	sc := gc.ctx.Builder(font.SFNT(), key.Size()).Build()
	cmds := sc.ScaleOutline(key.GlyphID)
	if cmds == nil {
		cmds = sc.ScaleColorOutline(key.GlyphID)
	}
	return cmds
}

// WithPixels calls f for every pixel of the (cached) rasterized glyph. A
// pixel's absolute position is the image's placement offset plus its
// row/column index, with the vertical placement negated: the image's
// top-left corner maps into a caller space where y grows downward from the
// glyph's rendering origin.
//
// Mask images report a fixed opaque foreground color per pixel; color
// images report their literal RGBA values. Subpixel masks are not
// supported and produce no callbacks.
func (gc *GlyphCache) WithPixels(key CacheKey, base color.RGBA, f func(x, y int, c color.RGBA)) {
	img := gc.GetImage(key)
	if img == nil {
		return
	}
	x := img.Placement.Left
	y := -img.Placement.Top

	switch img.Content {
	case scaler.ContentMask:
		// TODO: blend base's alpha with the coverage mask
		for offY := range img.Placement.Height {
			for offX := range img.Placement.Width {
				f(x+offX, y+offY, color.RGBA{A: 0xff})
			}
		}
	case scaler.ContentColor:
		i := 0
		for offY := range img.Placement.Height {
			for offX := range img.Placement.Width {
				f(x+offX, y+offY, color.RGBA{
					R: img.Data[i],
					G: img.Data[i+1],
					B: img.Data[i+2],
					A: img.Data[i+3],
				})
				i += 4
			}
		}
	case scaler.ContentSubpixelMask:
		tracer().Infof("subpixel mask images are not supported")
	}
}
