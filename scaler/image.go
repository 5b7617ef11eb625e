package scaler

// Content describes the pixel format of a rendered glyph image.
type Content uint8

const (
	// ContentMask is one coverage byte per pixel.
	ContentMask Content = iota
	// ContentColor is four RGBA bytes per pixel.
	ContentColor
	// ContentSubpixelMask is three coverage bytes per pixel (LCD subpixel
	// rendering). The scaler never produces it, but consumers handle it for
	// forward compatibility.
	ContentSubpixelMask
)

// Placement positions a rendered image relative to the glyph's rendering
// origin. Left offsets the image to the right; Top is the distance the
// image's top edge sits above the origin (positive upward, like font
// ascenders).
type Placement struct {
	Left   int
	Top    int
	Width  int
	Height int
}

// Image is a rendered glyph: pixel data plus its placement. Data holds
// Width*Height pixels row by row, with the per-pixel size determined by
// Content.
type Image struct {
	Placement Placement
	Content   Content
	Data      []byte
}
