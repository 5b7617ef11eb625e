package fontsys

import (
	"strings"

	"github.com/npillmayer/fontsys/facedb"
)

// Re-exported facedb types, so that query clients only deal with one
// package.
type (
	Family  = facedb.Family
	Style   = facedb.Style
	Weight  = facedb.Weight
	Stretch = facedb.Stretch
)

// Attrs are the style attributes of a font query.
type Attrs struct {
	Style      Style
	Weight     Weight
	Stretch    Stretch
	Monospaced bool // prefer a monospaced face
}

// DefaultAttrs returns upright, normal-weight, normal-stretch attributes.
func DefaultAttrs() Attrs {
	return Attrs{
		Style:   facedb.StyleNormal,
		Weight:  facedb.WeightNormal,
		Stretch: facedb.StretchNormal,
	}
}

// fontAttrs is the memoization key for family/attribute queries. Two queries
// constructed from equal family lists and equal attrs map to the same key,
// however often they are built. Families are encoded via Family.Key, so a
// generic class never shares an entry with a literal family of the same name.
type fontAttrs struct {
	families string // canonical joined form of the family list
	attrs    Attrs
}

func queryKey(families []Family, attrs Attrs) fontAttrs {
	var sb strings.Builder
	for i, f := range families {
		if i > 0 {
			sb.WriteByte(0x1f)
		}
		sb.WriteString(f.Key())
	}
	return fontAttrs{families: sb.String(), attrs: attrs}
}

// styleKey memoizes monospace queries, which ignore families.
type styleKey struct {
	style   Style
	weight  Weight
	stretch Stretch
}
