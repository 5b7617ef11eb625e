package facedb

import "strings"

// Style is the slant of a face: normal, italic or oblique.
type Style uint8

const (
	StyleNormal Style = iota
	StyleItalic
	StyleOblique
)

func (s Style) String() string {
	switch s {
	case StyleItalic:
		return "italic"
	case StyleOblique:
		return "oblique"
	}
	return "normal"
}

// Weight is the visual thickness of a face, on the usual CSS scale
// from 100 (thin) to 900 (black).
type Weight uint16

const (
	WeightThin       Weight = 100
	WeightExtraLight Weight = 200
	WeightLight      Weight = 300
	WeightNormal     Weight = 400
	WeightMedium     Weight = 500
	WeightSemiBold   Weight = 600
	WeightBold       Weight = 700
	WeightExtraBold  Weight = 800
	WeightBlack      Weight = 900
)

// Stretch is the horizontal condensation or expansion of a face,
// from ultra-condensed (1) to ultra-expanded (9).
type Stretch uint8

const (
	StretchUltraCondensed Stretch = iota + 1
	StretchExtraCondensed
	StretchCondensed
	StretchSemiCondensed
	StretchNormal
	StretchSemiExpanded
	StretchExpanded
	StretchExtraExpanded
	StretchUltraExpanded
)

// familyClass enumerates the generic font classes known from CSS.
type familyClass uint8

const (
	classNamed familyClass = iota
	classSerif
	classSansSerif
	classMonospace
	classCursive
	classFantasy
)

// Family is one requested entry of a font query: either a concrete family
// name or one of the generic classes (serif, sans-serif, monospace, cursive,
// fantasy). Family values are comparable and may be used as map keys.
type Family struct {
	name  string
	class familyClass
}

// Generic family classes. A database substitutes a configured concrete
// family name for each of these before matching (see Database.SetSerifFamily
// and friends).
var (
	Serif     = Family{class: classSerif}
	SansSerif = Family{class: classSansSerif}
	Monospace = Family{class: classMonospace}
	Cursive   = Family{class: classCursive}
	Fantasy   = Family{class: classFantasy}
)

// FamilyName returns a Family naming a concrete font family, e.g. "Helvetica".
func FamilyName(name string) Family {
	return Family{name: name}
}

// IsGeneric reports whether f is one of the generic classes.
func (f Family) IsGeneric() bool { return f.class != classNamed }

// Key returns a canonical encoding of f for use in lookup keys. Unlike
// String, it keeps a generic class distinct from a literal family that
// happens to carry the class's name (e.g. Monospace vs FamilyName("monospace")).
func (f Family) Key() string {
	return string([]byte{byte(f.class)}) + f.name
}

func (f Family) String() string {
	switch f.class {
	case classSerif:
		return "serif"
	case classSansSerif:
		return "sans-serif"
	case classMonospace:
		return "monospace"
	case classCursive:
		return "cursive"
	case classFantasy:
		return "fantasy"
	}
	return f.name
}

// --- Style inference from name-table entries -------------------------------

// inferAttrs derives style, weight and stretch from a face's subfamily name
// (name-table entries like "Bold Italic" or "Condensed Light"). Fonts carry
// this information in the OS/2 table as well, but subfamily tokens are
// universally present and good enough for matching purposes.
func inferAttrs(subfamily string) (Style, Weight, Stretch) {
	style := StyleNormal
	weight := WeightNormal
	stretch := StretchNormal
	for _, token := range strings.Fields(strings.ToLower(subfamily)) {
		switch token {
		case "italic":
			style = StyleItalic
		case "oblique":
			style = StyleOblique
		case "thin", "hairline":
			weight = WeightThin
		case "extralight", "ultralight":
			weight = WeightExtraLight
		case "light":
			weight = WeightLight
		case "regular", "normal", "book":
			// defaults
		case "medium":
			weight = WeightMedium
		case "semibold", "demibold", "demi":
			weight = WeightSemiBold
		case "bold":
			weight = WeightBold
		case "extrabold", "ultrabold":
			weight = WeightExtraBold
		case "black", "heavy":
			weight = WeightBlack
		case "ultracondensed":
			stretch = StretchUltraCondensed
		case "extracondensed":
			stretch = StretchExtraCondensed
		case "condensed", "narrow":
			stretch = StretchCondensed
		case "semicondensed":
			stretch = StretchSemiCondensed
		case "semiexpanded":
			stretch = StretchSemiExpanded
		case "expanded", "extended", "wide":
			stretch = StretchExpanded
		case "extraexpanded":
			stretch = StretchExtraExpanded
		case "ultraexpanded":
			stretch = StretchUltraExpanded
		}
	}
	return style, weight, stretch
}
