package fontsys

import (
	"errors"

	"github.com/npillmayer/fontsys/facedb"
	"golang.org/x/image/font/sfnt"
)

// Font adapts one indexed face into the form the glyph scaler needs: the
// raw bytes backing the face plus the parsed SFNT view. Fonts are created
// lazily through FontSystem.GetFont, cached there, and shared; a Font is
// read-only after construction and safe to hand to multiple rasterization
// passes.
type Font struct {
	id   facedb.FaceID
	data []byte
	sfnt *sfnt.Font
}

var errNoFaceData = errors.New("no face data available")

// newFont constructs the scaler-facing view of a face. Construction fails
// for faces whose bytes cannot be fetched or re-parsed; FontSystem caches
// that failure so it is paid at most once per face.
func newFont(db *facedb.Database, id facedb.FaceID) (*Font, error) {
	data, index, ok := db.FaceData(id)
	if !ok {
		return nil, errNoFaceData
	}
	coll, err := sfnt.ParseCollection(data)
	if err != nil {
		return nil, err
	}
	f, err := coll.Font(index)
	if err != nil {
		return nil, err
	}
	return &Font{id: id, data: data, sfnt: f}, nil
}

// ID returns the face identity this Font was built from.
func (f *Font) ID() facedb.FaceID { return f.id }

// Data returns the raw bytes backing the face. Callers must not modify them.
func (f *Font) Data() []byte { return f.data }

// SFNT returns the parsed view consumed by the scaler.
func (f *Font) SFNT() *sfnt.Font { return f.sfnt }

// GlyphIndex returns the face's glyph index for a code point, 0 (.notdef)
// if the face does not cover it.
func (f *Font) GlyphIndex(r rune) uint16 {
	var buf sfnt.Buffer
	gid, err := f.sfnt.GlyphIndex(&buf, r)
	if err != nil {
		return 0
	}
	return uint16(gid)
}
