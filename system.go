package fontsys

import (
	"sync"
	"time"

	"github.com/npillmayer/fontsys/facedb"
)

// dbQuery is the database's matching entry point; a variable so tests can
// count invocations.
var dbQuery = (*facedb.Database).Query

// FontSystem gives memoized, concurrency-safe access to a font database:
// it resolves family/attribute queries to face identities and constructs
// Font objects on demand, caching every answer, including the negative
// ones, so a face that failed to parse or a query without a match is not
// retried on every call.
//
// Construction enumerates and parses fonts and can take a noticeable amount
// of time; create one FontSystem at startup and share it.
type FontSystem struct {
	locale string

	dbMu sync.RWMutex
	db   *facedb.Database

	fontMu sync.RWMutex
	fonts  map[facedb.FaceID]*Font // nil value = construction failed

	queryMu sync.RWMutex
	queries map[fontAttrs]facedb.FaceID // 0 = no match

	monoMu sync.RWMutex
	mono   map[styleKey]facedb.FaceID // 0 = no match
}

// New creates a FontSystem over the installed system fonts, with the
// detected system locale.
func New() *FontSystem {
	return NewWithFonts()
}

// NewWithFonts creates a FontSystem over the installed system fonts plus
// the given additional face sources.
func NewWithFonts(fonts ...facedb.Source) *FontSystem {
	locale := detectLocale()
	tracer().Debugf("locale: %s", locale)

	db := facedb.NewDatabase()
	start := time.Now()
	db.LoadSystemFonts()
	for _, src := range fonts {
		if err := db.LoadFontSource(src); err != nil {
			tracer().Errorf("cannot load font source: %v", err)
		}
	}
	tracer().Infof("parsed %d font faces in %dms", db.Len(), time.Since(start).Milliseconds())

	return NewWithLocaleAndDB(locale, db)
}

// NewWithLocaleAndDB creates a FontSystem with a caller-supplied locale and
// font database. The FontSystem takes sole ownership of the database.
func NewWithLocaleAndDB(locale string, db *facedb.Database) *FontSystem {
	return &FontSystem{
		locale:  locale,
		db:      db,
		fonts:   make(map[facedb.FaceID]*Font),
		queries: make(map[fontAttrs]facedb.FaceID),
		mono:    make(map[styleKey]facedb.FaceID),
	}
}

// Locale returns the system locale detected at construction, or the locale
// the FontSystem was created with.
func (fs *FontSystem) Locale() string {
	return fs.locale
}

// LoadFontFile parses and indexes one font file. Loads mutate the database
// and therefore serialize against concurrent lookups that miss their cache.
func (fs *FontSystem) LoadFontFile(path string) error {
	fs.dbMu.Lock()
	defer fs.dbMu.Unlock()
	return fs.db.LoadFontFile(path)
}

// LoadFontsDir indexes all font files of a directory, best effort: failures
// on individual files are traced and skipped.
func (fs *FontSystem) LoadFontsDir(path string) {
	fs.dbMu.Lock()
	defer fs.dbMu.Unlock()
	n := fs.db.LoadFontsDir(path)
	tracer().Debugf("loaded %d faces from %s", n, path)
}

// LoadFontData indexes an in-memory font blob, e.g. an embedded font.
func (fs *FontSystem) LoadFontData(data []byte) {
	fs.dbMu.Lock()
	defer fs.dbMu.Unlock()
	fs.db.LoadFontData(data)
}

// DB exposes the underlying font database for direct read access. The
// database is not synchronized internally; callers holding the returned
// pointer must not use it concurrently with the FontSystem's load
// operations, which mutate the database under its write lock.
func (fs *FontSystem) DB() *facedb.Database {
	return fs.db
}

// Len returns the number of indexed font faces.
func (fs *FontSystem) Len() int {
	fs.dbMu.RLock()
	defer fs.dbMu.RUnlock()
	return fs.db.Len()
}

// GetFont returns the shared Font object for a face, constructing and
// caching it on first use. Returns nil if the ID is unknown or the face
// data is unusable; that outcome is cached too, so the failing construction
// runs at most once per face.
func (fs *FontSystem) GetFont(id facedb.FaceID) *Font {
	fs.fontMu.RLock()
	f, ok := fs.fonts[id]
	fs.fontMu.RUnlock()
	if ok {
		return f
	}

	// Construct outside the cache lock. Two goroutines may race here and
	// both do the work; the first insert wins, which is a valid answer
	// either way.
	fs.dbMu.Lock()
	font, err := newFont(fs.db, id)
	fs.dbMu.Unlock()
	if err != nil {
		tracer().Errorf("cannot use face %d: %v", id, err)
		font = nil
	}

	fs.fontMu.Lock()
	if prev, ok := fs.fonts[id]; ok {
		font = prev
	} else {
		fs.fonts[id] = font
	}
	fs.fontMu.Unlock()
	return font
}

// Query resolves an ordered family list plus style attributes to the best
// matching face. The result, a hit or a definitive miss, is memoized on
// the exact (families, attrs) key. Substitution and fallback policy is the
// database's; loading more fonts later does not invalidate earlier answers.
func (fs *FontSystem) Query(families []Family, attrs Attrs) (facedb.FaceID, bool) {
	key := queryKey(families, attrs)
	fs.queryMu.RLock()
	id, ok := fs.queries[key]
	fs.queryMu.RUnlock()
	if ok {
		return id, id != 0
	}

	fs.dbMu.RLock()
	id, _ = dbQuery(fs.db, facedb.Query{
		Families: families,
		Style:    attrs.Style,
		Weight:   attrs.Weight,
		Stretch:  attrs.Stretch,
	})
	fs.dbMu.RUnlock()

	fs.queryMu.Lock()
	if prev, ok := fs.queries[key]; ok {
		id = prev
	} else {
		fs.queries[key] = id
	}
	fs.queryMu.Unlock()
	return id, id != 0
}

// QueryMonospace finds a monospaced face matching style, weight and stretch
// exactly, without naming a family. The database offers no monospace query
// primitive, so the first occurrence of a (style, weight, stretch) triple
// scans all indexed faces linearly; the answer is memoized, and the first
// matching face in enumeration order wins.
func (fs *FontSystem) QueryMonospace(attrs Attrs) (facedb.FaceID, bool) {
	key := styleKey{style: attrs.Style, weight: attrs.Weight, stretch: attrs.Stretch}
	fs.monoMu.RLock()
	id, ok := fs.mono[key]
	fs.monoMu.RUnlock()
	if ok {
		return id, id != 0
	}

	var found facedb.FaceID
	fs.dbMu.RLock()
	for face := range fs.db.Faces() {
		if face.Monospaced && face.Style == attrs.Style &&
			face.Weight == attrs.Weight && face.Stretch == attrs.Stretch {
			found = face.ID
			break
		}
	}
	fs.dbMu.RUnlock()

	fs.monoMu.Lock()
	if prev, ok := fs.mono[key]; ok {
		found = prev
	} else {
		fs.mono[key] = found
	}
	fs.monoMu.Unlock()
	return found, found != 0
}

// FaceName returns the first declared family name of a face, falling back
// to its PostScript name, or "invalid font id" for an unknown ID. It never
// fails.
func (fs *FontSystem) FaceName(id facedb.FaceID) string {
	fs.dbMu.RLock()
	defer fs.dbMu.RUnlock()
	face := fs.db.Face(id)
	if face == nil {
		tracer().Infof("face name requested for unknown face %d", id)
		return "invalid font id"
	}
	if len(face.Families) > 0 {
		return face.Families[0]
	}
	return face.PostScriptName
}

// EachFace calls fn for every indexed face, under the database read lock.
// fn must not call back into the FontSystem's load operations.
func (fs *FontSystem) EachFace(fn func(*facedb.FaceInfo)) {
	fs.dbMu.RLock()
	defer fs.dbMu.RUnlock()
	for face := range fs.db.Faces() {
		fn(face)
	}
}
