/*
Package facedb indexes font faces and answers family/attribute matching
queries.

A Database assigns every indexed face an opaque, stable FaceID. IDs are handed
out in insertion order, are never reused, and stay valid for the lifetime of
the database; loading more fonts may only add new IDs. Clients resolve a query
(family list plus style/weight/stretch) to a FaceID and then fetch metadata or
the raw face bytes by ID.

A Database is not synchronized internally. Callers that share one across
goroutines must guard it, which is what fontsys.FontSystem does with a
reader/writer lock.

______________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package facedb

import (
	"iter"
	"os"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'fontsys.db'
func tracer() tracing.Trace {
	return tracing.Select("fontsys.db")
}

// FaceID identifies one face within a Database. The zero value is never a
// valid ID.
type FaceID uint32

// Source describes where a face's bytes come from: a file on disk or an
// in-memory blob.
type Source struct {
	Path string // file path; empty for in-memory sources
	Data []byte // raw bytes; nil for file sources until first use
}

// FaceInfo is the indexed metadata of one font face.
type FaceInfo struct {
	ID             FaceID
	Families       []string // declared family names, most specific first
	PostScriptName string
	Style          Style
	Weight         Weight
	Stretch        Stretch
	Monospaced     bool
	Index          int // face index within a collection file, 0 for single fonts
	Source         Source
}

// Database indexes font faces and executes matching queries.
type Database struct {
	faces []FaceInfo

	// concrete family names substituted for the generic classes
	serif     string
	sansSerif string
	monospace string
	cursive   string
	fantasy   string
}

// NewDatabase creates an empty font database with default substitutions for
// the generic family classes.
func NewDatabase() *Database {
	return &Database{
		serif:     "DejaVu Serif",
		sansSerif: "Fira Sans",
		monospace: "Fira Mono",
		cursive:   "Comic Sans MS",
		fantasy:   "Impact",
	}
}

// SetSerifFamily sets the concrete family substituted for the generic
// serif class in queries.
func (db *Database) SetSerifFamily(name string) { db.serif = name }

// SetSansSerifFamily sets the substitution for the sans-serif class.
func (db *Database) SetSansSerifFamily(name string) { db.sansSerif = name }

// SetMonospaceFamily sets the substitution for the monospace class.
func (db *Database) SetMonospaceFamily(name string) { db.monospace = name }

// SetCursiveFamily sets the substitution for the cursive class.
func (db *Database) SetCursiveFamily(name string) { db.cursive = name }

// SetFantasyFamily sets the substitution for the fantasy class.
func (db *Database) SetFantasyFamily(name string) { db.fantasy = name }

// Len returns the number of indexed faces.
func (db *Database) Len() int { return len(db.faces) }

// Faces yields the indexed faces in insertion order.
func (db *Database) Faces() iter.Seq[*FaceInfo] {
	return func(yield func(*FaceInfo) bool) {
		for i := range db.faces {
			if !yield(&db.faces[i]) {
				return
			}
		}
	}
}

// Face returns the metadata for a face ID, or nil if the ID is unknown.
func (db *Database) Face(id FaceID) *FaceInfo {
	if id == 0 || int(id) > len(db.faces) {
		return nil
	}
	return &db.faces[id-1]
}

// FaceData returns the raw bytes backing a face together with the face's
// index within those bytes (non-zero for collection files). For file-backed
// sources the bytes are read on first use and retained, so repeated calls
// share one buffer. Returns (nil, 0, false) if the ID is unknown or the file
// cannot be read.
func (db *Database) FaceData(id FaceID) ([]byte, int, bool) {
	face := db.Face(id)
	if face == nil {
		return nil, 0, false
	}
	if face.Source.Data == nil {
		data, err := os.ReadFile(face.Source.Path)
		if err != nil {
			tracer().Errorf("cannot read font file %s: %v", face.Source.Path, err)
			return nil, 0, false
		}
		// retain for all faces sharing this file
		for i := range db.faces {
			if db.faces[i].Source.Path == face.Source.Path {
				db.faces[i].Source.Data = data
			}
		}
	}
	return face.Source.Data, face.Index, true
}
