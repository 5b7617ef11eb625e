package facedb

import "strings"

// Query describes the face a client is looking for: an ordered list of
// acceptable families plus the requested style attributes.
type Query struct {
	Families []Family
	Style    Style
	Weight   Weight
	Stretch  Stretch
}

// Query returns the best matching face for q, or (0, false) if no indexed
// face matches any of the requested families.
//
// Families are tried in order; the first family with at least one matching
// face decides the candidate set. Within the candidate set the best face
// minimizes, in this order: stretch distance, style distance (exact match
// before italic/oblique substitution before slant mismatch), weight
// distance. Remaining ties resolve to the face indexed first.
func (db *Database) Query(q Query) (FaceID, bool) {
	for _, family := range q.Families {
		name := db.substitute(family)
		if name == "" {
			continue
		}
		if id, ok := db.matchFamily(name, q); ok {
			return id, true
		}
	}
	return 0, false
}

// substitute resolves a generic family class to its configured concrete name.
func (db *Database) substitute(f Family) string {
	switch f.class {
	case classSerif:
		return db.serif
	case classSansSerif:
		return db.sansSerif
	case classMonospace:
		return db.monospace
	case classCursive:
		return db.cursive
	case classFantasy:
		return db.fantasy
	}
	return f.name
}

func (db *Database) matchFamily(name string, q Query) (FaceID, bool) {
	var best FaceID
	bestScore := ^uint32(0)
	for i := range db.faces {
		face := &db.faces[i]
		if !face.hasFamily(name) {
			continue
		}
		if score := matchScore(face, q); score < bestScore {
			bestScore = score
			best = face.ID
		}
	}
	return best, best != 0
}

func (face *FaceInfo) hasFamily(name string) bool {
	for _, declared := range face.Families {
		if strings.EqualFold(declared, name) {
			return true
		}
	}
	return false
}

// matchScore ranks a candidate face against the requested attributes.
// Lower is better. Stretch dominates, then style, then weight, mirroring
// the CSS font matching order.
func matchScore(face *FaceInfo, q Query) uint32 {
	stretchDist := absDiff(uint32(face.Stretch), uint32(q.Stretch))
	styleDist := styleDistance(face.Style, q.Style)
	weightDist := absDiff(uint32(face.Weight), uint32(q.Weight))
	return stretchDist<<24 | styleDist<<16 | weightDist
}

func styleDistance(have, want Style) uint32 {
	if have == want {
		return 0
	}
	// italic and oblique substitute for each other before upright fonts do
	if have != StyleNormal && want != StyleNormal {
		return 1
	}
	return 2
}

func absDiff(a, b uint32) uint32 {
	if a > b {
		return a - b
	}
	return b - a
}
