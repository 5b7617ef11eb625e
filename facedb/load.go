package facedb

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/font/sfnt"
)

// LoadFontFile parses one font file (TTF, OTF or a TTC/OTC collection) and
// indexes all faces it contains. I/O failure is returned to the caller;
// faces that cannot be parsed are skipped with a trace message.
func (db *Database) LoadFontFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("cannot load font file: %w", err)
	}
	db.indexFaces(data, Source{Path: path})
	return nil
}

// LoadFontData indexes all faces of an in-memory font blob, e.g. an
// embedded font. Unparsable data is skipped with a trace message.
func (db *Database) LoadFontData(data []byte) {
	db.indexFaces(data, Source{Data: data})
}

// LoadFontSource indexes a face source, reading file-backed sources from
// disk.
func (db *Database) LoadFontSource(src Source) error {
	if src.Data != nil {
		db.indexFaces(src.Data, src)
		return nil
	}
	return db.LoadFontFile(src.Path)
}

// LoadFontsDir walks a directory tree and indexes every font file in it;
// font directories commonly nest by foundry or format. Unreadable or
// malformed files are traced and skipped, so one bad file cannot abort the
// batch. Returns the number of faces added.
func (db *Database) LoadFontsDir(dir string) int {
	added := 0
	filepath.WalkDir(dir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			tracer().Errorf("cannot read %s: %v", path, err)
			return nil
		}
		if entry.IsDir() || !acceptFontPath(path) {
			return nil
		}
		before := db.Len()
		if err := db.LoadFontFile(path); err != nil {
			tracer().Errorf("skipping font file %s: %v", path, err)
			return nil
		}
		added += db.Len() - before
		return nil
	})
	return added
}

// acceptFontPath filters directory entries down to the font formats the
// database can parse.
func acceptFontPath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ttf", ".otf", ".ttc", ".otc":
		return true
	}
	return false
}

// indexFaces parses data as a (possibly single-font) collection and appends
// a FaceInfo per parsable face. Returns the number of faces added.
func (db *Database) indexFaces(data []byte, src Source) int {
	coll, err := sfnt.ParseCollection(data)
	if err != nil {
		tracer().Errorf("cannot parse font data: %v", err)
		return 0
	}
	added := 0
	for i := range coll.NumFonts() {
		f, err := coll.Font(i)
		if err != nil {
			tracer().Errorf("cannot parse face %d: %v", i, err)
			continue
		}
		info := describeFace(f)
		info.ID = FaceID(len(db.faces) + 1)
		info.Index = i
		info.Source = src
		db.faces = append(db.faces, info)
		added++
		tracer().Debugf("indexed face %d: %q %s w%d", info.ID, info.Families, info.Style, info.Weight)
	}
	return added
}

// describeFace extracts the metadata the matching algorithm needs from a
// parsed face.
func describeFace(f *sfnt.Font) FaceInfo {
	var buf sfnt.Buffer
	info := FaceInfo{
		Style:   StyleNormal,
		Weight:  WeightNormal,
		Stretch: StretchNormal,
	}
	// Most specific family name first: typographic family, then the legacy
	// family entry. Subfamily tokens carry style/weight/stretch.
	if name, err := f.Name(&buf, sfnt.NameIDTypographicFamily); err == nil && name != "" {
		info.Families = append(info.Families, name)
	}
	if name, err := f.Name(&buf, sfnt.NameIDFamily); err == nil && name != "" {
		if len(info.Families) == 0 || info.Families[0] != name {
			info.Families = append(info.Families, name)
		}
	}
	if name, err := f.Name(&buf, sfnt.NameIDPostScript); err == nil {
		info.PostScriptName = name
	}
	subfamily := ""
	if name, err := f.Name(&buf, sfnt.NameIDTypographicSubfamily); err == nil && name != "" {
		subfamily = name
	} else if name, err := f.Name(&buf, sfnt.NameIDSubfamily); err == nil {
		subfamily = name
	}
	info.Style, info.Weight, info.Stretch = inferAttrs(subfamily)
	if post := f.PostTable(); post != nil {
		info.Monospaced = post.IsFixedPitch
	}
	return info
}
