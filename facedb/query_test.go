package facedb

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

func queryTestDB() *Database {
	db := NewDatabase()
	db.LoadFontData(goregular.TTF) // ID 1
	db.LoadFontData(gobold.TTF)    // ID 2
	db.LoadFontData(goitalic.TTF)  // ID 3
	db.LoadFontData(gomono.TTF)    // ID 4
	return db
}

func TestQueryByFamilyName(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontsys.db")
	defer teardown()
	db := queryTestDB()
	id, ok := db.Query(Query{
		Families: []Family{FamilyName("Go")},
		Style:    StyleNormal,
		Weight:   WeightNormal,
		Stretch:  StretchNormal,
	})
	if !ok {
		t.Fatal("expected a match for family 'Go'")
	}
	if id != 1 {
		t.Errorf("expected Go Regular (face 1), got face %d", id)
	}
}

func TestQueryBoldWeight(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontsys.db")
	defer teardown()
	db := queryTestDB()
	id, ok := db.Query(Query{
		Families: []Family{FamilyName("Go")},
		Style:    StyleNormal,
		Weight:   WeightBold,
		Stretch:  StretchNormal,
	})
	if !ok || id != 2 {
		t.Errorf("expected Go Bold (face 2), got face %d (ok=%v)", id, ok)
	}
}

func TestQueryItalicStyle(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontsys.db")
	defer teardown()
	db := queryTestDB()
	id, ok := db.Query(Query{
		Families: []Family{FamilyName("Go")},
		Style:    StyleItalic,
		Weight:   WeightNormal,
		Stretch:  StretchNormal,
	})
	if !ok || id != 3 {
		t.Errorf("expected Go Italic (face 3), got face %d (ok=%v)", id, ok)
	}
}

func TestQueryObliqueSubstitutesItalic(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontsys.db")
	defer teardown()
	db := queryTestDB()
	id, ok := db.Query(Query{
		Families: []Family{FamilyName("Go")},
		Style:    StyleOblique,
		Weight:   WeightNormal,
		Stretch:  StretchNormal,
	})
	if !ok || id != 3 {
		t.Errorf("expected italic face to substitute for oblique, got face %d (ok=%v)", id, ok)
	}
}

func TestQueryGenericMonospace(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontsys.db")
	defer teardown()
	db := queryTestDB()
	db.SetMonospaceFamily("Go Mono")
	id, ok := db.Query(Query{
		Families: []Family{Monospace},
		Style:    StyleNormal,
		Weight:   WeightNormal,
		Stretch:  StretchNormal,
	})
	if !ok || id != 4 {
		t.Errorf("expected generic monospace to resolve to Go Mono (face 4), got face %d (ok=%v)", id, ok)
	}
}

func TestQueryFamilyListOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontsys.db")
	defer teardown()
	db := queryTestDB()
	id, ok := db.Query(Query{
		Families: []Family{FamilyName("No Such Family"), FamilyName("Go Mono")},
		Style:    StyleNormal,
		Weight:   WeightNormal,
		Stretch:  StretchNormal,
	})
	if !ok || id != 4 {
		t.Errorf("expected fallback to second family in the list, got face %d (ok=%v)", id, ok)
	}
}

func TestQueryNoMatch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontsys.db")
	defer teardown()
	db := queryTestDB()
	if id, ok := db.Query(Query{Families: []Family{FamilyName("No Such Family")}}); ok {
		t.Errorf("expected no match, got face %d", id)
	}
}

func TestFamilyKeyDistinguishesClassFromName(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontsys.db")
	defer teardown()
	if Monospace.Key() == FamilyName("monospace").Key() {
		t.Error("expected the generic class and the literal name to encode differently")
	}
	if Monospace.String() != FamilyName("monospace").String() {
		t.Error("expected identical display strings nonetheless")
	}
	if FamilyName("Go").Key() != FamilyName("Go").Key() {
		t.Error("expected equal families to share one key")
	}
}
