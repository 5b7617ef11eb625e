package facedb

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/suite"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

// --- Test Suite Preparation ------------------------------------------------

type DatabaseTestEnviron struct {
	suite.Suite
	db *Database
}

// listen for 'go test' command --> run test methods
func TestDatabase(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontsys.db")
	defer teardown()
	suite.Run(t, new(DatabaseTestEnviron))
}

// run once, before test suite methods
func (env *DatabaseTestEnviron) SetupSuite() {
	env.T().Log("Setting up test suite")
	tracing.Select("fontsys.db").SetTraceLevel(tracing.LevelError)
	env.db = NewDatabase()
	env.db.LoadFontData(goregular.TTF)
	env.db.LoadFontData(gobold.TTF)
	env.db.LoadFontData(goitalic.TTF)
	env.db.LoadFontData(gomono.TTF)
	tracing.Select("fontsys.db").SetTraceLevel(tracing.LevelInfo)
}

// --- Tests -----------------------------------------------------------------

func (env *DatabaseTestEnviron) TestDatabaseLen() {
	env.Equal(4, env.db.Len(), "expected all 4 Go fonts to be indexed")
}

func (env *DatabaseTestEnviron) TestFaceIDsAreDense() {
	ids := []FaceID{}
	for face := range env.db.Faces() {
		ids = append(ids, face.ID)
	}
	env.Equal([]FaceID{1, 2, 3, 4}, ids, "expected face IDs in insertion order")
}

func (env *DatabaseTestEnviron) TestRegularMetadata() {
	face := env.db.Face(1)
	env.Require().NotNil(face, "expected face 1 to exist")
	env.Contains(face.Families, "Go", "expected family name 'Go'")
	env.Equal(StyleNormal, face.Style)
	env.Equal(WeightNormal, face.Weight)
	env.Equal(StretchNormal, face.Stretch)
	env.False(face.Monospaced, "Go Regular is proportional")
}

func (env *DatabaseTestEnviron) TestBoldInference() {
	face := env.db.Face(2)
	env.Require().NotNil(face)
	env.Equal(WeightBold, face.Weight, "expected subfamily 'Bold' to map to weight 700")
	env.Equal(StyleNormal, face.Style)
}

func (env *DatabaseTestEnviron) TestItalicInference() {
	face := env.db.Face(3)
	env.Require().NotNil(face)
	env.Equal(StyleItalic, face.Style, "expected subfamily 'Italic' to map to italic")
	env.Equal(WeightNormal, face.Weight)
}

func (env *DatabaseTestEnviron) TestMonospacedFlag() {
	face := env.db.Face(4)
	env.Require().NotNil(face)
	env.True(face.Monospaced, "expected Go Mono to be flagged fixed pitch")
	env.Contains(face.Families, "Go Mono")
}

func (env *DatabaseTestEnviron) TestPostScriptName() {
	face := env.db.Face(1)
	env.Require().NotNil(face)
	env.NotEmpty(face.PostScriptName, "expected a PostScript name entry")
}

func (env *DatabaseTestEnviron) TestInvalidFaceID() {
	env.Nil(env.db.Face(0), "ID 0 is never valid")
	env.Nil(env.db.Face(99), "expected nil for an unknown face ID")
}

func (env *DatabaseTestEnviron) TestFaceData() {
	data, index, ok := env.db.FaceData(1)
	env.Require().True(ok, "expected face data for face 1")
	env.Equal(0, index, "single fonts live at collection index 0")
	env.Equal(goregular.TTF, data, "expected the original bytes back")
}

func (env *DatabaseTestEnviron) TestFaceDataInvalidID() {
	_, _, ok := env.db.FaceData(99)
	env.False(ok, "expected no face data for an unknown ID")
}

func (env *DatabaseTestEnviron) TestLoadFontsDirRecursive() {
	// font directories nest by foundry or format; the walk must descend
	dir := env.T().TempDir()
	nested := filepath.Join(dir, "foundry", "ttf")
	env.Require().NoError(os.MkdirAll(nested, 0o755))
	env.Require().NoError(os.WriteFile(filepath.Join(dir, "top.ttf"), goregular.TTF, 0o644))
	env.Require().NoError(os.WriteFile(filepath.Join(nested, "nested.ttf"), gomono.TTF, 0o644))
	env.Require().NoError(os.WriteFile(filepath.Join(nested, "notes.txt"), []byte("skip me"), 0o644))

	db := NewDatabase()
	env.Equal(2, db.LoadFontsDir(dir), "expected both font files, including the nested one")
	env.Equal(2, db.Len())
}
