package facedb

import (
	"os"
	"path/filepath"
	"runtime"
)

// systemFontDirs maps a platform to the directories scanned by
// LoadSystemFonts. "~" expands to the user's home directory.
var systemFontDirs = map[string][]string{
	"linux": {
		"/usr/share/fonts",
		"/usr/local/share/fonts",
		"~/.local/share/fonts",
		"~/.fonts",
	},
	"darwin": {
		"/System/Library/Fonts",
		"/Library/Fonts",
		"~/Library/Fonts",
	},
	"windows": {
		`C:\Windows\Fonts`,
	},
}

// LoadSystemFonts indexes the fonts installed in the platform's standard
// font directories. Missing directories and unusable files are skipped
// silently; this is a best-effort bulk load. Returns the number of faces
// added.
func (db *Database) LoadSystemFonts() int {
	added := 0
	for _, dir := range systemFontDirs[runtime.GOOS] {
		if home, err := os.UserHomeDir(); err == nil && len(dir) > 0 && dir[0] == '~' {
			dir = filepath.Join(home, dir[1:])
		}
		if info, err := os.Stat(dir); err != nil || !info.IsDir() {
			continue
		}
		added += db.LoadFontsDir(dir)
	}
	return added
}
