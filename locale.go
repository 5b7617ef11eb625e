package fontsys

import (
	"os"
	"strings"

	"golang.org/x/text/language"
)

const defaultLocale = "en-US"

// detectLocale reads the current locale from the usual environment
// variables and canonicalizes it to a BCP 47 tag. Detection failure is not
// an error: the fallback is en-US, with a trace message.
func detectLocale() string {
	for _, envvar := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if tag, ok := normalizeLocale(os.Getenv(envvar)); ok {
			return tag
		}
	}
	tracer().Infof("cannot detect system locale, falling back to %s", defaultLocale)
	return defaultLocale
}

// normalizeLocale turns a POSIX locale string like "de_DE.UTF-8" into a
// BCP 47 tag like "de-DE".
func normalizeLocale(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if i := strings.IndexAny(raw, ".@"); i >= 0 {
		raw = raw[:i]
	}
	if raw == "" || raw == "C" || raw == "POSIX" {
		return "", false
	}
	tag, err := language.Parse(strings.ReplaceAll(raw, "_", "-"))
	if err != nil {
		return "", false
	}
	return tag.String(), true
}
