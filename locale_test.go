package fontsys

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestNormalizeLocale(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontsys")
	defer teardown()
	cases := []struct {
		raw  string
		want string
		ok   bool
	}{
		{"de_DE.UTF-8", "de-DE", true},
		{"en_US", "en-US", true},
		{"fr_FR@euro", "fr-FR", true},
		{"ja_JP.eucJP", "ja-JP", true},
		{"en-US", "en-US", true},
		{"C", "", false},
		{"C.UTF-8", "", false},
		{"POSIX", "", false},
		{"", "", false},
		{"!!garbage!!", "", false},
	}
	for _, c := range cases {
		got, ok := normalizeLocale(c.raw)
		if ok != c.ok || got != c.want {
			t.Errorf("normalizeLocale(%q) = %q, %v; want %q, %v",
				c.raw, got, ok, c.want, c.ok)
		}
	}
}

func TestDetectLocaleFromEnv(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontsys")
	defer teardown()
	t.Setenv("LC_ALL", "fr_FR.UTF-8")
	t.Setenv("LC_MESSAGES", "de_DE.UTF-8")
	t.Setenv("LANG", "it_IT.UTF-8")
	if l := detectLocale(); l != "fr-FR" {
		t.Errorf("expected LC_ALL to take priority, got %q", l)
	}
}

func TestDetectLocalePriorityOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontsys")
	defer teardown()
	t.Setenv("LC_ALL", "")
	t.Setenv("LC_MESSAGES", "de_DE.UTF-8")
	t.Setenv("LANG", "it_IT.UTF-8")
	if l := detectLocale(); l != "de-DE" {
		t.Errorf("expected LC_MESSAGES as second choice, got %q", l)
	}
}

func TestDetectLocaleFallback(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontsys")
	defer teardown()
	t.Setenv("LC_ALL", "")
	t.Setenv("LC_MESSAGES", "C")
	t.Setenv("LANG", "")
	if l := detectLocale(); l != "en-US" {
		t.Errorf("expected fallback en-US, got %q", l)
	}
}
