package fontsys

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestSubpixelBinQuantization(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontsys")
	defer teardown()
	cases := []struct {
		pos     float32
		wantInt int32
		wantBin SubpixelBin
	}{
		{0.0, 0, BinZero},
		{0.1, 0, BinZero},
		{0.2, 0, BinQuarter},
		{0.3, 0, BinQuarter},
		{0.5, 0, BinHalf},
		{0.7, 0, BinThreeQuarters},
		{0.95, 1, BinZero},
		{1.3, 1, BinQuarter},
		{-0.3, -1, BinThreeQuarters},
		{-1.1, -1, BinZero},
		{-0.95, -1, BinZero},
	}
	for _, c := range cases {
		gotInt, gotBin := NewSubpixelBin(c.pos)
		if gotInt != c.wantInt || gotBin != c.wantBin {
			t.Errorf("NewSubpixelBin(%v) = (%d, %d), want (%d, %d)",
				c.pos, gotInt, gotBin, c.wantInt, c.wantBin)
		}
	}
}

func TestSubpixelBinOffsets(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontsys")
	defer teardown()
	offsets := map[SubpixelBin]float32{
		BinZero:          0,
		BinQuarter:       0.25,
		BinHalf:          0.5,
		BinThreeQuarters: 0.75,
	}
	for bin, want := range offsets {
		if got := bin.Offset(); got != want {
			t.Errorf("bin %d offset = %v, want %v", bin, got, want)
		}
	}
}

func TestCacheKeySharesBin(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontsys")
	defer teardown()
	// offsets within the same quantization bin must share one cache entry
	a, _, _ := NewCacheKey(1, 42, 14, 0.26, 0.0, 0)
	b, _, _ := NewCacheKey(1, 42, 14, 0.30, 0.0, 0)
	if a != b {
		t.Errorf("expected keys in the same bin to be equal: %v vs %v", a, b)
	}
	c, _, _ := NewCacheKey(1, 42, 14, 0.60, 0.0, 0)
	if a == c {
		t.Error("expected keys in different bins to differ")
	}
}

func TestCacheKeySplitsIntegerPosition(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontsys")
	defer teardown()
	key, xInt, yInt := NewCacheKey(1, 42, 14, 5.3, -2.6, 0)
	if xInt != 5 || yInt != -3 {
		t.Errorf("expected integer positions (5, -3), got (%d, %d)", xInt, yInt)
	}
	if key.XBin != BinQuarter {
		t.Errorf("expected x bin quarter, got %d", key.XBin)
	}
	if key.YBin != BinHalf {
		t.Errorf("expected y bin half for fract 0.4, got %d", key.YBin)
	}
	if key.Size() != 14 {
		t.Errorf("expected size 14, got %v", key.Size())
	}
}
