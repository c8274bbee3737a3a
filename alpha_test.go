package dpalpha

import "testing"

func TestAlphaModeString(t *testing.T) {
	tests := []struct {
		mode AlphaMode
		want string
	}{
		{StraightAlpha, "straight"},
		{PremultipliedAlpha, "premultiplied"},
	}
	for _, test := range tests {
		if v := test.mode.String(); v != test.want {
			t.Errorf("expected %q, got %q", test.want, v)
		}
	}
}

func TestTileValues(t *testing.T) {
	if v := lightTile(StraightAlpha); v != 0x80ffffff {
		t.Errorf("expected straight light tile 0x80ffffff, got 0x%08x", v)
	}
	if v := lightTile(PremultipliedAlpha); v != 0x80808080 {
		t.Errorf("expected premultiplied light tile 0x80808080, got 0x%08x", v)
	}
	if darkTile != 0xff808080 {
		t.Errorf("expected dark tile 0xff808080, got 0x%08x", darkTile)
	}
}
