package pixel

import "testing"

func TestPack(t *testing.T) {
	tests := []struct {
		name       string
		a, r, g, b uint8
		want       uint32
	}{
		{"opaque mid-gray", 0xff, 0x80, 0x80, 0x80, 0xff808080},
		{"half-transparent white", 0x80, 0xff, 0xff, 0xff, 0x80ffffff},
		{"transparent black", 0x00, 0x00, 0x00, 0x00, 0x00000000},
		{"opaque white", 0xff, 0xff, 0xff, 0xff, 0xffffffff},
	}
	for _, test := range tests {
		t.Run(test.name, func(it *testing.T) {
			if v := Pack(test.a, test.r, test.g, test.b); v != test.want {
				it.Errorf("expected 0x%08x, got 0x%08x", test.want, v)
			}
		})
	}
}

func TestPremultiply(t *testing.T) {
	tests := []struct {
		name       string
		a, r, g, b uint8
		want       uint32
	}{
		{"half-transparent white", 0x80, 0xff, 0xff, 0xff, 0x80808080},
		{"opaque keeps channels", 0xff, 0x12, 0x34, 0x56, 0xff123456},
		{"fully transparent drops channels", 0x00, 0xff, 0xff, 0xff, 0x00000000},
		{"quarter alpha", 0x40, 0xff, 0x80, 0x00, 0x40402000},
	}
	for _, test := range tests {
		t.Run(test.name, func(it *testing.T) {
			if v := Premultiply(test.a, test.r, test.g, test.b); v != test.want {
				it.Errorf("expected 0x%08x, got 0x%08x", test.want, v)
			}
		})
	}
}

func TestChannels(t *testing.T) {
	a, r, g, b := Channels(0x80ffffff)
	if a != 0x80 || r != 0xff || g != 0xff || b != 0xff {
		t.Errorf("expected (80 ff ff ff), got (%02x %02x %02x %02x)", a, r, g, b)
	}

	if v := Pack(Channels(0xff808080)); v != 0xff808080 {
		t.Errorf("expected 0xff808080, got 0x%08x", v)
	}
}
