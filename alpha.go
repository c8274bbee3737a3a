package dpalpha

import "github.com/onotole/zynqmp-dp-alpha/pixel"

// AlphaMode selects the alpha convention the test pattern encodes its
// half-transparent pixels in.
type AlphaMode uint8

// Supported alpha conventions.
const (
	StraightAlpha AlphaMode = iota
	PremultipliedAlpha
)

func (m AlphaMode) String() string {
	switch m {
	case PremultipliedAlpha:
		return "premultiplied"
	default:
		return "straight"
	}
}

// The chessboard uses 64x64 pixel tiles: half-transparent white in the
// active convention against opaque mid-gray. A correct compositor
// blends the white tiles over a black background into the same mid-gray
// as the opaque tiles, so the board vanishes.
const tileSize = 64

var darkTile = pixel.Pack(0xff, 0x80, 0x80, 0x80)

func lightTile(m AlphaMode) uint32 {
	if m == PremultipliedAlpha {
		return pixel.Premultiply(0x80, 0xff, 0xff, 0xff)
	}
	return pixel.Pack(0x80, 0xff, 0xff, 0xff)
}
