// Package pixel implements ARGB8888 pixel packing and buffer fills.
package pixel

// Pack returns the ARGB8888 word for the given channels.
func Pack(a, r, g, b uint8) uint32 {
	return uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

// Premultiply returns the ARGB8888 word with the color channels scaled
// by the alpha channel.
func Premultiply(a, r, g, b uint8) uint32 {
	return Pack(a, scale(r, a), scale(g, a), scale(b, a))
}

func scale(c, a uint8) uint8 {
	return uint8(uint16(c) * uint16(a) / 0xff)
}

// Channels splits an ARGB8888 word into its channels.
func Channels(p uint32) (a, r, g, b uint8) {
	return uint8(p >> 24), uint8(p >> 16), uint8(p >> 8), uint8(p)
}
