package pixel

import "encoding/binary"

// FillChessboard tiles a 32-bit pixel buffer with a two-color
// chessboard. The color of a pixel depends only on the parity of
// (x/tile + y/tile): even tiles get the even color, odd tiles the odd
// color. Rows are addressed by stride, alignment padding at the end of
// each row is left untouched. Pixel words are stored little-endian,
// which is the byte order fourcc formats are defined in.
func FillChessboard(pix []byte, w, h, stride, tile int, even, odd uint32) {
	for y := 0; y < h; y++ {
		row := pix[y*stride:]
		for x := 0; x < w; x++ {
			c := even
			if (x/tile+y/tile)%2 == 1 {
				c = odd
			}
			binary.LittleEndian.PutUint32(row[x*4:], c)
		}
	}
}
