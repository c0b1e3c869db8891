package tiles

import (
	"encoding/binary"
	"image/color"

	"github.com/xokz/agb/debug"
)

// Color is a 15 bit color as stored in palette RAM, 5 bits per channel with
// blue in the most significant bits.
type Color uint16

// NewColor returns the closest 15 bit representation of c.
func NewColor(c color.Color) Color {
	r, g, b, _ := c.RGBA()
	return Color(r>>11 | g>>11<<5 | b>>11<<10)
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return expand5(uint32(c)), expand5(uint32(c) >> 5), expand5(uint32(c) >> 10), 0xffff
}

func expand5(v uint32) uint32 {
	v &= 0x1f
	v = v<<3 | v>>2
	return v | v<<8
}

// Palette is a sequence of colors as stored in palette RAM.
type Palette []Color

// Encode writes the palette to dst, 2 bytes per color, little-endian.
func (p Palette) Encode(dst []byte) {
	debug.Assert(len(dst) >= 2*len(p), "tiles: dst too short")
	for i, c := range p {
		binary.LittleEndian.PutUint16(dst[2*i:], uint16(c))
	}
}
