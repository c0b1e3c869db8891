package affine

import (
	"encoding/binary"

	"github.com/xokz/agb/debug"
	"github.com/xokz/agb/fixed"
)

// Encoded size of the hardware parameter blocks in bytes.
const (
	BackgroundLen = 16
	ObjectLen     = 8
)

// Encode writes the parameter block to dst in the exact layout the
// background hardware reads: a, b, c, d as 2 byte 8.8 fixed-point at offsets
// 0, 2, 4 and 6, followed by x and y as 4 byte 24.8 fixed-point at offsets
// 8 and 12. Little-endian, no padding.
func (b Background) Encode(dst []byte) {
	debug.Assert(len(dst) >= BackgroundLen, "affine: dst too short")
	binary.LittleEndian.PutUint16(dst[0:2], uint16(b.A))
	binary.LittleEndian.PutUint16(dst[2:4], uint16(b.B))
	binary.LittleEndian.PutUint16(dst[4:6], uint16(b.C))
	binary.LittleEndian.PutUint16(dst[6:8], uint16(b.D))
	binary.LittleEndian.PutUint32(dst[8:12], uint32(b.X))
	binary.LittleEndian.PutUint32(dst[12:16], uint32(b.Y))
}

// DecodeBackground reads a parameter block in the layout written by Encode.
func DecodeBackground(src []byte) Background {
	debug.Assert(len(src) >= BackgroundLen, "affine: src too short")
	return Background{
		A: fixed.Int8_8(binary.LittleEndian.Uint16(src[0:2])),
		B: fixed.Int8_8(binary.LittleEndian.Uint16(src[2:4])),
		C: fixed.Int8_8(binary.LittleEndian.Uint16(src[4:6])),
		D: fixed.Int8_8(binary.LittleEndian.Uint16(src[6:8])),
		X: fixed.Int24_8(binary.LittleEndian.Uint32(src[8:12])),
		Y: fixed.Int24_8(binary.LittleEndian.Uint32(src[12:16])),
	}
}

// Encode writes the parameter set to dst in the exact layout the object
// hardware reads: a, b, c, d as 2 byte 8.8 fixed-point at offsets 0, 2, 4
// and 6. Little-endian, no padding.
func (o Object) Encode(dst []byte) {
	debug.Assert(len(dst) >= ObjectLen, "affine: dst too short")
	binary.LittleEndian.PutUint16(dst[0:2], uint16(o.A))
	binary.LittleEndian.PutUint16(dst[2:4], uint16(o.B))
	binary.LittleEndian.PutUint16(dst[4:6], uint16(o.C))
	binary.LittleEndian.PutUint16(dst[6:8], uint16(o.D))
}

// DecodeObject reads a parameter set in the layout written by Encode.
func DecodeObject(src []byte) Object {
	debug.Assert(len(src) >= ObjectLen, "affine: src too short")
	return Object{
		A: fixed.Int8_8(binary.LittleEndian.Uint16(src[0:2])),
		B: fixed.Int8_8(binary.LittleEndian.Uint16(src[2:4])),
		C: fixed.Int8_8(binary.LittleEndian.Uint16(src[4:6])),
		D: fixed.Int8_8(binary.LittleEndian.Uint16(src[6:8])),
	}
}
