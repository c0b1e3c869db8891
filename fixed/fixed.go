// Package fixed provides fixed-point arithmetic types used by the GBA's video
// hardware and BIOS calls.
package fixed

//go:generate go run mkfixed.go Int24_8 int32
type Int24_8 int32

//go:generate go run mkfixed.go Int8_8 int16
type Int8_8 int16

// UInt0_16 is an angle given as a fraction of a full revolution, i.e. 0x8000
// is half a turn. This is the angle format of the BIOS affine calls.
type UInt0_16 uint16

type Point24_8 = Point[Int24_8]
type Point8_8 = Point[Int8_8]
