package fixed

// Int8_8 narrows x to 8.8 fixed-point. Reports false if x is out of range,
// the returned value is then the bit pattern truncated to 16 bits. Use a
// plain conversion if wrapping is the intended behavior.
func (x Int24_8) Int8_8() (Int8_8, bool) {
	v := Int8_8(x)
	return v, Int24_8(v) == x
}

// Int24_8 widens x to 24.8 fixed-point, which is always exact.
func (x Int8_8) Int24_8() Int24_8 { return Int24_8(x) }

// UInt0_16 reinterprets x as a fraction of a full revolution. Whole
// revolutions are discarded and negative angles wrap around.
func (x Int24_8) UInt0_16() UInt0_16 { return UInt0_16(uint32(x) << 8) }

// Int24_8 returns the angle as a 24.8 fixed-point fraction of a revolution.
// Resolution below 1/256th of a revolution is discarded.
func (x UInt0_16) Int24_8() Int24_8 { return Int24_8(x >> 8) }
