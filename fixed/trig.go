package fixed

// Cosine of the first quarter revolution in 1/256th steps, scaled by 1<<8.
// Both endpoints are included so the quadrant boundaries are exact.
var costab = [65]Int24_8{
	256, 256, 256, 255, 255, 254, 253, 252, 251, 250,
	248, 247, 245, 243, 241, 239, 237, 234, 231, 229,
	226, 223, 220, 216, 213, 209, 206, 202, 198, 194,
	190, 185, 181, 177, 172, 167, 162, 157, 152, 147,
	142, 137, 132, 126, 121, 115, 109, 104, 98, 92,
	86, 80, 74, 68, 62, 56, 50, 44, 38, 31,
	25, 19, 13, 6, 0,
}

// Cos returns the cosine of x, where x is a fraction of a full revolution.
// Exact at the quadrant boundaries.
func (x Int24_8) Cos() Int24_8 {
	i := int(uint8(x)) // wrap to one revolution, 256 steps
	if i > 128 {
		i = 256 - i
	}
	if i > 64 {
		return -costab[128-i]
	}
	return costab[i]
}

// Sin returns the sine of x, where x is a fraction of a full revolution.
func (x Int24_8) Sin() Int24_8 { return (x - 64).Cos() }
