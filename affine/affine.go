// Package affine implements the affine transformation matrices consumed by
// the GBA's background and object hardware.
//
// An affine matrix represents an affine transformation, one which preserves
// parallel lines. It therefore cannot represent perspective. The hardware
// does texture mapping with it: the matrix transforms a point in screen
// space into graphics space, which is the inverse direction of how placing
// an object on screen is usually thought of. This explains the sign and
// reciprocal conventions documented on the constructors below.
//
// The matrix C = A.Mul(B) represents the transformation B followed by the
// transformation A. Multiplication is not commutative, swapping the order
// changes the result.
package affine

import (
	"fmt"

	"github.com/xokz/agb/fixed"
)

const one fixed.Int24_8 = 1 << 8

// Matrix is an affine matrix in the full working precision, used for all
// in-memory algebra. The zero value is not the identity, use Identity.
type Matrix struct {
	A, B, C, D fixed.Int24_8
	X, Y       fixed.Int24_8
}

// Identity returns the identity matrix I with A = D = 1. For any matrix M,
// M == M.Mul(I) == I.Mul(M).
func Identity() Matrix {
	return Matrix{A: one, D: one}
}

// FromRotation returns the matrix rotating by angle, given as a 24.8
// fixed-point fraction of a full revolution. Whole revolutions are
// discarded.
//
// The signs might look backwards, but the hardware transforms screen
// coordinates into graphics space rather than the conventional direction,
// so no inversion takes place here.
func FromRotation(angle fixed.Int24_8) Matrix {
	cos, sin := angle.Cos(), angle.Sin()
	return Matrix{A: cos, B: -sin, C: sin, D: cos}
}

// FromTranslation returns the matrix translating by position. The offset is
// stored negated because it offsets the screen to graphics space transform.
func FromTranslation(position fixed.Point24_8) Matrix {
	m := Identity()
	m.X, m.Y = -position.X, -position.Y
	return m
}

// FromScale returns the matrix with the diagonal set to scale. Since the
// matrix maps screen space to graphics space, the visible effect is scaling
// by the reciprocal: (2, 2) samples the source at twice the rate and shows
// it at half size. Pass 1/k to magnify by k.
func FromScale(scale fixed.Point24_8) Matrix {
	return Matrix{A: scale.X, D: scale.Y}
}

// Position returns the on-screen reference point of the translation, i.e.
// the negation of the stored offset.
func (m Matrix) Position() fixed.Point24_8 {
	return fixed.Point24_8{X: -m.X, Y: -m.Y}
}

// Mul returns the composition of m and n, the transformation n followed by
// the transformation m.
func (m Matrix) Mul(n Matrix) Matrix {
	return Matrix{
		A: m.A.Mul(n.A) + m.B.Mul(n.C),
		B: m.A.Mul(n.B) + m.B.Mul(n.D),
		C: m.C.Mul(n.A) + m.D.Mul(n.C),
		D: m.C.Mul(n.B) + m.D.Mul(n.D),
		X: m.A.Mul(n.X) + m.B.Mul(n.Y) + m.X,
		Y: m.C.Mul(n.X) + m.D.Mul(n.Y) + m.Y,
	}
}

// MulAssign sets m to m.Mul(n).
func (m *Matrix) MulAssign(n Matrix) { *m = m.Mul(n) }

// Apply transforms the screen space point p into graphics space.
func (m Matrix) Apply(p fixed.Point24_8) fixed.Point24_8 {
	return fixed.Point24_8{
		X: m.A.Mul(p.X) + m.B.Mul(p.Y) + m.X,
		Y: m.C.Mul(p.X) + m.D.Mul(p.Y) + m.Y,
	}
}

// OverflowError is returned when a value cannot be represented in the
// destination's 8.8 fixed-point range.
type OverflowError struct {
	Value fixed.Int24_8
}

func (e OverflowError) Error() string {
	return fmt.Sprintf("affine: value %v overflows 8.8 fixed-point", e.Value)
}

// Background holds the affine parameters of a background layer. The linear
// part is narrowed to the 8.8 fixed-point the hardware reads, the
// translation keeps the full working precision.
type Background struct {
	A, B, C, D fixed.Int8_8
	X, Y       fixed.Int24_8
}

// Object holds the affine parameters of an object (sprite). There is no
// translation, an object's position lives in a separate hardware field.
type Object struct {
	A, B, C, D fixed.Int8_8
}

// Background narrows the linear part of m for use in an affine background.
// It returns an OverflowError as soon as a coefficient is out of range.
func (m Matrix) Background() (Background, error) {
	o, err := m.Object()
	if err != nil {
		return Background{}, err
	}
	return Background{o.A, o.B, o.C, o.D, m.X, m.Y}, nil
}

// BackgroundWrapping is like Background but never fails. Out of range
// coefficients silently wrap to their truncated bit pattern, the result is
// then lossy.
func (m Matrix) BackgroundWrapping() Background {
	o := m.ObjectWrapping()
	return Background{o.A, o.B, o.C, o.D, m.X, m.Y}
}

// Matrix widens b back to working precision, which is always exact.
func (b Background) Matrix() Matrix {
	return Matrix{
		A: b.A.Int24_8(), B: b.B.Int24_8(),
		C: b.C.Int24_8(), D: b.D.Int24_8(),
		X: b.X, Y: b.Y,
	}
}

// Object narrows the linear part of m for use in an affine object. It
// returns an OverflowError as soon as a coefficient is out of range.
func (m Matrix) Object() (Object, error) {
	var o Object
	var ok bool
	if o.A, ok = m.A.Int8_8(); !ok {
		return Object{}, OverflowError{m.A}
	}
	if o.B, ok = m.B.Int8_8(); !ok {
		return Object{}, OverflowError{m.B}
	}
	if o.C, ok = m.C.Int8_8(); !ok {
		return Object{}, OverflowError{m.C}
	}
	if o.D, ok = m.D.Int8_8(); !ok {
		return Object{}, OverflowError{m.D}
	}
	return o, nil
}

// ObjectWrapping is like Object but never fails. Out of range coefficients
// silently wrap to their truncated bit pattern, the result is then lossy.
func (m Matrix) ObjectWrapping() Object {
	return Object{
		A: fixed.Int8_8(m.A), B: fixed.Int8_8(m.B),
		C: fixed.Int8_8(m.C), D: fixed.Int8_8(m.D),
	}
}

// Matrix widens o back to working precision with a zero translation, which
// is always exact.
func (o Object) Matrix() Matrix {
	return Matrix{
		A: o.A.Int24_8(), B: o.B.Int24_8(),
		C: o.C.Int24_8(), D: o.D.Int24_8(),
	}
}
