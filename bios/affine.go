// Package bios provides the affine parameter computations that the GBA BIOS
// offers as software interrupts.
//
// On hardware these run in BIOS ROM, invoked with the swi instruction, and
// avoid a chain of software matrix multiplications. This package ships
// software implementations with the same behavior for in-range inputs. A
// platform backend may substitute the real calls through the *Impl hooks.
//
// Unlike the BIOS, which reads whatever is at the parameter address, these
// functions validate their inputs and report an affine.OverflowError for
// values the hardware argument formats cannot represent.
package bios

import (
	"github.com/xokz/agb/affine"
	"github.com/xokz/agb/fixed"
)

// BgAffineSetFunc computes a background parameter block from the already
// narrowed hardware arguments of the BgAffineSet call (swi 0x0E).
type BgAffineSetFunc func(origin fixed.Point24_8, display fixed.Point16, scale fixed.Point8_8, alpha fixed.UInt0_16) affine.Background

// ObjAffineSetFunc computes an object parameter set from the already
// narrowed hardware arguments of the ObjAffineSet call (swi 0x0F).
type ObjAffineSetFunc func(scale fixed.Point8_8, alpha fixed.UInt0_16) affine.Object

// Hooks for platform backends issuing the actual software interrupts.
var (
	BgAffineSetImpl  BgAffineSetFunc  = bgAffineSet
	ObjAffineSetImpl ObjAffineSetFunc = objAffineSet
)

// BgAffineSet returns the background parameter block equivalent to
//
//	affine.FromTranslation(origin.Neg()).
//		Mul(affine.FromScale(scale)).
//		Mul(affine.FromRotation(rotation)).
//		Mul(affine.FromTranslation(position))
//
// narrowed for the background hardware. rotation is a fraction of a full
// revolution and reduced to one revolution first. scale and position must
// be representable in 8.8 fixed-point, position is floored to whole pixels.
func BgAffineSet(origin, position, scale fixed.Point24_8, rotation fixed.Int24_8) (affine.Background, error) {
	s, err := narrow(scale)
	if err != nil {
		return affine.Background{}, err
	}
	p, err := narrow(position)
	if err != nil {
		return affine.Background{}, err
	}
	display := fixed.Point16{X: fixed.Int16(p.X.Floor()), Y: fixed.Int16(p.Y.Floor())}
	return BgAffineSetImpl(origin, display, s, rotation.UInt0_16()), nil
}

// ObjAffineSet returns the object parameter set equivalent to
//
//	affine.FromScale(scale).Mul(affine.FromRotation(rotation))
//
// narrowed for the object hardware. scale must be representable in 8.8
// fixed-point.
func ObjAffineSet(scale fixed.Point24_8, rotation fixed.Int24_8) (affine.Object, error) {
	s, err := narrow(scale)
	if err != nil {
		return affine.Object{}, err
	}
	return ObjAffineSetImpl(s, rotation.UInt0_16()), nil
}

func narrow(p fixed.Point24_8) (fixed.Point8_8, error) {
	x, ok := p.X.Int8_8()
	if !ok {
		return fixed.Point8_8{}, affine.OverflowError{Value: p.X}
	}
	y, ok := p.Y.Int8_8()
	if !ok {
		return fixed.Point8_8{}, affine.OverflowError{Value: p.Y}
	}
	return fixed.Point8_8{X: x, Y: y}, nil
}

// Software fallback. Slower than the BIOS call but behaviorally identical
// for inputs that passed the argument narrowing: the linear coefficients of
// the product are bounded by the scale, so the final narrowing can't wrap.
func bgAffineSet(origin fixed.Point24_8, display fixed.Point16, scale fixed.Point8_8, alpha fixed.UInt0_16) affine.Background {
	position := fixed.Point24_8{
		X: fixed.Int24_8U(int(display.X)),
		Y: fixed.Int24_8U(int(display.Y)),
	}
	m := affine.FromTranslation(origin.Neg())
	m.MulAssign(affine.FromScale(fixed.Point24_8{X: scale.X.Int24_8(), Y: scale.Y.Int24_8()}))
	m.MulAssign(affine.FromRotation(alpha.Int24_8()))
	m.MulAssign(affine.FromTranslation(position))
	return m.BackgroundWrapping()
}

func objAffineSet(scale fixed.Point8_8, alpha fixed.UInt0_16) affine.Object {
	m := affine.FromScale(fixed.Point24_8{X: scale.X.Int24_8(), Y: scale.Y.Int24_8()})
	m.MulAssign(affine.FromRotation(alpha.Int24_8()))
	return m.ObjectWrapping()
}
