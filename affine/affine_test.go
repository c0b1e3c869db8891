package affine_test

import (
	"errors"
	"testing"

	"github.com/xokz/agb/affine"
	"github.com/xokz/agb/fixed"
)

func point(x, y int) fixed.Point24_8 {
	return fixed.Point24_8{X: fixed.Int24_8U(x), Y: fixed.Int24_8U(y)}
}

func TestIdentity(t *testing.T) {
	id := affine.Identity()
	for _, m := range []affine.Matrix{
		id,
		affine.FromRotation(fixed.Int24_8F(0.125)),
		affine.FromTranslation(point(20, 10)),
		affine.FromScale(point(2, 3)),
		affine.FromRotation(fixed.Int24_8F(0.25)).Mul(affine.FromTranslation(point(-5, 7))),
	} {
		if got := m.Mul(id); got != m {
			t.Errorf("M*I = %+v, want %+v", got, m)
		}
		if got := id.Mul(m); got != m {
			t.Errorf("I*M = %+v, want %+v", got, m)
		}
	}
}

func TestSimpleMultiply(t *testing.T) {
	position := point(20, 10)

	a := affine.FromTranslation(position)
	c := a.Mul(affine.Identity())

	if got := c.Position(); got != position {
		t.Errorf("position = %v, want %v", got, position)
	}

	d := affine.FromRotation(fixed.Int24_8F(0.5))

	e := a.Mul(d)
	if got := e.Position(); got != position {
		t.Errorf("position after half turn = %v, want %v", got, position)
	}
	if got := d.Mul(d); got != affine.Identity() {
		t.Errorf("two half turns = %+v, want identity", got)
	}
}

func TestMulAssign(t *testing.T) {
	m := affine.FromTranslation(point(20, 10))
	n := m
	m.MulAssign(affine.FromRotation(fixed.Int24_8F(0.5)))
	if want := n.Mul(affine.FromRotation(fixed.Int24_8F(0.5))); m != want {
		t.Errorf("got %+v, want %+v", m, want)
	}
}

func TestNonCommutative(t *testing.T) {
	r := affine.FromRotation(fixed.Int24_8F(0.25))
	s := affine.FromScale(point(2, 1))
	if r.Mul(s) == s.Mul(r) {
		t.Errorf("R*S == S*R == %+v", r.Mul(s))
	}
}

// FromScale keeps the passed coefficients as-is. Since the matrix maps
// screen to graphics space, (2, 2) samples the source at twice the rate,
// halving the apparent size.
func TestScaleConvention(t *testing.T) {
	m := affine.FromScale(point(2, 2))
	if m.A != fixed.Int24_8U(2) || m.D != fixed.Int24_8U(2) {
		t.Errorf("coefficients = %v, %v, want 2, 2", m.A, m.D)
	}
	if got := m.Apply(point(1, 1)); got != point(2, 2) {
		t.Errorf("sampling point = %v, want (2,2)", got)
	}
}

func TestBackgroundRoundTrip(t *testing.T) {
	m := affine.FromRotation(fixed.Int24_8F(0.125)).
		Mul(affine.FromScale(point(2, 3))).
		Mul(affine.FromTranslation(point(5, 7)))

	b, err := m.Background()
	if err != nil {
		t.Fatal(err)
	}
	if got := b.Matrix(); got != m {
		t.Errorf("round trip = %+v, want %+v", got, m)
	}
}

func TestObjectRoundTrip(t *testing.T) {
	m := affine.FromRotation(fixed.Int24_8F(0.125)).Mul(affine.FromScale(point(2, 3)))

	o, err := m.Object()
	if err != nil {
		t.Fatal(err)
	}
	if got := o.Matrix(); got != m {
		t.Errorf("round trip = %+v, want %+v", got, m)
	}

	// Translation does not survive an object conversion.
	o, err = affine.FromTranslation(point(20, 10)).Object()
	if err != nil {
		t.Fatal(err)
	}
	if got := o.Matrix().Position(); got != point(0, 0) {
		t.Errorf("object position = %v, want (0,0)", got)
	}
}

func TestOverflow(t *testing.T) {
	m := affine.FromScale(point(128, 1))

	var overflow affine.OverflowError
	if _, err := m.Background(); !errors.As(err, &overflow) {
		t.Errorf("Background() = %v, want OverflowError", err)
	} else if overflow.Value != fixed.Int24_8U(128) {
		t.Errorf("overflowing value = %v", overflow.Value)
	}
	if _, err := m.Object(); !errors.As(err, &overflow) {
		t.Errorf("Object() = %v, want OverflowError", err)
	}

	// -128 still fits the two's complement range.
	if _, err := affine.FromScale(point(-128, 1)).Object(); err != nil {
		t.Errorf("Object() = %v, want success", err)
	}

	// Wrapping yields the truncated bit pattern, not an arbitrary value.
	if got := m.ObjectWrapping().A; got != fixed.Int8_8(-32768) {
		t.Errorf("wrapped coefficient = %d, want -32768", got)
	}
	if got := m.BackgroundWrapping().A; got != fixed.Int8_8(-32768) {
		t.Errorf("wrapped coefficient = %d, want -32768", got)
	}
}

func TestEncodeBackground(t *testing.T) {
	b, err := affine.FromRotation(fixed.Int24_8F(0.25)).
		Mul(affine.FromTranslation(point(2, -1))).Background()
	if err != nil {
		t.Fatal(err)
	}

	var buf [affine.BackgroundLen]byte
	b.Encode(buf[:])

	want := [affine.BackgroundLen]byte{
		0x00, 0x00, // a = 0
		0x00, 0xff, // b = -1
		0x00, 0x01, // c = 1
		0x00, 0x00, // d = 0
		0x00, 0xff, 0xff, 0xff, // x = -1, the quarter turn of (-2, 1)
		0x00, 0xfe, 0xff, 0xff, // y = -2
	}
	if buf != want {
		t.Errorf("encoded block\n got %x\nwant %x", buf, want)
	}
	if got := affine.DecodeBackground(buf[:]); got != b {
		t.Errorf("decode = %+v, want %+v", got, b)
	}
}

func TestEncodeObject(t *testing.T) {
	o, err := affine.FromScale(point(2, -3)).Object()
	if err != nil {
		t.Fatal(err)
	}

	var buf [affine.ObjectLen]byte
	o.Encode(buf[:])

	want := [affine.ObjectLen]byte{
		0x00, 0x02, // a = 2
		0x00, 0x00, // b = 0
		0x00, 0x00, // c = 0
		0x00, 0xfd, // d = -3
	}
	if buf != want {
		t.Errorf("encoded set\n got %x\nwant %x", buf, want)
	}
	if got := affine.DecodeObject(buf[:]); got != o {
		t.Errorf("decode = %+v, want %+v", got, o)
	}
}
