package fixed_test

import (
	"testing"

	"github.com/xokz/agb/fixed"
)

func TestMulDiv(t *testing.T) {
	x := fixed.Int24_8F(2.5)
	y := fixed.Int24_8U(4)
	if got := x.Mul(y); got != fixed.Int24_8U(10) {
		t.Errorf("2.5*4 = %v", got)
	}
	if got := y.Div(x); got != fixed.Int24_8F(1.6) {
		t.Errorf("4/2.5 = %v", got)
	}
	if got := fixed.Int24_8F(-1.5).Floor(); got != -2 {
		t.Errorf("floor(-1.5) = %v", got)
	}
	if got := fixed.Int24_8F(1.5).Ceil(); got != 2 {
		t.Errorf("ceil(1.5) = %v", got)
	}
}

func TestTrigExact(t *testing.T) {
	one := fixed.Int24_8U(1)
	for _, tc := range []struct {
		angle    fixed.Int24_8
		cos, sin fixed.Int24_8
	}{
		{fixed.Int24_8F(0), one, 0},
		{fixed.Int24_8F(0.25), 0, one},
		{fixed.Int24_8F(0.5), -one, 0},
		{fixed.Int24_8F(0.75), 0, -one},
		{fixed.Int24_8U(1), one, 0},
		{fixed.Int24_8F(-0.25), 0, -one},
	} {
		if got := tc.angle.Cos(); got != tc.cos {
			t.Errorf("cos(%v) = %v, want %v", tc.angle, got, tc.cos)
		}
		if got := tc.angle.Sin(); got != tc.sin {
			t.Errorf("sin(%v) = %v, want %v", tc.angle, got, tc.sin)
		}
	}
}

// The squared magnitude of (cos, sin) must stay close to one over the whole
// revolution, otherwise repeated rotations visibly shrink or grow sprites.
func TestTrigMagnitude(t *testing.T) {
	for i := fixed.Int24_8(0); i < 256; i++ {
		c, s := int64(i.Cos()), int64(i.Sin())
		mag := c*c + s*s // scaled by 1<<16
		if d := mag - 1<<16; d < -512 || d > 512 {
			t.Errorf("angle %v: cos²+sin² = %d/65536", i, mag)
		}
	}
}

func TestNarrowing(t *testing.T) {
	if v, ok := fixed.Int24_8F(1.5).Int8_8(); !ok || v != fixed.Int8_8F(1.5) {
		t.Errorf("narrow 1.5 = %v, %v", v, ok)
	}
	if v, ok := fixed.Int24_8U(-128).Int8_8(); !ok || v != fixed.Int8_8U(-128) {
		t.Errorf("narrow -128 = %v, %v", v, ok)
	}
	if v, ok := fixed.Int24_8U(128).Int8_8(); ok {
		t.Errorf("narrow 128 = %v, want failure", v)
	}
	// Wrapping is a plain conversion and deterministic.
	if v := fixed.Int8_8(fixed.Int24_8U(128)); v != -32768 {
		t.Errorf("wrap 128 = %d", v)
	}
}

func TestWidening(t *testing.T) {
	for _, v := range []fixed.Int8_8{0, 1, -1, 32767, -32768} {
		w := v.Int24_8()
		if got, ok := w.Int8_8(); !ok || got != v {
			t.Errorf("widen/narrow %d = %d, %v", v, got, ok)
		}
	}
}

func TestAngleFormat(t *testing.T) {
	if got := fixed.Int24_8F(0.5).UInt0_16(); got != 0x8000 {
		t.Errorf("0.5 revolutions = %#x", got)
	}
	// Negative angles and whole revolutions wrap.
	if got := fixed.Int24_8F(-0.25).UInt0_16(); got != 0xc000 {
		t.Errorf("-0.25 revolutions = %#x", got)
	}
	if got := fixed.Int24_8F(1.25).UInt0_16(); got != 0x4000 {
		t.Errorf("1.25 revolutions = %#x", got)
	}
	if got := fixed.UInt0_16(0x8000).Int24_8(); got != fixed.Int24_8F(0.5) {
		t.Errorf("0x8000 = %v", got)
	}
}

func TestPoint(t *testing.T) {
	p := fixed.Point24_8{X: fixed.Int24_8U(20), Y: fixed.Int24_8U(10)}
	q := fixed.Point24_8{X: fixed.Int24_8U(1), Y: fixed.Int24_8U(2)}
	if got := p.Add(q).Sub(q); got != p {
		t.Errorf("p+q-q = %v", got)
	}
	if got := p.Neg().Neg(); got != p {
		t.Errorf("-(-p) = %v", got)
	}
}
