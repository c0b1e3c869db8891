package fixed

import "fmt"

func Int24_8U(i int) Int24_8     { return Int24_8(i << 8) }
func Int24_8F(f float32) Int24_8 { return Int24_8(f * (1 << 8)) }

func (x Int24_8) Floor() int            { return int(x >> 8) }
func (x Int24_8) Ceil() int             { return int((int64(x) + (1<<8 - 1)) >> 8) }
func (x Int24_8) Mul(y Int24_8) Int24_8 { return Int24_8((int64(x) * int64(y)) >> 8) }
func (x Int24_8) Div(y Int24_8) Int24_8 { return Int24_8(int64(x) << 8 / int64(y)) }

func (x Int24_8) String() string {
	const shift, mask = 8, 1<<8 - 1
	return fmt.Sprintf("%d:%03d", int64(x>>shift), int64(x&mask))
}
