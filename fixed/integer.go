package fixed

type Int16 int16
type Point16 = Point[Int16]

func (x Int16) Mul(y Int16) Int16 { return x * y }
func (x Int16) Div(y Int16) Int16 { return x / y }
