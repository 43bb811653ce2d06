package onlyargs

// PositionalName is the logical argument name attributed to positional
// values in conversion errors.
const PositionalName = "<POSITIONAL>"

// Converter turns one raw argument into a value of type T. AsString, AsInt,
// AsUint, AsFloat and AsBool satisfy this signature directly; PathConverter
// and RawConverter adapt the infallible converters.
type Converter[T any] func(name string, raw RawArg) (T, error)

// PathConverter adapts AsPath to the Converter signature. The error is
// always nil.
func PathConverter(name string, raw RawArg) (string, error) {
	return AsPath(name, raw), nil
}

// RawConverter adapts AsRaw to the Converter signature. The error is always
// nil.
func RawConverter(name string, raw RawArg) (RawArg, error) {
	return AsRaw(name, raw), nil
}

// Drain consumes every remaining element of the cursor, converting each one
// with conv under the given name. It is the positional collection policy for
// the "--" sentinel: after the sentinel token has been consumed, everything
// left is positional, including tokens that look like flags. Conversion is
// not bypassed, so a post-sentinel "--output" still fails integer conversion
// when the positional type is an integer.
//
// The first conversion failure aborts the drain and is returned as-is.
func Drain[T any](c *Cursor, name string, conv Converter[T]) ([]T, error) {
	out := make([]T, 0, c.Len())
	for c.Len() > 0 {
		raw, err := c.NextValue(name)
		if err != nil {
			return nil, err
		}
		v, err := conv(name, raw)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
