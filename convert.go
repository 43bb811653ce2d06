package onlyargs

import (
	"reflect"
	"strconv"
)

// Signed is the constraint for AsInt target types.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned is the constraint for AsUint target types.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Float is the constraint for AsFloat target types.
type Float interface {
	~float32 | ~float64
}

// AsString converts a raw argument into a string. The name is used only for
// error attribution. It fails with a UTF8Error when the argument is not
// valid UTF-8; on success the result is byte-identical to the input.
func AsString(name string, raw RawArg) (string, error) {
	if !raw.IsText() {
		return "", &UTF8Error{Name: name, Raw: raw}
	}
	return string(raw), nil
}

// AsPath converts a raw argument into a filesystem path. It never fails:
// file names share the arguments' encoding, so every raw argument, valid
// UTF-8 or not, maps losslessly to a path.
func AsPath(name string, raw RawArg) string {
	return string(raw)
}

// AsRaw returns the argument unchanged. It exists so that generated parsers
// have a uniform converter for every supported field type.
func AsRaw(name string, raw RawArg) RawArg {
	return raw
}

// AsInt converts a raw argument into a signed integer of type T. The value
// must be valid UTF-8 and base-10 syntax within the range of T; otherwise it
// fails with a UTF8Error or an IntError carrying the strconv cause.
func AsInt[T Signed](name string, raw RawArg) (T, error) {
	text, err := AsString(name, raw)
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseInt(text, 10, bitSize[T]())
	if err != nil {
		return 0, &IntError{Name: name, Text: text, Err: err}
	}
	return T(n), nil
}

// AsUint converts a raw argument into an unsigned integer of type T. A
// leading minus sign always fails, regardless of magnitude.
func AsUint[T Unsigned](name string, raw RawArg) (T, error) {
	text, err := AsString(name, raw)
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseUint(text, 10, bitSize[T]())
	if err != nil {
		return 0, &IntError{Name: name, Text: text, Err: err}
	}
	return T(n), nil
}

// AsFloat converts a raw argument into a floating point number of type T
// using standard decimal syntax.
func AsFloat[T Float](name string, raw RawArg) (T, error) {
	text, err := AsString(name, raw)
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(text, bitSize[T]())
	if err != nil {
		return 0, &FloatError{Name: name, Text: text, Err: err}
	}
	return T(f), nil
}

// AsBool converts a raw argument into a bool using strconv.ParseBool.
func AsBool(name string, raw RawArg) (bool, error) {
	text, err := AsString(name, raw)
	if err != nil {
		return false, err
	}
	b, err := strconv.ParseBool(text)
	if err != nil {
		return false, &BoolError{Name: name, Text: text, Err: err}
	}
	return b, nil
}

func bitSize[T any]() int {
	var zero T
	return reflect.TypeOf(zero).Bits()
}
