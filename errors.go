package onlyargs

import "fmt"

// MissingArgumentError is returned when the argument list is exhausted while
// an argument still requires a value, or when a required argument was never
// provided at all. The Value field tells the two cases apart.
type MissingArgumentError struct {
	// Name is the logical argument name, e.g. "--username".
	Name string

	// Value is true when the argument itself was present but its value was
	// missing, and false when the argument never appeared.
	Value bool
}

func (e *MissingArgumentError) Error() string {
	if e.Value {
		return fmt.Sprintf("missing value for argument %q", e.Name)
	}
	return fmt.Sprintf("missing required argument %q", e.Name)
}

// UTF8Error is returned when a raw argument is not valid UTF-8 but text was
// required. Raw carries the original bytes for diagnostic display.
type UTF8Error struct {
	Name string
	Raw  RawArg
}

func (e *UTF8Error) Error() string {
	return fmt.Sprintf("string conversion failed for argument %q: value=%q", e.Name, string(e.Raw))
}

// IntError is returned when an argument value is valid text but fails to
// parse as an integer. It wraps the underlying strconv error.
type IntError struct {
	Name string
	Text string
	Err  error
}

func (e *IntError) Error() string {
	return fmt.Sprintf("integer conversion failed for argument %q: value=%q", e.Name, e.Text)
}

func (e *IntError) Unwrap() error { return e.Err }

// FloatError is returned when an argument value is valid text but fails to
// parse as a floating point number. It wraps the underlying strconv error.
type FloatError struct {
	Name string
	Text string
	Err  error
}

func (e *FloatError) Error() string {
	return fmt.Sprintf("float conversion failed for argument %q: value=%q", e.Name, e.Text)
}

func (e *FloatError) Unwrap() error { return e.Err }

// BoolError is returned when an argument value is valid text but fails to
// parse as a boolean. It wraps the underlying strconv error.
type BoolError struct {
	Name string
	Text string
	Err  error
}

func (e *BoolError) Error() string {
	return fmt.Sprintf("bool conversion failed for argument %q: value=%q", e.Name, e.Text)
}

func (e *BoolError) Unwrap() error { return e.Err }

// UnknownArgumentError is returned by parsing loops when a token matches no
// known flag or option and cannot be accepted positionally. The core
// primitives never produce it; it is a policy decision of the matching logic.
type UnknownArgumentError struct {
	Raw RawArg
}

func (e *UnknownArgumentError) Error() string {
	return fmt.Sprintf("unknown argument %q", string(e.Raw))
}
