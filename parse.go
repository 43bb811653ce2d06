package onlyargs

// Parser is the contract between a caller-defined argument struct and this
// package. ParseArgs receives the raw argument list, excluding the program
// name, and populates the receiver. Implementations are usually a single
// loop over a Cursor; see the example directory, or generate one with
// cmd/onlyargs-gen.
type Parser interface {
	ParseArgs(args []RawArg) error
}

// Parse captures the process arguments and hands them to dst.
func Parse(dst Parser) error {
	return dst.ParseArgs(Capture())
}

// Required unwraps an option value that the CLI requires. A nil v means the
// option never appeared and yields a MissingArgumentError, unless skip is
// true, in which case the zero value is returned instead. Parsers pass the
// help/version short-circuit condition as skip so that "--help" works
// without the required arguments.
func Required[T any](skip bool, name string, v *T) (T, error) {
	if v != nil {
		return *v, nil
	}
	var zero T
	if skip {
		return zero, nil
	}
	return zero, &MissingArgumentError{Name: name}
}

// RequiredSlice is Required for positional collections: an empty slice
// counts as missing.
func RequiredSlice[T any](skip bool, name string, v []T) ([]T, error) {
	if len(v) > 0 || skip {
		return v, nil
	}
	return nil, &MissingArgumentError{Name: name}
}
