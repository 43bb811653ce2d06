/*
Package onlyargs implements a minimal command-line argument parser.
Only argument parsing, nothing more.

The package provides a small contract (the Parser interface) plus a handful
of helpers that let a caller-defined struct populate itself from the process
arguments. There is no registration API and no hidden state: a parser is an
explicit loop the caller writes (or generates, see cmd/onlyargs-gen) against
two primitives:

  - Cursor: a forward-only consumer over the raw argument list with Peek,
    NextValue and AdvanceFlag operations.
  - Converters: AsString, AsPath, AsInt, AsUint, AsFloat, AsBool and AsRaw,
    turning one raw OS argument into a concrete value.

# Raw arguments

Process arguments are not guaranteed to be valid UTF-8. The RawArg type
preserves whatever bytes the operating system delivered; validity is checked
only at conversion time. AsString fails on invalid encodings, while AsPath
and AsRaw accept any byte sequence and round-trip it losslessly.

# Matching rules

Matching is exact-token only. A flag is spelled exactly "--verbose" or "-v";
there is no support for "--opt=value" or combined short flags like "-oVALUE".
This is deliberate: the matching logic stays a plain switch statement.

The literal token "--" stops flag matching. It is consumed and discarded,
and every remaining token is treated as positional, even tokens that look
like known flags. Positional values are still converted to their target
type, so "--output" after the sentinel fails integer conversion the same
way "banana" would.

# Errors

Every failure identifies the logical argument name it belongs to:

	MissingArgumentError   cursor exhausted, or a required argument never appeared
	UTF8Error              raw bytes are not valid UTF-8 where text was required
	IntError, FloatError,
	BoolError              valid text, but numeric/boolean parsing failed
	UnknownArgumentError   a token matched nothing and no positional sink exists

The parsing core never prints and never terminates the process. The only
exceptions are the explicit Meta helpers ShowHelpAndExit and
ShowVersionAndExit, which exist for mains to call after parsing. See the
example directory for complete programs.
*/
package onlyargs
