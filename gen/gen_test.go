package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fullSrc = `package app

// A basic argument parsing example.
// Sums a list of numbers and writes the result to a file or standard output.
//
//onlyargs:parser
type Args struct {
	// Your username.
	Username string

	// Output file path.
	Output *string ` + "`args:\"|o||path\"`" + `

	// A list of numbers to sum.
	Numbers []int32

	// Set the width.
	Width int32 ` + "`args:\"||42\"`" + `

	// Enable verbose output.
	Verbose bool

	Help    bool
	Version bool
}
`

func TestParseFileModel(t *testing.T) {
	f, err := ParseFile("args.go", []byte(fullSrc))
	require.NoError(t, err)
	assert.Equal(t, "app", f.Package)
	require.Len(t, f.Parsers, 1)

	def := f.Parsers[0]
	assert.Equal(t, "Args", def.Struct)
	assert.Equal(t, []string{
		"A basic argument parsing example.",
		"Sums a list of numbers and writes the result to a file or standard output.",
	}, def.Doc)
	assert.True(t, def.HasHelpField)
	assert.True(t, def.HasVersionField)

	require.Len(t, def.Flags, 1)
	assert.Equal(t, Arg{
		Field: "Verbose", GoType: "bool", Kind: KindBool,
		Long: "verbose", Short: "v",
		Doc: []string{"Enable verbose output."},
	}, def.Flags[0])

	require.Len(t, def.Options, 3)
	assert.Equal(t, Arg{
		Field: "Username", GoType: "string", Kind: KindString,
		Long: "username", Short: "u",
		Doc: []string{"Your username."},
	}, def.Options[0])
	assert.Equal(t, Arg{
		Field: "Output", GoType: "string", Kind: KindPath,
		Long: "output", Short: "o", Optional: true,
		Doc: []string{"Output file path."},
	}, def.Options[1])
	assert.Equal(t, Arg{
		Field: "Width", GoType: "int32", Kind: KindInt,
		Long: "width", Short: "w", Default: "42",
		Doc: []string{"Set the width."},
	}, def.Options[2])

	require.NotNil(t, def.Positional)
	assert.Equal(t, Arg{
		Field: "Numbers", GoType: "int32", Kind: KindInt,
		Long: "numbers", Short: "n", Positional: true,
		Doc: []string{"A list of numbers to sum."},
	}, *def.Positional)
}

func TestParseFileErrors(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		wantErr string
	}{
		{
			name:    "no marked struct",
			src:     "package app\n\ntype Args struct{ Verbose bool }\n",
			wantErr: "no struct marked",
		},
		{
			name:    "marker on non-struct",
			src:     "package app\n\n//onlyargs:parser\ntype Args int\n",
			wantErr: "not a struct",
		},
		{
			name:    "two positional sinks",
			src:     "package app\n\n//onlyargs:parser\ntype Args struct {\n\tA []string\n\tB []string\n}\n",
			wantErr: "positional arguments can only be specified once",
		},
		{
			name:    "duplicate short name",
			src:     "package app\n\n//onlyargs:parser\ntype Args struct {\n\tValue string\n\tVerbose bool\n}\n",
			wantErr: "already used",
		},
		{
			name:    "short name collides with builtin help",
			src:     "package app\n\n//onlyargs:parser\ntype Args struct {\n\tHost string\n}\n",
			wantErr: `already used by --help`,
		},
		{
			name:    "unsupported type",
			src:     "package app\n\n//onlyargs:parser\ntype Args struct {\n\tWhen map[string]int\n}\n",
			wantErr: "unsupported field type",
		},
		{
			name:    "path marker on non-string",
			src:     "package app\n\n//onlyargs:parser\ntype Args struct {\n\tSize int `args:\"|||path\"`\n}\n",
			wantErr: "path marker requires a string",
		},
		{
			name:    "default on optional",
			src:     "package app\n\n//onlyargs:parser\ntype Args struct {\n\tSize *int `args:\"||42\"`\n}\n",
			wantErr: "default values are only valid on plain scalar fields",
		},
		{
			name:    "required marker off the positional sink",
			src:     "package app\n\n//onlyargs:parser\ntype Args struct {\n\tSize int `args:\"|||required\"`\n}\n",
			wantErr: "only valid on the positional slice",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseFile("args.go", []byte(tt.src))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestParseFileSkipsExcludedFields(t *testing.T) {
	src := "package app\n\n//onlyargs:parser\ntype Args struct {\n\tVerbose bool\n\tstate map[string]int `args:\"-\"`\n}\n"
	f, err := ParseFile("args.go", []byte(src))
	require.NoError(t, err)
	require.Len(t, f.Parsers, 1)
	assert.Len(t, f.Parsers[0].Flags, 1)
}

func TestToArgName(t *testing.T) {
	tests := []struct {
		field string
		want  string
	}{
		{field: "Username", want: "username"},
		{field: "OutputPath", want: "output-path"},
		{field: "dry_run", want: "dry-run"},
		{field: "Verbose", want: "verbose"},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			assert.Equal(t, tt.want, toArgName(tt.field))
		})
	}
}

func TestBuildUsage(t *testing.T) {
	def := &ParserDef{
		Struct: "Args",
		Doc:    []string{"Sums numbers."},
		Flags: []Arg{
			{Field: "Verbose", Long: "verbose", Short: "v", Kind: KindBool, Doc: []string{"Enable verbose output."}},
		},
		Options: []Arg{
			{Field: "Username", Long: "username", Short: "u", Kind: KindString, Doc: []string{"Your username."}},
			{Field: "Width", Long: "width", Short: "w", Kind: KindInt, Default: "42", Doc: []string{"Set the width."}},
		},
		Positional: &Arg{Field: "Numbers", Long: "numbers", Kind: KindInt, Positional: true, Doc: []string{"A list of numbers to sum."}},
	}

	want := "Sums numbers.\n" +
		"\n" +
		"Usage:\n" +
		"  {bin} [flags] [options] [numbers...]\n" +
		"\n" +
		"Flags:\n" +
		"  -h --help     Show this help message.\n" +
		"  -V --version  Show the application version.\n" +
		"  -v --verbose  Enable verbose output.\n" +
		"\n" +
		"Options:\n" +
		"  -u --username STRING  Your username. [required]\n" +
		"  -w --width INTEGER    Set the width. [default: 42]\n" +
		"\n" +
		"numbers:\n" +
		"  A list of numbers to sum.\n"

	assert.Equal(t, want, buildUsage(def))
}

func TestEmit(t *testing.T) {
	f, err := ParseFile("args.go", []byte(fullSrc))
	require.NoError(t, err)

	src, err := Emit(f)
	require.NoError(t, err)
	code := string(src)

	assert.Contains(t, code, "// Code generated by onlyargs-gen. DO NOT EDIT.")
	assert.Contains(t, code, "package app")
	assert.Contains(t, code, `"github.com/parasyte/onlyargs"`)
	assert.Contains(t, code, "const ArgsUsage =")
	assert.Contains(t, code, "func (a *Args) Usage() string")
	assert.Contains(t, code, "func (a *Args) ParseArgs(args []onlyargs.RawArg) error")

	// Matching loop.
	assert.Contains(t, code, "cur := onlyargs.NewCursor(args)")
	assert.Contains(t, code, `case "--help", "-h":`)
	assert.Contains(t, code, `case "--version", "-V":`)
	assert.Contains(t, code, `case "--username", "-u":`)
	assert.Contains(t, code, `case "--output", "-o":`)
	assert.Contains(t, code, `case "--width", "-w":`)
	assert.Contains(t, code, `case "--verbose", "-v":`)
	assert.Contains(t, code, `case "--":`)

	// Converters and the sentinel drain.
	assert.Contains(t, code, "onlyargs.AsString(name, raw)")
	assert.Contains(t, code, "onlyargs.AsPath(name, raw)")
	assert.Contains(t, code, "onlyargs.AsInt[int32](name, raw)")
	assert.Contains(t, code, "onlyargs.Drain(cur, onlyargs.PositionalName, onlyargs.AsInt[int32])")

	// Required unwrapping is short-circuited by the help/version fields.
	assert.Contains(t, code, "skip := a.Help || a.Version")
	assert.Contains(t, code, `onlyargs.Required(skip, "--username", usernameVal)`)

	// Field assignment.
	assert.Contains(t, code, "a.Username = usernameArg")
	assert.Contains(t, code, "a.Output = outputVal")
	assert.Contains(t, code, "a.Width = widthVal")
	assert.Contains(t, code, "a.Numbers = numbersVal")
}

func TestEmitWithoutPositional(t *testing.T) {
	src := "package app\n\n//onlyargs:parser\ntype Args struct {\n\t// Enable verbose output.\n\tVerbose bool\n}\n"
	f, err := ParseFile("args.go", []byte(src))
	require.NoError(t, err)

	out, err := Emit(f)
	require.NoError(t, err)
	code := string(out)

	// Unmatched tokens are rejected when no positional sink exists.
	assert.Contains(t, code, "return &onlyargs.UnknownArgumentError{Raw: raw}")
	assert.Contains(t, code, "return &onlyargs.UnknownArgumentError{Raw: onlyargs.RawArg(name)}")
	assert.NotContains(t, code, "skip :=")
}
