/*
onlyargs-gen derives argument parsers for struct types marked with a
"//onlyargs:parser" comment. For every input file it writes a sibling
<input>_onlyargs.go containing a ParseArgs method and an aligned usage text,
built on the onlyargs cursor and converter primitives.

The tool parses its own arguments with a hand-written onlyargs parser.
*/
package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/parasyte/onlyargs"
	"github.com/parasyte/onlyargs/gen"
)

var meta = onlyargs.Meta{
	Name:        "onlyargs-gen",
	Version:     "0.2.0",
	Description: "Derives onlyargs parsers for annotated struct types.",
}

const usage = `Usage:
  onlyargs-gen [flags] [options] [files...]

Flags:
  -h --help     Show this help message.
  -V --version  Show the application version.

Options:
  -o --output PATH  Output file path; only valid with a single input file.

files:
  Go source files containing structs marked //onlyargs:parser. [required]
`

type args struct {
	Output  string
	Files   []string
	Help    bool
	Version bool
}

func (a *args) ParseArgs(raw []onlyargs.RawArg) error {
	cur := onlyargs.NewCursor(raw)

	for {
		name, ok := cur.Peek()
		if !ok {
			if cur.Len() == 0 {
				break
			}
			arg, err := cur.NextValue(onlyargs.PositionalName)
			if err != nil {
				return err
			}
			a.Files = append(a.Files, onlyargs.AsPath(onlyargs.PositionalName, arg))
			continue
		}

		switch name {
		case "--help", "-h":
			a.Help = true
			cur.AdvanceFlag()
		case "--version", "-V":
			a.Version = true
			cur.AdvanceFlag()
		case "--output", "-o":
			cur.AdvanceFlag()
			arg, err := cur.NextValue(name)
			if err != nil {
				return err
			}
			a.Output = onlyargs.AsPath(name, arg)
		case "--":
			cur.AdvanceFlag()
			rest, err := onlyargs.Drain(cur, onlyargs.PositionalName, onlyargs.PathConverter)
			if err != nil {
				return err
			}
			a.Files = append(a.Files, rest...)
		default:
			arg, err := cur.NextValue(onlyargs.PositionalName)
			if err != nil {
				return err
			}
			a.Files = append(a.Files, onlyargs.AsPath(onlyargs.PositionalName, arg))
		}
	}

	files, err := onlyargs.RequiredSlice(a.Help || a.Version, "files", a.Files)
	if err != nil {
		return err
	}
	a.Files = files

	return nil
}

func run(a *args) error {
	if a.Output != "" && len(a.Files) > 1 {
		return errors.New("--output is only valid with a single input file")
	}

	for _, file := range a.Files {
		f, err := gen.ParseFile(file, nil)
		if err != nil {
			return err
		}
		src, err := gen.Emit(f)
		if err != nil {
			return err
		}

		out := a.Output
		if out == "" {
			out = strings.TrimSuffix(file, ".go") + "_onlyargs.go"
		}
		if err := os.WriteFile(out, src, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", out, err)
		}
	}
	return nil
}

func main() {
	var a args
	if err := onlyargs.Parse(&a); err != nil {
		fmt.Fprint(os.Stderr, usage)
		fail(err)
	}

	if a.Help {
		onlyargs.ShowHelpAndExit(meta.Header() + "\n" + usage)
	}
	if a.Version {
		meta.ShowVersionAndExit()
	}

	if err := run(&a); err != nil {
		fail(err)
	}
}

// fail prints the error chain and exits with a non-zero status.
func fail(err error) {
	fmt.Fprintln(os.Stderr, "Error:", err)
	for err = errors.Unwrap(err); err != nil; err = errors.Unwrap(err) {
		fmt.Fprintln(os.Stderr, "  caused by:", err)
	}
	os.Exit(1)
}
