/*
This program shows a complete hand-written parser: a required option with a
long and a short spelling, an optional path option, positional integers, and
the "--" sentinel. It sums the numbers and writes the result to the output
file or standard output.

Try: full -u parasyte 1 2 3
*/

package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/parasyte/onlyargs"
)

var meta = onlyargs.Meta{
	Name:        "full",
	Version:     "0.2.0",
	Description: "A full argument parsing example with onlyargs.",
}

const usage = `Usage:
  full [flags] [options] [numbers...]

Flags:
  -h --help     Show this help message.
  -V --version  Show the application version.

Options:
  -u --username STRING  Your username. [required]
  -o --output PATH      Output file path.

numbers:
  A list of numbers to sum.
`

type params struct {
	Username string
	Output   string
	Numbers  []int64
	Help     bool
	Version  bool
}

func (p *params) ParseArgs(args []onlyargs.RawArg) error {
	cur := onlyargs.NewCursor(args)
	var username *string

	for {
		name, ok := cur.Peek()
		if !ok {
			if cur.Len() == 0 {
				break
			}
			raw, err := cur.NextValue(onlyargs.PositionalName)
			if err != nil {
				return err
			}
			n, err := onlyargs.AsInt[int64](onlyargs.PositionalName, raw)
			if err != nil {
				return err
			}
			p.Numbers = append(p.Numbers, n)
			continue
		}

		switch name {
		case "--help", "-h":
			p.Help = true
			cur.AdvanceFlag()
		case "--version", "-V":
			p.Version = true
			cur.AdvanceFlag()
		case "--username", "-u":
			cur.AdvanceFlag()
			raw, err := cur.NextValue(name)
			if err != nil {
				return err
			}
			v, err := onlyargs.AsString(name, raw)
			if err != nil {
				return err
			}
			username = &v
		case "--output", "-o":
			cur.AdvanceFlag()
			raw, err := cur.NextValue(name)
			if err != nil {
				return err
			}
			p.Output = onlyargs.AsPath(name, raw)
		case "--":
			cur.AdvanceFlag()
			rest, err := onlyargs.Drain(cur, onlyargs.PositionalName, onlyargs.AsInt[int64])
			if err != nil {
				return err
			}
			p.Numbers = append(p.Numbers, rest...)
		default:
			raw, err := cur.NextValue(onlyargs.PositionalName)
			if err != nil {
				return err
			}
			n, err := onlyargs.AsInt[int64](onlyargs.PositionalName, raw)
			if err != nil {
				return err
			}
			p.Numbers = append(p.Numbers, n)
		}
	}

	v, err := onlyargs.Required(p.Help || p.Version, "--username", username)
	if err != nil {
		return err
	}
	p.Username = v

	return nil
}

func run(p *params) error {
	fmt.Printf("Hello, %s!\n", p.Username)

	if len(p.Numbers) == 0 {
		return nil
	}

	var sum int64
	terms := make([]string, 0, len(p.Numbers))
	for _, n := range p.Numbers {
		sum += n
		terms = append(terms, fmt.Sprint(n))
	}
	msg := fmt.Sprintf("The sum of %s is %d\n", strings.Join(terms, " + "), sum)

	if p.Output != "" {
		if err := os.WriteFile(p.Output, []byte(msg), 0o644); err != nil {
			return fmt.Errorf("writing sums to %q: %w", p.Output, err)
		}
		fmt.Printf("Sums written to %q\n", p.Output)
		return nil
	}
	fmt.Print(msg)

	return nil
}

func main() {
	var p params
	if err := onlyargs.Parse(&p); err != nil {
		fmt.Fprint(os.Stderr, usage)
		fail(err)
	}

	if p.Help {
		onlyargs.ShowHelpAndExit(meta.Header() + "\n" + usage)
	}
	if p.Version {
		meta.ShowVersionAndExit()
	}

	if err := run(&p); err != nil {
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
