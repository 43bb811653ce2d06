/*
This example is functionally identical to the "full" example, except that
the parser is generated by onlyargs-gen instead of written by hand. See
args.go for the annotated struct and args_onlyargs.go for the output.
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
	Name:    "derive",
	Version: "0.2.0",
}

func run(a *cliArgs) error {
	fmt.Printf("Hello, %s!\n", a.Username)
	fmt.Printf("The width is %d.\n", a.Width)

	if len(a.Numbers) > 0 {
		var sum int64
		terms := make([]string, 0, len(a.Numbers))
		for _, n := range a.Numbers {
			sum += n
			terms = append(terms, fmt.Sprint(n))
		}
		msg := fmt.Sprintf("The sum of %s is %d\n", strings.Join(terms, " + "), sum)

		if a.Output != nil {
			if err := os.WriteFile(*a.Output, []byte(msg), 0o644); err != nil {
				return fmt.Errorf("writing sums to %q: %w", *a.Output, err)
			}
			fmt.Printf("Sums written to %q\n", *a.Output)
		} else {
			fmt.Print(msg)
		}
	}

	if a.Verbose {
		fmt.Printf("\n%+v\n", a)
	}

	return nil
}

func main() {
	var a cliArgs
	if err := onlyargs.Parse(&a); err != nil {
		fmt.Fprint(os.Stderr, a.Usage())
		fail(err)
	}

	if a.Help {
		onlyargs.ShowHelpAndExit(meta.VersionLine() + "\n\n" + a.Usage())
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
