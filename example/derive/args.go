package main

//go:generate go run github.com/parasyte/onlyargs/cmd/onlyargs-gen args.go

// A full argument parsing example with onlyargs-gen.
// Sums a list of numbers and writes the result to a file or standard output.
//
//onlyargs:parser
type cliArgs struct {
	// Your username.
	Username string

	// Output file path.
	Output *string `args:"|||path"`

	// A list of numbers to sum.
	Numbers []int64

	// Set the width.
	Width int64 `args:"||42"`

	// Enable verbose output.
	Verbose bool

	Help    bool
	Version bool
}
