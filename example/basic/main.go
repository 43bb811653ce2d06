/*
This is the most basic usage of the onlyargs package: a hand-written parser
with nothing but the --help and --version flags. Any other argument is
rejected with an UnknownArgumentError.
*/

package main

import (
	"fmt"
	"log"

	"github.com/parasyte/onlyargs"
)

var meta = onlyargs.Meta{
	Name:        "basic",
	Version:     "0.2.0",
	Description: "A basic argument parsing example with onlyargs.",
}

type params struct {
	Help    bool
	Version bool
}

func (p *params) ParseArgs(args []onlyargs.RawArg) error {
	cur := onlyargs.NewCursor(args)

	for {
		name, ok := cur.Peek()
		if !ok {
			if cur.Len() == 0 {
				return nil
			}
			raw, err := cur.NextValue(onlyargs.PositionalName)
			if err != nil {
				return err
			}
			return &onlyargs.UnknownArgumentError{Raw: raw}
		}

		switch name {
		case "--help", "-h":
			p.Help = true
			cur.AdvanceFlag()
		case "--version", "-V":
			p.Version = true
			cur.AdvanceFlag()
		default:
			return &onlyargs.UnknownArgumentError{Raw: onlyargs.RawArg(name)}
		}
	}
}

func main() {
	var p params
	if err := onlyargs.Parse(&p); err != nil {
		log.Fatalf("error while parsing the cli arguments: %s", err)
	}

	if p.Help {
		onlyargs.ShowHelpAndExit(meta.Header())
	}
	if p.Version {
		meta.ShowVersionAndExit()
	}

	fmt.Println("Arguments parsed successfully!")
}
