package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/rjson/ir"
	"github.com/signadot/rjson/parse"

	"github.com/scott-cotton/cli"
)

func readInput(cc *cli.Context, path string) ([]byte, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return d, nil
}

func getObjFile(cc *cli.Context, path string, opts ...parse.ParseOption) (*ir.Node, error) {
	d, err := readInput(cc, path)
	if err != nil {
		return nil, err
	}
	return parse.Parse(d, opts...)
}

// inputs returns args, or stdin if there are none.
func inputs(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}
