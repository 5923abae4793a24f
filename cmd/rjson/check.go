package main

import (
	"errors"
	"fmt"

	"github.com/signadot/rjson/parse"

	"github.com/scott-cotton/cli"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	failed := 0
	for _, file := range inputs(args) {
		d, err := readInput(cc, file)
		if err != nil {
			return err
		}
		_, err = parse.Parse(d, cfg.parseOpts()...)
		if err == nil {
			if !cfg.Quiet {
				fmt.Fprintf(cc.Out, "%s: ok\n", file)
			}
			continue
		}
		failed++
		fmt.Fprintln(cc.Out, diagnostic(file, err))
	}
	if failed != 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// diagnostic renders err as file:line:col: msg with one based line and
// column.
func diagnostic(file string, err error) string {
	var pErr *parse.ParseErr
	if !errors.As(err, &pErr) || pErr.Position() == nil {
		return fmt.Sprintf("%s: %v", file, err)
	}
	line, col := pErr.Position().LineCol()
	return fmt.Sprintf("%s:%d:%d: %v", file, line+1, col+1, err)
}
