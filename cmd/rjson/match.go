package main

import (
	"fmt"

	"github.com/signadot/rjson/match"

	"github.com/scott-cotton/cli"
)

func matchCmd(cfg *MatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Match.Parse(cc, args)
	if err != nil {
		cfg.Match.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: match requires a pattern file", cli.ErrUsage)
	}
	pattern, err := getObjFile(cc, args[0], cfg.parseOpts()...)
	if err != nil {
		return fmt.Errorf("error decoding pattern %s: %w", args[0], err)
	}
	failed := 0
	for _, file := range inputs(args[1:]) {
		doc, err := getObjFile(cc, file, cfg.parseOpts()...)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		if !match.Match(doc, pattern) {
			failed++
			if !cfg.Quiet {
				fmt.Fprintf(cc.Out, "%s: no match\n", file)
			}
			continue
		}
		if cfg.Trim {
			if err := writeNode(cfg.MainConfig, cc.Out, match.Trim(pattern, doc)); err != nil {
				return err
			}
			continue
		}
		if !cfg.Quiet {
			fmt.Fprintf(cc.Out, "%s: match\n", file)
		}
	}
	if failed != 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}
