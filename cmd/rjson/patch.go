package main

import (
	"fmt"

	"github.com/signadot/rjson/patch"

	"github.com/scott-cotton/cli"
)

func patchCmd(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 || len(args) > 2 {
		return fmt.Errorf("%w: patch requires a patch file and at most one document", cli.ErrUsage)
	}
	p, err := getObjFile(cc, args[0], cfg.parseOpts()...)
	if err != nil {
		return fmt.Errorf("error decoding patch %s: %w", args[0], err)
	}
	file := inputs(args[1:])[0]
	if file == "-" && args[0] == "-" {
		return fmt.Errorf("%w: patch and document cannot both be stdin", cli.ErrUsage)
	}
	doc, err := getObjFile(cc, file, cfg.parseOpts()...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", file, err)
	}
	apply := patch.Apply
	if cfg.Merge {
		apply = patch.MergePatch
	}
	res, err := apply(doc, p)
	if err != nil {
		return fmt.Errorf("error patching %s: %w", file, err)
	}
	return writeNode(cfg.MainConfig, cc.Out, res)
}
