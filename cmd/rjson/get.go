package main

import (
	"fmt"

	"github.com/signadot/rjson/ir"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a document path", cli.ErrUsage)
	}
	path := args[0]
	if path == "" {
		return fmt.Errorf("%w: invalid path \"\"", cli.ErrUsage)
	}
	if path[0] != '$' {
		path = "$" + path
	}
	yp, err := ir.ParsePath(path)
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	multi := multiPath(yp)
	for _, file := range inputs(args[1:]) {
		if err := getFile(cfg, cc, file, path, multi); err != nil {
			return fmt.Errorf("error getting %s from %s: %w", path, file, err)
		}
	}
	return nil
}

func getFile(cfg *GetConfig, cc *cli.Context, file, path string, multi bool) error {
	node, err := getObjFile(cc, file, cfg.parseOpts()...)
	if err != nil {
		return err
	}
	if !multi {
		res, err := node.GetPath(path)
		if err != nil {
			return err
		}
		return writeNode(cfg.MainConfig, cc.Out, res)
	}
	res, err := node.ListPath(nil, path)
	if err != nil {
		return err
	}
	return writeNode(cfg.MainConfig, cc.Out, ir.FromSlice(res))
}

// multiPath reports whether p may select more than one node.
func multiPath(p *ir.Path) bool {
	for ; p != nil; p = p.Next {
		if p.IndexAll || p.Subtree {
			return true
		}
	}
	return false
}
