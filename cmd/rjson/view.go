package main

import (
	"fmt"
	"io"

	"github.com/signadot/rjson/debug"
	"github.com/signadot/rjson/encode"
	"github.com/signadot/rjson/ir"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	for _, file := range inputs(args) {
		node, err := getObjFile(cc, file, cfg.parseOpts()...)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		if err := writeNode(cfg.MainConfig, cc.Out, node); err != nil {
			return fmt.Errorf("error encoding %s: %w", file, err)
		}
	}
	return nil
}

func writeNode(cfg *MainConfig, w io.Writer, node *ir.Node) error {
	opts := cfg.encOpts(w)
	if debug.Encode() {
		debug.Logf("view: encoding %s as %s\n", node.Kind(), encode.FormatFromOpts(opts...))
	}
	if err := encode.Encode(node, w, opts...); err != nil {
		return err
	}
	if encode.FormatFromOpts(opts...).IsYAML() {
		return nil
	}
	_, err := w.Write([]byte("\n"))
	return err
}
