package main

import (
	"fmt"
	"io"

	"github.com/signadot/rjson/encode"
	"github.com/signadot/rjson/ir"
	"github.com/signadot/rjson/libdiff"
	"github.com/signadot/rjson/patch"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	if count(cfg.Patch, cfg.Merge, cfg.Text) > 1 {
		return fmt.Errorf("%w: must specify at most one of -patch -merge -text", cli.ErrUsage)
	}
	y1, err := getObjFile(cc, args[0], cfg.parseOpts()...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	y2, err := getObjFile(cc, args[1], cfg.parseOpts()...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	differs, err := diffInputs(cfg, cc.Out, y1, y2)
	if err != nil {
		return err
	}
	if differs {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func diffInputs(cfg *DiffConfig, w io.Writer, a, b *ir.Node) (bool, error) {
	changes := libdiff.Diff(a, b)
	if len(changes) == 0 {
		return false, nil
	}
	if cfg.Reverse {
		a, b = b, a
		changes = libdiff.Reverse(changes)
	}
	switch {
	case cfg.Text:
		_, err := io.WriteString(w, libdiff.TextDiff(a, b, cfg.useColor(w)))
		return true, err
	case cfg.Merge:
		mp, err := patch.CreateMergePatch(a, b)
		if err != nil {
			return true, err
		}
		return true, writeNode(cfg.MainConfig, w, mp)
	case cfg.Patch:
		return true, writeNode(cfg.MainConfig, w, libdiff.ToPatch(changes))
	}
	list := ir.NewArray()
	for i := range changes {
		list.Push(&changes[i])
	}
	if err := encode.Encode(list, w, cfg.encOpts(w)...); err != nil {
		return true, err
	}
	_, err := w.Write([]byte("\n"))
	return true, err
}

func count(vs ...bool) int {
	ttl := 0
	for _, v := range vs {
		if v {
			ttl++
		}
	}
	return ttl
}
