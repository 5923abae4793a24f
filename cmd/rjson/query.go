package main

import (
	"fmt"

	"github.com/signadot/rjson/eval"
	"github.com/signadot/rjson/ir"

	"github.com/scott-cotton/cli"
)

func query(cfg *QueryConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Query.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: query requires an expression", cli.ErrUsage)
	}
	src := args[0]
	for _, file := range inputs(args[1:]) {
		doc, err := getObjFile(cc, file, cfg.parseOpts()...)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		res, err := queryDoc(cfg, doc, src)
		if err != nil {
			return fmt.Errorf("error querying %s: %w", file, err)
		}
		if err := writeNode(cfg.MainConfig, cc.Out, res); err != nil {
			return err
		}
	}
	return nil
}

func queryDoc(cfg *QueryConfig, doc *ir.Node, src string) (*ir.Node, error) {
	if cfg.Select == "" {
		return eval.Eval(doc, src, cfg.Env)
	}
	nodes, err := eval.Select(doc, cfg.Select, src, cfg.Env)
	if err != nil {
		return nil, err
	}
	res := ir.NewArray()
	for _, node := range nodes {
		res.PushNode(node.Clone())
	}
	return res, nil
}
