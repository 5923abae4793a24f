package main

import (
	"fmt"

	"github.com/signadot/rjson/token"

	"github.com/scott-cotton/cli"
)

func tokens(cfg *TokensConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Tokens.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) > 1 {
		return fmt.Errorf("%w: tokens takes at most one file, got %d", cli.ErrUsage, len(args))
	}
	file := inputs(args)[0]
	d, err := readInput(cc, file)
	if err != nil {
		return err
	}
	l := token.NewLexer(d)
	var toks []token.Token
	for {
		tok, ok := l.Next()
		if !ok {
			break
		}
		toks = append(toks, tok)
	}
	if err := token.PrintTokens(cc.Out, toks); err != nil {
		return err
	}
	if err := l.Err(); err != nil {
		return fmt.Errorf("%s: %w", file, err)
	}
	return nil
}
