// Package debug holds environment controlled debugging switches.
package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Lex    bool
	Parse  bool
	Encode bool
	Patch  bool
	Diff   bool
	Match  bool
	Eval   bool
	LSP    bool
}

var d *debug

func init() {
	d = &debug{}
	d.Lex = boolEnv("RJSON_DEBUG_LEX")
	d.Parse = boolEnv("RJSON_DEBUG_PARSE")
	d.Encode = boolEnv("RJSON_DEBUG_ENCODE")
	d.Patch = boolEnv("RJSON_DEBUG_PATCH")
	d.Diff = boolEnv("RJSON_DEBUG_DIFF")
	d.Match = boolEnv("RJSON_DEBUG_MATCH")
	d.Eval = boolEnv("RJSON_DEBUG_EVAL")
	d.LSP = boolEnv("RJSON_DEBUG_LSP")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Lex() bool {
	return d.Lex
}
func Parse() bool {
	return d.Parse
}
func Encode() bool {
	return d.Encode
}
func Patch() bool {
	return d.Patch
}
func Diff() bool {
	return d.Diff
}
func Match() bool {
	return d.Match
}
func Eval() bool {
	return d.Eval
}
func LSP() bool {
	return d.LSP
}
