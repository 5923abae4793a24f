package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/rjson/encode"
	"github.com/signadot/rjson/eval"
	"github.com/signadot/rjson/format"
	"github.com/signadot/rjson/parse"

	"github.com/goccy/go-yaml"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
)

type MainConfig struct {
	Color   bool `cli:"name=color desc='encode with color'"`
	WireOut bool `cli:"name=wire desc='output in compact format'"`
	Depth   int  `cli:"name=depth desc='maximum nesting depth of inputs'"`

	OutFormat *format.Format
	RC        *RCFile

	Out      string
	CloseOut func() error

	Main *cli.Command
}

// RCFile holds defaults read with -config.  Command line options take
// precedence.
type RCFile struct {
	MaxDepth int    `yaml:"maxDepth"`
	Color    *bool  `yaml:"color"`
	Format   string `yaml:"format"`
}

func loadRC(path string) (*RCFile, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	rc := &RCFile{}
	if err := yaml.Unmarshal(d, rc); err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", path, err)
	}
	if rc.MaxDepth < 0 {
		return nil, fmt.Errorf("%s: maxDepth must not be negative, got %d", path, rc.MaxDepth)
	}
	if rc.Format != "" {
		if _, err := format.ParseFormat(rc.Format); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}
	return rc, nil
}

func (cfg *MainConfig) configOpt(_ *cli.Context, a string) (any, error) {
	rc, err := loadRC(a)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	cfg.RC = rc
	return a, nil
}

func (cfg *MainConfig) fmtFunc(fp **format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		*fp = &f
		return f, nil
	})
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	depth := cfg.Depth
	if depth == 0 && cfg.RC != nil {
		depth = cfg.RC.MaxDepth
	}
	return []parse.ParseOption{parse.MaxDepth(depth)}
}

func (cfg *MainConfig) format() format.Format {
	if cfg.OutFormat != nil {
		return *cfg.OutFormat
	}
	if cfg.RC != nil && cfg.RC.Format != "" {
		f, _ := format.ParseFormat(cfg.RC.Format)
		return f
	}
	return format.JSONFormat
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeFormat(cfg.format()),
		encode.EncodeWire(cfg.WireOut),
	}
	if cfg.useColor(w) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

func (cfg *MainConfig) useColor(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	if cfg.Main != nil {
		for _, opt := range cfg.Main.Opts {
			if opt.Name == "color" && opt.Value != nil {
				return false
			}
		}
	}
	if cfg.RC != nil && cfg.RC.Color != nil {
		return *cfg.RC.Color
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type CheckConfig struct {
	*MainConfig
	Quiet bool `cli:"name=q desc='only report errors'"`

	Check *cli.Command
}

type TokensConfig struct {
	*MainConfig

	Tokens *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Reverse bool `cli:"name=r desc='reverse the diff'"`
	Patch   bool `cli:"name=patch desc='output an RFC 6902 patch'"`
	Merge   bool `cli:"name=merge desc='output an RFC 7386 merge patch'"`
	Text    bool `cli:"name=text desc='output a line diff of the canonical texts'"`

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig
	Merge bool `cli:"name=merge desc='apply an RFC 7386 merge patch'"`

	Patch *cli.Command
}

type MatchConfig struct {
	*MainConfig
	Trim  bool `cli:"name=trim desc='output matching documents restricted to the pattern'"`
	Quiet bool `cli:"name=q desc='only set the exit status'"`

	Match *cli.Command
}

type QueryConfig struct {
	*MainConfig
	Select string `cli:"name=select desc='path of the candidates for which the expression is a predicate'"`
	Env    eval.Env

	Query *cli.Command
}
