package main

import (
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"

	"github.com/yamlkit/yamldoc/docgen"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='render with color'"`

	Desc string

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) descOpt(cc *cli.Context, a string) (any, error) {
	cfg.Desc = a
	return a, nil
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

func (cfg *MainConfig) docOpts(w io.Writer) []docgen.Option {
	if cfg.Color {
		return []docgen.Option{docgen.WithColors(docgen.NewColors())}
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return nil
	}
	f, ok := w.(*os.File)
	if !ok {
		return nil
	}
	if isatty.IsTerminal(f.Fd()) {
		return []docgen.Option{docgen.WithColors(docgen.NewColors())}
	}
	return nil
}
