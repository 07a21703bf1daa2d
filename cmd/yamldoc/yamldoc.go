package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/yamlkit/yamldoc/docgen"
	"github.com/yamlkit/yamldoc/ir"
	"github.com/yamlkit/yamldoc/parse"
)

func yamldocMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) > 1 {
		return fmt.Errorf("%w: at most one input file", cli.ErrUsage)
	}
	file := "-"
	if len(args) == 1 {
		file = args[0]
	}

	data, err := readFile(file)
	if err != nil {
		return err
	}
	value, err := parse.Parse(data)
	if err != nil {
		return fmt.Errorf("error parsing %s: %w", file, err)
	}

	var desc *ir.Node
	if cfg.Desc != "" {
		descData, err := readFile(cfg.Desc)
		if err != nil {
			return err
		}
		desc, err = parse.Parse(descData)
		if err != nil {
			return fmt.Errorf("error parsing %s: %w", cfg.Desc, err)
		}
	}

	return docgen.Encode(value, desc, cc.Out, cfg.docOpts(cc.Out)...)
}

func readFile(file string) ([]byte, error) {
	if file == "-" {
		return io.ReadAll(os.Stdin)
	}
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("could not read %q: %w", file, err)
	}
	return data, nil
}
