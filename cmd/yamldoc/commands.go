package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "d",
			Aliases:     []string{"desc"},
			Description: "description file (YAML mirroring the input's shape)",
			Type:        cli.NamedFuncOpt(cfg.descOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "yamldoc").
		WithSynopsis("yamldoc [opts] [file]").
		WithDescription("yamldoc renders a YAML document as an annotated field listing,\n" +
			"overlaying per-field comments from a description file.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return yamldocMain(cfg, cc, args)
		})
}
