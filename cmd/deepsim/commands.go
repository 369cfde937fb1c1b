package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts, &cli.Opt{
		Name:        "min",
		Description: "minimum similarity percentage, exit 1 when not met",
		Type:        cli.NamedFuncOpt(cli.FuncOpt(cfg.mkMinSimilarity()), "(percent)"),
	})

	return cli.NewCommandAt(&cfg.Main, "deepsim").
		WithSynopsis("deepsim [opts] control candidate").
		WithDescription("deepsim scores how closely a candidate document matches a control document.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return compare(cfg, cc, args)
		})
}
