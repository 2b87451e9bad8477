package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/investments/renderer"
	"github.com/google/subcommands"
)

// showCmd holds the flags for the 'show' subcommand.
type showCmd struct {
	portfolio string
	raw       bool
}

func (*showCmd) Name() string     { return "show" }
func (*showCmd) Synopsis() string { return "display the configuration" }
func (*showCmd) Usage() string {
	return `investor show [-p <portfolio>] [-raw]

  Displays the configuration: portfolios, deposits and brokers.
`
}

func (c *showCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.portfolio, "p", "", "Display only this portfolio")
	f.BoolVar(&c.raw, "raw", false, "Print markdown source instead of rendering it")
}

func (c *showCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		return subcommands.ExitFailure
	}

	md := renderer.RenderConfig(cfg)
	if c.portfolio != "" {
		p, err := cfg.GetPortfolio(c.portfolio)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		md = renderer.RenderPortfolio(p)
	}

	if c.raw {
		fmt.Print(md)
		return subcommands.ExitSuccess
	}
	printMarkdown(md)
	return subcommands.ExitSuccess
}
