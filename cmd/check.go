package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type checkCmd struct{}

func (*checkCmd) Name() string     { return "check" }
func (*checkCmd) Synopsis() string { return "check the configuration file" }
func (*checkCmd) Usage() string {
	return `investor check

  Loads and validates the configuration file, and reports what it contains.
`
}

func (c *checkCmd) SetFlags(f *flag.FlagSet) {}

func (c *checkCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Configuration is valid: %d portfolio(s), %d deposit(s)\n", len(cfg.Portfolios), len(cfg.Deposits))
	return subcommands.ExitSuccess
}
