// Package cmd implements the CLI application to check and inspect an investments configuration.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/etnz/investments"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/mitchellh/go-homedir"
)

const (
	EnvConfigFile = "INVESTMENTS_CONFIG"
	EnvDBPath     = "INVESTMENTS_DB_PATH"
)

const (
	defaultConfigFile = "~/.investments/config.yaml"
	defaultDBPath     = "~/.investments/db.sqlite"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&checkCmd{}, "configuration")
	c.Register(&showCmd{}, "configuration")
	c.Register(&symbolsCmd{}, "configuration")
	c.Register(&queryCmd{}, "configuration")

	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var configFile = flag.String("config", "", "Path to the configuration file (default $"+EnvConfigFile+" or "+defaultConfigFile+")")
var dbPath = flag.String("db-path", "", "Path to the database file (default $"+EnvDBPath+" or "+defaultDBPath+")")
var verbose = flag.Bool("v", false, "Log debug messages")

// LoadEnv populates the environment from a .env file in the current directory, if there is one.
func LoadEnv() {
	_ = godotenv.Load()
}

// resolvePath returns the flag value, or the environment variable, or the default, with '~' expanded.
func resolvePath(value, env, def string) (string, error) {
	if value == "" {
		value = os.Getenv(env)
	}
	if value == "" {
		value = def
	}
	return homedir.Expand(value)
}

// loadConfig loads the configuration file selected by the command line.
func loadConfig() (*investments.Config, error) {
	path, err := resolvePath(*configFile, EnvConfigFile, defaultConfigFile)
	if err != nil {
		return nil, err
	}
	cfg, err := investments.Load(path)
	if err != nil {
		return nil, err
	}
	db, err := resolvePath(*dbPath, EnvDBPath, defaultDBPath)
	if err != nil {
		return nil, fmt.Errorf("invalid database path: %w", err)
	}
	cfg.DBPath = db
	return cfg, nil
}
