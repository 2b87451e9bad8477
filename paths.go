package investments

import (
	"fmt"
	"strings"

	"github.com/mitchellh/go-homedir"
)

// expandHome replaces a leading "~" in path with the user's home directory.
// Paths like "~user/x" are returned unchanged.
func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := homedir.Dir()
	if err != nil {
		return "", fmt.Errorf("could not resolve the home directory: %w", err)
	}
	return home + path[1:], nil
}

// normalizePaths expands the statements directory of every portfolio.
func (c *Config) normalizePaths() error {
	for i := range c.Portfolios {
		p := &c.Portfolios[i]
		statements, err := expandHome(p.Statements)
		if err != nil {
			return err
		}
		p.Statements = statements
	}
	return nil
}
