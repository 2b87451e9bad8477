package investments

import (
	"fmt"
	"time"
)

// DefaultCacheExpireTime is how long downstream caches keep fetched data.
const DefaultCacheExpireTime = time.Minute

// Config is the validated content of the configuration file.
//
// It is built once by Load and must not be modified afterwards.
type Config struct {
	// DBPath is where downstream caches are stored. It is set by the caller.
	DBPath string `yaml:"-" json:"-"`
	// CacheExpireTime is set by the loader to DefaultCacheExpireTime.
	CacheExpireTime time.Duration `yaml:"-" json:"-"`

	Deposits   []DepositConfig   `yaml:"deposits" json:"deposits" validate:"dive"`
	Portfolios []PortfolioConfig `yaml:"portfolios" json:"portfolios" validate:"required,dive"`
	Brokers    *BrokersConfig    `yaml:"brokers" json:"brokers" validate:"required"`

	AlphaVantage *AlphaVantageConfig `yaml:"alphavantage" json:"alphavantage" validate:"required"`
}

// GetPortfolio returns the portfolio called name.
func (c *Config) GetPortfolio(name string) (*PortfolioConfig, error) {
	for i := range c.Portfolios {
		if c.Portfolios[i].Name == name {
			return &c.Portfolios[i], nil
		}
	}
	return nil, fmt.Errorf("%q portfolio is not defined in the configuration file", name)
}

// AlphaVantageConfig holds the credentials of the AlphaVantage quotes API.
type AlphaVantageConfig struct {
	APIKey string `yaml:"api-key" json:"api-key" validate:"present"`
}
