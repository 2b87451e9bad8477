package investments

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Broker identifies a supported brokerage. The zero value is unset.
type Broker int

const (
	InteractiveBrokers Broker = iota + 1
	OpenBroker
)

// brokerTokens lists every broker with its token in the configuration file.
var brokerTokens = []struct {
	broker Broker
	token  string
}{
	{InteractiveBrokers, "interactive-brokers"},
	{OpenBroker, "open-broker"},
}

// BrokerTokens returns the accepted broker tokens.
func BrokerTokens() []string {
	tokens := make([]string, len(brokerTokens))
	for i, b := range brokerTokens {
		tokens[i] = b.token
	}
	return tokens
}

// ParseBroker returns the broker named by token.
func ParseBroker(token string) (Broker, error) {
	for _, b := range brokerTokens {
		if b.token == token {
			return b.broker, nil
		}
	}
	return 0, &ParseError{What: "broker", Raw: token, Accepted: BrokerTokens()}
}

func (b Broker) String() string {
	for _, t := range brokerTokens {
		if t.broker == b {
			return t.token
		}
	}
	return fmt.Sprintf("Broker(%d)", int(b))
}

// UnmarshalYAML reads a broker token from a yaml scalar.
func (b *Broker) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	v, err := ParseBroker(s)
	if err != nil {
		return err.(*ParseError).at(node.Line)
	}
	*b = v
	return nil
}

func (b Broker) MarshalJSON() ([]byte, error) { return json.Marshal(b.String()) }

// BrokersConfig holds the settings of each brokerage.
type BrokersConfig struct {
	InteractiveBrokers *BrokerConfig `yaml:"interactive-brokers" json:"interactive-brokers,omitempty"`
	OpenBroker         *BrokerConfig `yaml:"open-broker" json:"open-broker,omitempty"`
}

// Get returns the settings of broker b, or nil if there are none.
func (c *BrokersConfig) Get(b Broker) *BrokerConfig {
	switch b {
	case InteractiveBrokers:
		return c.InteractiveBrokers
	case OpenBroker:
		return c.OpenBroker
	default:
		return nil
	}
}

// BrokerConfig holds the settings of a single brokerage.
type BrokerConfig struct {
	// DepositCommissions maps a transaction kind to the commission it costs.
	DepositCommissions map[string]TransactionCommissionSpec `yaml:"deposit-commissions" json:"deposit-commissions" validate:"required,dive"`
}

// TransactionCommissionSpec is the commission charged for a transaction.
type TransactionCommissionSpec struct {
	FixedAmount decimal.Decimal `yaml:"fixed-amount" json:"fixed-amount" validate:"required"`
}
