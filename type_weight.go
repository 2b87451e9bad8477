package investments

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Weight is a target share of an allocation node, as a fraction in [0, 1].
type Weight struct {
	decimal.Decimal
}

// ParseWeight reads a whole percentage like "45%" into the exact fraction 0.45.
func ParseWeight(s string) (Weight, error) {
	invalid := &ParseError{What: "weight", Raw: s}
	digits, ok := strings.CutSuffix(s, "%")
	if !ok {
		return Weight{}, invalid
	}
	// an explicit plus sign is accepted, as in "+45%".
	percent, err := strconv.ParseUint(strings.TrimPrefix(digits, "+"), 10, 8)
	if err != nil || percent > 100 {
		return Weight{}, invalid
	}
	return Weight{decimal.New(int64(percent), -2)}, nil
}

// Percent returns the weight as a percentage.
func (w Weight) Percent() decimal.Decimal { return w.Shift(2) }

func (w Weight) String() string { return w.Percent().String() + "%" }

// UnmarshalYAML reads a weight from a yaml scalar.
func (w *Weight) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	v, err := ParseWeight(s)
	if err != nil {
		return err.(*ParseError).at(node.Line)
	}
	*w = v
	return nil
}
