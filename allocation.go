package investments

import "gopkg.in/yaml.v3"

// AssetAllocationConfig is a node of a portfolio's target allocation tree.
//
// A node carries a symbol, child nodes, or both. Each node owns its children;
// nothing is inherited from the parent.
type AssetAllocationConfig struct {
	Name   string  `yaml:"name" json:"name" validate:"present"`
	Symbol *string `yaml:"symbol" json:"symbol,omitempty"`

	Weight          Weight `yaml:"weight" json:"weight" validate:"required"`
	RestrictBuying  *bool  `yaml:"restrict-buying" json:"restrict-buying,omitempty"`
	RestrictSelling *bool  `yaml:"restrict-selling" json:"restrict-selling,omitempty"`

	Assets []AssetAllocationConfig `yaml:"assets" json:"assets,omitempty" validate:"dive"`
}

// UnmarshalYAML decodes the node ignoring unknown fields: allocation nodes
// may carry free-form annotations.
func (a *AssetAllocationConfig) UnmarshalYAML(node *yaml.Node) error {
	type plain AssetAllocationConfig
	return node.Decode((*plain)(a))
}

// collectSymbols adds the symbols of a and its descendants to symbols.
func (a *AssetAllocationConfig) collectSymbols(symbols map[string]struct{}) {
	if a.Symbol != nil {
		symbols[*a.Symbol] = struct{}{}
	}
	for i := range a.Assets {
		a.Assets[i].collectSymbols(symbols)
	}
}
