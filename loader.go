package investments

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"reflect"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// requiredFields checks the `validate:"required"` tags once the document is decoded.
var requiredFields = newRequiredFields()

// presentTag marks fields whose key must appear in the document, whatever
// its value, even "". It is enforced on the yaml tree by missingKey.
const presentTag = "present"

func newRequiredFields() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation(presentTag, func(validator.FieldLevel) bool { return true }); err != nil {
		panic(err)
	}
	// report fields by their name in the document.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Load reads, validates and returns the configuration file at path.
func Load(path string) (*Config, error) { return LoadFile(afero.NewOsFs(), path) }

// LoadFile is like Load but reads path from fsys.
func LoadFile(fsys afero.Fs, path string) (*Config, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("could not read configuration file %q: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("error while reading %q configuration file: %w", path, err)
	}
	log.Debug().
		Str("path", path).
		Int("portfolios", len(cfg.Portfolios)).
		Int("deposits", len(cfg.Deposits)).
		Msg("configuration loaded")
	return cfg, nil
}

// Parse decodes and validates a configuration document.
//
// The returned error matches ErrSyntax if the document does not follow the
// schema, and ErrInvalid if its values are inconsistent.
func Parse(data []byte) (*Config, error) {
	cfg, err := decode(data)
	if err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.normalizePaths(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// decode reads a single yaml document into a Config, rejecting unknown and
// missing fields.
func decode(data []byte) (*Config, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	cfg := new(Config)
	if err := dec.Decode(cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrSyntax)
		}
		if errors.Is(err, ErrSyntax) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrSyntax, err)
	}
	var extra yaml.Node
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: expected a single document", ErrSyntax)
	}

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSyntax, err)
	}
	if field := missingKey(&root, reflect.TypeOf(cfg), ""); field != "" {
		return nil, fmt.Errorf("%w: missing field %q", ErrSyntax, field)
	}
	if err := requiredFields.Struct(cfg); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			_, field, _ := strings.Cut(fieldErrs[0].Namespace(), ".")
			return nil, fmt.Errorf("%w: missing field %q", ErrSyntax, field)
		}
		return nil, fmt.Errorf("%w: %w", ErrSyntax, err)
	}
	for i := range cfg.Portfolios {
		if master := cfg.Portfolios[i].nullMergeList(); master != "" {
			return nil, fmt.Errorf("%w: portfolios[%d].merge-performance[%s]: expected a list of symbols, got null", ErrSyntax, i, master)
		}
	}
	return cfg, nil
}

// missingKey returns the path of the first field tagged `validate:"present"`
// whose key is absent or null in node, decoded as a t. It returns "" if there
// is none.
func missingKey(node *yaml.Node, t reflect.Type, path string) string {
	for node.Kind == yaml.DocumentNode && len(node.Content) > 0 {
		node = node.Content[0]
	}
	if node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	switch t.Kind() {
	case reflect.Struct:
		if node.Kind != yaml.MappingNode {
			return ""
		}
		values := make(map[string]*yaml.Node, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			values[node.Content[i].Value] = node.Content[i+1]
		}
		for i := range t.NumField() {
			f := t.Field(i)
			name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
			if name == "" || name == "-" {
				continue
			}
			field := name
			if path != "" {
				field = path + "." + name
			}
			value, ok := values[name]
			if !ok || value.ShortTag() == "!!null" {
				if slices.Contains(strings.Split(f.Tag.Get("validate"), ","), presentTag) {
					return field
				}
				continue
			}
			if missing := missingKey(value, f.Type, field); missing != "" {
				return missing
			}
		}
	case reflect.Slice:
		if node.Kind != yaml.SequenceNode {
			return ""
		}
		for i, item := range node.Content {
			if missing := missingKey(item, t.Elem(), fmt.Sprintf("%s[%d]", path, i)); missing != "" {
				return missing
			}
		}
	case reflect.Map:
		if node.Kind != yaml.MappingNode {
			return ""
		}
		for i := 0; i+1 < len(node.Content); i += 2 {
			key := node.Content[i].Value
			if missing := missingKey(node.Content[i+1], t.Elem(), fmt.Sprintf("%s[%s]", path, key)); missing != "" {
				return missing
			}
		}
	}
	return ""
}

// applyDefaults fills the optional values the document left out.
func (c *Config) applyDefaults() {
	c.CacheExpireTime = DefaultCacheExpireTime
	for i := range c.Portfolios {
		p := &c.Portfolios[i]
		if p.TaxPaymentDay.IsZero() {
			p.TaxPaymentDay = DefaultTaxPaymentDay
		}
		p.normalizeMergePerformance()
	}
}
