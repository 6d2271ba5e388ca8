// Package schema loads option definitions from YAML or TOML documents and
// registers them on an argr.Parser.
package schema

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/dzonerzy/go-argr/argr"
)

// ErrNoAliases is returned by Apply for an option without any alias
var ErrNoAliases = errors.New("option has no aliases")

// File is a document of option definitions
type File struct {
	Options []Option `yaml:"options" toml:"options"`
}

// Option mirrors the arguments of argr.Parser.Option and its builder.
// Default may be a scalar or a list; scalars of any type are kept as text.
type Option struct {
	Aliases     []string `yaml:"aliases" toml:"aliases"`
	Description string   `yaml:"description" toml:"description"`
	Default     any      `yaml:"default" toml:"default"`
	Signature   []string `yaml:"signature" toml:"signature"`
}

// DecodeYAML reads a YAML document
func DecodeYAML(r io.Reader) (*File, error) {
	var f File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return &f, nil
		}
		return nil, fmt.Errorf("schema: decode yaml: %w", err)
	}
	return &f, nil
}

// DecodeTOML reads a TOML document
func DecodeTOML(r io.Reader) (*File, error) {
	var f File
	md, err := toml.NewDecoder(r).Decode(&f)
	if err != nil {
		return nil, fmt.Errorf("schema: decode toml: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("schema: decode toml: unknown key %q", undecoded[0].String())
	}
	return &f, nil
}

// Apply registers every option on p, in document order.
// Nothing is registered if any option is invalid.
func (f *File) Apply(p *argr.Parser) error {
	defaults := make([][]string, len(f.Options))
	for i, o := range f.Options {
		if len(o.Aliases) == 0 {
			return fmt.Errorf("schema: option %d: %w", i, ErrNoAliases)
		}
		values, err := defaultValues(o.Default)
		if err != nil {
			return fmt.Errorf("schema: option %q: %w", o.Aliases[0], err)
		}
		defaults[i] = values
	}

	for i, o := range f.Options {
		b := p.Option(o.Aliases[0], o.Description).Alias(o.Aliases[1:]...)
		if _, list := o.Default.([]any); list {
			b.DefaultList(defaults[i]...)
		} else if defaults[i] != nil {
			b.Default(defaults[i]...)
		}
		if o.Signature != nil {
			b.Signature(o.Signature...)
		}
	}
	return nil
}

// defaultValues flattens a decoded default into strings. nil means no default.
func defaultValues(v any) ([]string, error) {
	switch v := v.(type) {
	case nil:
		return nil, nil
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s, err := scalar(item)
			if err != nil {
				return nil, err
			}
			out = append(out, s)
		}
		return out, nil
	default:
		s, err := scalar(v)
		if err != nil {
			return nil, err
		}
		return []string{s}, nil
	}
}

func scalar(v any) (string, error) {
	switch v := v.(type) {
	case string:
		return v, nil
	case bool:
		return strconv.FormatBool(v), nil
	case int:
		return strconv.Itoa(v), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64), nil
	default:
		return "", fmt.Errorf("unsupported default of type %T", v)
	}
}
