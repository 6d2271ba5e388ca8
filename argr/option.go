package argr

import (
	"slices"
)

// Option is a registered option definition, addressable by each of its aliases
type Option struct {
	aliases     []string
	description string
	defaults    Value
	signature   []string
	hasDefault  bool

	resolved Value
	built    bool
}

// Name returns the first live alias, or "" if every alias was taken over by later registrations
func (o *Option) Name() string {
	if len(o.aliases) == 0 {
		return ""
	}
	return o.aliases[0]
}

// Aliases returns the names that currently resolve to this option
func (o *Option) Aliases() []string { return slices.Clone(o.aliases) }

// Description returns the free-text description
func (o *Option) Description() string { return o.description }

// Default returns the raw default; absent if none was declared
func (o *Option) Default() Value { return o.defaults }

// Signature returns the positional labels, or nil
func (o *Option) Signature() []string { return slices.Clone(o.signature) }

// HasDefault reports whether a default or a signature was declared
func (o *Option) HasDefault() bool { return o.hasDefault }

// Value returns what a lookup yields when the option was not given on the
// command line: false when it was registered bare, otherwise the default
// labeled through the signature.
func (o *Option) Value() Value {
	if !o.built {
		if o.hasDefault {
			o.resolved = Vector(o.defaults, o.signature)
		} else {
			o.resolved = BoolValue(false)
		}
		o.built = true
	}
	return o.resolved
}

// defaultDriven reports whether occurrences without an inline value take
// their tokens according to the default's shape.
func (o *Option) defaultDriven() bool {
	return o.defaults.kind == KindString || o.defaults.kind == KindList
}

// lookahead returns how many following tokens a default-driven occurrence
// takes: one for a scalar default, the list length for a list default.
func (o *Option) lookahead() int {
	switch o.defaults.kind {
	case KindString:
		return 1
	case KindList:
		return len(o.defaults.list)
	default:
		return 0
	}
}

func (o *Option) dropAlias(name string) {
	o.aliases = slices.DeleteFunc(o.aliases, func(a string) bool { return a == name })
}

// OptionBuilder configures an option registered with Parser.Option
type OptionBuilder struct {
	option *Option
	parser *Parser
}

// Alias registers additional names for the option
func (b *OptionBuilder) Alias(names ...string) *OptionBuilder {
	for _, name := range names {
		b.parser.bind(name, b.option)
	}
	return b
}

// Default sets the value used when the option is absent from the command
// line. One value declares a scalar default (the option then takes one
// following token), several declare a list (taking that many tokens).
// Default() with no values declares an absent default. Use DefaultList for
// a list of one or zero values.
func (b *OptionBuilder) Default(values ...string) *OptionBuilder {
	switch len(values) {
	case 0:
		return b.setDefault(Value{})
	case 1:
		return b.setDefault(StringValue(values[0]))
	default:
		return b.setDefault(ListValue(values...))
	}
}

// DefaultList sets a list default whatever its length. The option then
// takes len(values) following tokens, and a signature labels the default.
func (b *OptionBuilder) DefaultList(values ...string) *OptionBuilder {
	return b.setDefault(ListValue(values...))
}

func (b *OptionBuilder) setDefault(v Value) *OptionBuilder {
	b.option.defaults = v
	b.option.hasDefault = true
	b.touch()
	return b
}

// Signature declares positional labels. The option then always consumes
// len(labels) following tokens and its value is returned labeled.
func (b *OptionBuilder) Signature(labels ...string) *OptionBuilder {
	b.option.signature = slices.Clone(labels)
	if b.option.signature == nil {
		b.option.signature = []string{}
	}
	b.option.hasDefault = true
	b.touch()
	return b
}

// Back returns to the parser for further chaining
func (b *OptionBuilder) Back() *Parser {
	return b.parser
}

// Option returns the definition being built
func (b *OptionBuilder) Option() *Option {
	return b.option
}

func (b *OptionBuilder) touch() {
	b.option.built = false
	b.parser.invalidate()
}
