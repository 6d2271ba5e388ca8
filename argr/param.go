package argr

// Param is one resolved occurrence of an option during a tokenization pass
type Param struct {
	name       string
	raw        Value
	definition *Option

	vector Value
	built  bool
}

// NewParam creates an occurrence. def may be nil for names that were never registered.
func NewParam(name string, raw Value, def *Option) *Param {
	return &Param{name: name, raw: raw, definition: def}
}

// Name returns the option name as it appeared on the command line, without dashes
func (p *Param) Name() string { return p.name }

// Raw returns the unlabeled value captured by the tokenizer
func (p *Param) Raw() Value { return p.raw }

// Definition returns the option definition, or nil
func (p *Param) Definition() *Option { return p.definition }

// IsDefined reports whether the occurrence matched a registered option
func (p *Param) IsDefined() bool { return p.definition != nil }

// Value returns the raw value labeled through the definition's signature.
// Computed on first call.
func (p *Param) Value() Value {
	if !p.built {
		var signature []string
		if p.definition != nil {
			signature = p.definition.signature
		}
		p.vector = Vector(p.raw, signature)
		p.built = true
	}
	return p.vector
}
