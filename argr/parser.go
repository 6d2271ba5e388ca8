package argr

import (
	"maps"
	"slices"
	"strings"

	"go.uber.org/zap"

	"github.com/dzonerzy/go-argr/internal/intern"
)

// parseState tracks whether the current arguments have been tokenized
type parseState int

const (
	stateUninitialized parseState = iota // Init not called yet
	stateInitialized                     // arguments captured, not tokenized
	stateTokenized                       // occurrences cached
)

// Parser owns a set of option definitions and the arguments of one invocation.
// A Parser is not safe for concurrent use.
type Parser struct {
	definitions map[string]*Option // alias -> definition
	order       []*Option          // registration order

	args        []string
	command     string
	occurrences map[string]*Param
	state       parseState

	strict      bool
	script      bool
	suggest     bool
	maxDistance int
	logger      *zap.Logger
}

// New creates a parser in script mode (args[0] is the interpreter, args[1]
// the command) with lenient handling of unknown tokens.
func New() *Parser {
	return &Parser{
		definitions: make(map[string]*Option),
		script:      true,
		maxDistance: 2,
		logger:      zap.NewNop(),
	}
}

// Strict makes unknown options and stray tokens abort tokenization with a
// *ParseError. Init then tokenizes eagerly so failures surface immediately.
func (p *Parser) Strict(enabled bool) *Parser {
	p.strict = enabled
	p.invalidate()
	return p
}

// Script selects whether Init treats the first two arguments as
// interpreter + command (true, the default) or the first one as the command.
func (p *Parser) Script(enabled bool) *Parser {
	p.script = enabled
	return p
}

// Suggest attaches the closest registered alias to unknown-option errors
func (p *Parser) Suggest(enabled bool) *Parser {
	p.suggest = enabled
	return p
}

// MaxDistance sets the maximum edit distance for suggestions
func (p *Parser) MaxDistance(distance int) *Parser {
	p.maxDistance = distance
	return p
}

// Logger sets the logger used for debug tracing; nil disables logging
func (p *Parser) Logger(logger *zap.Logger) *Parser {
	if logger == nil {
		logger = zap.NewNop()
	}
	p.logger = logger
	return p
}

// Init captures a new argument list and drops any previous results.
// In strict mode the arguments are tokenized right away and the first
// syntax error is returned.
func (p *Parser) Init(args []string) error {
	skip := 1
	if p.script {
		skip = 2
	}

	p.command = ""
	if len(args) >= skip {
		p.command = args[skip-1]
	}
	p.args = nil
	if len(args) > skip {
		p.args = slices.Clone(args[skip:])
	}
	p.occurrences = nil
	p.state = stateInitialized

	p.logger.Debug("arguments initialized",
		zap.String("command", p.command),
		zap.Strings("args", p.args),
		zap.Bool("strict", p.strict),
		zap.Bool("script", p.script),
	)

	if p.strict {
		_, err := p.tokenized()
		return err
	}
	return nil
}

// InitString is Init for a whitespace-separated command line
func (p *Parser) InitString(line string) error {
	return p.Init(strings.Fields(line))
}

// Command returns the command token captured by the last Init
func (p *Parser) Command() string { return p.command }

// Args returns the arguments that follow the command
func (p *Parser) Args() []string { return slices.Clone(p.args) }

// Option registers a definition under name. Further aliases, a default and a
// signature are declared on the returned builder. A name already owned by
// another option moves to the new one; the old option keeps its other aliases.
func (p *Parser) Option(name, description string) *OptionBuilder {
	opt := &Option{description: description}
	p.order = append(p.order, opt)
	p.bind(name, opt)
	return &OptionBuilder{option: opt, parser: p}
}

// Definition returns the option registered under alias, or nil
func (p *Parser) Definition(alias string) *Option {
	return p.definitions[alias]
}

// Options returns the distinct registered options in registration order
func (p *Parser) Options() []*Option {
	out := make([]*Option, 0, len(p.order))
	for _, opt := range p.order {
		if len(opt.aliases) > 0 {
			out = append(out, opt)
		}
	}
	return out
}

func (p *Parser) bind(name string, opt *Option) {
	name = intern.Name(name)
	if prev, ok := p.definitions[name]; ok {
		if prev == opt {
			return
		}
		prev.dropAlias(name)
	}
	p.definitions[name] = opt
	opt.aliases = append(opt.aliases, name)
	p.invalidate()
}

// invalidate drops cached occurrences after the registry or mode changed
func (p *Parser) invalidate() {
	if p.state == stateTokenized {
		p.state = stateInitialized
		p.occurrences = nil
	}
}

// Get resolves alias: the latest occurrence on the command line, else the
// option's default, else an absent Value. Arguments are tokenized on the
// first lookup after Init.
func (p *Parser) Get(alias string) (Value, error) {
	occurrences, err := p.tokenized()
	if err != nil {
		return Value{}, err
	}
	if param, ok := occurrences[alias]; ok {
		return param.Value(), nil
	}
	if def, ok := p.definitions[alias]; ok {
		return def.Value(), nil
	}
	return Value{}, nil
}

// Has reports whether alias occurred on the command line. It returns false
// when the arguments cannot be tokenized.
func (p *Parser) Has(alias string) bool {
	occurrences, err := p.tokenized()
	if err != nil {
		return false
	}
	_, ok := occurrences[alias]
	return ok
}

// Occurrences returns the tokenized arguments keyed by every alias
func (p *Parser) Occurrences() (map[string]*Param, error) {
	occurrences, err := p.tokenized()
	if err != nil {
		return nil, err
	}
	return maps.Clone(occurrences), nil
}

func (p *Parser) tokenized() (map[string]*Param, error) {
	switch p.state {
	case stateUninitialized:
		return nil, ErrNotInitialized
	case stateTokenized:
		return p.occurrences, nil
	case stateInitialized:
	}

	occurrences, err := p.Parse(p.args)
	if err != nil {
		return nil, err
	}
	p.occurrences = occurrences
	p.state = stateTokenized
	return occurrences, nil
}
