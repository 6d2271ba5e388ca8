package argr

import (
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/dzonerzy/go-argr/internal/intern"
)

var (
	// -fbq: every character is a separate presence flag
	combinedShort = regexp.MustCompile(`^-[0-9A-Za-z?]{2,}$`)
	// -o, --open, -s=value, --string=value
	singleFlag = regexp.MustCompile(`^--?[0-9A-Za-z?]`)
)

// scanner walks one token list. pos only moves forward, so tokens consumed
// as values are never looked at again.
type scanner struct {
	parser *Parser
	tokens []string
	pos    int
	start  int // position of the token being resolved
	result map[string]*Param
}

// Parse tokenizes tokens against the registered options without touching
// the parser's cached state. The result maps every alias of an occurring
// option (and the bare name of unregistered ones) to its latest occurrence.
func (p *Parser) Parse(tokens []string) (map[string]*Param, error) {
	s := &scanner{
		parser: p,
		tokens: tokens,
		result: make(map[string]*Param),
	}

	for s.pos < len(s.tokens) {
		s.start = s.pos
		if err := s.scan(s.tokens[s.pos]); err != nil {
			p.logger.Debug("tokenization aborted", zap.Error(err))
			return nil, err
		}
		s.pos++
	}

	p.logger.Debug("arguments tokenized",
		zap.Int("tokens", len(tokens)),
		zap.Int("occurrences", len(s.result)),
	)
	return s.result, nil
}

func (s *scanner) scan(token string) error {
	switch {
	case combinedShort.MatchString(token):
		return s.scanCombined(token)
	case singleFlag.MatchString(token):
		return s.scanSingle(token)
	case s.parser.strict:
		return newSyntaxError(token, s.start)
	default:
		s.parser.logger.Debug("token skipped", zap.String("token", token), zap.Int("position", s.start))
		return nil
	}
}

func (s *scanner) scanCombined(token string) error {
	for i := 1; i < len(token); i++ {
		if err := s.set(intern.Short(token[i]), BoolValue(true), token); err != nil {
			return err
		}
	}
	return nil
}

func (s *scanner) scanSingle(token string) error {
	name := stripDashes(token)

	if eq := strings.IndexByte(name, '='); eq != -1 {
		return s.set(name[:eq], ListValue(name[eq+1:]), token)
	}

	def := s.parser.definitions[name]

	switch {
	case def != nil && def.signature != nil:
		return s.set(name, ListValue(s.take(len(def.signature))...), token)

	case def != nil && def.defaultDriven():
		values := s.takeValues(def.lookahead())
		if len(values) == 0 {
			return s.set(name, def.defaults, token)
		}
		return s.set(name, ListValue(values...), token)

	default:
		values := s.takeValues(-1)
		if len(values) == 0 {
			return s.set(name, BoolValue(true), token)
		}
		return s.set(name, ListValue(values...), token)
	}
}

// take consumes up to n following tokens whatever they look like
func (s *scanner) take(n int) []string {
	end := min(s.pos+1+n, len(s.tokens))
	values := s.tokens[s.pos+1 : end]
	s.pos = end - 1
	return values
}

// takeValues consumes following tokens up to the first one naming a
// registered option. limit < 0 means no limit.
func (s *scanner) takeValues(limit int) []string {
	var values []string
	for s.pos+1 < len(s.tokens) && (limit < 0 || len(values) < limit) {
		next := s.tokens[s.pos+1]
		if s.parser.namesOption(next) {
			break
		}
		values = append(values, next)
		s.pos++
	}
	return values
}

// set records an occurrence under every alias of its definition, replacing
// earlier occurrences of the same option.
func (s *scanner) set(name string, raw Value, token string) error {
	p := s.parser
	def := p.definitions[name]

	if def == nil {
		if p.strict {
			return p.unknownOption(name, token, s.start)
		}
		s.result[name] = NewParam(name, raw, nil)
		p.logger.Debug("occurrence",
			zap.String("name", name),
			zap.Stringer("kind", raw.Kind()),
			zap.Bool("defined", false),
		)
		return nil
	}

	param := NewParam(name, raw, def)
	for _, alias := range def.aliases {
		s.result[alias] = param
	}
	p.logger.Debug("occurrence",
		zap.String("name", name),
		zap.Stringer("kind", raw.Kind()),
		zap.Bool("defined", true),
		zap.Strings("aliases", def.aliases),
	)
	return nil
}

// namesOption reports whether token, with its dashes stripped, is a
// registered alias. Dashed tokens are matched on the part before '='.
func (p *Parser) namesOption(token string) bool {
	name := stripDashes(token)
	if strings.HasPrefix(token, "-") {
		if eq := strings.IndexByte(name, '='); eq != -1 {
			name = name[:eq]
		}
	}
	_, ok := p.definitions[name]
	return ok
}

func stripDashes(token string) string {
	token = strings.TrimPrefix(token, "-")
	return strings.TrimPrefix(token, "-")
}
