package argr

import (
	"errors"
	"fmt"

	"github.com/dzonerzy/go-argr/internal/fuzzy"
)

// ErrorType represents error categories reported by the tokenizer
type ErrorType string

const (
	ErrorTypeInvalidSyntax ErrorType = "invalid_syntax"
	ErrorTypeUnknownOption ErrorType = "unknown_option"
)

var (
	// ErrInvalidSyntax is wrapped by every *ParseError
	ErrInvalidSyntax = errors.New("invalid syntax")

	// ErrNotInitialized is returned by lookups made before Init
	ErrNotInitialized = errors.New("argr: parser not initialized")
)

// ParseError is a strict-mode tokenization failure. The scan stops at the
// first one; no partial results are kept.
type ParseError struct {
	Type       ErrorType
	Message    string
	Token      string // the offending command-line token
	Option     string // option name, for ErrorTypeUnknownOption
	Position   int    // index of Token among the arguments after the command
	Suggestion string // closest registered alias, if suggestions are enabled
}

func (e *ParseError) Error() string {
	if e.Suggestion == "" {
		return e.Message
	}
	return fmt.Sprintf("%s; did you mean '%s'?", e.Message, dashed(e.Suggestion))
}

// Unwrap allows errors.Is(err, ErrInvalidSyntax)
func (e *ParseError) Unwrap() error {
	return ErrInvalidSyntax
}

func newSyntaxError(token string, position int) *ParseError {
	return &ParseError{
		Type:     ErrorTypeInvalidSyntax,
		Message:  fmt.Sprintf("invalid syntax: unexpected token %q at position %d", token, position),
		Token:    token,
		Position: position,
	}
}

func (p *Parser) unknownOption(name, token string, position int) *ParseError {
	err := &ParseError{
		Type:     ErrorTypeUnknownOption,
		Message:  fmt.Sprintf("invalid syntax: unknown option %q in %q", name, token),
		Token:    token,
		Option:   name,
		Position: position,
	}

	// Single characters are one edit away from every other short alias
	if p.suggest && len(name) > 1 {
		aliases := make([]string, 0, len(p.definitions))
		for alias := range p.definitions {
			aliases = append(aliases, alias)
		}
		err.Suggestion = fuzzy.Closest(name, aliases, p.maxDistance)
	}
	return err
}

func dashed(name string) string {
	if len(name) == 1 {
		return "-" + name
	}
	return "--" + name
}
