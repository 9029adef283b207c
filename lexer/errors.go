package lexer

import (
	"errors"
	"fmt"
)

// Reasons a Tokenize call can fail.
var (
	ErrNoMatch             = errors.New("no pattern matches input")
	ErrUnterminatedLiteral = errors.New("unterminated literal")
	ErrInvalidEscape       = errors.New("invalid escape sequence")
	ErrEmptyCharLiteral    = errors.New("empty character literal")
)

// Error is a lexical error carrying the position and the fragment of input
// that caused it. It wraps one of the Err* sentinel values.
type Error struct {
	Line     int
	Col      int
	Fragment string
	Err      error
}

func (e *Error) Error() string {
	return fmt.Sprintf("line %d, col %d: %v near %q", e.Line, e.Col, e.Err, e.Fragment)
}

func (e *Error) Unwrap() error {
	return e.Err
}
