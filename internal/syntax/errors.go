package syntax

import (
	"errors"
	"fmt"
	"strings"
)

// ErrIncomplete is wrapped by errors caused only by input ending too soon; an
// interactive reader may respond by asking for more input.
var ErrIncomplete = errors.New("incomplete input")

var (
	ErrMalformedToken     = errors.New("malformed token")
	ErrBadEscape          = errors.New("invalid escape sequence")
	ErrUnterminatedString = fmt.Errorf("unterminated string: %w", ErrIncomplete)

	ErrUnexpectedToken  = errors.New("unexpected token")
	ErrNestedDefinition = errors.New("nested definition")
	ErrUnterminated     = fmt.Errorf("unterminated definition: %w", ErrIncomplete)
)

// IsIncomplete returns true if err indicates that the parsed text ended in the
// middle of a string or definition.
func IsIncomplete(err error) bool {
	return errors.Is(err, ErrIncomplete)
}

// LexError reports source text that could not be classified as a token.
type LexError struct {
	Offset int
	Text   string
	Err    error
}

func (err *LexError) Error() string {
	return fmt.Sprintf("lex error at offset %v %q: %v", err.Offset, err.Text, err.Err)
}

func (err *LexError) Unwrap() error { return err.Err }

// SyntaxError reports a token sequence that does not form a program. Index is
// the position of Token within the sequence; when the sequence ended early
// Index is its length and Token is the zero value.
type SyntaxError struct {
	Index int
	Token Token
	Name  string
	Err   error
}

func (err *SyntaxError) Error() string {
	var sb strings.Builder
	sb.WriteString("syntax error")
	if err.Token.Kind != 0 {
		fmt.Fprintf(&sb, " at token #%v %v (offset %v)", err.Index, err.Token, err.Token.Offset)
	} else {
		sb.WriteString(" at end of input")
	}
	if err.Name != "" {
		fmt.Fprintf(&sb, " in definition of %q", err.Name)
	}
	fmt.Fprintf(&sb, ": %v", err.Err)
	return sb.String()
}

func (err *SyntaxError) Unwrap() error { return err.Err }
