package syntax

import (
	"fmt"
	"strconv"
)

// TokenKind classifies a Token.
type TokenKind uint8

// Token kinds, in no particular order.
const (
	IntLiteral TokenKind = iota + 1
	StringLiteral
	Symbol
	Colon
	Semicolon
)

var tokenKindNames = [...]string{
	IntLiteral:    "int",
	StringLiteral: "string",
	Symbol:        "symbol",
	Colon:         "colon",
	Semicolon:     "semicolon",
}

func (kind TokenKind) String() string {
	if int(kind) < len(tokenKindNames) && tokenKindNames[kind] != "" {
		return tokenKindNames[kind]
	}
	return fmt.Sprintf("TokenKind(%d)", uint8(kind))
}

// Token is a single lexical item. Int is only meaningful for IntLiteral; Text
// holds the decoded body of a StringLiteral or the name of a Symbol.
type Token struct {
	Kind   TokenKind
	Int    int64
	Text   string
	Offset int
}

// IntToken returns an IntLiteral token.
func IntToken(n int64) Token { return Token{Kind: IntLiteral, Int: n} }

// StringToken returns a StringLiteral token.
func StringToken(s string) Token { return Token{Kind: StringLiteral, Text: s} }

// SymbolToken returns a Symbol token.
func SymbolToken(name string) Token { return Token{Kind: Symbol, Text: name} }

// ColonToken returns a Colon token.
func ColonToken() Token { return Token{Kind: Colon} }

// SemicolonToken returns a Semicolon token.
func SemicolonToken() Token { return Token{Kind: Semicolon} }

// At returns a copy of the token located at the given source offset.
func (tok Token) At(offset int) Token {
	tok.Offset = offset
	return tok
}

// Literal returns the value carried by a literal token, and false for any
// other kind of token.
func (tok Token) Literal() (Prim, bool) {
	switch tok.Kind {
	case IntLiteral:
		return Int(tok.Int), true
	case StringLiteral:
		return Str(tok.Text), true
	}
	return nil, false
}

func (tok Token) String() string {
	switch tok.Kind {
	case IntLiteral:
		return strconv.FormatInt(tok.Int, 10)
	case StringLiteral:
		return Quote(tok.Text)
	case Symbol:
		return tok.Text
	case Colon:
		return ":"
	case Semicolon:
		return ";"
	}
	return tok.Kind.String()
}
