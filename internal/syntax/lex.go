package syntax

import (
	"io"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Tokenize splits text into tokens. Tokens are separated by whitespace; a
// double quote also ends a bare token, starting a string literal.
//
// Each bare run is tried as a delimiter, then an integer, then a symbol; any
// run that is none of those, like "12ab", is an error. An integer is an
// optional minus followed only by decimal digits, so "-" alone is a symbol.
func Tokenize(text string) ([]Token, error) {
	lex := lexer{src: text}
	var toks []Token
	for {
		tok, err := lex.next()
		if err == io.EOF {
			return toks, nil
		} else if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
	}
}

type lexer struct {
	src string
	pos int
}

func (lex *lexer) next() (Token, error) {
	lex.skipSpace()
	if lex.pos >= len(lex.src) {
		return Token{}, io.EOF
	}
	start := lex.pos
	if lex.src[start] == '"' {
		return lex.scanString()
	}
	for lex.pos < len(lex.src) {
		r, n := utf8.DecodeRuneInString(lex.src[lex.pos:])
		if r == '"' || unicode.IsSpace(r) {
			break
		}
		lex.pos += n
	}
	return classify(lex.src[start:lex.pos], start)
}

func (lex *lexer) skipSpace() {
	for lex.pos < len(lex.src) {
		r, n := utf8.DecodeRuneInString(lex.src[lex.pos:])
		if !unicode.IsSpace(r) {
			return
		}
		lex.pos += n
	}
}

func classify(raw string, offset int) (Token, error) {
	switch {
	case raw == ":":
		return ColonToken().At(offset), nil
	case raw == ";":
		return SemicolonToken().At(offset), nil
	case isInteger(raw):
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return Token{}, &LexError{offset, raw, err}
		}
		return IntToken(n).At(offset), nil
	case isSymbol(raw):
		return SymbolToken(raw).At(offset), nil
	}
	return Token{}, &LexError{offset, raw, ErrMalformedToken}
}

func isInteger(raw string) bool {
	digits := strings.TrimPrefix(raw, "-")
	if digits == "" {
		return false
	}
	for i := 0; i < len(digits); i++ {
		if !isDigit(digits[i]) {
			return false
		}
	}
	return true
}

func isSymbol(raw string) bool {
	return raw != "" && !isDigit(raw[0]) && !strings.ContainsRune(raw, '"')
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

// scanString scans a quoted string starting at the current position, which
// must be a double quote.
func (lex *lexer) scanString() (Token, error) {
	start := lex.pos
	var sb strings.Builder
	for i := start + 1; i < len(lex.src); {
		switch c := lex.src[i]; c {
		case '"':
			lex.pos = i + 1
			return StringToken(sb.String()).At(start), nil

		case '\\':
			if i+1 >= len(lex.src) {
				i = len(lex.src)
				continue
			}
			dec, ok := unescape(lex.src[i+1])
			if !ok {
				_, n := utf8.DecodeRuneInString(lex.src[i+1:])
				return Token{}, &LexError{i, lex.src[i : i+1+n], ErrBadEscape}
			}
			sb.WriteByte(dec)
			i += 2

		default:
			sb.WriteByte(c)
			i++
		}
	}
	return Token{}, &LexError{start, lex.src[start:], ErrUnterminatedString}
}

func unescape(c byte) (byte, bool) {
	switch c {
	case 'n':
		return '\n', true
	case 't':
		return '\t', true
	case 'r':
		return '\r', true
	case '\\':
		return '\\', true
	case '"':
		return '"', true
	}
	return 0, false
}

var quoter = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\t", `\t`,
	"\r", `\r`,
)

// Quote renders s as a string literal that Tokenize decodes back into s.
func Quote(s string) string {
	return `"` + quoter.Replace(s) + `"`
}
