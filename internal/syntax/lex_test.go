package syntax

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	for _, tc := range []struct {
		name   string
		input  string
		expect []Token
	}{
		{"empty", "", nil},
		{"blank", " \t\n ", nil},

		{"semicolon", ";", []Token{SemicolonToken()}},
		{"colon", ":", []Token{ColonToken()}},
		{"delimiters", ": ;", []Token{ColonToken(), SemicolonToken().At(2)}},
		{"leading space colon", " :", []Token{ColonToken().At(1)}},
		{"trailing space colon", ": ", []Token{ColonToken()}},
		{"padded delimiters", "   :  ; ", []Token{ColonToken().At(3), SemicolonToken().At(6)}},

		{"int", "3", []Token{IntToken(3)}},
		{"negative int", "-3", []Token{IntToken(-3)}},
		{"ints", " -358     932 -5 ", []Token{
			IntToken(-358).At(1),
			IntToken(932).At(10),
			IntToken(-5).At(14),
		}},
		{"max int", "9223372036854775807", []Token{IntToken(9223372036854775807)}},
		{"min int", "-9223372036854775808", []Token{IntToken(-9223372036854775808)}},

		{"empty string", ` "" `, []Token{StringToken("").At(1)}},
		{"string", `"hi"`, []Token{StringToken("hi")}},
		{"string with space", `"hello, there"`, []Token{StringToken("hello, there")}},
		{"escaped quotes", `"\"Yo!\", he said"`, []Token{StringToken(`"Yo!", he said`)}},
		{"escapes", `"a\nb\tc\rd\\e"`, []Token{StringToken("a\nb\tc\rd\\e")}},
		{"two strings", `"hey there" "x"`, []Token{StringToken("hey there"), StringToken("x").At(12)}},
		{"multiline string", "\"a\nb\"", []Token{StringToken("a\nb")}},
		{"string ends symbol", `abc"def"`, []Token{SymbolToken("abc"), StringToken("def").At(3)}},
		{"symbol after string", `"def"abc`, []Token{StringToken("def"), SymbolToken("abc").At(5)}},

		{"plus", "+", []Token{SymbolToken("+")}},
		{"operators", "* /", []Token{SymbolToken("*"), SymbolToken("/").At(2)}},
		{"symbols", "my-symbol %*+", []Token{SymbolToken("my-symbol"), SymbolToken("%*+").At(10)}},
		{"minus", "-", []Token{SymbolToken("-")}},
		{"minus minus int", "--3", []Token{SymbolToken("--3")}},
		{"minus symbol", "-5x", []Token{SymbolToken("-5x")}},
		{"colon prefixed symbol", ":foo", []Token{SymbolToken(":foo")}},
		{"dot", ".", []Token{SymbolToken(".")}},
		{"unicode symbol", "λ→", []Token{SymbolToken("λ→")}},

		{"program", ": square dup * ; 2 square", []Token{
			ColonToken(),
			SymbolToken("square").At(2),
			SymbolToken("dup").At(9),
			SymbolToken("*").At(13),
			SemicolonToken().At(15),
			IntToken(2).At(17),
			SymbolToken("square").At(19),
		}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			toks, err := Tokenize(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.expect, toks)
		})
	}
}

func TestTokenize_errors(t *testing.T) {
	for _, tc := range []struct {
		name       string
		input      string
		offset     int
		text       string
		err        error
		incomplete bool
	}{
		{"digit led symbol", "1 12ab", 2, "12ab", ErrMalformedToken, false},
		{"overflow", "9223372036854775808", 0, "9223372036854775808", strconv.ErrRange, false},
		{"bad escape", `"a\qb"`, 2, `\q`, ErrBadEscape, false},
		{"unterminated string", `1 "abc`, 2, `"abc`, ErrUnterminatedString, true},
		{"trailing backslash", `"abc\`, 0, `"abc\`, ErrUnterminatedString, true},
	} {
		t.Run(tc.name, func(t *testing.T) {
			toks, err := Tokenize(tc.input)
			assert.Nil(t, toks)
			var lexErr *LexError
			require.True(t, errors.As(err, &lexErr), "expected a LexError, got %v", err)
			assert.Equal(t, tc.offset, lexErr.Offset, "expected error offset")
			assert.Equal(t, tc.text, lexErr.Text, "expected error text")
			assert.True(t, errors.Is(err, tc.err), "expected %v, got %v", tc.err, err)
			assert.Equal(t, tc.incomplete, IsIncomplete(err))
		})
	}
}

func TestQuote_roundTrip(t *testing.T) {
	for _, s := range []string{
		"",
		"plain",
		`"Yo!", he said`,
		`back\slash`,
		`\"`,
		"tab\tnew\nline\rreturn",
		`\n is not a newline here`,
		"ünïcødé ✓",
	} {
		t.Run(strconv.Quote(s), func(t *testing.T) {
			toks, err := Tokenize(Quote(s))
			require.NoError(t, err)
			assert.Equal(t, []Token{StringToken(s)}, toks)
		})
	}
}

func TestToken_String(t *testing.T) {
	assert.Equal(t, "-42", IntToken(-42).String())
	assert.Equal(t, `"a\"b"`, StringToken(`a"b`).String())
	assert.Equal(t, "dup", SymbolToken("dup").String())
	assert.Equal(t, ":", ColonToken().String())
	assert.Equal(t, ";", SemicolonToken().String())
	assert.Equal(t, "TokenKind(99)", TokenKind(99).String())
}
