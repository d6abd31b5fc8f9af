package syntax

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildAST(t *testing.T) {
	for _, tc := range []struct {
		name   string
		toks   []Token
		expect []Node
	}{
		{"empty", nil, nil},
		{
			name: "simple",
			toks: []Token{IntToken(2), SymbolToken("DUP")},
			expect: []Node{
				Push(Int(2)),
				Call("DUP"),
			},
		},
		{
			name: "string literal",
			toks: []Token{StringToken("hi"), SymbolToken(".")},
			expect: []Node{
				Push(Str("hi")),
				Call("."),
			},
		},
		{
			name: "definition then use",
			toks: []Token{
				ColonToken(),
				SymbolToken("SQUARE"),
				SymbolToken("DUP"),
				SymbolToken("*"),
				SemicolonToken(),
				IntToken(2),
				SymbolToken("SQUARE"),
			},
			expect: []Node{
				Definition{"SQUARE", []Atom{WordRef("DUP"), WordRef("*")}},
				Push(Int(2)),
				Call("SQUARE"),
			},
		},
		{
			name: "empty body",
			toks: []Token{ColonToken(), SymbolToken("noop"), SemicolonToken()},
			expect: []Node{
				Definition{"noop", []Atom{}},
			},
		},
		{
			name: "literal body",
			toks: []Token{
				ColonToken(), SymbolToken("greet"),
				StringToken("hello"), IntToken(-1), SymbolToken("swap"),
				SemicolonToken(),
			},
			expect: []Node{
				Definition{"greet", []Atom{Lit(Str("hello")), Lit(Int(-1)), WordRef("swap")}},
			},
		},
		{
			name: "interleaved definitions",
			toks: []Token{
				IntToken(1),
				ColonToken(), SymbolToken("a"), IntToken(2), SemicolonToken(),
				ColonToken(), SymbolToken("b"), SymbolToken("a"), SymbolToken("a"), SemicolonToken(),
				SymbolToken("b"),
			},
			expect: []Node{
				Push(Int(1)),
				Definition{"a", []Atom{Lit(Int(2))}},
				Definition{"b", []Atom{WordRef("a"), WordRef("a")}},
				Call("b"),
			},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			nodes, err := BuildAST(tc.toks)
			require.NoError(t, err)
			assert.Equal(t, tc.expect, nodes)
		})
	}
}

func TestBuildAST_errors(t *testing.T) {
	for _, tc := range []struct {
		name       string
		input      string
		index      int
		token      string
		defName    string
		err        error
		incomplete bool
	}{
		{"top level semicolon", "1 ;", 1, ";", "", ErrUnexpectedToken, false},
		{"int name", ": 5 ;", 1, "5", "", ErrUnexpectedToken, false},
		{"string name", `: "x" ;`, 1, `"x"`, "", ErrUnexpectedToken, false},
		{"semicolon name", ": ;", 1, ";", "", ErrUnexpectedToken, false},
		{"nested", ": a : b ; ;", 2, ":", "a", ErrNestedDefinition, false},
		{"unterminated", ": a 1 2", 4, "", "a", ErrUnterminated, true},
		{"unnamed", "1 :", 2, "", "", ErrUnterminated, true},
	} {
		t.Run(tc.name, func(t *testing.T) {
			nodes, err := Parse(tc.input)
			assert.Nil(t, nodes)
			var synErr *SyntaxError
			require.True(t, errors.As(err, &synErr), "expected a SyntaxError, got %v", err)
			assert.Equal(t, tc.index, synErr.Index, "expected token index")
			if tc.token == "" {
				assert.Equal(t, Token{}, synErr.Token, "expected no token")
			} else {
				assert.Equal(t, tc.token, synErr.Token.String(), "expected token")
			}
			assert.Equal(t, tc.defName, synErr.Name, "expected definition name")
			assert.True(t, errors.Is(err, tc.err), "expected %v, got %v", tc.err, err)
			assert.Equal(t, tc.incomplete, IsIncomplete(err))
		})
	}
}

func TestSyntaxError_Error(t *testing.T) {
	_, err := Parse("1 2 ;")
	assert.EqualError(t, err, "syntax error at token #2 ; (offset 4): unexpected token")

	_, err = Parse(": sq dup *")
	assert.EqualError(t, err, `syntax error at end of input in definition of "sq": unterminated definition: incomplete input`)
}

func TestParse(t *testing.T) {
	nodes, err := Parse(`: square dup * ; 2 dup square + 35 swap "done"`)
	require.NoError(t, err)
	assert.Equal(t, []Node{
		Definition{"square", []Atom{WordRef("dup"), WordRef("*")}},
		Push(Int(2)),
		Call("dup"),
		Call("square"),
		Call("+"),
		Push(Int(35)),
		Call("swap"),
		Push(Str("done")),
	}, nodes)

	_, err = Parse("12ab")
	assert.True(t, errors.Is(err, ErrMalformedToken))
}

func TestParse_unfinishedString(t *testing.T) {
	for _, tc := range []struct {
		name       string
		input      string
		err        error
		index      int
		incomplete bool
	}{
		{name: "top level", input: `1 "abc`, err: ErrUnterminatedString, incomplete: true},
		{name: "in body", input: `: x 1 "abc`, err: ErrUnterminatedString, incomplete: true},
		{name: "stray semicolon before", input: `1 ; "abc`, err: ErrUnexpectedToken, index: 1},
		{name: "nested colon before", input: `: x : y "abc`, err: ErrNestedDefinition, index: 2},
		{name: "string as name", input: `: "abc`, err: ErrUnexpectedToken, index: 1},
		{name: "bad token before wins", input: `12ab "abc`, err: ErrMalformedToken},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(tc.input)
			assert.True(t, errors.Is(err, tc.err), "expected %v, got %v", tc.err, err)
			assert.Equal(t, tc.incomplete, IsIncomplete(err))
			if synErr := (*SyntaxError)(nil); errors.As(err, &synErr) {
				assert.Equal(t, tc.index, synErr.Index, "expected error token index")
			}
		})
	}
}

func TestNode_String(t *testing.T) {
	assert.Equal(t, `: greet "hi" 2 dup ;`, Definition{"greet", []Atom{Lit(Str("hi")), Lit(Int(2)), WordRef("dup")}}.String())
	assert.Equal(t, "swap", Call("swap").String())
	assert.Equal(t, `"a\nb"`, Push(Str("a\nb")).String())
}
