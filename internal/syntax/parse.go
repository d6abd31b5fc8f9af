package syntax

import "errors"

// Parse tokenizes and parses text into program nodes.
//
// Text ending inside a string is only reported as incomplete if the tokens up
// to and including that string would parse, up to perhaps an open definition;
// otherwise the syntax error is returned, since no further input could fix it.
func Parse(text string) ([]Node, error) {
	toks, err := Tokenize(text)
	if err != nil {
		var lexErr *LexError
		if IsIncomplete(err) && errors.As(err, &lexErr) {
			if perr := parseBeforeString(text, lexErr.Offset); perr != nil {
				return nil, perr
			}
		}
		return nil, err
	}
	return BuildAST(toks)
}

// parseBeforeString parses the text before an unfinished string starting at
// offset, with that string standing in as an empty one, returning any error
// other than the text ending too soon.
func parseBeforeString(text string, offset int) error {
	toks, err := Tokenize(text[:offset])
	if err == nil {
		_, err = BuildAST(append(toks, StringToken("").At(offset)))
	}
	if IsIncomplete(err) {
		return nil
	}
	return err
}

type parseState uint8

const (
	topLevel parseState = iota
	waitingForName
	processingBody
)

type parser struct {
	state parseState
	nodes []Node

	name string
	body []Atom
}

// BuildAST groups a token sequence into nodes: literals and symbols at the
// top level become Instructions, and each ": name atom... ;" span becomes
// one Definition. Definitions do not nest, and the sequence must not end
// inside one.
func BuildAST(toks []Token) ([]Node, error) {
	var p parser
	for i, tok := range toks {
		if err := p.feed(tok); err != nil {
			return nil, &SyntaxError{Index: i, Token: tok, Name: p.name, Err: err}
		}
	}
	if p.state != topLevel {
		return nil, &SyntaxError{Index: len(toks), Name: p.name, Err: ErrUnterminated}
	}
	return p.nodes, nil
}

func (p *parser) feed(tok Token) error {
	switch p.state {
	case topLevel:
		if atom, ok := tokenAtom(tok); ok {
			p.nodes = append(p.nodes, Instruction{atom})
		} else if tok.Kind == Colon {
			p.state = waitingForName
		} else {
			return ErrUnexpectedToken
		}

	case waitingForName:
		if tok.Kind != Symbol {
			return ErrUnexpectedToken
		}
		p.name, p.body = tok.Text, []Atom{}
		p.state = processingBody

	case processingBody:
		if atom, ok := tokenAtom(tok); ok {
			p.body = append(p.body, atom)
		} else if tok.Kind == Semicolon {
			p.nodes = append(p.nodes, Definition{p.name, p.body})
			p.name, p.body = "", nil
			p.state = topLevel
		} else if tok.Kind == Colon {
			return ErrNestedDefinition
		} else {
			return ErrUnexpectedToken
		}
	}
	return nil
}

func tokenAtom(tok Token) (Atom, bool) {
	if value, ok := tok.Literal(); ok {
		return Literal{value}, true
	}
	if tok.Kind == Symbol {
		return WordRef(tok.Text), true
	}
	return nil, false
}
