/* Package syntax turns SLTF source text into program nodes.

The language has two kinds of value, integers and strings, and a program is a
whitespace separated sequence of literals, word references, and definitions:

	2 3 +
	"hello, \"world\"\n" .
	: square dup * ;

Lexing (Tokenize) and parsing (BuildAST) are separate passes; the parser only
depends on the Token vocabulary, not on the lexer itself.
*/
package syntax
