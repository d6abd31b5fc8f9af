/* Command sltf runs programs in a small stack language, something like FORTH.

A program is a sequence of whitespace separated tokens:

	2 3 +          integers and "quoted strings" push themselves
	dup swap drop  words run against the value stack
	: sq dup * ;   colon definitions name a sequence of words

Strings may contain the escapes \n \t \r \\ and \", and may span lines, as
may definitions. The built in words are:

	drop  ( a -- )
	dup   ( a -- a a )
	dup2  ( a b -- a b a b )
	swap  ( a b -- b a )
	+     ( n m -- n+m )
	*     ( n m -- n*m )
	.     ( -- ) prints every value on the stack, top last

Definitions take effect when they are reached, not when they are read, and a
later definition of a name replaces any earlier one, built in words included.
A defined word runs by splicing its body into the program in place of its
name, so it sees whatever definitions its words have when they run:

	: a b ;
	: b 5 ;
	a .      prints " 5"

There is no return stack, so a word may refer to itself; there is also no
control flow, so it never stops. Use -timeout, and -queue-limit for words like
": grow grow grow ;" that keep growing the pending program.

Without file arguments, sltf reads lines interactively, answering each with
" ok" or an error. Errors abandon the rest of the line that caused them, but
keep the stack and every definition made so far. With file arguments, each
file is run in order and the first error stops everything; "-" names
standard input.

Settings may also come from an sltf.toml file, read from the working directory
or named by -config, for example:

	init = ": sq dup * ;"
	prelude = ["lib.sltf"]
	prompt = "> "
	continue-prompt = ". "
	history = "/tmp/sltf_history"
	queue-limit = 100000
	timeout = "5s"
	trace = false
	verbosity = 0

Flags given on the command line override the file.
*/
package main
