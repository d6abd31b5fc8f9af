/* Package vm implements the SLTF execution engine.

A VM owns three pieces of state:

  - the value stack, a LIFO of syntax.Prim values
  - the instruction queue, program nodes waiting to run, front first
  - the dictionary, mapping word names to natives or compound bodies

Literals push their value. A word reference runs a native operation directly
against the stack, or, for a compound word, copies the word's body to the
front of the queue. That expansion is macro style: there is no return stack
and so no call depth limit. A word like

	: forever forever ;

never finishes, and neither does one like ": grow grow grow ;" whose queue
grows without bound. Run's context bounds both; WithQueueLimit turns the
second into an ErrQueueOverflow.

Definitions only change the dictionary once their node is executed, and a
later definition of the same name replaces the earlier one entirely.
*/
package vm
