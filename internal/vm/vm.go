package vm

import (
	"fmt"

	"github.com/gammazero/deque"

	"github.com/jcorbin/sltf/internal/syntax"
)

// VM executes parsed programs against a value stack and a word dictionary.
//
// Pending work lives in an instruction queue. New input is placed at the
// front of the queue, ahead of anything left over from earlier input, and
// each Step takes one node from the front.
type VM struct {
	core

	// The stack holds runtime values; only its top end is ever touched.
	stack []syntax.Prim

	// The queue holds nodes waiting to be executed, front first.
	queue *deque.Deque[syntax.Node]

	// The dictionary maps word names to natives and compound bodies. Only
	// executing a definition changes it after construction.
	dict dictionary

	queueLimit int
}

// AppendProgram places nodes at the front of the instruction queue, in
// order, ahead of any unconsumed nodes from earlier programs.
func (vm *VM) AppendProgram(nodes []syntax.Node) error {
	if err := vm.checkQueue(len(nodes)); err != nil {
		return err
	}
	vm.pushFront(nodes)
	return nil
}

func (vm *VM) pushFront(nodes []syntax.Node) {
	for i := len(nodes) - 1; i >= 0; i-- {
		vm.queue.PushFront(nodes[i])
	}
}

// Finished returns true when the instruction queue is empty.
func (vm *VM) Finished() bool {
	return vm.queue.Len() == 0
}

// Step executes the node at the front of the instruction queue. Calling Step
// on a finished VM panics.
//
// An error from Step leaves the stack as it was before the failing node; the
// failing node itself has been consumed.
func (vm *VM) Step() error {
	if vm.queue.Len() == 0 {
		panic(errEmptyQueue)
	}
	node := vm.queue.PopFront()
	vm.logf(">", "%v -- s:%v q:%v", node, vm.stack, vm.queue.Len())

	switch node := node.(type) {
	case syntax.Instruction:
		return vm.exec(node.Atom)
	case syntax.Definition:
		vm.define(node.Name, node.Body)
		return nil
	}
	panic(fmt.Sprintf("invalid program node %T", node))
}

func (vm *VM) exec(atom syntax.Atom) error {
	switch atom := atom.(type) {
	case syntax.Literal:
		vm.push(atom.Value)
		return nil
	case syntax.WordRef:
		return vm.call(string(atom))
	}
	panic(fmt.Sprintf("invalid atom %T", atom))
}

func (vm *VM) call(name string) error {
	switch word := vm.dict[name].(type) {
	case Native:
		return word.Op(vm)
	case Compound:
		return vm.expand(word.Body)
	case nil:
		return unknownWordError{name, closestWord(name, vm.dict.names())}
	default:
		panic(fmt.Sprintf("invalid word %q type %T", name, word))
	}
}

// expand inlines a compound body at the front of the queue. There is no
// return stack, so a word that refers to itself keeps expanding; only the
// queue limit, if any, stops one whose expansion grows the queue.
func (vm *VM) expand(body []syntax.Atom) error {
	if err := vm.checkQueue(len(body)); err != nil {
		return err
	}
	for i := len(body) - 1; i >= 0; i-- {
		vm.queue.PushFront(syntax.Instruction{Atom: body[i]})
	}
	return nil
}

func (vm *VM) define(name string, body []syntax.Atom) {
	word := Compound{Body: append([]syntax.Atom(nil), body...)}
	if vm.dict.define(name, word) {
		vm.notef("redefined word %q", name)
	} else {
		vm.notef("defined new word %q", name)
	}
}

func (vm *VM) checkQueue(more int) error {
	if limit := vm.queueLimit; limit > 0 && vm.queue.Len()+more > limit {
		return queueLimitError(limit)
	}
	return nil
}
