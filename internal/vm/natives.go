package vm

import (
	"github.com/jcorbin/sltf/internal/syntax"
)

// Symbol   Name    Stack effect
//   drop   drop    ( a -- )
//   dup    dup     ( a -- a a )
//   dup2   dup2    ( a b -- a b a b )
//   swap   swap    ( a b -- b a )
//   +      add     ( n m -- n+m )
//   *      mul     ( n m -- n*m )
//   .      show    ( -- ) prints every stack value, top last
var natives = []Native{
	{"drop", (*VM).drop},
	{"dup", (*VM).dup},
	{"dup2", (*VM).dup2},
	{"swap", (*VM).swap},
	{"+", (*VM).add},
	{"*", (*VM).mul},
	{".", (*VM).show},
}

func (vm *VM) drop() error {
	if err := vm.need("drop", 1); err != nil {
		return err
	}
	vm.pop()
	return nil
}

func (vm *VM) dup() error {
	if err := vm.need("dup", 1); err != nil {
		return err
	}
	vm.push(vm.peek(0))
	return nil
}

func (vm *VM) dup2() error {
	if err := vm.need("dup2", 2); err != nil {
		return err
	}
	a, b := vm.peek(1), vm.peek(0)
	vm.push(a)
	vm.push(b)
	return nil
}

func (vm *VM) swap() error {
	if err := vm.need("swap", 2); err != nil {
		return err
	}
	b, a := vm.pop(), vm.pop()
	vm.push(b)
	vm.push(a)
	return nil
}

func (vm *VM) add() error {
	return vm.binaryInt("+", func(a, b syntax.Int) syntax.Int { return a + b })
}

func (vm *VM) mul() error {
	return vm.binaryInt("*", func(a, b syntax.Int) syntax.Int { return a * b })
}

func (vm *VM) show() error {
	for _, val := range vm.stack {
		if err := vm.writeString(" " + val.String()); err != nil {
			return err
		}
	}
	return nil
}

// binaryInt replaces the top two values with op applied to them, after
// checking that both are integers.
func (vm *VM) binaryInt(name string, op func(a, b syntax.Int) syntax.Int) error {
	if err := vm.need(name, 2); err != nil {
		return err
	}
	a, aok := vm.peek(1).(syntax.Int)
	b, bok := vm.peek(0).(syntax.Int)
	if !aok || !bok {
		return typeError{name, []syntax.Prim{vm.peek(1), vm.peek(0)}}
	}
	vm.pop()
	vm.pop()
	vm.push(op(a, b))
	return nil
}

func (vm *VM) need(name string, n int) error {
	if have := len(vm.stack); have < n {
		return underflowError{name, n, have}
	}
	return nil
}

func (vm *VM) push(val syntax.Prim) {
	vm.stack = append(vm.stack, val)
}

func (vm *VM) pop() (val syntax.Prim) {
	i := len(vm.stack) - 1
	val, vm.stack = vm.stack[i], vm.stack[:i]
	return val
}

// peek returns the value i places below the top of the stack.
func (vm *VM) peek(i int) syntax.Prim {
	return vm.stack[len(vm.stack)-1-i]
}
