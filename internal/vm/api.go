package vm

import (
	"context"
	"io"

	"github.com/gammazero/deque"
	"github.com/tliron/commonlog"

	"github.com/jcorbin/sltf/internal/panicerr"
	"github.com/jcorbin/sltf/internal/syntax"
)

// New creates a VM whose dictionary holds only the native words, with prog
// as its initial instruction queue. The queue limit does not apply to prog.
func New(prog []syntax.Node, opts ...Option) *VM {
	vm := &VM{
		queue: deque.New[syntax.Node](),
		dict:  make(dictionary, len(natives)),
	}
	vm.logger = commonlog.GetLogger("sltf.vm")
	for _, native := range natives {
		vm.dict[native.Name] = native
	}
	defaultOptions.apply(vm)
	Options(opts...).apply(vm)
	vm.pushFront(prog)
	return vm
}

// Run steps the VM until its queue is empty, returning the first error.
// The context is checked between steps, so a deadline bounds programs that
// never finish.
func (vm *VM) Run(ctx context.Context) error {
	err := panicerr.Recover("VM", func() error {
		for !vm.Finished() {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := vm.Step(); err != nil {
				return err
			}
		}
		return nil
	})
	if ferr := vm.out.Flush(); err == nil {
		err = ferr
	}
	return err
}

// Stack returns a copy of the value stack, bottom first.
func (vm *VM) Stack() []syntax.Prim {
	return append([]syntax.Prim{}, vm.stack...)
}

// Words returns the sorted names of every defined word.
func (vm *VM) Words() []string {
	return vm.dict.names()
}

// Lookup returns the dictionary entry for name.
func (vm *VM) Lookup(name string) (Word, bool) {
	word, defined := vm.dict[name]
	return word, defined
}

// Pending returns the number of nodes waiting in the instruction queue.
func (vm *VM) Pending() int {
	return vm.queue.Len()
}

// Discard drops every pending node, returning how many there were. The stack
// and dictionary are left as they are.
func (vm *VM) Discard() int {
	n := vm.queue.Len()
	vm.queue.Clear()
	return n
}

func WithOutput(w io.Writer) Option                                { return withOutput(w) }
func WithTee(w io.Writer) Option                                   { return withTee(w) }
func WithLogger(logger commonlog.Logger) Option                    { return withLogger(logger) }
func WithLogf(logfn func(mess string, args ...interface{})) Option { return withLogfn(logfn) }

// WithQueueLimit bounds the instruction queue; zero, the default, means no
// bound. Without one, a self-referential word expands forever.
func WithQueueLimit(limit int) Option { return withQueueLimit(limit) }
