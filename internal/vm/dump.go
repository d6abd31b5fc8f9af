package vm

import (
	"fmt"
	"io"
	"strings"

	"github.com/jcorbin/sltf/internal/syntax"
)

// Dump writes a human readable description of the VM state to w: its
// pending queue, value stack, and every defined word.
func Dump(w io.Writer, vm *VM) {
	vmDumper{vm: vm, out: w}.dump()
}

type vmDumper struct {
	vm  *VM
	out io.Writer
}

func (dump vmDumper) dump() {
	fmt.Fprintf(dump.out, "# VM Dump\n")
	dump.dumpQueue()
	dump.dumpStack()
	dump.dumpDict()
}

func (dump vmDumper) dumpQueue() {
	var sb strings.Builder
	q := dump.vm.queue
	for i := 0; i < q.Len(); i++ {
		sb.WriteByte(' ')
		sb.WriteString(q.At(i).String())
	}
	fmt.Fprintf(dump.out, "  queue:%s\n", sb.String())
}

func (dump vmDumper) dumpStack() {
	var sb strings.Builder
	for _, val := range dump.vm.stack {
		sb.WriteByte(' ')
		sb.WriteString(val.String())
	}
	fmt.Fprintf(dump.out, "  stack:%s\n", sb.String())
}

func (dump vmDumper) dumpDict() {
	fmt.Fprintf(dump.out, "# Dictionary\n")
	for _, name := range dump.vm.dict.names() {
		switch word := dump.vm.dict[name].(type) {
		case Native:
			fmt.Fprintf(dump.out, "  %v native\n", name)
		case Compound:
			fmt.Fprintf(dump.out, "  %v\n", syntax.Definition{Name: name, Body: word.Body})
		}
	}
}
