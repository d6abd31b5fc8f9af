package vm

import (
	"sort"

	"github.com/jcorbin/sltf/internal/syntax"
)

// Word is a dictionary entry: either a Native or a Compound.
type Word interface{ word() }

// Native is a built-in stack transformation. Op either completes its whole
// stack effect or returns an error before touching the stack.
type Native struct {
	Name string
	Op   func(vm *VM) error
}

// Compound is a user defined word, run by expanding its body in place.
type Compound struct {
	Body []syntax.Atom
}

func (Native) word()   {}
func (Compound) word() {}

type dictionary map[string]Word

// define binds name to word, returning true if it replaced an existing entry.
func (dict dictionary) define(name string, word Word) (redefined bool) {
	_, redefined = dict[name]
	dict[name] = word
	return redefined
}

func (dict dictionary) names() []string {
	names := make([]string, 0, len(dict))
	for name := range dict {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
