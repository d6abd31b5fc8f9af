package vm

import (
	"io"

	"github.com/tliron/commonlog"

	"github.com/jcorbin/sltf/internal/flushio"
)

// Option customizes a VM under construction.
type Option interface{ apply(vm *VM) }

// Options combines any number of options into one, applied in order.
func Options(opts ...Option) Option {
	var all options
	for _, opt := range opts {
		switch impl := opt.(type) {
		case nil:
		case options:
			all = append(all, impl...)
		default:
			all = append(all, opt)
		}
	}
	if len(all) == 1 {
		return all[0]
	}
	return all
}

type options []Option

func (opts options) apply(vm *VM) {
	for _, opt := range opts {
		opt.apply(vm)
	}
}

var defaultOptions = options{
	withOutput(io.Discard),
}

type withLogfn func(mess string, args ...interface{})

func (logfn withLogfn) apply(vm *VM) {
	vm.logfn = logfn
}

type loggerOption struct{ commonlog.Logger }
type outputOption struct{ io.Writer }
type teeOption struct{ io.Writer }
type queueLimitOption int

func withLogger(logger commonlog.Logger) loggerOption { return loggerOption{logger} }
func withOutput(w io.Writer) outputOption             { return outputOption{w} }
func withTee(w io.Writer) teeOption                   { return teeOption{w} }
func withQueueLimit(limit int) queueLimitOption       { return queueLimitOption(limit) }

func (o loggerOption) apply(vm *VM) {
	vm.logger = o.Logger
}

func (o outputOption) apply(vm *VM) {
	if vm.out != nil {
		vm.out.Flush()
	}
	vm.out = flushio.NewWriteFlusher(o.Writer)
}

func (o teeOption) apply(vm *VM) {
	vm.out = flushio.WriteFlushers(vm.out, flushio.NewWriteFlusher(o.Writer))
	if cl, ok := o.Writer.(io.Closer); ok {
		vm.closers = append(vm.closers, cl)
	}
}

func (lim queueLimitOption) apply(vm *VM) {
	vm.queueLimit = int(lim)
}
