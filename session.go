package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/tliron/commonlog"

	"github.com/jcorbin/sltf/internal/logio"
	"github.com/jcorbin/sltf/internal/syntax"
	"github.com/jcorbin/sltf/internal/vm"
)

// session feeds source text to a VM one line at a time. A line that leaves a
// definition or string open is held until the lines that complete it arrive.
//
// Stack and dictionary persist across lines, even failed ones: an error only
// aborts whatever remains of the input that caused it.
type session struct {
	vm      *vm.VM
	log     commonlog.Logger
	timeout time.Duration
	trace   bool

	partial strings.Builder
}

// newSession creates a VM for cfg, and runs any cfg.Init program on it.
func newSession(ctx context.Context, cfg Config, log commonlog.Logger, opts ...vm.Option) (*session, error) {
	prog, err := syntax.Parse(cfg.Init)
	if err != nil {
		return nil, fmt.Errorf("init: %w", err)
	}
	opts = append([]vm.Option{
		vm.WithLogger(log),
		vm.WithQueueLimit(cfg.QueueLimit),
	}, opts...)
	sess := &session{
		vm:      vm.New(prog, opts...),
		log:     log,
		timeout: cfg.Timeout,
		trace:   cfg.Trace,
	}
	if err := sess.run(ctx); err != nil {
		sess.Close()
		return nil, fmt.Errorf("init: %w", err)
	}
	return sess, nil
}

// incomplete returns true while an unfinished definition or string is held.
func (sess *session) incomplete() bool {
	return sess.partial.Len() > 0
}

// reset forgets any held partial input.
func (sess *session) reset() {
	sess.partial.Reset()
}

// feed adds a line of input, and then runs it unless it is incomplete. The
// returned bool is false only while waiting for more lines.
func (sess *session) feed(ctx context.Context, line string) (bool, error) {
	if sess.partial.Len() > 0 {
		sess.partial.WriteByte('\n')
	}
	sess.partial.WriteString(line)

	nodes, err := syntax.Parse(sess.partial.String())
	if syntax.IsIncomplete(err) {
		return false, nil
	}
	sess.partial.Reset()
	if err != nil {
		return true, err
	}
	return true, sess.exec(ctx, nodes)
}

// finish reports any input left incomplete at end of input.
func (sess *session) finish() error {
	if sess.partial.Len() == 0 {
		return nil
	}
	_, err := syntax.Parse(sess.partial.String())
	sess.partial.Reset()
	return err
}

func (sess *session) exec(ctx context.Context, nodes []syntax.Node) error {
	err := sess.vm.AppendProgram(nodes)
	if err == nil {
		err = sess.run(ctx)
	}
	if err != nil {
		if n := sess.vm.Discard(); n > 0 {
			sess.log.Debugf("discarded %v pending instructions", n)
		}
		if sess.trace {
			sess.dump()
		}
	}
	return err
}

func (sess *session) run(ctx context.Context) error {
	if sess.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, sess.timeout)
		defer cancel()
	}
	return sess.vm.Run(ctx)
}

func (sess *session) dump() {
	lw := logio.Writer{Logf: sess.log.Infof}
	defer lw.Close()
	vm.Dump(&lw, sess.vm)
}

// complete offers dictionary words that extend the word under the cursor,
// whose position pos counts runes, not bytes.
func (sess *session) complete(line string, pos int) (head string, completions []string, tail string) {
	rs := []rune(line)
	head, tail = string(rs[:pos]), string(rs[pos:])
	start := strings.LastIndexAny(head, " \t\n\"") + 1
	head, word := head[:start], head[start:]
	if word == "" {
		return head, nil, tail
	}
	for _, name := range sess.vm.Words() {
		if strings.HasPrefix(name, word) {
			completions = append(completions, name)
		}
	}
	return head, completions, tail
}

func (sess *session) Close() error {
	return sess.vm.Close()
}
