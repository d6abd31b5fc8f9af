package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"
)

// repl runs an interactive read-eval-print loop over sess until end of
// input. Each complete line is answered with " ok", or with its error.
func repl(ctx context.Context, sess *session, cfg Config, out, errOut io.Writer) error {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)
	ln.SetWordCompleter(sess.complete)

	if cfg.History != "" {
		if f, err := os.Open(cfg.History); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
		defer func() {
			if f, err := os.Create(cfg.History); err == nil {
				_, _ = ln.WriteHistory(f)
				_ = f.Close()
			} else {
				sess.log.Warningf("cannot save history: %v", err)
			}
		}()
	}

	fmt.Fprintln(out, " ok")
	var entry []string
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		prompt := cfg.Prompt
		if sess.incomplete() {
			prompt = cfg.ContinuePrompt
		}
		line, err := ln.Prompt(prompt)
		if errors.Is(err, liner.ErrPromptAborted) {
			sess.reset()
			entry = entry[:0]
			continue
		} else if errors.Is(err, io.EOF) {
			fmt.Fprintln(out)
			return sess.finish()
		} else if err != nil {
			return err
		}

		entry = append(entry, line)
		done, err := sess.feed(ctx, line)
		if !done {
			continue
		}
		if text := strings.TrimSpace(strings.Join(entry, " ")); text != "" {
			ln.AppendHistory(text)
		}
		entry = entry[:0]

		if err != nil {
			reportError(errOut, err)
		} else {
			fmt.Fprintln(out, " ok")
		}
	}
}
