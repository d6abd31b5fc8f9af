package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/jcorbin/sltf/internal/fileinput"
)

// runFiles feeds each named file through sess, stopping at the first error;
// the name "-" reads standard input.
func runFiles(ctx context.Context, sess *session, paths ...string) error {
	for _, path := range paths {
		r, err := openInput(path)
		if err != nil {
			return err
		}
		if err := runScript(ctx, sess, r); err != nil {
			return err
		}
	}
	return nil
}

func openInput(path string) (io.Reader, error) {
	if path == "-" {
		return fileinput.Named("<stdin>", os.Stdin), nil
	}
	return os.Open(path)
}

// runScript feeds r line by line; errors are prefixed by the name:line of
// the line that completed the failing input. A file may not end in the
// middle of a definition or string.
func runScript(ctx context.Context, sess *session, r io.Reader) error {
	in := fileinput.Input{Queue: []io.Reader{r}}
	defer func() {
		if cl, ok := r.(io.Closer); ok {
			cl.Close()
		}
	}()

	for {
		line, err := in.ReadLine()
		if err == io.EOF {
			break
		} else if err != nil {
			return err
		}
		if _, err := sess.feed(ctx, line); err != nil {
			return fmt.Errorf("%v: %w", in.Last.Location, err)
		}
	}
	if err := sess.finish(); err != nil {
		return fmt.Errorf("%v: %w", in.Last.Location, err)
	}
	return nil
}
