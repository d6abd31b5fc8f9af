package flushio

import (
	"bufio"
	"bytes"
	"io"
	"strings"
)

// WriteFlusher is an io.Writer that may hold written bytes until Flush.
type WriteFlusher interface {
	io.Writer
	Flush() error
}

// NewWriteFlusher adapts w into a WriteFlusher. Writers that already flush
// are used as is. In memory destinations, and io.Discard, gain a Flush that
// does nothing; anything else, like a file or terminal, is buffered.
func NewWriteFlusher(w io.Writer) WriteFlusher {
	switch impl := w.(type) {
	case WriteFlusher:
		return impl
	case *bytes.Buffer, *strings.Builder:
		return direct{w}
	}
	if w == io.Discard {
		return direct{w}
	}
	return bufio.NewWriter(w)
}

// direct writes straight through; there is never anything to flush.
type direct struct{ io.Writer }

func (direct) Flush() error { return nil }
