package logio

import (
	"bytes"
	"sync"
)

// Writer turns written text into log messages, one per line, through a
// formatted logging function like a commonlog.Logger's Infof or a
// testing.T's Logf. Each message is Prefix followed by the line without its
// line feed. A trailing partial line is held until completed or flushed.
//
// Writer is safe to use from multiple goroutines.
type Writer struct {
	Logf   func(mess string, args ...interface{})
	Prefix string

	mu      sync.Mutex
	partial []byte
}

func (lw *Writer) Write(p []byte) (int, error) {
	lw.mu.Lock()
	defer lw.mu.Unlock()
	rest := p
	for {
		line, more, found := bytes.Cut(rest, []byte{'\n'})
		if !found {
			lw.partial = append(lw.partial, rest...)
			break
		}
		if len(lw.partial) > 0 {
			line = append(lw.partial, line...)
			lw.partial = lw.partial[:0]
		}
		lw.emit(line)
		rest = more
	}
	return len(p), nil
}

// Flush logs any held partial line.
func (lw *Writer) Flush() error {
	lw.mu.Lock()
	defer lw.mu.Unlock()
	if len(lw.partial) > 0 {
		lw.emit(lw.partial)
		lw.partial = lw.partial[:0]
	}
	return nil
}

// Close flushes; the Writer may still be used afterwards.
func (lw *Writer) Close() error { return lw.Flush() }

func (lw *Writer) emit(line []byte) {
	lw.Logf("%s%s", lw.Prefix, line)
}
