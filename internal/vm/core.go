package vm

import (
	"fmt"
	"io"
	"strings"

	"github.com/tliron/commonlog"

	"github.com/jcorbin/sltf/internal/flushio"
)

type core struct {
	logging
	out     flushio.WriteFlusher
	closers []io.Closer
}

// Close flushes any buffered output and closes any closable output streams.
func (core *core) Close() (err error) {
	if core.out != nil {
		err = core.out.Flush()
	}
	for i := len(core.closers) - 1; i >= 0; i-- {
		if cerr := core.closers[i].Close(); err == nil {
			err = cerr
		}
	}
	core.closers = nil
	return err
}

func (core *core) writeString(s string) error {
	_, err := io.WriteString(core.out, s)
	return err
}

type logging struct {
	logger commonlog.Logger
	logfn  func(mess string, args ...interface{})

	markWidth int
}

// logf writes a trace line through any logfn hook, and at debug level to
// the logger.
func (log *logging) logf(mark, mess string, args ...interface{}) {
	traced := log.logger != nil && log.logger.AllowLevel(commonlog.Debug)
	if log.logfn == nil && !traced {
		return
	}
	if n := log.markWidth - len(mark); n > 0 {
		mark = strings.Repeat(" ", n) + mark
	} else if n < 0 {
		log.markWidth = len(mark)
	}
	if len(args) > 0 {
		mess = fmt.Sprintf(mess, args...)
	}
	if log.logfn != nil {
		log.logfn("%v %v", mark, mess)
	}
	if traced {
		log.logger.Debugf("%v %v", mark, mess)
	}
}

// notef reports an informational event, like a word being (re)defined.
func (log *logging) notef(mess string, args ...interface{}) {
	if log.logger != nil {
		log.logger.Noticef(mess, args...)
	}
	if log.logfn != nil {
		log.logfn("# "+mess, args...)
	}
}
