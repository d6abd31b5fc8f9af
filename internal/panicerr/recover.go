package panicerr

import (
	"errors"
	"fmt"
	"runtime/debug"
	"strings"
)

// Recover calls f, converting any panic it raises into a non-nil error return.
// Recovered errors carry the panic value and a stack trace; see IsPanic and
// PanicStack.
func Recover(name string, f func() error) (err error) {
	defer func() {
		if value := recover(); value != nil {
			err = recovered{name, value, debug.Stack()}
		}
	}()
	return f()
}

// recovered is a panic value caught by Recover.
type recovered struct {
	name  string
	value interface{}
	stack []byte
}

func (rec recovered) Error() string {
	var sb strings.Builder
	if rec.name != "" {
		sb.WriteString(rec.name)
		sb.WriteByte(' ')
	}
	fmt.Fprintf(&sb, "panicked: %v", rec.value)
	return sb.String()
}

// Format adds the panic stack trace under the %+v verb.
func (rec recovered) Format(f fmt.State, verb rune) {
	s := rec.Error()
	if verb == 'v' && f.Flag('+') {
		s += "\nPanic stack: " + string(rec.stack)
	}
	fmt.Fprint(f, s)
}

// Unwrap returns the panic value if it was an error.
func (rec recovered) Unwrap() error {
	err, _ := rec.value.(error)
	return err
}

// IsPanic returns true if err came from a panic caught by Recover.
func IsPanic(err error) bool {
	var rec recovered
	return errors.As(err, &rec)
}

// PanicStack returns the stack trace of a panic caught by Recover, or the
// empty string if err did not come from one.
func PanicStack(err error) string {
	var rec recovered
	if errors.As(err, &rec) {
		return string(rec.stack)
	}
	return ""
}
