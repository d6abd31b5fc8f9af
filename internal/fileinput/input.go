package fileinput

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"
)

// Location names a line in an Input file.
type Location struct {
	Name string
	Line int
}

// Line combines a Location along with a bytes.Buffer for handling it.
type Line struct {
	Location
	bytes.Buffer
}

func (loc Location) String() string { return fmt.Sprintf("%v:%v", loc.Name, loc.Line) }
func (il Line) String() string      { return fmt.Sprintf("%v %q", il.Location, il.Buffer.String()) }

// Input implements sequential line reading through a Queue of one or more
// input streams. Both the current and last scanned lines are tracked to
// facilitate user feedback.
type Input struct {
	cur   io.Reader
	rr    io.RuneReader
	Queue []io.Reader
	Last  Line
	Scan  Line
}

// ReadLine returns the next line of input without its line ending, moving on
// through the Queue as each stream runs out; a final line without a line
// feed is still returned. Afterwards, Last holds the line and its Location.
// Returns io.EOF once every stream has been read.
func (in *Input) ReadLine() (string, error) {
	for {
		if in.rr == nil && !in.nextIn() {
			return "", io.EOF
		}

		r, _, err := in.rr.ReadRune()
		switch {
		case err == nil && r == '\n':
			in.nextLine()
			return in.lastText(), nil

		case err == nil:
			in.Scan.WriteRune(r)

		case err == io.EOF:
			partial := in.Scan.Len() > 0
			if !in.nextIn() && !partial {
				return "", io.EOF
			}
			if partial {
				return in.lastText(), nil
			}

		default:
			return "", err
		}
	}
}

func (in *Input) lastText() string {
	return strings.TrimSuffix(in.Last.Buffer.String(), "\r")
}

func (in *Input) nextLine() {
	in.Last.Reset()
	in.Last.Name = in.Scan.Name
	in.Last.Line = in.Scan.Line
	in.Last.Write(in.Scan.Bytes())
	in.Scan.Reset()
	in.Scan.Line++
}

func (in *Input) nextIn() bool {
	in.nextLine()
	if in.cur != nil {
		if cl, ok := in.cur.(io.Closer); ok {
			cl.Close()
		}
		in.cur, in.rr = nil, nil
	}
	if len(in.Queue) > 0 {
		r := in.Queue[0]
		in.Queue = in.Queue[1:]
		in.cur, in.rr = r, runeReader(r)
		in.Scan.Name = nameOf(r)
		in.Scan.Line = 1
	}
	return in.rr != nil
}

func runeReader(r io.Reader) io.RuneReader {
	if rr, ok := r.(io.RuneReader); ok {
		return rr
	}
	return bufio.NewReader(r)
}

// Named gives r a name, to be reported in Locations of lines read from it.
func Named(name string, r io.Reader) io.Reader {
	return namedReader{r, name}
}

type namedReader struct {
	io.Reader
	name string
}

func (nr namedReader) Name() string { return nr.name }

func nameOf(obj interface{}) string {
	if nom, ok := obj.(interface{ Name() string }); ok {
		return nom.Name()
	}
	return fmt.Sprintf("<unnamed %T>", obj)
}
