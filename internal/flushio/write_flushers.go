package flushio

import "io"

// WriteFlushers tees writes and flushes across every given WriteFlusher;
// nils are skipped and nested tees are flattened. Every output sees every
// write even after one of them fails, so that a broken terminal does not
// starve a trace log; the first error is returned.
func WriteFlushers(wfs ...WriteFlusher) WriteFlusher {
	var all tee
	all = all.add(wfs...)
	switch len(all) {
	case 0:
		return nil
	case 1:
		return all[0]
	}
	return all
}

type tee []WriteFlusher

func (t tee) add(wfs ...WriteFlusher) tee {
	for _, wf := range wfs {
		switch impl := wf.(type) {
		case nil:
		case tee:
			t = append(t, impl...)
		default:
			t = append(t, wf)
		}
	}
	return t
}

func (t tee) Write(p []byte) (int, error) {
	var err error
	for _, wf := range t {
		n, werr := wf.Write(p)
		if werr == nil && n < len(p) {
			werr = io.ErrShortWrite
		}
		if err == nil {
			err = werr
		}
	}
	if err != nil {
		return 0, err
	}
	return len(p), nil
}

func (t tee) Flush() error {
	var err error
	for _, wf := range t {
		if ferr := wf.Flush(); err == nil {
			err = ferr
		}
	}
	return err
}
