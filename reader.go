package fuse

import "io"

// FusedReader wraps a readable byte stream and consults its fuse whenever
// the stream reports end-of-stream. Reads that return data or a transport
// error pass through untouched; only io.EOF can be overridden, so a fuse
// can never interrupt an in-flight read.
type FusedReader struct {
	reader io.Reader
	cell   *cell
}

// CheckFuse probes the fuse without blocking and reports its status.
// The error return is non-nil only for Blown, carrying the error the
// producer recorded; observing Blown drains it, so a second probe with no
// new Blow in between reports Unarmed. Poisoned is sticky and reported on
// every probe.
func (fr *FusedReader) CheckFuse() (Status, error) {
	if !fr.cell.mu.TryLock() {
		return Armed, nil
	}
	defer fr.cell.mu.Unlock()
	if fr.cell.poisoned {
		return Poisoned, nil
	}
	if fr.cell.err != nil {
		err := fr.cell.err
		fr.cell.err = nil
		return Blown, err
	}
	return Unarmed, nil
}

// Read implements io.Reader. It delegates to the underlying stream and,
// only when that stream reports io.EOF, maps the fuse status onto the
// result: a blown fuse replaces io.EOF with the recorded error, a poisoned
// fuse replaces it with ErrBrokenFuse, and Unarmed or Armed lets the EOF
// stand. Armed at end-of-stream means the producer still holds the guard
// after the transport drained; that is treated as an ordinary EOF, not a
// failure. Bytes returned alongside io.EOF are preserved either way.
func (fr *FusedReader) Read(p []byte) (int, error) {
	n, err := fr.reader.Read(p)
	if err != io.EOF {
		return n, err
	}
	status, ferr := fr.CheckFuse()
	switch status {
	case Blown:
		return n, ferr
	case Poisoned:
		return n, ErrBrokenFuse
	}
	return n, io.EOF
}

// Unwrap returns the underlying stream, discarding this handle's view of
// the fuse. Reads on the returned stream see plain end-of-stream semantics
// again.
func (fr *FusedReader) Unwrap() io.Reader {
	return fr.reader
}
