package fuse

import (
	"fmt"
	"io"
	"sync"
)

// cell is the synchronization state shared by exactly one FusedReader and
// one Fuse. The mutex doubles as the "armed" indicator: while a Guard holds
// it, the reader's non-blocking probe fails to acquire and reports Armed.
// The err slot and poisoned flag may only be touched while the mutex is
// held; the pointer is shared, so the cell lives until both handles are
// unreachable.
type cell struct {
	mu       sync.Mutex
	err      error
	poisoned bool
}

// New wraps reader in a FusedReader and returns it together with the Fuse
// that controls it. The two handles share one synchronization cell; hand
// the FusedReader to the consuming goroutine and the Fuse to the producing
// one. The underlying transport (pipe, socket, ...) is supplied by the
// caller - New only wraps the readable half.
func New(reader io.Reader) (*FusedReader, *Fuse) {
	c := &cell{}
	return &FusedReader{reader: reader, cell: c}, &Fuse{cell: c}
}

// Fuse is the writer-side handle. Arming it marks the producer as "at
// risk": until the returned Guard settles, the reader treats end-of-stream
// as pending rather than final. A Fuse may be armed any number of times
// sequentially; concurrent Arm calls serialize against each other.
type Fuse struct {
	cell *cell
}

// Arm takes exclusive possession of the fuse and returns the Guard that
// represents it, blocking until any previously issued Guard has settled.
// It fails, wrapping ErrBrokenFuse, if a previous guard holder exited
// without releasing - once that happens the fuse is poisoned for good and
// every Arm call keeps failing.
func (f *Fuse) Arm() (*Guard, error) {
	f.cell.mu.Lock()
	if f.cell.poisoned {
		f.cell.mu.Unlock()
		return nil, fmt.Errorf("arm: %w", ErrBrokenFuse)
	}
	return &Guard{cell: f.cell}, nil
}

// Protect runs fn inside an armed window. A nil return releases the fuse
// normally, a non-nil return blows the fuse with that error (and returns
// it), and a panic inside fn poisons the fuse before propagating. Protect
// is the one-call form of the Arm / defer Close / Release dance:
//
//	guard, err := f.Arm()
//	if err != nil {
//	    return err
//	}
//	defer guard.Close()
//	// ... produce ...
//	guard.Release()
func (f *Fuse) Protect(fn func() error) error {
	guard, err := f.Arm()
	if err != nil {
		return err
	}
	defer guard.Close()
	if err := fn(); err != nil {
		guard.Blow(err)
		return err
	}
	guard.Release()
	return nil
}

// Guard is the token for one armed window. It is owned by the goroutine
// that armed it and is not safe for concurrent use. Exactly one of
// Release or Blow settles it; Close (normally deferred right after Arm)
// poisons the fuse if neither ran, which is how a panic in the producing
// goroutine becomes visible to the reader.
type Guard struct {
	cell    *cell
	settled bool
}

// Release ends the armed window without recording an error: the producer
// finished, end-of-stream is trustworthy again. No-op if the guard has
// already settled.
func (g *Guard) Release() {
	if g.settled {
		return
	}
	g.settled = true
	g.cell.mu.Unlock()
}

// Blow records err as the stream's terminal error and ends the armed
// window. The reader observes the error exactly once, at its end-of-stream
// boundary; after that single delivery the fuse reads Unarmed again.
// Blowing with a nil error is equivalent to Release. No-op if the guard
// has already settled.
func (g *Guard) Blow(err error) {
	if g.settled {
		return
	}
	g.settled = true
	g.cell.err = err
	g.cell.mu.Unlock()
}

// Close poisons the fuse unless the guard was settled by Release or Blow
// first. Defer it immediately after a successful Arm so that a panic
// while producing - which in Go cannot run any other cleanup for you -
// still trips the fuse. Close never fails; the error return exists so the
// Guard fits the usual defer idiom.
func (g *Guard) Close() error {
	if g.settled {
		return nil
	}
	g.settled = true
	g.cell.poisoned = true
	g.cell.mu.Unlock()
	return nil
}
