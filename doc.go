// Package fuse lets the producing end of a byte stream signal abnormal
// termination to the consuming end, even when the transport between them
// cannot carry error information.
//
// A reader that hits end-of-stream on a plain pipe cannot tell "the writer
// finished" apart from "the writer died": both look like a clean EOF. This
// package closes that gap with a fuse shared between the two sides:
//
//   - Fuse: the writer-side handle. Arm it before producing bytes whose
//     silent truncation must not pass for success; Protect does the whole
//     arm/settle cycle around a callback.
//   - Guard: the token for one armed window. Settle it with Release
//     (success) or Blow (record a terminal error); a deferred Close turns a
//     panic in the producing goroutine into a poisoned fuse.
//   - FusedReader: an io.Reader wrapper for the consuming side. Reads pass
//     through untouched until the underlying stream reports io.EOF; at that
//     boundary the fuse decides whether EOF stands or is replaced by the
//     producer's error (or by ErrBrokenFuse if the producer died).
//
// The package does not implement the transport itself. Any blocking byte
// stream with conventional end-of-stream semantics works; tests here use
// io.Pipe.
package fuse
