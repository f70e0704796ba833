// location.go — call-site coordinate capture for xgx-virtstack.
//
// Design goals:
//   - Record exactly ONE propagation point per capture: no stack walking, no
//     CallersFrames iteration, no PC buffers beyond a single frame.
//   - Helper-aware skip semantics: a generic helper that wraps on behalf of
//     its caller captures the COORDINATES OF ITS CALLER, never its own body.
//   - Total: capture cannot fail; an absurd skip yields a zero Location.
//
// Skip model for a typical call chain:
//
//	user code → Wrap → capture(skip) → runtime.Caller
//
// Internally we add +2 so the first recorded coordinate lands at the caller
// of the exported constructor with skip=0; each extra skip provided by a
// caller (e.g., a generated constructor) moves one layer further out.
//
// Note on columns: runtime.Caller reports file and line only. Column stays 0
// for runtime-captured locations and renders as "file:line"; explicit
// locations (e.g., from a source-aware adapter) may carry a real column and
// render as "file:line:column".
package virtstack

import (
	"fmt"
	"runtime"
)

// Location is a fixed source coordinate: where an error value was produced
// or wrapped. It is immutable and cheaply copyable.
type Location struct {
	File   string // file path as reported by the runtime (or supplied explicitly)
	Line   int    // 1-based line number; 0 means unknown
	Column int    // 1-based column; 0 means unknown (runtime capture)
}

// Here returns the Location of the call site of Here itself.
func Here() Location {
	return capture(1)
}

// CallerLocation returns the Location of a call site above the current
// function. skip=0 records the immediate caller of CallerLocation; each
// additional skip moves one frame further out. Helpers that capture on
// behalf of their caller pass 1 (plus one per intermediate layer).
func CallerLocation(skip int) Location {
	return capture(skip + 1)
}

// At constructs an explicit Location. It is the escape hatch for adapters
// that already know precise coordinates (including a column) from another
// source, e.g., a parser or a foreign diagnostic.
func At(file string, line, column int) Location {
	return Location{File: file, Line: line, Column: column}
}

// IsZero reports whether l carries no coordinate at all.
func (l Location) IsZero() bool {
	return l.File == "" && l.Line == 0 && l.Column == 0
}

// String renders "file:line:column", omitting the column when unknown.
// A zero Location renders as "unknown".
func (l Location) String() string {
	if l.IsZero() {
		return "unknown"
	}
	if l.Column > 0 {
		return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Column)
	}
	return fmt.Sprintf("%s:%d", l.File, l.Line)
}

// capture records the single frame 'skip' levels above capture itself.
//
// Skip accounting:
//   - runtime.Caller(0) is capture's own frame, so skip passed through
//     directly addresses our caller at skip=1.
//   - We add +1 so capture(1) from an exported function records THAT
//     function's caller, keeping the exported skip=0 convention.
//
// On failure (skip beyond the real stack) it returns the zero Location
// rather than reporting an error; capture is total by contract.
func capture(skip int) Location {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return Location{}
	}
	return Location{File: file, Line: line}
}
