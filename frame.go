// frame.go — the frame and virtual-stack vocabulary for xgx-virtstack.
//
// A Frame is one propagation step: the message attached at that step plus
// the Location where it was attached. A VirtualStack is the ordered frame
// sequence reconstructed from an error chain — index 0 is the outermost
// (most recently attached) point, increasing index approaches the root
// cause. Both are plain immutable values; nothing here walks or formats
// error chains (see walk.go and format.go).
package virtstack

import (
	"fmt"
	"strings"
)

// Frame pairs a rendered message with the coordinate it was attached at.
// Immutable once constructed.
type Frame struct {
	Message  string
	Location Location
}

// String renders "<message> at <file>:<line>[:<column>]", or just the
// message when the location is unknown (e.g., a foreign cause that was
// never adapted).
func (f Frame) String() string {
	if f.Location.IsZero() {
		return f.Message
	}
	return fmt.Sprintf("%s at %s", f.Message, f.Location)
}

// VirtualStack is the ordered frame sequence derived from an error chain.
// It is materialized fresh on every request and never cached or shared;
// callers own the returned value outright.
type VirtualStack struct {
	// Frames, outermost first.
	Frames []Frame
	// Truncated is set when the walker hit its depth ceiling or detected a
	// cycle and stopped early. The collected prefix is still valid.
	Truncated bool
}

// Len returns the number of frames.
func (vs VirtualStack) Len() int { return len(vs.Frames) }

// Top returns frame 0 (the outermost propagation point), or a zero Frame
// when the stack is empty.
func (vs VirtualStack) Top() Frame {
	if len(vs.Frames) == 0 {
		return Frame{}
	}
	return vs.Frames[0]
}

// String renders the frame listing used inside verbose output:
//
//	  0: <message 0> at <file0>:<line0>
//	  1: <message 1> at <file1>:<line1>
//	  ... (chain truncated)
//
// One frame per line, top frame first, with the trailing marker only when
// Truncated is set. No trailing newline.
func (vs VirtualStack) String() string {
	var b strings.Builder
	for i, f := range vs.Frames {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "  %d: %s", i, f)
	}
	if vs.Truncated {
		if len(vs.Frames) > 0 {
			b.WriteByte('\n')
		}
		b.WriteString("  ... (chain truncated)")
	}
	return b.String()
}
