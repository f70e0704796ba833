// format.go — two-tier lazy formatting for xgx-virtstack.
//
// Behavior:
//
//	%s, %v   → concise string (Error(); frame 0's message, nothing else).
//	%q       → quoted concise string.
//	%+v      → verbose, multi-line:
//	             <top message>
//	             Virtual Stack Trace:
//	               0: <message 0> at <file0>:<line0>
//	               1: <message 1> at <file1>:<line1>
//	               ... (chain truncated)      ← only after an early stop
//
// Rationale:
//   - Concise is what end users see everywhere an error surfaces; it never
//     walks the chain and never mentions deeper frames.
//   - Verbose is the developer's explicit request; the chain is walked and
//     the VirtualStack materialized only at that moment, never on the
//     success path or during ordinary propagation.
//   - Both modes are pure: same value in, byte-identical text out, and the
//     error is untouched.
package virtstack

import (
	"fmt"
	"io"
)

// Concise returns the top-level message only — err.Error() with nil-safety.
// No chain walk is performed.
func Concise(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

// Verbose renders the full virtual stack trace for any error, virtstack or
// foreign (foreign links appear with their native messages and no
// coordinates). Nil yields the empty string.
func Verbose(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("%s\nVirtual Stack Trace:\n%s", err.Error(), StackOf(err))
}

// formatConcise writes the one-line message (delegates to Error()).
func formatConcise(w io.Writer, e error) {
	// ignore write errors in formatting paths
	_, _ = io.WriteString(w, e.Error())
}

// formatVerbose writes the virtual-stack block for e.
func formatVerbose(w io.Writer, e error) {
	_, _ = io.WriteString(w, Verbose(e))
}

// -----------------------------------------------------------------------------
// traceErr formatting
// -----------------------------------------------------------------------------

func (e *traceErr) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			formatVerbose(s, e)
			return
		}
		formatConcise(s, e)
	case 's':
		formatConcise(s, e)
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.Error())
	default:
		formatConcise(s, e)
	}
}

// -----------------------------------------------------------------------------
// adaptedErr formatting (single-frame stack at the adaptation point)
// -----------------------------------------------------------------------------

func (e *adaptedErr) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			formatVerbose(s, e)
			return
		}
		formatConcise(s, e)
	case 's':
		formatConcise(s, e)
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.Error())
	default:
		formatConcise(s, e)
	}
}
