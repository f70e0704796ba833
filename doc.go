// doc.go — package documentation for xgx-virtstack
//
// Package virtstack provides a tiny, policy-free virtual-stack-trace error
// core: every wrap or raise point records WHERE (a source coordinate) and
// WHY (a rendered message), and the chain of error values itself becomes the
// trace. No machine call stack is ever captured. It is designed to be:
//   - Ergonomic at call sites (small surface, clear semantics)
//   - Interoperable with the stdlib (errors.Is/As, %w chains, fmt.Formatter)
//   - Policy-free (no HTTP/logging/retry rules in core)
//
// # Virtual Stack Traces
//
// A system backtrace answers "which functions were on the stack" — long,
// noisy, and expensive to capture. A virtual stack answers the question
// developers actually ask: "along which path did this failure propagate,
// and what did each layer have to say about it". Each propagation point
// contributes exactly one frame:
//
//	Frame{Message: "Failed to read configuration file", Location: config.go:42}
//
// and the frames are reconstructed lazily from the error chain, so the
// only cost on the propagation path is the error allocation itself.
//
// # When Are Coordinates Captured?
//
// Exactly once per value, at construction, via a single runtime.Caller
// lookup — never a stack walk.
//
//	+------------------------------+----------------------------------------+
//	| Constructor                  | Recorded coordinate                    |
//	+------------------------------+----------------------------------------+
//	| New / Newf                   | call site of New/Newf                  |
//	| Wrap / Wrapf                 | call site of Wrap/Wrapf                |
//	| NewSkip(n) / WrapSkip(n)     | n layers above (for helpers/codegen)   |
//	| Adapt                        | adaptation point of a foreign failure  |
//	| AdaptAt                      | explicit coordinate (may carry column) |
//	+------------------------------+----------------------------------------+
//
// Guidance:
//   - Wrap at boundaries where you can say something useful; each Wrap is
//     one frame of the eventual trace.
//   - Helpers that wrap on behalf of their caller use WrapSkip(1, ...) so
//     the frame points at the caller, not the helper body.
//
// # Walking & Bounds
//
// StackOf follows the cause relation (Unwrap() error) outer → root and
// emits one Frame per link: an N-link chain yields exactly N frames.
// Foreign links that never passed through a constructor appear with their
// native message and no coordinate. A malformed foreign Unwrap graph (a
// cycle, or absurd depth) stops the walk early and sets
// VirtualStack.Truncated; walking never fails and never hangs.
//
// # Formatting
//
// virtstack implements fmt.Formatter for two-tier diagnostics:
//   - `%v`, `%s` → concise, single-line Error() — what end users see
//   - `%+v`      → verbose, multi-line virtual stack trace — what a
//     developer explicitly asks for
//   - `%q`       → quoted Error()
//
// Verbose output is stable and diffable:
//
//	Failed to read configuration file
//	Virtual Stack Trace:
//	  0: Failed to read configuration file at /app/config.go:42
//	  1: open /etc/app.yml: no such file or directory
//
// # Generated Constructors
//
// The gen subpackage (and the virtstack-gen command) turns a declarative
// YAML variant list into per-variant constructor functions built on
// NewSkip/WrapSkip, so each generated constructor records the coordinates
// of ITS call site. See gen's package documentation.
//
// # Concurrency
//
// Error values are immutable after construction. Concurrent readers may
// call Error, Location, Unwrap, VirtualStack, or either formatting mode on
// the same value simultaneously with no coordination.
//
// # Minimal Surface, Clear Semantics
//
// The v1 surface is intentionally small:
//   - New / Newf / Wrap / Wrapf (+ Skip variants)
//   - Adapt / AdaptAt
//   - StackOf / Concise / Verbose
//   - the Error capability interface
package virtstack
