// construct.go — constructors & the concrete error type for xgx-virtstack.
//
// Scope (tiny core):
//   - One concrete type, traceErr, implementing the virtstack.Error
//     capability with strictly immutable state.
//   - Call-site constructors: New/Newf for fresh failures, Wrap/Wrapf for
//     attaching context to an existing cause.
//   - Skip-aware variants (NewSkip/WrapSkip) so helpers and GENERATED
//     constructors record their caller's coordinates, not their own bodies.
//   - Adapt for boxed foreign failures that lack a coordinate of their own.
//
// Interop:
//   - Unwrap() error exposes the cause, so errors.Is/As traverse chains the
//     standard way; a cause built with fmt.Errorf("...: %w", err) keeps
//     walking correctly.
//
// Notes:
//   - There are deliberately NO fluent mutators here. An error value is
//     created once with everything it will ever carry; adding context means
//     wrapping, which creates the next frame of the virtual stack.
package virtstack

import "fmt"

// -----------------------------------------------------------------------------
// Concrete type
// -----------------------------------------------------------------------------

// traceErr is the sole concrete error value of the core. All three fields
// are fixed at construction; no method mutates the receiver.
type traceErr struct {
	msg   string
	loc   Location
	cause error
}

// compile-time guarantee that *traceErr implements the capability and
// fmt.Formatter (format.go).
var (
	_ Error         = (*traceErr)(nil)
	_ fmt.Formatter = (*traceErr)(nil)
)

// Error returns this value's own message only. The cause is NOT appended;
// concise output is frame 0 by contract, and the full chain is available
// through VirtualStack / verbose formatting.
func (e *traceErr) Error() string {
	if e.msg == "" {
		return "error"
	}
	return e.msg
}

func (e *traceErr) Location() Location { return e.loc }
func (e *traceErr) Unwrap() error      { return e.cause }

// VirtualStack reconstructs the frame sequence for the whole chain rooted
// at e. Fresh value on every call; see walk.go.
func (e *traceErr) VirtualStack() VirtualStack { return StackOf(e) }

// -----------------------------------------------------------------------------
// Constructors
// -----------------------------------------------------------------------------

// New creates a leaf error whose Location is the call site of New.
func New(msg string) Error {
	return &traceErr{msg: msg, loc: capture(1)}
}

// Newf is New with fmt.Sprintf message rendering.
func Newf(format string, args ...any) Error {
	return &traceErr{msg: fmt.Sprintf(format, args...), loc: capture(1)}
}

// Wrap attaches msg to cause, recording the call site of Wrap as the new
// propagation point. A nil cause yields a leaf (wrap of nothing), so call
// sites may wrap unconditionally.
func Wrap(cause error, msg string) Error {
	return &traceErr{msg: msg, loc: capture(1), cause: cause}
}

// Wrapf is Wrap with fmt.Sprintf message rendering.
func Wrapf(cause error, format string, args ...any) Error {
	return &traceErr{msg: fmt.Sprintf(format, args...), loc: capture(1), cause: cause}
}

// NewSkip is New for helpers: skip extra frames so the recorded Location is
// the helper's caller. skip=0 behaves exactly like New called directly.
//
// A generated per-variant constructor passes 1:
//
//	func NewReadConfig(path string, cause error) virtstack.Error {
//		return virtstack.WrapSkip(1, cause, fmt.Sprintf("Failed to read %s", path))
//	}
//
// so the Location lands at the user's NewReadConfig(...) call expression.
func NewSkip(skip int, msg string) Error {
	return &traceErr{msg: msg, loc: capture(skip + 1)}
}

// WrapSkip is Wrap for helpers; see NewSkip for the skip convention.
func WrapSkip(skip int, cause error, msg string) Error {
	return &traceErr{msg: msg, loc: capture(skip + 1), cause: cause}
}

// -----------------------------------------------------------------------------
// Foreign-failure adaptation
// -----------------------------------------------------------------------------

// Adapt turns a boxed foreign failure into a virtstack value without adding
// a message of its own: the frame keeps the failure's native Error() text,
// and the Location records the adaptation point (the call site of Adapt).
//   - nil → nil
//   - already a virtstack.Error → returned as-is (its coordinate is not
//     rewritten; adapting twice is a no-op)
//   - other error → minimal adapter exposing the native message
func Adapt(err error) Error {
	if err == nil {
		return nil
	}
	if ve, ok := err.(Error); ok {
		return ve
	}
	return &adaptedErr{err: err, loc: capture(1)}
}

// AdaptAt is Adapt with an explicit Location, for callers that know precise
// coordinates from another source (a parser diagnostic, a foreign trace).
func AdaptAt(err error, loc Location) Error {
	if err == nil {
		return nil
	}
	if ve, ok := err.(Error); ok {
		return ve
	}
	return &adaptedErr{err: err, loc: loc}
}

// adaptedErr wraps a foreign failure so it satisfies the capability: native
// message, stamped coordinate, and no cause of its own — the foreign value
// is presented as a single root frame. The original remains reachable via
// errors.Is/As through Unwrap.
type adaptedErr struct {
	err error
	loc Location
}

var (
	_ Error         = (*adaptedErr)(nil)
	_ fmt.Formatter = (*adaptedErr)(nil)
)

func (e *adaptedErr) Error() string              { return e.err.Error() }
func (e *adaptedErr) Location() Location         { return e.loc }
func (e *adaptedErr) Unwrap() error              { return e.err }
func (e *adaptedErr) VirtualStack() VirtualStack { return StackOf(e) }
