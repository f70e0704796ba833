// error.go — the capability contract for xgx-virtstack error values.
//
// Design tenets:
//   - Interop-first: cause exposure is Unwrap() error, so errors.Is/As and
//     fmt's %w chains traverse virtstack values with no adapter.
//   - Read-only surface: every method is a getter; values are immutable
//     after construction, so concurrent readers need no coordination.
//   - Minimal surface: message, coordinate, cause, reconstructed stack.
//     No codes, no structured context, no transport policy in core.
//
// Implementations MUST:
//   - Fix Location at construction and never change it.
//   - Return the value's OWN message from Error() — never a ": "-joined
//     concatenation with the cause. The cause's story belongs to the
//     VirtualStack, not to the concise line.
//   - Keep Unwrap() chains finite (guaranteed naturally by construction
//     order: a wrapper can only wrap a value that already exists).
package virtstack

// Error is the capability an error value must expose to participate in
// virtual stack traces. Any error may appear as a CAUSE without satisfying
// it (the walker degrades to the native message with no coordinate); see
// Adapt for stamping a coordinate onto such a foreign failure.
type Error interface {
	// error's Error() is the concise, top-level message for this value
	// alone. Keep it short; verbose detail is the formatter's job.
	error

	// Location reports where this value was produced or wrapped. Fixed at
	// construction.
	Location() Location

	// Unwrap returns the wrapped cause, or nil for a leaf. Standard
	// library traversal (errors.Is/As) follows the same relation.
	Unwrap() error

	// VirtualStack reconstructs the ordered frame sequence for this value's
	// whole cause chain. The result is built fresh on every call; mutating
	// it does not affect the error.
	VirtualStack() VirtualStack
}
