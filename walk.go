// walk.go — chain walking: error chain → VirtualStack.
//
// Scope (tiny core):
//   - One linear traversal: emit a Frame per link, outermost first, descend
//     via the cause relation, stop at nil.
//   - No policy, no formatting — just the ordered reconstruction.
//
// Defensive bounds:
//   - The no-cycle invariant holds for values built by this package
//     (construction order makes self-causation impossible), but a foreign
//     Unwrap implementation can violate it. The walker therefore carries a
//     hard depth ceiling plus a seen-set, and reports early stops as DATA
//     (VirtualStack.Truncated), never as a failure or a hang.
//   - We must NOT use map[error] as a blanket seen-set: interface values
//     whose dynamic type is not comparable panic as map keys. Dual guard:
//     map[error] for comparable dynamics, pointer identity for pointer
//     types, and non-comparable non-pointer dynamics ride on the depth cap.
package virtstack

import "reflect"

// maxChainDepth bounds a single walk. Real chains are a handful of links;
// anything approaching the ceiling is a malformed Unwrap graph.
const maxChainDepth = 256

// StackOf reconstructs the virtual stack for err's whole cause chain:
// frame 0 is err itself, the last frame is the root cause. A nil err yields
// an empty stack. StackOf never fails and never mutates err; every call
// builds a fresh VirtualStack.
//
// Frames for values implementing the Error capability carry their recorded
// Location; foreign links degrade to their native message with a zero
// Location (adapt them with Adapt to stamp a coordinate).
func StackOf(err error) VirtualStack {
	if err == nil {
		return VirtualStack{}
	}

	frames := make([]Frame, 0, 4)
	seenErr := make(map[error]struct{}, 8)
	seenPtr := make(map[uintptr]struct{}, 8)

	current := err
	for current != nil {
		if len(frames) >= maxChainDepth {
			return VirtualStack{Frames: frames, Truncated: true}
		}
		if !markSeen(current, seenErr, seenPtr) {
			// Cycle: the chain reached a value it already emitted.
			return VirtualStack{Frames: frames, Truncated: true}
		}

		frames = append(frames, frameOf(current))
		current = causeOf(current)
	}

	return VirtualStack{Frames: frames}
}

// frameOf renders one chain link as a Frame.
func frameOf(err error) Frame {
	if ve, ok := err.(Error); ok {
		return Frame{Message: ve.Error(), Location: ve.Location()}
	}
	return Frame{Message: err.Error()}
}

// causeOf returns the next link of the chain, or nil at the root.
//
// An adaptedErr is terminal by contract: its Unwrap exists for errors.Is/As
// interop, but for the virtual stack it IS the root frame (one frame, the
// native message, the adaptation coordinate) — following Unwrap would emit
// the same failure twice.
func causeOf(err error) error {
	if _, ok := err.(*adaptedErr); ok {
		return nil
	}
	if u, ok := err.(interface{ Unwrap() error }); ok {
		return u.Unwrap()
	}
	return nil
}

// markSeen returns true if err was newly marked; false if already seen.
// Comparable dynamics go in seenErr, pointer-typed non-comparable ones are
// tracked by pointer identity, and anything else is treated as acyclic
// (bounded by maxChainDepth).
func markSeen(err error, seenErr map[error]struct{}, seenPtr map[uintptr]struct{}) bool {
	if isComparable(err) {
		if _, dup := seenErr[err]; dup {
			return false
		}
		seenErr[err] = struct{}{}
		return true
	}
	if id, ok := ptrID(err); ok {
		if _, dup := seenPtr[id]; dup {
			return false
		}
		seenPtr[id] = struct{}{}
		return true
	}
	return true
}

// isComparable reports whether err's dynamic type is safe as a map key.
func isComparable(err error) bool {
	if err == nil {
		return false
	}
	return reflect.TypeOf(err).Comparable()
}

// ptrID returns a pointer identity for pointer-typed dynamic errors.
func ptrID(err error) (uintptr, bool) {
	if err == nil {
		return 0, false
	}
	rv := reflect.ValueOf(err)
	if rv.Kind() == reflect.Ptr && !rv.IsNil() {
		return rv.Pointer(), true
	}
	return 0, false
}
