// construct_test.go — constructor semantics, immutability, stdlib interop.
package virtstack

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

var errSentinel = errors.New("sentinel failure")

func TestNew_LeafSemantics(t *testing.T) {
	t.Parallel()

	ref := Here()
	err := New("boom")

	if err.Error() != "boom" {
		t.Fatalf("Error() = %q; want %q", err.Error(), "boom")
	}
	if err.Unwrap() != nil {
		t.Fatalf("leaf must have nil cause; got %v", err.Unwrap())
	}
	loc := err.Location()
	if !strings.HasSuffix(loc.File, "construct_test.go") {
		t.Fatalf("expected location in this file; got %q", loc.File)
	}
	if loc.Line != ref.Line+1 {
		t.Fatalf("expected New's call-site line %d; got %d", ref.Line+1, loc.Line)
	}
}

func TestNewf_RendersTemplate(t *testing.T) {
	t.Parallel()

	err := Newf("failed after %d attempts on %q", 3, "users")
	want := `failed after 3 attempts on "users"`
	if err.Error() != want {
		t.Fatalf("Error() = %q; want %q", err.Error(), want)
	}
}

func TestNew_EmptyMessageFallsBack(t *testing.T) {
	t.Parallel()

	err := New("")
	if err.Error() != "error" {
		t.Fatalf("Error() = %q; want %q", err.Error(), "error")
	}
}

func TestWrap_RecordsCallSiteAndCause(t *testing.T) {
	t.Parallel()

	ref := Here()
	err := Wrap(errSentinel, "query failed")

	if err.Error() != "query failed" {
		t.Fatalf("Error() = %q; want own message only (no cause concatenation)", err.Error())
	}
	if !strings.Contains(err.Error(), "query failed") || strings.Contains(err.Error(), "sentinel") {
		t.Fatalf("concise message leaked cause content: %q", err.Error())
	}
	if err.Unwrap() != errSentinel {
		t.Fatalf("Unwrap() = %v; want the sentinel", err.Unwrap())
	}
	if err.Location().Line != ref.Line+1 {
		t.Fatalf("expected Wrap's call-site line %d; got %d", ref.Line+1, err.Location().Line)
	}
}

func TestWrap_NilCauseYieldsLeaf(t *testing.T) {
	t.Parallel()

	err := Wrap(nil, "standalone")
	if err.Unwrap() != nil {
		t.Fatalf("Wrap(nil, ...) must be a leaf; got cause %v", err.Unwrap())
	}
	if got := err.VirtualStack().Len(); got != 1 {
		t.Fatalf("leaf stack Len = %d; want 1", got)
	}
}

func TestWrapf_RendersTemplate(t *testing.T) {
	t.Parallel()

	err := Wrapf(errSentinel, "failed to read %s", "app.yml")
	if err.Error() != "failed to read app.yml" {
		t.Fatalf("Error() = %q", err.Error())
	}
	if !errors.Is(err, errSentinel) {
		t.Fatalf("errors.Is must see the wrapped sentinel")
	}
}

// wrapThroughHelper simulates a generated constructor: one layer of
// indirection that must record ITS caller's coordinates.
func wrapThroughHelper(cause error, msg string) Error {
	return WrapSkip(1, cause, msg)
}

func newThroughHelper(msg string) Error {
	return NewSkip(1, msg)
}

func TestWrapSkip_RecordsHelperCallerSite(t *testing.T) {
	t.Parallel()

	ref := Here()
	err := wrapThroughHelper(errSentinel, "helper wrapped")

	loc := err.Location()
	if !strings.HasSuffix(loc.File, "construct_test.go") {
		t.Fatalf("expected the helper's CALLER file; got %q", loc.File)
	}
	if loc.Line != ref.Line+1 {
		t.Fatalf("expected the helper call expression line %d; got %d", ref.Line+1, loc.Line)
	}
}

func TestNewSkip_RecordsHelperCallerSite(t *testing.T) {
	t.Parallel()

	ref := Here()
	err := newThroughHelper("helper made")

	if err.Location().Line != ref.Line+1 {
		t.Fatalf("expected the helper call expression line %d; got %d", ref.Line+1, err.Location().Line)
	}
}

func TestSkipZero_EquivalentToDirectCall(t *testing.T) {
	t.Parallel()

	ref := Here()
	err := NewSkip(0, "direct")
	if err.Location().Line != ref.Line+1 {
		t.Fatalf("NewSkip(0) must record its own call site; line %d want %d",
			err.Location().Line, ref.Line+1)
	}
}

func TestAdapt_ForeignFailure(t *testing.T) {
	t.Parallel()

	ref := Here()
	adapted := Adapt(errSentinel)

	if adapted.Error() != errSentinel.Error() {
		t.Fatalf("adapter must keep the native message; got %q", adapted.Error())
	}
	if adapted.Location().Line != ref.Line+1 {
		t.Fatalf("expected the adaptation point line %d; got %d", ref.Line+1, adapted.Location().Line)
	}
	// Single root frame: the adapter is terminal for the virtual stack.
	vs := adapted.VirtualStack()
	if vs.Len() != 1 {
		t.Fatalf("adapted stack Len = %d; want 1", vs.Len())
	}
	if vs.Top().Message != "sentinel failure" {
		t.Fatalf("frame message = %q", vs.Top().Message)
	}
	// Interop: the original stays reachable for errors.Is.
	if !errors.Is(adapted, errSentinel) {
		t.Fatalf("errors.Is must reach the adapted original")
	}
}

func TestAdapt_NilAndAlreadyAdapted(t *testing.T) {
	t.Parallel()

	if got := Adapt(nil); got != nil {
		t.Fatalf("Adapt(nil) = %v; want nil", got)
	}

	native := New("native")
	if again := Adapt(native); again != native {
		t.Fatalf("Adapt of a virtstack value must return it unchanged")
	}
}

func TestAdaptAt_ExplicitCoordinates(t *testing.T) {
	t.Parallel()

	loc := At("schema.sql", 12, 40)
	adapted := AdaptAt(errSentinel, loc)
	if adapted.Location() != loc {
		t.Fatalf("Location() = %v; want %v", adapted.Location(), loc)
	}
	if got := adapted.VirtualStack().Top().String(); got != "sentinel failure at schema.sql:12:40" {
		t.Fatalf("frame = %q", got)
	}
}

func TestErrorValues_AreImmutable(t *testing.T) {
	t.Parallel()

	inner := New("inner")
	outer := Wrap(inner, "outer")

	msgBefore := outer.Error()
	locBefore := outer.Location()

	// Exercise every read path twice; nothing may change.
	_ = outer.VirtualStack()
	_ = Verbose(outer)
	_ = fmt.Sprintf("%+v", outer)
	_ = outer.VirtualStack()

	if outer.Error() != msgBefore {
		t.Fatalf("message changed: %q → %q", msgBefore, outer.Error())
	}
	if outer.Location() != locBefore {
		t.Fatalf("location changed: %v → %v", locBefore, outer.Location())
	}
	if outer.Unwrap() != inner {
		t.Fatalf("cause changed")
	}

	// Mutating a returned stack must not leak into the error.
	vs := outer.VirtualStack()
	vs.Frames[0].Message = "tampered"
	if outer.VirtualStack().Top().Message != "outer" {
		t.Fatalf("returned stack must be an independent copy")
	}
}

func TestErrorsAs_FindsCapability(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("stdlib layer: %w", Wrap(errSentinel, "inner wrap"))

	var ve Error
	if !errors.As(err, &ve) {
		t.Fatalf("errors.As must find a virtstack.Error inside a %%w chain")
	}
	if ve.Error() != "inner wrap" {
		t.Fatalf("found %q; want %q", ve.Error(), "inner wrap")
	}
}
