package sandbox

import (
	"errors"
	"strings"
	"testing"
	"time"

	"gitlab.com/codeclass-2026.net/internal/jsonval"
)

func TestLoadAndInvoke(t *testing.T) {
	sb := New(Config{})
	fn, err := sb.Load(`function add(a, b) { return a + b; }`, "add")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	got, err := fn.Invoke([]jsonval.Value{jsonval.Number("2"), jsonval.Number("3")})
	if err != nil {
		t.Fatalf("Invoke: %v", err)
	}
	if !got.Equal(jsonval.Number("5")) {
		t.Errorf("add(2, 3) = %s, want 5", got)
	}
}

func TestLoadSyntaxError(t *testing.T) {
	sb := New(Config{})
	_, err := sb.Load(`function add(a, b { return a + b; }`, "add")

	var compileErr *CompileError
	if !errors.As(err, &compileErr) {
		t.Fatalf("want *CompileError, got %T: %v", err, err)
	}
}

func TestLoadTopLevelThrow(t *testing.T) {
	sb := New(Config{})
	_, err := sb.Load(`throw new Error("boom"); function add() {}`, "add")

	var compileErr *CompileError
	if !errors.As(err, &compileErr) {
		t.Fatalf("want *CompileError, got %T: %v", err, err)
	}
	if !strings.Contains(compileErr.Error(), "boom") {
		t.Errorf("error should carry the thrown message, got %q", compileErr.Error())
	}
}

func TestLoadFunctionMissing(t *testing.T) {
	sb := New(Config{})
	_, err := sb.Load(`function other() { return 1; }`, "add")

	var notFound *FunctionNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("want *FunctionNotFoundError, got %T: %v", err, err)
	}
	if got := notFound.Error(); got != "Function add not found" {
		t.Errorf("message = %q, want %q", got, "Function add not found")
	}
}

func TestLoadNameBoundToNonFunction(t *testing.T) {
	sb := New(Config{})
	_, err := sb.Load(`var add = 42;`, "add")

	var notFound *FunctionNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("a non-function binding should report not-found, got %T: %v", err, err)
	}
}

func TestLoadTimeout(t *testing.T) {
	sb := New(Config{Timeout: 50 * time.Millisecond})
	start := time.Now()
	_, err := sb.Load(`while (true) {}`, "add")
	elapsed := time.Since(start)

	var compileErr *CompileError
	if !errors.As(err, &compileErr) {
		t.Fatalf("want *CompileError, got %T: %v", err, err)
	}
	if !strings.Contains(compileErr.Error(), "timed out") {
		t.Errorf("error should mention the timeout, got %q", compileErr.Error())
	}
	if elapsed > 2*time.Second {
		t.Errorf("interrupt took too long: %s", elapsed)
	}
}

func TestInvokeThrow(t *testing.T) {
	sb := New(Config{})
	fn, err := sb.Load(`function f() { throw new Error("nope"); }`, "f")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	_, err = fn.Invoke(nil)
	var invokeErr *InvokeError
	if !errors.As(err, &invokeErr) {
		t.Fatalf("want *InvokeError, got %T: %v", err, err)
	}
	if invokeErr.Timeout() {
		t.Errorf("a thrown exception is not a timeout")
	}
	if !strings.Contains(invokeErr.Error(), "nope") {
		t.Errorf("error should carry the thrown message, got %q", invokeErr.Error())
	}
}

func TestInvokeTimeout(t *testing.T) {
	sb := New(Config{Timeout: 50 * time.Millisecond})
	fn, err := sb.Load(`function f(n) { if (n > 0) return n; while (true) {} }`, "f")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	_, err = fn.Invoke([]jsonval.Value{jsonval.Number("0")})
	var invokeErr *InvokeError
	if !errors.As(err, &invokeErr) {
		t.Fatalf("want *InvokeError, got %T: %v", err, err)
	}
	if !invokeErr.Timeout() {
		t.Errorf("a deadline hit should report Timeout()")
	}

	// The interrupt must be cleared: the same sandbox keeps working.
	got, err := fn.Invoke([]jsonval.Value{jsonval.Number("7")})
	if err != nil {
		t.Fatalf("Invoke after timeout: %v", err)
	}
	if !got.Equal(jsonval.Number("7")) {
		t.Errorf("f(7) = %s, want 7", got)
	}
}

func TestInvokeNearDeadlineDoesNotPoisonNextCall(t *testing.T) {
	sb := New(Config{Timeout: 2 * time.Millisecond})
	src := `
function spin() { const end = Date.now() + 2; while (Date.now() < end) {} return 1; }
function quick() { return 1; }`
	spin, err := sb.Load(src, "spin")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	quick, err := sb.Load(src, "quick")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	// spin runs right up against the deadline, so the timer can fire in the
	// same instant the call returns. Whatever that call's outcome, the next
	// call must start with a clean interrupt flag.
	for i := 0; i < 40; i++ {
		spin.Invoke(nil)
		if _, err := quick.Invoke(nil); err != nil {
			t.Fatalf("call after near-deadline return %d failed: %v", i, err)
		}
	}
}

func TestStatePersistsWithinSandbox(t *testing.T) {
	sb := New(Config{})
	fn, err := sb.Load(`var calls = 0; function count() { return ++calls; }`, "count")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	first, _ := fn.Invoke(nil)
	second, _ := fn.Invoke(nil)
	if !first.Equal(jsonval.Number("1")) || !second.Equal(jsonval.Number("2")) {
		t.Errorf("globals should persist across calls in one sandbox: got %s then %s", first, second)
	}
}

func TestFreshSandboxesAreIsolated(t *testing.T) {
	first := New(Config{})
	if _, err := first.Load(`var leaked = "secret"; function f() { return 1; }`, "f"); err != nil {
		t.Fatalf("Load: %v", err)
	}

	second := New(Config{})
	fn, err := second.Load(`function probe() { return typeof leaked; }`, "probe")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	got, err := fn.Invoke(nil)
	if err != nil {
		t.Fatalf("Invoke: %v", err)
	}
	if !got.Equal(jsonval.String("undefined")) {
		t.Errorf("globals must not leak between sandboxes, probe saw %s", got)
	}
}

func TestConsoleCaptured(t *testing.T) {
	sb := New(Config{})
	fn, err := sb.Load(`function f() { console.log("hello", 42); return null; }`, "f")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if _, err := fn.Invoke(nil); err != nil {
		t.Fatalf("Invoke: %v", err)
	}
	if out := sb.ConsoleOutput(); !strings.Contains(out, "hello") {
		t.Errorf("console output not captured, got %q", out)
	}
}

func TestNoHostAccess(t *testing.T) {
	sb := New(Config{})
	fn, err := sb.Load(`function probe() { return [typeof require, typeof process, typeof fetch]; }`, "probe")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	got, err := fn.Invoke(nil)
	if err != nil {
		t.Fatalf("Invoke: %v", err)
	}
	want := jsonval.MustParse(`["undefined", "undefined", "undefined"]`)
	if !got.Equal(want) {
		t.Errorf("host globals should be absent, probe saw %s", got)
	}
}

func TestExportShapes(t *testing.T) {
	sb := New(Config{})
	fn, err := sb.Load(`function f() { return {ok: true, items: [1, "a", null], n: 2.5}; }`, "f")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	got, err := fn.Invoke(nil)
	if err != nil {
		t.Fatalf("Invoke: %v", err)
	}
	want := jsonval.MustParse(`{"ok": true, "items": [1, "a", null], "n": 2.5}`)
	if !got.Equal(want) {
		t.Errorf("exported value mismatch: got %s, want %s", got, want)
	}
}
