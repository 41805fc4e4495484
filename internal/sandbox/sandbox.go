// Package sandbox evaluates untrusted submitted source inside an isolated
// interpreter runtime with a wall-clock deadline.
//
// The runtime has no ambient access to the host: no filesystem, network,
// process environment, or host globals; console output is captured into a
// sandbox-owned sink. This is a latency/simplicity trade-off, not a hardened
// multi-tenant boundary — it does not bound memory allocation. The contract
// (source in, callable or typed error out, bounded time) would be unchanged
// under a process-per-submission or WASM strategy.
package sandbox

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dop251/goja"

	"gitlab.com/codeclass-2026.net/internal/jsonval"
)

// DefaultTimeout bounds top-level evaluation and each invocation when the
// config does not say otherwise.
const DefaultTimeout = 1000 * time.Millisecond

const timeoutSignal = "deadline exceeded"

type Config struct {
	// Timeout applies independently to Load and to every Invoke.
	Timeout time.Duration
	// ConsoleLimit caps captured console output in bytes.
	ConsoleLimit int
}

// Sandbox owns one isolated runtime. A sandbox serves exactly one grading
// request: the same context is reused across fixtures within the request,
// never across requests.
type Sandbox struct {
	vm      *goja.Runtime
	timeout time.Duration
	console *consoleSink
}

// New builds a fresh runtime with a stubbed console.
func New(cfg Config) *Sandbox {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	vm := goja.New()
	sink := newConsoleSink(cfg.ConsoleLimit)
	sink.install(vm)
	return &Sandbox{
		vm:      vm,
		timeout: cfg.Timeout,
		console: sink,
	}
}

// Load compiles and evaluates the submitted source followed by a trailing
// expression that resolves the target function. It returns a Callable bound
// to this sandbox, or *CompileError / *FunctionNotFoundError.
func (s *Sandbox) Load(source, functionName string) (*Callable, error) {
	program := fmt.Sprintf("%s\n;typeof %s === 'function' ? %s : undefined;",
		source, functionName, functionName)

	prog, err := goja.Compile("submission.js", program, false)
	if err != nil {
		return nil, &CompileError{msg: err.Error()}
	}

	v, err := s.runBounded(func() (goja.Value, error) {
		return s.vm.RunProgram(prog)
	})
	if err != nil {
		return nil, &CompileError{msg: s.describe(err)}
	}

	fn, ok := goja.AssertFunction(v)
	if !ok {
		return nil, &FunctionNotFoundError{Name: functionName}
	}
	return &Callable{fn: fn, sb: s}, nil
}

// ConsoleOutput returns whatever the submission wrote through console.*.
func (s *Sandbox) ConsoleOutput() string { return s.console.Output() }

// runBounded executes fn under the sandbox deadline and clears the interrupt
// flag afterwards so the runtime stays usable for the next call. The timer
// callback and the completion path share a lock: a callback firing as fn
// returns either interrupts before ClearInterrupt runs or not at all, never
// after.
func (s *Sandbox) runBounded(fn func() (goja.Value, error)) (goja.Value, error) {
	var mu sync.Mutex
	finished := false
	timer := time.AfterFunc(s.timeout, func() {
		mu.Lock()
		defer mu.Unlock()
		if !finished {
			s.vm.Interrupt(timeoutSignal)
		}
	})
	v, err := fn()
	mu.Lock()
	finished = true
	mu.Unlock()
	timer.Stop()
	s.vm.ClearInterrupt()
	return v, err
}

// describe converts an evaluation fault into the message surfaced to the
// student.
func (s *Sandbox) describe(err error) string {
	if isInterrupt(err) {
		return fmt.Sprintf("execution timed out after %s", s.timeout)
	}
	var exc *goja.Exception
	if errors.As(err, &exc) {
		return exc.Value().String()
	}
	return err.Error()
}

func isInterrupt(err error) bool {
	var ie *goja.InterruptedError
	return errors.As(err, &ie)
}

// Callable is the resolved target function, invokable repeatedly within the
// same sandbox context, each call independently bounded.
type Callable struct {
	fn goja.Callable
	sb *Sandbox
}

// Invoke calls the function with the given positional arguments and exports
// the return value. A thrown exception or a deadline hit is returned as
// *InvokeError.
func (c *Callable) Invoke(args []jsonval.Value) (jsonval.Value, error) {
	gargs := make([]goja.Value, len(args))
	for i, a := range args {
		gargs[i] = c.sb.vm.ToValue(a.Interface())
	}

	v, err := c.sb.runBounded(func() (goja.Value, error) {
		return c.fn(goja.Undefined(), gargs...)
	})
	if err != nil {
		return jsonval.Null(), &InvokeError{
			msg:     c.sb.describe(err),
			timeout: isInterrupt(err),
		}
	}
	return jsonval.FromInterface(v.Export()), nil
}
