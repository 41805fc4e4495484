package sandbox

import "fmt"

// CompileError means the submitted source failed top-level evaluation:
// a syntax error, a thrown exception, or the compile deadline firing.
type CompileError struct {
	msg string
}

func (e *CompileError) Error() string { return e.msg }

// FunctionNotFoundError means top-level evaluation succeeded but the target
// binding is missing or not callable.
type FunctionNotFoundError struct {
	Name string
}

func (e *FunctionNotFoundError) Error() string {
	return fmt.Sprintf("Function %s not found", e.Name)
}

// InvokeError is a fault during one fixture invocation: a thrown exception
// or the per-call deadline firing. It never aborts sibling fixtures.
type InvokeError struct {
	msg     string
	timeout bool
}

func (e *InvokeError) Error() string { return e.msg }

// Timeout reports whether the invocation was cut off by the deadline.
func (e *InvokeError) Timeout() bool { return e.timeout }
