package sandbox

import (
	"strings"

	"github.com/dop251/goja"
)

const defaultConsoleLimit = 16 * 1024

// consoleSink replaces the console object inside the sandbox runtime.
// Submitted code may log freely; the output lands in this buffer and never
// reaches the host process logs.
type consoleSink struct {
	buf   strings.Builder
	limit int
}

func newConsoleSink(limit int) *consoleSink {
	if limit <= 0 {
		limit = defaultConsoleLimit
	}
	return &consoleSink{limit: limit}
}

func (c *consoleSink) install(vm *goja.Runtime) {
	obj := vm.NewObject()
	for _, level := range []string{"log", "info", "warn", "error", "debug"} {
		_ = obj.Set(level, c.write)
	}
	_ = vm.Set("console", obj)
}

func (c *consoleSink) write(call goja.FunctionCall) goja.Value {
	if c.buf.Len() >= c.limit {
		return goja.Undefined()
	}
	parts := make([]string, len(call.Arguments))
	for i, arg := range call.Arguments {
		parts[i] = arg.String()
	}
	line := strings.Join(parts, " ")
	if c.buf.Len()+len(line)+1 > c.limit {
		line = line[:c.limit-c.buf.Len()-1]
	}
	c.buf.WriteString(line)
	c.buf.WriteByte('\n')
	return goja.Undefined()
}

// Output returns everything the submission logged so far.
func (c *consoleSink) Output() string { return c.buf.String() }
