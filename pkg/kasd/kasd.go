// Package kasd is the embedding API: an opaque execution context for hosts
// that want to run KASD source without adopting the CLI's I/O concerns.
// It is a thin adapter over the pipeline engine.
package kasd

import (
	"os"

	"github.com/kasd-lang/kasd/internal/engine"
	"github.com/kasd-lang/kasd/pkg/value"
)

// Log levels accepted by NewContext.
const (
	LogNone    = engine.LogNone
	LogError   = engine.LogError
	LogWarning = engine.LogWarning
	LogInfo    = engine.LogInfo
	LogDebug   = engine.LogDebug
)

// Value is the host-facing value type, mirroring null/int/float/bool/string.
type Value = value.Value

// Null returns the null value.
func Null() Value { return value.NewNull() }

// Int returns an int value.
func Int(v int64) Value { return value.NewInt(v) }

// Float returns a float value.
func Float(v float64) Value { return value.NewFloat(v) }

// Bool returns a bool value.
func Bool(v bool) Value { return value.NewBool(v) }

// String returns a string value owning a copy of v.
func String(v string) Value { return value.NewString(v) }

// Context executes KASD source and retains the last diagnostic message.
// A context must not be used from multiple goroutines concurrently.
type Context struct {
	engine  *engine.Engine
	lastErr string
}

// NewContext creates an execution context. Levels outside 0–4 are clamped.
func NewContext(logLevel int) *Context {
	return &Context{
		engine: engine.New(engine.Config{
			Out:    os.Stdout,
			Logger: engine.LoggerForLevel(logLevel, os.Stderr),
		}),
	}
}

// Execute runs one compilation unit and reports success. On failure the
// diagnostic message is retained for LastError.
func (c *Context) Execute(source string) bool {
	return c.execute(source, false)
}

// ExecuteInteractive runs one unit in echo mode: successful declarations
// render `<name>: <type> = <value>` to stdout.
func (c *Context) ExecuteInteractive(source string) bool {
	return c.execute(source, true)
}

func (c *Context) execute(source string, interactive bool) bool {
	_, d := c.engine.Execute(source, interactive)
	c.engine.ClearDiagnostic()
	if d != nil {
		c.lastErr = d.Message
		return false
	}
	c.lastErr = ""
	return true
}

// LastError returns the message of the last execution's diagnostic, or the
// empty string if the last execution succeeded.
func (c *Context) LastError() string {
	return c.lastErr
}
