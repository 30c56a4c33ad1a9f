// Package engine drives one compilation unit through the four-stage
// pipeline: lexing, parsing, semantic analysis and interpretation.
package engine

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/kasd-lang/kasd/pkg/analyzer"
	"github.com/kasd-lang/kasd/pkg/diag"
	"github.com/kasd-lang/kasd/pkg/interp"
	"github.com/kasd-lang/kasd/pkg/parser"
	"github.com/kasd-lang/kasd/pkg/value"
)

// Config holds engine construction options.
type Config struct {
	// Out receives echo output in interactive executions. Defaults to stdout.
	Out io.Writer
	// Logger receives stage tracing. Defaults to a discard logger.
	Logger *slog.Logger
}

// Engine owns the diagnostic slot shared by all pipeline stages. Execution
// is single-threaded and fully synchronous; an engine must not be shared by
// concurrent executions without external locking.
type Engine struct {
	slot   *diag.Slot
	out    io.Writer
	logger *slog.Logger
}

// New creates an engine with an empty diagnostic slot.
func New(cfg Config) *Engine {
	out := cfg.Out
	if out == nil {
		out = os.Stdout
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Engine{
		slot:   diag.NewSlot(),
		out:    out,
		logger: logger,
	}
}

// Execute runs one compilation unit through the pipeline. It returns the
// bound value on success, or the recorded diagnostic on the first stage
// failure; later stages do not run once a diagnostic is pending.
//
// The engine does not clear its slot: the driver must call ClearDiagnostic
// between independent units, or every subsequent unit is rejected by the
// first-error-wins rule. The environment is created per execution; bindings
// do not persist across units.
func (e *Engine) Execute(source string, interactive bool) (value.Value, *diag.Diagnostic) {
	if e.slot.Pending() {
		return value.NewNull(), e.slot.Diagnostic()
	}

	e.logger.Debug("parsing", "bytes", len(source))
	ast := parser.Parse(source, e.slot)
	if e.slot.Pending() {
		return value.NewNull(), e.slot.Diagnostic()
	}

	e.logger.Debug("analyzing")
	if !analyzer.New(e.slot).Analyze(ast) || e.slot.Pending() {
		return value.NewNull(), e.slot.Diagnostic()
	}

	if ast != nil && e.logger.Enabled(context.Background(), slog.LevelDebug) {
		e.logger.Debug("ast", "tree", parser.Dump(ast))
	}

	e.logger.Debug("interpreting")
	in := interp.New(e.out, interactive, e.slot, e.logger)
	result := in.Eval(ast)
	if e.slot.Pending() {
		return value.NewNull(), e.slot.Diagnostic()
	}

	return result, nil
}

// Diagnostic returns the pending diagnostic, or nil.
func (e *Engine) Diagnostic() *diag.Diagnostic {
	return e.slot.Diagnostic()
}

// ClearDiagnostic resets the slot so the next unit can record its own error.
func (e *Engine) ClearDiagnostic() {
	e.slot.Clear()
}
