// Package commands implements the kasd subcommand and driver logic.
package commands

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/kasd-lang/kasd/internal/engine"
)

// ErrExecution marks a run that already rendered its diagnostic; the caller
// should exit non-zero without printing anything further.
var ErrExecution = errors.New("execution failed")

// RunFile executes one source file as a single compilation unit. Diagnostics
// render to errOut with caret context.
func RunFile(eng *engine.Engine, path string, errOut io.Writer) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("could not read file %s: %w", path, err)
	}

	_, d := eng.Execute(string(src), false)
	eng.ClearDiagnostic()
	if d != nil {
		d.Render(errOut)
		return ErrExecution
	}
	return nil
}
