package engine_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kasd-lang/kasd/internal/engine"
	"github.com/kasd-lang/kasd/internal/testutil"
	"github.com/kasd-lang/kasd/pkg/diag"
	"github.com/kasd-lang/kasd/pkg/value"
)

func newEngine(t *testing.T, out io.Writer) *engine.Engine {
	t.Helper()
	if out == nil {
		out = io.Discard
	}
	return engine.New(engine.Config{Out: out, Logger: testutil.NewTestLogger(t)})
}

func TestExecuteSuccess(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want value.Value
	}{
		{"int", `let x: int = 42;`, value.NewInt(42)},
		{"float", `let pi: float = 3.14;`, value.NewFloat(3.14)},
		{"widened int", `let f: float = 7;`, value.NewInt(7)},
		{"bool", `let ok: bool = true;`, value.NewBool(true)},
		{"string", `let s: string = "hello";`, value.NewString("hello")},
		{"null literal", `let n: int = null;`, value.NewNull()},
		{"null type", `let z: null = null;`, value.NewNull()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eng := newEngine(t, nil)

			v, d := eng.Execute(tt.src, false)

			require.Nil(t, d)
			assert.Equal(t, tt.want, v)
			assert.Nil(t, eng.Diagnostic())
		})
	}
}

func TestExecuteStageFailures(t *testing.T) {
	tests := []struct {
		name string
		src  string
		kind diag.Kind
		msg  string
	}{
		{"lexical", `let s: string = "abc`, diag.Syntax, "Unterminated string."},
		{"syntactic", `let x int = 1;`, diag.Syntax, "Expected ':' after variable name."},
		{"semantic", `let x: int = "hi";`, diag.Type,
			"Type mismatch: cannot assign string to variable of type int"},
		{"trailing input", `let x: int = 1; extra`, diag.Syntax, "Expected end of file."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eng := newEngine(t, nil)

			v, d := eng.Execute(tt.src, false)

			require.NotNil(t, d)
			assert.Equal(t, tt.kind, d.Kind)
			assert.Equal(t, tt.msg, d.Message)
			assert.True(t, v.IsNull())
			assert.Same(t, d, eng.Diagnostic())
		})
	}
}

func TestExecuteEchoOnlyWhenInteractive(t *testing.T) {
	var buf bytes.Buffer
	eng := newEngine(t, &buf)

	_, d := eng.Execute(`let x: int = 42;`, false)
	require.Nil(t, d)
	assert.Empty(t, buf.String())

	_, d = eng.Execute(`let x: int = 42;`, true)
	require.Nil(t, d)
	assert.Equal(t, "x: int = 42\n", buf.String())
}

func TestExecuteRejectsWithPendingDiagnostic(t *testing.T) {
	eng := newEngine(t, nil)

	_, first := eng.Execute(`let x: int = "hi";`, false)
	require.NotNil(t, first)

	// Without clearing, the next unit is rejected with the same diagnostic.
	v, second := eng.Execute(`let y: int = 1;`, false)
	require.NotNil(t, second)
	assert.Equal(t, first.Message, second.Message)
	assert.True(t, v.IsNull())
}

func TestClearDiagnosticRecovers(t *testing.T) {
	eng := newEngine(t, nil)

	_, d := eng.Execute(`let x: int = "hi";`, false)
	require.NotNil(t, d)

	eng.ClearDiagnostic()
	assert.Nil(t, eng.Diagnostic())

	v, d := eng.Execute(`let y: int = 1;`, false)
	require.Nil(t, d)
	assert.Equal(t, value.NewInt(1), v)
}

func TestExecuteFreshEnvironmentPerUnit(t *testing.T) {
	var buf bytes.Buffer
	eng := newEngine(t, &buf)

	// The same name twice across units is legal; each unit starts empty.
	_, d := eng.Execute(`let x: int = 1;`, true)
	require.Nil(t, d)
	_, d = eng.Execute(`let x: int = 2;`, true)
	require.Nil(t, d)

	assert.Equal(t, "x: int = 1\nx: int = 2\n", buf.String())
}

func TestExecuteFailureHasSourceContext(t *testing.T) {
	eng := newEngine(t, nil)

	_, d := eng.Execute(`let x int = 1;`, false)

	require.NotNil(t, d)
	assert.True(t, d.HasSource)
	assert.Equal(t, `let x int = 1;`, d.SourceLine)
}
