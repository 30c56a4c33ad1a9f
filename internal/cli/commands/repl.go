package commands

import (
	"errors"
	"fmt"
	"io"

	"github.com/chzyer/readline"

	"github.com/kasd-lang/kasd/internal/engine"
	"github.com/kasd-lang/kasd/pkg/token"
)

const replPrompt = "> "

// RunREPL reads lines until a literal `exit` line or end of input, running
// each through the pipeline in echo mode. The diagnostic slot is cleared
// after every line regardless of outcome, so one bad line never poisons the
// next.
func RunREPL(eng *engine.Engine, out, errOut io.Writer, historyFile string) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          replPrompt,
		HistoryFile:     historyFile,
		AutoComplete:    keywordCompleter(),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return fmt.Errorf("failed to initialize REPL: %w", err)
	}
	defer func() { _ = rl.Close() }()

	fmt.Fprintln(out, "KASD Language Interpreter v"+Version)
	fmt.Fprintln(out, "Type 'exit' to quit")

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			if line == "" {
				break
			}
			continue
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}

		if line == "exit" {
			break
		}
		if line == "" {
			continue
		}

		if _, d := eng.Execute(line, true); d != nil {
			d.Render(errOut)
		}
		eng.ClearDiagnostic()
	}

	return nil
}

// keywordCompleter completes the language's keywords and type names.
func keywordCompleter() *readline.PrefixCompleter {
	var items []readline.PrefixCompleterInterface
	for _, kw := range token.Keywords() {
		items = append(items, readline.PcItem(kw))
	}
	items = append(items, readline.PcItem("exit"))
	return readline.NewPrefixCompleter(items...)
}
