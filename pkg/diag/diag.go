// Package diag implements the single-slot diagnostic mechanism shared by
// the lexer, parser, analyzer and interpreter.
//
// A Slot records at most one diagnostic at a time with first-error-wins
// semantics: once a diagnostic is pending, later Set calls are dropped until
// the slot is explicitly cleared. Each engine owns its own slot and threads
// it through the pipeline stages; there is no process-wide state.
package diag

import (
	"strings"

	"github.com/kasd-lang/kasd/pkg/token"
)

// Kind classifies a diagnostic.
type Kind int

const (
	Syntax Kind = iota
	Type
	Name
	Runtime
	Internal
)

// String returns the kind name used in rendered output.
func (k Kind) String() string {
	switch k {
	case Syntax:
		return "Syntax"
	case Type:
		return "Type"
	case Name:
		return "Name"
	case Runtime:
		return "Runtime"
	case Internal:
		return "Internal"
	}
	return "Unknown"
}

// Diagnostic is a single recorded error for one compilation unit.
// SourceLine, Pos and Len are only meaningful when HasSource is set; they
// drive the caret underline in rendered output.
type Diagnostic struct {
	Kind    Kind
	Line    int
	Column  int
	Message string

	HasSource  bool
	SourceLine string
	Pos        int // caret start offset within SourceLine
	Len        int // caret length in characters
}

// Slot holds at most one pending diagnostic.
// The zero value is an empty, usable slot.
type Slot struct {
	d *Diagnostic
}

// NewSlot returns an empty slot.
func NewSlot() *Slot {
	return &Slot{}
}

// Set records a diagnostic without source context. It is a no-op if a
// diagnostic is already pending.
func (s *Slot) Set(kind Kind, pos token.Position, message string) {
	if s.d != nil {
		return
	}
	s.d = &Diagnostic{
		Kind:    kind,
		Line:    pos.Line,
		Column:  pos.Column,
		Message: message,
	}
}

// SetWithSource records a diagnostic carrying source context for caret
// rendering. The offending span starts at pos.Offset in source and covers
// length bytes; the line containing the span start is attached. It is a
// no-op if a diagnostic is already pending.
func (s *Slot) SetWithSource(kind Kind, pos token.Position, message, source string, length int) {
	if s.d != nil {
		return
	}

	line, caret := extractLine(source, pos.Offset)
	if length < 1 {
		length = 1
	}
	if max := len(line) - caret; length > max && max > 0 {
		length = max
	}

	s.d = &Diagnostic{
		Kind:       kind,
		Line:       pos.Line,
		Column:     pos.Column,
		Message:    message,
		HasSource:  true,
		SourceLine: line,
		Pos:        caret,
		Len:        length,
	}
}

// Pending returns true if a diagnostic is recorded.
func (s *Slot) Pending() bool {
	return s.d != nil
}

// Diagnostic returns the pending diagnostic, or nil.
func (s *Slot) Diagnostic() *Diagnostic {
	return s.d
}

// Clear resets the slot to the empty state so the next compilation unit can
// record its own diagnostic.
func (s *Slot) Clear() {
	s.d = nil
}

// extractLine returns the line of source containing the byte offset, without
// its trailing newline, and the offset of the byte within that line.
func extractLine(source string, offset int) (string, int) {
	if offset < 0 {
		offset = 0
	}
	if offset > len(source) {
		offset = len(source)
	}

	start := strings.LastIndexByte(source[:offset], '\n') + 1
	end := strings.IndexByte(source[offset:], '\n')
	if end < 0 {
		end = len(source)
	} else {
		end += offset
	}
	return source[start:end], offset - start
}
