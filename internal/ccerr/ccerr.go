// Package ccerr formats the compiler's per-stage failures. A fail-fast
// stage reports a StageError wrapping the first message it recorded;
// the parser, which resynchronizes, can report several messages at
// once through FormatAll. Unlike the
// CompilerError this is modelled on, it carries no source line, column,
// or caret rendering — diagnostics never report a source position.
package ccerr

import "fmt"

// Stage names the pipeline phase an error originated in.
type Stage string

const (
	StageIO       Stage = "io"
	StageLex      Stage = "lex"
	StageParse    Stage = "parse"
	StageAnalyze  Stage = "semantic"
	StageCodegen  Stage = "codegen"
)

// StageError is the first error recorded by a stage, formatted as
// "<stage> error: <message>" per the fixed user-visible diagnostic shape.
type StageError struct {
	Stage   Stage
	Message string
}

func New(stage Stage, message string) *StageError {
	return &StageError{Stage: stage, Message: message}
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s error: %s", e.Stage, e.Message)
}

// FromMessages builds a StageError from a stage's accumulated error
// list, taking the first message — each stage halts on its first error,
// so any later messages in the slice are recovery noise from a stage
// that resynchronizes (the parser) and are not surfaced here.
func FromMessages(stage Stage, messages []string) *StageError {
	if len(messages) == 0 {
		return nil
	}
	return New(stage, messages[0])
}

// FormatAll renders every message from a stage that permits multiple
// errors in one run (only the parser does, via resynchronization) as
// one multi-line report instead of collapsing to the first.
func FormatAll(stage Stage, messages []string) string {
	if len(messages) == 0 {
		return ""
	}
	if len(messages) == 1 {
		return New(stage, messages[0]).Error()
	}
	out := fmt.Sprintf("%s error: %d errors found:\n", stage, len(messages))
	for i, m := range messages {
		out += fmt.Sprintf("  [%d] %s\n", i+1, m)
	}
	return out
}
