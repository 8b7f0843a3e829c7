package errors

import (
	stderrors "errors"
	"runtime"
	"strings"

	pkgerrors "github.com/pkg/errors"
)

// StackFrame describes one line in a recorded stack trace.
type StackFrame struct {
	// File is the path to the file containing this ProgramCounter
	File string
	// LineNumber in that file
	LineNumber int
	// Name of the function that contains this ProgramCounter
	Name string
	// Package that contains this function
	Package string
	// ProgramCounter is the underlying pointer
	ProgramCounter uintptr
}

type stackTracer interface {
	StackTrace() pkgerrors.StackTrace
}

// StackOf returns the deepest stack trace recorded anywhere in err's chain as
// resolved frames, or nil when no stack was recorded. Errors built with this
// package always carry one.
func StackOf(err error) []StackFrame {
	var frames []StackFrame
	for err != nil {
		if tracer, ok := err.(stackTracer); ok {
			trace := tracer.StackTrace()
			frames = make([]StackFrame, 0, len(trace))
			for _, pc := range trace {
				frames = append(frames, NewStackFrame(uintptr(pc)))
			}
		}
		err = stderrors.Unwrap(err)
	}
	return frames
}

// NewStackFrame resolves a program counter into a stack frame.
func NewStackFrame(pc uintptr) StackFrame {
	frame := StackFrame{ProgramCounter: pc}

	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return frame
	}

	name := fn.Name()
	pkg := ""

	// program counters are return addresses, but we want the line that called us
	frame.File, frame.LineNumber = fn.FileLine(pc - 1)

	if lastslash := strings.LastIndex(name, "/"); lastslash >= 0 {
		pkg += name[:lastslash] + "/"
		name = name[lastslash+1:]
	}

	if period := strings.Index(name, "."); period >= 0 {
		pkg += name[:period]
		name = name[period+1:]
	}

	name = strings.Replace(name, "·", ".", -1)

	frame.Package = pkg
	frame.Name = name

	return frame
}
