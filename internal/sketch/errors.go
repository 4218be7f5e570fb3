package sketch

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// ErrorKind classifies a sketch failure.
type ErrorKind int

const (
	IOError ErrorKind = iota + 1
	SyntaxError
	SemanticError
)

func (k ErrorKind) String() string {
	switch k {
	case IOError:
		return "io error"
	case SyntaxError:
		return "syntax error"
	case SemanticError:
		return "semantic error"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

var (
	// ErrAlreadySet matches an attribute assigned twice in one declaration.
	ErrAlreadySet = errors.New("attribute already set")
	// ErrFullscreenConflict matches fullscreen combined with width, height or position.
	ErrFullscreenConflict = errors.New("attribute conflicts with fullscreen")
	// ErrEmptyTitle is returned for a window title of zero characters.
	ErrEmptyTitle = errors.New("title must not be empty")
)

// AttributeError is an assignment refused by a Window setter.
type AttributeError struct {
	Attr string
	With string // conflicting attribute; empty for a repeated assignment
}

func (e *AttributeError) Error() string {
	if e.With == "" {
		return e.Attr + " is already set"
	}
	return e.Attr + " cannot be combined with " + e.With
}

func (e *AttributeError) Is(target error) bool {
	switch target {
	case ErrAlreadySet:
		return e.With == ""
	case ErrFullscreenConflict:
		return e.With != ""
	}
	return false
}

const nearLimit = 32

// Error is the single diagnostic produced by reading, parsing or validating a
// sketch. Syntax and semantic failures share this shape and differ only in
// Kind and message.
type Error struct {
	Kind     ErrorKind
	Pos      Pos
	End      Pos
	Expected string // syntax errors: description of what was expected at Pos
	Err      error
	Line     string // source line containing Pos
	Near     string // source slice starting at Pos, up to the end of its line

	atEOF bool
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Pos.String())
	b.WriteString(": ")
	b.WriteString(e.Kind.String())
	b.WriteString(": ")
	b.WriteString(e.Message())
	if e.Kind != IOError {
		switch {
		case e.atEOF:
			b.WriteString(" at end of input")
		case e.Near == "":
			b.WriteString(" at end of line")
		default:
			fmt.Fprintf(&b, " near %q", e.Near)
		}
	}
	return b.String()
}

// Message is the diagnostic text without position information.
func (e *Error) Message() string {
	switch {
	case e.Expected != "":
		return "expected " + e.Expected
	case e.Err != nil:
		return e.Err.Error()
	default:
		return "invalid input"
	}
}

func (e *Error) Unwrap() error { return e.Err }

// Diagnostic renders the error followed by the offending source line and a
// caret under the failing span.
func (e *Error) Diagnostic() string {
	if e.Pos.Line == 0 || e.Kind == IOError {
		return e.Error()
	}

	gutter := fmt.Sprintf("%4d | ", e.Pos.Line)
	var pad strings.Builder
	col := 1
	for _, r := range e.Line {
		if col >= e.Pos.Column {
			break
		}
		if r == '\t' {
			pad.WriteByte('\t')
		} else {
			pad.WriteByte(' ')
		}
		col++
	}

	width := 1
	if e.End.Line == e.Pos.Line && e.End.Column > e.Pos.Column {
		width = e.End.Column - e.Pos.Column
	}

	var b strings.Builder
	b.WriteString(e.Error())
	b.WriteByte('\n')
	b.WriteString(gutter)
	b.WriteString(e.Line)
	b.WriteByte('\n')
	b.WriteString(strings.Repeat(" ", len(gutter)))
	b.WriteString(pad.String())
	b.WriteByte('^')
	b.WriteString(strings.Repeat("~", width-1))
	return b.String()
}

// KindOf returns the kind of a sketch error, or 0 if err is not one.
func KindOf(err error) ErrorKind {
	var serr *Error
	if errors.As(err, &serr) {
		return serr.Kind
	}
	return 0
}

func (s *Source) errorAt(kind ErrorKind, start, end int, expected string, err error) *Error {
	pos := s.Pos(start)
	line := s.Line(pos.Line)
	return &Error{
		Kind:     kind,
		Pos:      pos,
		End:      s.Pos(end),
		Expected: expected,
		Err:      err,
		Line:     line,
		Near:     near(s.Text[start:]),
		atEOF:    start >= len(s.Text),
	}
}

func near(rest string) string {
	if i := strings.IndexAny(rest, "\r\n"); i >= 0 {
		rest = rest[:i]
	}
	if utf8.RuneCountInString(rest) <= nearLimit {
		return rest
	}
	n := 0
	for i := range rest {
		if n == nearLimit {
			return rest[:i] + "..."
		}
		n++
	}
	return rest
}
