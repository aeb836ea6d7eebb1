// Package errors defines the error returned by every LYML parse and dump
// operation.
package errors

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind classifies a ParseError.
type Kind int

const (
	FileNotFound Kind = iota + 1
	FileUnreadable
	TabIndentation
	InvalidLeadingCharacter
	UnexpectedIndentation
	InvalidListItemIndent
	MissingClosingQuote
	MissingClosingBracket
	InvalidConfiguration
)

var kindNames = map[Kind]string{
	FileNotFound:            "file not found",
	FileUnreadable:          "file unreadable",
	TabIndentation:          "tab indentation",
	InvalidLeadingCharacter: "invalid leading character",
	UnexpectedIndentation:   "unexpected indentation",
	InvalidListItemIndent:   "invalid list item indent",
	MissingClosingQuote:     "missing closing quote",
	MissingClosingBracket:   "missing closing bracket",
	InvalidConfiguration:    "invalid configuration",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Sentinels for use with errors.Is; they match any ParseError of the same kind.
var (
	ErrFileNotFound            = &ParseError{Kind: FileNotFound}
	ErrFileUnreadable          = &ParseError{Kind: FileUnreadable}
	ErrTabIndentation          = &ParseError{Kind: TabIndentation}
	ErrInvalidLeadingCharacter = &ParseError{Kind: InvalidLeadingCharacter}
	ErrUnexpectedIndentation   = &ParseError{Kind: UnexpectedIndentation}
	ErrInvalidListItemIndent   = &ParseError{Kind: InvalidListItemIndent}
	ErrMissingClosingQuote     = &ParseError{Kind: MissingClosingQuote}
	ErrMissingClosingBracket   = &ParseError{Kind: MissingClosingBracket}
	ErrInvalidConfiguration    = &ParseError{Kind: InvalidConfiguration}
)

// ParseError reports the first structural violation found in a document.
// Line is 1-indexed; 0 means the error is not tied to a line.
type ParseError struct {
	Kind    Kind
	Message string
	Line    int
	File    string
	Err     error
}

// New returns a ParseError for the given line.
func New(kind Kind, line int, format string, args ...any) *ParseError {
	return &ParseError{Kind: kind, Message: fmt.Sprintf(format, args...), Line: line}
}

func (e *ParseError) Error() string {
	var out strings.Builder
	out.WriteString("lyml: ")
	switch {
	case e.File != "" && e.Line > 0:
		fmt.Fprintf(&out, "%s:%d: ", e.File, e.Line)
	case e.File != "":
		out.WriteString(e.File + ": ")
	case e.Line > 0:
		fmt.Fprintf(&out, "line %d: ", e.Line)
	}
	if e.Message != "" {
		out.WriteString(e.Message)
	} else {
		out.WriteString(e.Kind.String())
	}
	if e.Err != nil {
		out.WriteString(": ")
		out.WriteString(e.Err.Error())
	}
	return out.String()
}

// Is matches another ParseError of the same kind.
func (e *ParseError) Is(target error) bool {
	t, ok := target.(*ParseError)
	return ok && t.Kind == e.Kind
}

func (e *ParseError) Unwrap() error { return e.Err }

// WithFile returns a copy of e that names file.
func (e *ParseError) WithFile(file string) *ParseError {
	c := *e
	c.File = file
	return &c
}
