package lyml

import (
	"github.com/KimNorgaard/go-lyml/errors"
	"github.com/KimNorgaard/go-lyml/internal/dumper"
)

// ParseError is the error returned by every parse operation and by invalid
// options. See package errors for its kinds.
type ParseError = errors.ParseError

// DumpFlag selects which non-structural lines Dump writes.
type DumpFlag = dumper.Flags

const (
	// DumpEmptyLines writes blank lines.
	DumpEmptyLines DumpFlag = dumper.EmptyLines
	// DumpComments writes comments, both on their own lines and trailing.
	DumpComments DumpFlag = dumper.Comments
)
