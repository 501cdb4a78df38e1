package grammar

import "fmt"

// ErrorKind categorizes argument grammar failures.
type ErrorKind int

const (
	// ErrArgumentCount indicates fewer arguments than the shortest valid form.
	ErrArgumentCount ErrorKind = iota
	// ErrUnrecognizedType indicates the trailing token is neither OD nor SVA.
	ErrUnrecognizedType
	// ErrUnrecognizedCommand indicates the second token is neither FROM nor FOR.
	ErrUnrecognizedCommand
	// ErrInvalidNumber indicates a range bound or list entry is not an integer.
	ErrInvalidNumber
	// ErrMissingRangeBound indicates the range form ran out of tokens.
	ErrMissingRangeBound
	// ErrEmptyList indicates a FOR list with nothing between the brackets.
	ErrEmptyList
	// ErrNoStreamIDs indicates parsing succeeded but produced no identifiers.
	ErrNoStreamIDs
	// ErrRangeTooLarge indicates a FROM range wider than MaxRangeSize.
	ErrRangeTooLarge
)

// ParseError is returned by Parse for every rejected command line.
type ParseError struct {
	Kind    ErrorKind
	Message string
}

func (e *ParseError) Error() string {
	return e.Message
}

// ShowUsage reports whether the usage text should accompany the error.
// An empty identifier sequence or an oversized range is reported on its own.
func (e *ParseError) ShowUsage() bool {
	return e.Kind != ErrNoStreamIDs && e.Kind != ErrRangeTooLarge
}

func newParseError(kind ErrorKind, format string, args ...any) *ParseError {
	return &ParseError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}
