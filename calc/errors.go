package calc

import "fmt"

// Error represents an evaluation error with position information
type Error struct {
	Pos     int    // byte offset in the expression
	Message string
	Expr    string // the expression being evaluated
}

func (e *Error) Error() string {
	return fmt.Sprintf("calc: %s (column %d)", e.Message, e.Pos+1)
}

// newError creates a new evaluation error
func newError(expr string, pos int, message string) *Error {
	return &Error{
		Pos:     pos,
		Message: message,
		Expr:    expr,
	}
}

func newErrorf(expr string, pos int, format string, args ...any) *Error {
	return newError(expr, pos, fmt.Sprintf(format, args...))
}
