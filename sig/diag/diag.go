package diag

import (
	"errors"
	"fmt"
)

const (
	CodeNoMatch         = "SIG1001"
	CodeBadFunctionName = "SIG1002"
)

var (
	// ErrNoMatch means the input has no name(...) shape, or an argument
	// could not be read as a catalog type.
	ErrNoMatch = errors.New("did not match function name")
	// ErrBadFunctionName means the captured function name is the keyword
	// "function" itself.
	ErrBadFunctionName = errors.New("bad function name")
)

// Diagnostic is a structured extraction or canonicalization failure.
// Offset is a byte offset into the input, or -1 when it does not apply.
type Diagnostic struct {
	Code    string
	Message string
	Offset  int
	Kind    error
}

func (d *Diagnostic) Error() string {
	if d.Offset < 0 {
		return fmt.Sprintf("[%s] %s", d.Code, d.Message)
	}
	return fmt.Sprintf("offset %d: [%s] %s", d.Offset, d.Code, d.Message)
}

func (d *Diagnostic) Unwrap() error { return d.Kind }

// NoMatch builds an ErrNoMatch diagnostic.
func NoMatch(offset int, format string, args ...any) *Diagnostic {
	return &Diagnostic{
		Code:    CodeNoMatch,
		Message: fmt.Sprintf(format, args...),
		Offset:  offset,
		Kind:    ErrNoMatch,
	}
}

// BadFunctionName builds an ErrBadFunctionName diagnostic.
func BadFunctionName(offset int, format string, args ...any) *Diagnostic {
	return &Diagnostic{
		Code:    CodeBadFunctionName,
		Message: fmt.Sprintf(format, args...),
		Offset:  offset,
		Kind:    ErrBadFunctionName,
	}
}
