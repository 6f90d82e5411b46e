package errors

import (
	"errors"
	"fmt"
)

/*
	Typed errors surfaced by the g2p core.
	All three propagate directly to the caller;
	none are retried or recovered locally.
*/

// InvalidArgumentError : the caller supplied no usable filter
type InvalidArgumentError struct {
	Message string
}

func (e *InvalidArgumentError) Error() string {
	return e.Message
}

func NewInvalidArgumentError(message string) *InvalidArgumentError {
	return &InvalidArgumentError{Message: message}
}

// NotSupportedError : an ontology term or URL uses a namespace
// prefix unknown to the loaded graph
type NotSupportedError struct {
	Message string
}

func (e *NotSupportedError) Error() string {
	return e.Message
}

func NewNotSupportedError(format string, args ...interface{}) *NotSupportedError {
	return &NotSupportedError{Message: fmt.Sprintf(format, args...)}
}

// ParseError : a malformed RDF source file, surfaced at load time
// and fatal to construction of the association set
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("error parsing graph file %s : %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func IsInvalidArgument(err error) bool {
	var target *InvalidArgumentError
	return errors.As(err, &target)
}

func IsNotSupported(err error) bool {
	var target *NotSupportedError
	return errors.As(err, &target)
}

func IsParseError(err error) bool {
	var target *ParseError
	return errors.As(err, &target)
}
