package error

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/google/uuid"
)

type Code uint32

const (
	UnknownErrorCode Code = iota
	EmptyCollectionErrorCode
)

// ErrEmptyCollection matches any EmptyCollectionError via errors.Is.
var ErrEmptyCollection = errors.New("empty collection")

// StackTraceError wraps any error and captures a stack trace
type StackTraceError struct {
	Msg       string
	Stack     string
	ErrorCode Code
	cause     error
}

func NewStackTraceError(msg string, errorCode Code) *StackTraceError {
	buf := make([]byte, 1024*8)
	n := runtime.Stack(buf, false)
	return &StackTraceError{Msg: msg, Stack: string(buf[:n]), ErrorCode: errorCode}
}

// WithStack attaches the current goroutine stack to err, keeping its code.
func WithStack(err error) *StackTraceError {
	if err == nil {
		return nil
	}
	e := NewStackTraceError(err.Error(), CodeOf(err))
	e.cause = err
	return e
}

func (e *StackTraceError) Error() string {
	return fmt.Sprintf("%s\nStack trace:\n%s", e.Msg, e.Stack)
}

func (e *StackTraceError) Unwrap() error {
	return e.cause
}

type EmptyCollectionError struct {
	ListID uuid.UUID
	Op     string
}

func NewEmptyCollectionError(listID uuid.UUID, op string) *EmptyCollectionError {
	return &EmptyCollectionError{ListID: listID, Op: op}
}

func (e *EmptyCollectionError) Error() string {
	return fmt.Sprintf("cannot %s from empty linked list %s", e.Op, e.ListID)
}

func (e *EmptyCollectionError) Is(target error) bool {
	return target == ErrEmptyCollection
}

func (e *EmptyCollectionError) Code() Code {
	return EmptyCollectionErrorCode
}

// CodeOf returns the code of the outermost coded error in err's chain.
// A StackTraceError reports its own ErrorCode, not the code of its cause.
func CodeOf(err error) Code {
	for ; err != nil; err = errors.Unwrap(err) {
		switch e := err.(type) {
		case *StackTraceError:
			return e.ErrorCode
		case interface{ Code() Code }:
			return e.Code()
		}
	}
	return UnknownErrorCode
}
