package errors

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"
)

// annotatedError wraps an error with a message, the source location where it was wrapped, and slog attributes that
// help troubleshooting.
type annotatedError struct {
	// msg describes what was being done when err happened.
	msg string
	// err is the wrapped error. It may be nil for errors created with New.
	err error
	// pc is the program counter for the location of the error provided by runtime.Callers.
	pc uintptr
	// attrs are added to the log event when the error is logged with SlogError.
	attrs []slog.Attr
}

// New creates an error with the given message and attributes. The caller's source location is recorded.
func New(msg string, attrs ...slog.Attr) error {
	return annotatedError{
		msg:   msg,
		pc:    callerPC(),
		attrs: attrs,
	}
}

// NewSentinel creates a plain error without other context that can be used as sentinel error that can be detected
// with errors.Is.
func NewSentinel(msg string) error {
	return errors.New(msg)
}

// Wrap annotates err with msg and attrs. Wrapping a nil error returns nil.
func Wrap(err error, msg string, attrs ...slog.Attr) error {
	if err == nil {
		return nil
	}
	return annotatedError{
		msg:   msg,
		err:   err,
		pc:    callerPC(),
		attrs: attrs,
	}
}

func callerPC() uintptr {
	var pcs [1]uintptr
	// Skip runtime.Callers, callerPC and the exported constructor.
	runtime.Callers(3, pcs[:])
	return pcs[0]
}

// Error implements error interface.
func (e annotatedError) Error() string {
	if e.err == nil {
		return e.msg
	}
	return fmt.Sprintf("%s: %s", e.msg, e.err.Error())
}

// Unwrap exposes the wrapped error to errors.Is and errors.As.
func (e annotatedError) Unwrap() error {
	return e.err
}

// LogValue formats the error for useful logging.
func (e annotatedError) LogValue() slog.Value {
	// Retrieve the source location of the error so that developers can locate it faster.
	frames := runtime.CallersFrames([]uintptr{e.pc})
	source, _ := frames.Next()

	attrs := []slog.Attr{
		slog.String("msg", e.Error()),
		slog.String("source", fmt.Sprintf("%s:%d", source.File, source.Line)),
	}
	attrs = append(attrs, e.attrs...)

	// Collect the attributes of wrapped annotated errors too.
	var inner annotatedError
	if errors.As(e.err, &inner) {
		attrs = append(attrs, inner.attrs...)
	}

	return slog.GroupValue(attrs...)
}

// SlogError returns err as a slog attribute under the key "error".
func SlogError(err error) slog.Attr {
	var annotated annotatedError
	if errors.As(err, &annotated) {
		return slog.Any("error", annotated)
	}
	return slog.String("error", err.Error())
}

// As exposes stdlib errors.As.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Is exposes stdlib errors.Is.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// Join exposes stdlib errors.Join.
func Join(errs ...error) error {
	return errors.Join(errs...)
}
