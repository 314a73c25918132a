package domain

import (
	"errors"
	"fmt"
)

// ErrUnknownMethod is returned when a method identifier is not supported.
var ErrUnknownMethod = errors.New("unknown method")

// ErrUnknownMode is returned when a mode identifier is neither encode nor decode.
var ErrUnknownMode = errors.New("unknown mode")

// ErrSessionNotFound is returned when a session ID is not registered.
var ErrSessionNotFound = errors.New("session not found")

// ErrEntryNotFound is returned when a history entry cannot be located.
var ErrEntryNotFound = errors.New("history entry not found")

// ErrorKind tags a recoverable codec failure.
type ErrorKind string

const (
	KindNone                   ErrorKind = ""
	KindInvalidBase64          ErrorKind = "invalid_base64"
	KindInvalidPercentEncoding ErrorKind = "invalid_percent_encoding"
	KindInvalidBinaryToken     ErrorKind = "invalid_binary_token"
	KindInvalidHexToken        ErrorKind = "invalid_hex_token"
	KindInvalidJSON            ErrorKind = "invalid_json"
)

// Sentinel errors, one per ErrorKind. Use errors.Is to match them.
var (
	ErrInvalidBase64          = errors.New("invalid base64 format")
	ErrInvalidPercentEncoding = errors.New("invalid URL encoded format")
	ErrInvalidBinaryToken     = errors.New("invalid binary format")
	ErrInvalidHexToken        = errors.New("invalid hexadecimal format")
	ErrInvalidJSON            = errors.New("invalid JSON format")
)

var kindSentinels = map[ErrorKind]error{
	KindInvalidBase64:          ErrInvalidBase64,
	KindInvalidPercentEncoding: ErrInvalidPercentEncoding,
	KindInvalidBinaryToken:     ErrInvalidBinaryToken,
	KindInvalidHexToken:        ErrInvalidHexToken,
	KindInvalidJSON:            ErrInvalidJSON,
}

// Sentinel returns the sentinel error associated with the kind, or nil.
func (k ErrorKind) Sentinel() error {
	return kindSentinels[k]
}

// TransformError represents a codec failure.
// It wraps the kind's sentinel together with the underlying cause.
type TransformError struct {
	Kind   ErrorKind
	Method Method
	Mode   Mode
	Cause  error
}

// NewTransformError builds a TransformError for the given kind and cause.
func NewTransformError(kind ErrorKind, cause error) *TransformError {
	return &TransformError{Kind: kind, Cause: cause}
}

func (e *TransformError) Error() string {
	base := "transform failed"
	if s := e.Kind.Sentinel(); s != nil {
		base = s.Error()
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", base, e.Cause)
	}
	return base
}

// Unwrap exposes both the kind sentinel and the cause to errors.Is / errors.As.
func (e *TransformError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if s := e.Kind.Sentinel(); s != nil {
		errs = append(errs, s)
	}
	if e.Cause != nil {
		errs = append(errs, e.Cause)
	}
	return errs
}

// KindOf extracts the ErrorKind from err. Returns KindNone if err carries none.
func KindOf(err error) ErrorKind {
	var te *TransformError
	if errors.As(err, &te) {
		return te.Kind
	}
	return KindNone
}
