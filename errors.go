package staylens

import (
	"errors"
	"fmt"
)

// Application error codes.
//
// The pipeline codes map one-to-one onto the failure modes of scraping an
// undocumented upstream: the page couldn't be fetched, the embedded payload
// couldn't be found or parsed, or the payload no longer has the expected
// shape.
const (
	EINVALID          = "invalid"           // caller-supplied arguments violate a precondition
	ENOTFOUND         = "not_found"         // entity does not exist
	EUPSTREAM         = "upstream"          // non-2xx response from the listings site
	ETIMEOUT          = "timeout"           // fetch exceeded its wall-clock budget
	EPAYLOADNOTFOUND  = "payload_not_found" // no matching script element in the page
	EPAYLOADEMPTY     = "payload_empty"     // matched script element has no text content
	EPAYLOADMALFORMED = "payload_malformed" // script content is not valid JSON
	ESCHEMAMISMATCH   = "schema_mismatch"   // expected key path absent, upstream structure changed
	EINTERNAL         = "internal"          // anything else
)

// Error represents an application-specific error. Errors carry a machine
// readable code and a human readable message.
type Error struct {
	// Machine-readable error code.
	Code string

	// Human-readable message.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("staylens error: code=%s message=%s", e.Code, e.Message)
}

// ErrorCode returns the code of the root error, if available.
// Otherwise returns EINTERNAL. A nil error returns an empty string.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage returns the message of the root error, if available.
// Otherwise returns a generic message. A nil error returns an empty string.
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}

// Errorf is a helper function to return an Error with a given code and
// formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}
