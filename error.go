package seoscan

import (
	"errors"
	"fmt"
)

// Application error codes. These are propagated unchanged through the
// facade so callers can discriminate failure kinds; the CLI maps them to
// messages and exit status.
const (
	EATTRIBUTE = "attribute" // requested attribute absent from element
	EINTERNAL  = "internal"  // unexpected internal error
	EINVALID   = "invalid"   // validation failed
	ENOTFOUND  = "not_found" // no element satisfied the search
)

// Error represents an application error. Code discriminates the failure
// kind; the remaining fields carry structured context for the kinds that
// have any, so callers can render precise diagnostics without parsing
// the message.
type Error struct {
	// Machine-readable error code.
	Code string

	// Human-readable message.
	Message string

	// Query holds the search criteria that matched nothing.
	// Set when Code is ENOTFOUND.
	Query *Query

	// Element and Attr identify the failed attribute lookup.
	// Set when Code is EATTRIBUTE.
	Element *Element
	Attr    string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("seoscan error: code=%s message=%s", e.Code, e.Message)
}

// ErrorCode returns the code of the root error, if available.
// Otherwise returns EINTERNAL.
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
// Otherwise returns a generic error message.
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
func Errorf(code string, format string, args ...interface{}) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// NotFound returns an ENOTFOUND error describing a failed element search.
// The query is retained on the error for diagnostics.
func NotFound(q Query) *Error {
	err := Errorf(ENOTFOUND, "no element matching %s found", q)
	err.Query = &q
	return err
}

// MissingAttribute returns an EATTRIBUTE error for an attribute absent
// from an otherwise successfully found element.
func MissingAttribute(el *Element, attr string) *Error {
	err := Errorf(EATTRIBUTE, "element %s has no %q attribute", el, attr)
	err.Element = el
	err.Attr = attr
	return err
}
