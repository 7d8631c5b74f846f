package rop

import (
	"errors"
	"fmt"
	"slices"
)

var (
	ErrNoMatch   = errors.New("No conditions matched")
	ErrPredicate = errors.New("value did not satisfy predicate")
	ErrTimeout   = errors.New("operation timed out")
	ErrNilChain  = errors.New("nil chain")
	ErrNoResult  = errors.New("channel closed without a result")
	ErrNilError  = errors.New("failure without an error")
)

// PanicError boxes a value recovered from a panic inside a user function.
// Error returns the panic message, Unwrap exposes the cause when it is an error.
type PanicError struct {
	Value any
}

func (e PanicError) Error() string {
	if err, ok := e.Value.(error); ok {
		return err.Error()
	}
	return fmt.Sprint(e.Value)
}

func (e PanicError) Unwrap() error {
	err, _ := e.Value.(error)
	return err
}

// StatusCoder is implemented by errors carrying a numeric status code.
type StatusCoder interface {
	StatusCode() int
}

// HTTPError is an error with an HTTP status code.
type HTTPError struct {
	Status  int
	Message string
}

func NewHTTPError(status int, message string) *HTTPError {
	return &HTTPError{Status: status, Message: message}
}

func (e *HTTPError) Error() string {
	return e.Message
}

func (e *HTTPError) StatusCode() int {
	return e.Status
}

// Kind tags an error with a discriminator used for classification.
type Kind string

// Kinded is implemented by errors that report their Kind.
type Kinded interface {
	Kind() Kind
}

type kindError struct {
	kind  Kind
	cause error
}

func (e *kindError) Error() string { return e.cause.Error() }
func (e *kindError) Unwrap() error { return e.cause }
func (e *kindError) Kind() Kind    { return e.kind }

// WithKind tags err with kind. The returned error keeps err's message and
// unwraps to it.
func WithKind(err error, kind Kind) error {
	if err == nil {
		return nil
	}
	return &kindError{kind: kind, cause: err}
}

// KindOf returns the first Kind found in err's chain.
func KindOf(err error) (Kind, bool) {
	var k Kinded
	if errors.As(err, &k) {
		return k.Kind(), true
	}
	return "", false
}

// StatusOf returns the first status code found in err's chain.
func StatusOf(err error) (int, bool) {
	var sc StatusCoder
	if errors.As(err, &sc) {
		return sc.StatusCode(), true
	}
	return 0, false
}

// ErrorCriteria selects errors for a handler. Each non-empty field is a
// filter dimension: dimensions are ANDed, values inside one are ORed.
type ErrorCriteria struct {
	StatusCodes []int
	Messages    []string
	Kinds       []Kind
}

// Matches reports whether err satisfies every present dimension.
func (c ErrorCriteria) Matches(err error) bool {
	if err == nil {
		return false
	}

	if len(c.StatusCodes) > 0 {
		code, ok := StatusOf(err)
		if !ok || !slices.Contains(c.StatusCodes, code) {
			return false
		}
	}

	if len(c.Messages) > 0 && !slices.Contains(c.Messages, err.Error()) {
		return false
	}

	if len(c.Kinds) > 0 {
		kind, ok := KindOf(err)
		if !ok || !slices.Contains(c.Kinds, kind) {
			return false
		}
	}

	return true
}
