// Package errors provides the single error taxonomy every lookup
// operation surfaces to the UI. Each failed call yields exactly one
// ScanError with a ready-to-display message; this package is the only
// place allowed to manufacture default user-facing text.
package errors

import (
	"context"
	stderrors "errors"
	"fmt"
	"net"
)

// ==========================
// 1. Error Kinds
// ==========================

// Kind tags a failure with its classification.
type Kind string

const (
	KindTimeout        Kind = "TIMEOUT"
	KindNetworkFailure Kind = "NETWORK_FAILURE"
	KindServerError    Kind = "SERVER_ERROR"
	KindShapeMismatch  Kind = "SHAPE_MISMATCH"
	KindNotFound       Kind = "NOT_FOUND"
	KindIncompleteData Kind = "INCOMPLETE_DATA"
)

// Default user-facing messages, used when the backend omits its own.
const (
	MsgTimeout        = "The request took too long. Please try again."
	MsgNetworkFailure = "Could not reach the server. Check your connection and try again."
	MsgShapeMismatch  = "The server sent an unexpected response. Please try again later."
	MsgNotFound       = "We couldn't find that product. Try scanning the ingredient list instead."
	MsgIncompleteData = "No ingredient information is available for this product."
)

// ==========================
// 2. ScanError
// ==========================

// ScanError is the classified failure returned by every entry
// operation. Message is safe to display verbatim.
type ScanError struct {
	Kind    Kind
	Message string
	Status  int   // HTTP status code, set for KindServerError only
	Err     error // underlying cause, if any
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("ScanError[%s]: %s", e.Kind, e.Message)
}

func (e *ScanError) Unwrap() error {
	return e.Err
}

// ==========================
// 3. Constructors
// ==========================

func NewTimeoutError(err error) *ScanError {
	return &ScanError{Kind: KindTimeout, Message: MsgTimeout, Err: err}
}

func NewNetworkFailureError(err error) *ScanError {
	return &ScanError{Kind: KindNetworkFailure, Message: MsgNetworkFailure, Err: err}
}

// NewServerError carries the status code and whatever body text the
// server supplied into the displayed message.
func NewServerError(status int, body string) *ScanError {
	msg := fmt.Sprintf("The server returned an error (status %d).", status)
	if body != "" {
		msg = fmt.Sprintf("The server returned an error (status %d): %s", status, body)
	}
	return &ScanError{Kind: KindServerError, Message: msg, Status: status}
}

func NewShapeMismatchError(details string) *ScanError {
	return &ScanError{
		Kind:    KindShapeMismatch,
		Message: MsgShapeMismatch,
		Err:     stderrors.New(details),
	}
}

// NewNotFoundError uses the backend-supplied message when present.
func NewNotFoundError(message string) *ScanError {
	if message == "" {
		message = MsgNotFound
	}
	return &ScanError{Kind: KindNotFound, Message: message}
}

// NewIncompleteDataError uses the backend-supplied message when present.
func NewIncompleteDataError(message string) *ScanError {
	if message == "" {
		message = MsgIncompleteData
	}
	return &ScanError{Kind: KindIncompleteData, Message: message}
}

// ==========================
// 4. Classification
// ==========================

// Classify funnels any failure into the taxonomy. Already-classified
// errors pass through unchanged; a fired deadline is always Timeout,
// never NetworkFailure; everything else transport-level is
// NetworkFailure.
func Classify(err error) *ScanError {
	var scanErr *ScanError
	if stderrors.As(err, &scanErr) {
		return scanErr
	}

	if stderrors.Is(err, context.DeadlineExceeded) {
		return NewTimeoutError(err)
	}
	var netErr net.Error
	if stderrors.As(err, &netErr) && netErr.Timeout() {
		return NewTimeoutError(err)
	}

	return NewNetworkFailureError(err)
}

// KindOf reports the classified kind of an error, classifying it first
// if needed.
func KindOf(err error) Kind {
	return Classify(err).Kind
}
