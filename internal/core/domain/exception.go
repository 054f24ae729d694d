package domain

import (
	"encoding/json"
	"errors"
	"time"
)

// Exception codes mirror HTTP status semantics and are stable across
// releases; clients key on them together with the machine id.
const (
	CodeBadRequest   = 400
	CodeUnauthorized = 401
	CodeForbidden    = 403
	CodeNotFound     = 404
	CodeConflict     = 409
	CodeInternal     = 500
)

// Stable machine ids, one per exception variant.
const (
	IDValidationFailure = "validation-failure"
	IDEmailConflict     = "email-conflict"
	IDMissingAccount    = "missing-account"
	IDInvalidCredential = "invalid-credential"
	IDAccessDenied      = "access-denied"
	IDInternalServer    = "internal-server"
)

// Reason is a structured, machine-readable cause embedded in an Exception.
type Reason interface {
	ReasonJSON() map[string]any
}

// Exception is the single error type crossing the core's boundary. Code and
// ID are stable; Message is human-readable; Reason is optional detail.
type Exception struct {
	Code      int
	ID        string
	Message   string
	Reason    Reason
	Timestamp time.Time
}

func newException(code int, id, message string, reason Reason) *Exception {
	return &Exception{
		Code:      code,
		ID:        id,
		Message:   message,
		Reason:    reason,
		Timestamp: time.Now().UTC(),
	}
}

func (e *Exception) Error() string { return e.Message }

// MarshalJSON renders the wire shape {code, id, message, reason}, with
// reason explicitly null when absent.
func (e *Exception) MarshalJSON() ([]byte, error) {
	var reason any
	if e.Reason != nil {
		reason = e.Reason.ReasonJSON()
	}
	return json.Marshal(struct {
		Code    int    `json:"code"`
		ID      string `json:"id"`
		Message string `json:"message"`
		Reason  any    `json:"reason"`
	}{e.Code, e.ID, e.Message, reason})
}

// EmailConflict reports the address that is already registered.
type EmailConflict struct {
	Email string
}

func (r EmailConflict) ReasonJSON() map[string]any {
	return map[string]any{"email": r.Email}
}

// MissingAccount reports the identifier that matched no account.
type MissingAccount struct {
	UID string
}

func (r MissingAccount) ReasonJSON() map[string]any {
	return map[string]any{"uid": r.UID}
}

// ValidationFailure describes the first validation rule an entity broke.
type ValidationFailure struct {
	Property    string
	Constraints map[string]string
	Value       any
}

func (r ValidationFailure) ReasonJSON() map[string]any {
	return map[string]any{
		"property":    r.Property,
		"constraints": r.Constraints,
		"value":       r.Value,
	}
}

func NewEmailConflict(email string) *Exception {
	return newException(CodeConflict, IDEmailConflict, "email is already registered", EmailConflict{Email: email})
}

func NewMissingAccount(uid string) *Exception {
	return newException(CodeNotFound, IDMissingAccount, "account does not exist", MissingAccount{UID: uid})
}

func NewInvalidCredential() *Exception {
	return newException(CodeUnauthorized, IDInvalidCredential, "invalid credentials", nil)
}

func NewAccessDenied() *Exception {
	return newException(CodeForbidden, IDAccessDenied, "access denied", nil)
}

func NewValidationFailure(failure ValidationFailure) *Exception {
	return newException(CodeBadRequest, IDValidationFailure, "validation failed for property "+failure.Property, failure)
}

// NewInternalServer carries no reason: internal failure detail never reaches
// a caller through the exception shape.
func NewInternalServer() *Exception {
	return newException(CodeInternal, IDInternalServer, "internal server error", nil)
}

// AsException classifies err for the boundary: a known *Exception passes
// through unchanged, anything else collapses into InternalServer.
func AsException(err error) *Exception {
	var ex *Exception
	if errors.As(err, &ex) {
		return ex
	}
	return NewInternalServer()
}

// IsException reports whether err is an Exception carrying the given id.
func IsException(err error, id string) bool {
	var ex *Exception
	return errors.As(err, &ex) && ex.ID == id
}
