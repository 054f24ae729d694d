package domain

import (
	"context"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Role is the closed set of account roles.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

var validRoles = map[Role]struct{}{
	RoleAdmin: {},
	RoleUser:  {},
}

const minPasswordLength = 6

// NormalizeEmail lowercases and trims an address; all email comparisons in
// the core run on the normalized form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Account is the aggregate root for a user account. It owns its document and
// buffers domain events until Commit drains them to a publisher, so
// subscribers never observe an event before the account is durably stored.
type Account struct {
	doc     AccountDocument
	pending []Event
}

// NewAccount constructs an Account from a creation payload or a persisted
// document. A payload without an identifier is transient: a fresh uid is
// generated and an AccountCreatedEvent is staged. A document carrying its
// identifier reconstructs a persisted account and stages nothing.
func NewAccount(doc AccountDocument) *Account {
	doc.Email = NormalizeEmail(doc.Email)
	a := &Account{doc: doc}
	if a.doc.ID == "" {
		a.doc.ID = uuid.NewString()
		a.stage(AccountCreatedEvent{Account: a, At: time.Now().UTC()})
	}
	return a
}

func (a *Account) UID() string      { return a.doc.ID }
func (a *Account) Email() string    { return a.doc.Email }
func (a *Account) Password() string { return a.doc.Password }
func (a *Account) Role() Role       { return a.doc.Role }

// Serialize returns the plain persisted record, identifier included.
func (a *Account) Serialize() AccountDocument { return a.doc }

// SetPassword replaces the stored password. The create handler uses this to
// swap the transient plaintext for its hash once validation has run.
func (a *Account) SetPassword(password string) { a.doc.Password = password }

func (a *Account) stage(event Event) { a.pending = append(a.pending, event) }

// PendingEvents returns a copy of the staged, not yet committed events.
func (a *Account) PendingEvents() []Event {
	out := make([]Event, len(a.pending))
	copy(out, a.pending)
	return out
}

// Commit drains staged events through publish in staging order. An event is
// dropped from the buffer only after its publication succeeds.
func (a *Account) Commit(ctx context.Context, publish EventPublisher) error {
	for len(a.pending) > 0 {
		if err := publish(ctx, a.pending[0]); err != nil {
			return err
		}
		a.pending = a.pending[1:]
	}
	return nil
}

// Validate runs every rule in a fixed order and fails on the first broken
// one with a validation exception naming the property, the triggered
// constraint and the offending value. It never inspects rules beyond the
// first failure.
func (a *Account) Validate() error {
	rules := []func() *ValidationFailure{
		a.checkID,
		a.checkCreatedAt,
		a.checkUpdatedAt,
		a.checkEmail,
		a.checkPassword,
		a.checkRole,
	}
	for _, rule := range rules {
		if failure := rule(); failure != nil {
			return NewValidationFailure(*failure)
		}
	}
	return nil
}

func (a *Account) checkID() *ValidationFailure {
	if a.doc.ID == "" {
		return &ValidationFailure{
			Property:    "id",
			Constraints: map[string]string{"isDefined": "id must be a non-empty identifier"},
			Value:       a.doc.ID,
		}
	}
	return nil
}

func (a *Account) checkCreatedAt() *ValidationFailure {
	return checkTimestamp("created_at", a.doc.CreatedAt)
}

func (a *Account) checkUpdatedAt() *ValidationFailure {
	return checkTimestamp("updated_at", a.doc.UpdatedAt)
}

// checkTimestamp accepts nil (never set) and any positive unix timestamp.
func checkTimestamp(property string, ts *int64) *ValidationFailure {
	if ts != nil && *ts <= 0 {
		return &ValidationFailure{
			Property:    property,
			Constraints: map[string]string{"isPositive": property + " must be a positive unix timestamp"},
			Value:       *ts,
		}
	}
	return nil
}

func (a *Account) checkEmail() *ValidationFailure {
	if _, err := mail.ParseAddress(a.doc.Email); err != nil {
		return &ValidationFailure{
			Property:    "email",
			Constraints: map[string]string{"isEmail": "email must be a valid address"},
			Value:       a.doc.Email,
		}
	}
	return nil
}

func (a *Account) checkPassword() *ValidationFailure {
	if len(a.doc.Password) < minPasswordLength {
		return &ValidationFailure{
			Property:    "password",
			Constraints: map[string]string{"minLength": "password must be at least 6 characters"},
			Value:       a.doc.Password,
		}
	}
	return nil
}

func (a *Account) checkRole() *ValidationFailure {
	if _, ok := validRoles[a.doc.Role]; !ok {
		return &ValidationFailure{
			Property:    "role",
			Constraints: map[string]string{"isIn": "role must be one of: admin, user"},
			Value:       string(a.doc.Role),
		}
	}
	return nil
}
