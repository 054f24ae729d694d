package service

import (
	"context"
	"errors"
	"testing"

	"github.com/identora/account-system/internal/core/domain"
	"github.com/identora/account-system/internal/core/ports"
)

func validCommand() ports.CreateAccountCommand {
	return ports.CreateAccountCommand{
		Email:    "a@b.com",
		Password: "secret1",
		Role:     "user",
	}
}

func TestCreateAccount_Success(t *testing.T) {
	accounts := newTestAccounts()
	bus := &stubBus{}
	handler := NewCreateAccountHandler(accounts, stubHasher{}, bus, testLogger())

	account, err := handler.Handle(context.Background(), validCommand())
	if err != nil {
		t.Fatalf("Handle returned error: %v", err)
	}
	if account.UID() == "" {
		t.Fatalf("expected a non-empty uid")
	}
	if account.Password() == "secret1" {
		t.Fatalf("expected the plaintext to be replaced with its hash")
	}
	if account.Password() != "hashed$secret1" {
		t.Fatalf("unexpected stored password: %q", account.Password())
	}
	if account.Role() != domain.RoleUser {
		t.Fatalf("unexpected role: %s", account.Role())
	}

	doc := account.Serialize()
	if doc.CreatedAt == nil || *doc.CreatedAt <= 0 {
		t.Fatalf("expected a positive created_at")
	}
	if doc.UpdatedAt != nil {
		t.Fatalf("expected updated_at to stay nil on creation")
	}
}

func TestCreateAccount_StoresHashNotPlaintext(t *testing.T) {
	accounts := newTestAccounts()
	handler := NewCreateAccountHandler(accounts, stubHasher{}, &stubBus{}, testLogger())

	account, err := handler.Handle(context.Background(), validCommand())
	if err != nil {
		t.Fatalf("Handle returned error: %v", err)
	}

	stored, ok, err := accounts.FindByID(context.Background(), account.UID())
	if err != nil || !ok {
		t.Fatalf("expected stored account, ok=%v err=%v", ok, err)
	}
	if stored.Password() != "hashed$secret1" {
		t.Fatalf("repository holds %q, expected the hash", stored.Password())
	}
}

func TestCreateAccount_PublishesCreatedEventAfterInsert(t *testing.T) {
	accounts := newTestAccounts()
	bus := &stubBus{}
	bus.onPublish = func(ctx context.Context, event domain.Event) error {
		created, ok := event.(domain.AccountCreatedEvent)
		if !ok {
			t.Fatalf("expected AccountCreatedEvent, got %T", event)
		}
		// Persist-before-publish: the account must already be stored when
		// subscribers observe the event.
		_, found, err := accounts.FindByID(ctx, created.TriggeredBy().UID())
		if err != nil || !found {
			t.Fatalf("event published before the account was stored (found=%v err=%v)", found, err)
		}
		return nil
	}
	handler := NewCreateAccountHandler(accounts, stubHasher{}, bus, testLogger())

	if _, err := handler.Handle(context.Background(), validCommand()); err != nil {
		t.Fatalf("Handle returned error: %v", err)
	}
	if len(bus.published()) != 1 {
		t.Fatalf("expected exactly one published event, got %d", len(bus.published()))
	}
}

func TestCreateAccount_DuplicateEmailConflicts(t *testing.T) {
	accounts := newTestAccounts()
	handler := NewCreateAccountHandler(accounts, stubHasher{}, &stubBus{}, testLogger())

	if _, err := handler.Handle(context.Background(), validCommand()); err != nil {
		t.Fatalf("first create failed: %v", err)
	}

	// Same address, different case and surrounding whitespace.
	cmd := validCommand()
	cmd.Email = " A@B.COM "
	_, err := handler.Handle(context.Background(), cmd)
	var ex *domain.Exception
	if !errors.As(err, &ex) || ex.ID != domain.IDEmailConflict {
		t.Fatalf("expected email-conflict, got %v", err)
	}
	reason, ok := ex.Reason.(domain.EmailConflict)
	if !ok {
		t.Fatalf("expected EmailConflict reason, got %T", ex.Reason)
	}
	if reason.Email != "a@b.com" {
		t.Fatalf("expected normalized email in reason, got %q", reason.Email)
	}
}

func TestCreateAccount_RejectsShortPassword(t *testing.T) {
	handler := NewCreateAccountHandler(newTestAccounts(), stubHasher{}, &stubBus{}, testLogger())

	cmd := validCommand()
	cmd.Password = "tiny"
	_, err := handler.Handle(context.Background(), cmd)
	var ex *domain.Exception
	if !errors.As(err, &ex) || ex.ID != domain.IDValidationFailure {
		t.Fatalf("expected validation-failure, got %v", err)
	}
	failure := ex.Reason.(domain.ValidationFailure)
	if failure.Property != "password" {
		t.Fatalf("expected password failure, got %s", failure.Property)
	}
}

func TestCreateAccount_RejectsUnknownRole(t *testing.T) {
	handler := NewCreateAccountHandler(newTestAccounts(), stubHasher{}, &stubBus{}, testLogger())

	cmd := validCommand()
	cmd.Role = "root"
	_, err := handler.Handle(context.Background(), cmd)
	if !domain.IsException(err, domain.IDValidationFailure) {
		t.Fatalf("expected validation-failure, got %v", err)
	}
}

func TestCreateAccount_RejectsMalformedEmail(t *testing.T) {
	handler := NewCreateAccountHandler(newTestAccounts(), stubHasher{}, &stubBus{}, testLogger())

	cmd := validCommand()
	cmd.Email = "not-an-email"
	_, err := handler.Handle(context.Background(), cmd)
	if !domain.IsException(err, domain.IDValidationFailure) {
		t.Fatalf("expected validation-failure, got %v", err)
	}
}
