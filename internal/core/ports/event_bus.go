package ports

import (
	"context"

	"github.com/identora/account-system/internal/core/domain"
)

// EventBus delivers domain events to subscribers outside the core.
type EventBus interface {
	Publish(ctx context.Context, event domain.Event) error
}
