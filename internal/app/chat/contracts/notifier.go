package contracts

import (
	"context"

	"github.com/light-bringer/farmlink-service/internal/app/chat/domain"
)

// Notifier announces freshly appended messages to interested consumers
// (the other participant's open chat, dashboards). Delivery is best
// effort: a failed notification must not lose the message.
type Notifier interface {
	Publish(ctx context.Context, msg *domain.Message) error
}
