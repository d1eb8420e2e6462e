package checkin

import (
	"context"

	lumenerrors "github.com/lumenwell/lumen/internal/errors"
	"github.com/lumenwell/lumen/internal/logger"
)

// FlushOutbox replays queued payloads oldest first. Each failure bumps the
// item's attempt counter and leaves it queued; successes are deleted. The
// replay rate is bounded so a long backlog drains gently. Returns how many
// items were delivered and how many remain.
func (o *Orchestrator) FlushOutbox(ctx context.Context) (sent, remaining int, err error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	items, err := o.store.ListOutbox()
	if err != nil {
		return 0, 0, lumenerrors.NewStorage("list outbox", err)
	}

	for _, item := range items {
		if err := o.limiter.Wait(ctx); err != nil {
			return sent, len(items) - sent, err
		}
		if replayErr := o.remote.Replay(ctx, item.Kind, []byte(item.Payload)); replayErr != nil {
			logger.Debug("outbox replay failed", "id", item.ID, "kind", item.Kind, "attempts", item.Attempts+1, "error", replayErr)
			if err := o.store.BumpOutboxAttempts(item.ID); err != nil {
				return sent, len(items) - sent, lumenerrors.NewStorage("bump outbox attempts", err)
			}
			continue
		}
		if err := o.store.DeleteOutbox(item.ID); err != nil {
			return sent, len(items) - sent, lumenerrors.NewStorage("delete outbox item", err)
		}
		sent++
	}
	return sent, len(items) - sent, nil
}
