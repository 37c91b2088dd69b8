package catalog

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"moving_pricing/internal/domain/entities"
)

type Reloader interface {
	Reload(ctx context.Context) (entities.CatalogSummary, error)
}

// Watcher reloads the catalog whenever a message arrives on the updates
// channel. Publishers send the new rules version as the payload; the
// payload is logged only, the source decides what becomes active.
type Watcher struct {
	client   *redis.Client
	channel  string
	reloader Reloader
	log      *zap.Logger
}

func NewWatcher(client *redis.Client, channel string, reloader Reloader, log *zap.Logger) *Watcher {
	if log == nil {
		log = zap.NewNop()
	}
	return &Watcher{client: client, channel: channel, reloader: reloader, log: log}
}

// Run subscribes and blocks until ctx is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	sub := w.client.Subscribe(ctx, w.channel)
	defer sub.Close()

	if _, err := sub.Receive(ctx); err != nil {
		return fmt.Errorf("subscribe %s: %w", w.channel, err)
	}
	w.log.Info("[catalog][watcher] subscribed", zap.String("channel", w.channel))
	w.consume(ctx, sub.Channel())
	return ctx.Err()
}

func (w *Watcher) consume(ctx context.Context, messages <-chan *redis.Message) {
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-messages:
			if !ok {
				return
			}
			summary, err := w.reloader.Reload(ctx)
			if err != nil {
				w.log.Warn("[catalog][watcher] reload failed, keeping current snapshot",
					zap.String("announced", msg.Payload), zap.Error(err))
				continue
			}
			w.log.Info("[catalog][watcher] reloaded",
				zap.String("announced", msg.Payload),
				zap.String("rules_version", summary.RulesVersion))
		}
	}
}

