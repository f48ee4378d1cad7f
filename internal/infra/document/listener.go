package document

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// Listener holds a dedicated pgx connection on LISTEN and feeds the hub.
// It reconnects with a fixed backoff until ctx is cancelled.
type Listener struct {
	dsn     string
	hub     *Hub
	log     *zap.Logger
	backoff time.Duration
}

func NewListener(dsn string, hub *Hub, log *zap.Logger) *Listener {
	return &Listener{dsn: dsn, hub: hub, log: log, backoff: 5 * time.Second}
}

func (l *Listener) Run(ctx context.Context) {
	for {
		err := l.listen(ctx)
		if ctx.Err() != nil {
			l.log.Info("change listener stopped")
			return
		}
		l.log.Warn("change listener disconnected", zap.Error(err))

		select {
		case <-time.After(l.backoff):
		case <-ctx.Done():
			return
		}
	}
}

func (l *Listener) listen(ctx context.Context) error {
	conn, err := pgx.Connect(ctx, l.dsn)
	if err != nil {
		return err
	}
	defer conn.Close(context.Background())

	if _, err := conn.Exec(ctx, "LISTEN "+Channel); err != nil {
		return err
	}
	l.log.Info("listening for store changes", zap.String("channel", Channel))

	for {
		n, err := conn.WaitForNotification(ctx)
		if err != nil {
			return err
		}

		var ev Event
		if err := json.Unmarshal([]byte(n.Payload), &ev); err != nil {
			l.log.Warn("bad change payload", zap.String("payload", n.Payload), zap.Error(err))
			continue
		}
		l.hub.Dispatch(ev)
	}
}
