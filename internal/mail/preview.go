package mail

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

// LogSender is a development transport that logs messages instead of sending
// them. The returned ID is generated locally so callers can treat it exactly
// like a provider message ID.
type LogSender struct {
	log *slog.Logger
}

// NewLogSender creates a LogSender writing to the provided logger.
func NewLogSender(log *slog.Logger) *LogSender {
	return &LogSender{log: log}
}

// Send logs the message and returns a locally generated message ID.
// The full HTML body is logged at debug level only.
func (s *LogSender) Send(ctx context.Context, msg Message) (string, error) {
	id := uuid.NewString()
	s.log.InfoContext(ctx, "email suppressed by log transport",
		"message_id", id,
		"to", msg.ToAddress,
		"subject", msg.Subject,
	)
	s.log.DebugContext(ctx, "email body", "message_id", id, "html", msg.HTML)
	return id, nil
}
