package notify

import (
	"context"
	"log/slog"

	"slotbook/internal/usecase/commands"
)

// LogNotifier writes events to the log. Used when no broker is configured.
type LogNotifier struct {
	logger *slog.Logger
}

func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Notify(ctx context.Context, event commands.BookingEvent) error {
	attrs := []slog.Attr{
		slog.String("routing_key", event.RoutingKey()),
		slog.String("session_id", event.SessionID.String()),
		slog.String("owner_id", event.OwnerID.String()),
		slog.String("client_id", event.ClientID.String()),
		slog.Int("booking_count", len(event.BookingIDs)),
		slog.Time("start", event.TimeRange.Start),
		slog.Time("end", event.TimeRange.End),
	}
	if event.Recipient != "" {
		attrs = append(attrs,
			slog.String("actor_role", event.ActorRole),
			slog.String("recipient", event.Recipient))
	}
	n.logger.LogAttrs(ctx, slog.LevelInfo, "booking event", attrs...)
	return nil
}
