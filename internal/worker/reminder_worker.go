package worker

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/legal-case-service/internal/events"
	"github.com/spec-kit/legal-case-service/internal/repository"
	"github.com/spec-kit/legal-case-service/internal/service"
)

// StartReminderWorker registers notification handlers on the dispatcher.
func StartReminderWorker(notificationService *service.NotificationService) {
	if notificationService == nil {
		return
	}
	notificationService.RegisterHandlers()
}

// RunDeadlineScanner periodically publishes deadline.approaching events for
// open deadlines falling due within the lookahead window. It blocks until the
// context is cancelled.
func RunDeadlineScanner(ctx context.Context, agenda repository.AgendaRepository, dispatcher events.Dispatcher, logger *zap.Logger, interval, lookahead time.Duration) {
	if interval <= 0 {
		interval = time.Hour
	}
	if lookahead <= 0 {
		lookahead = 72 * time.Hour
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			scanDeadlines(ctx, agenda, dispatcher, logger, lookahead)
		}
	}
}

func scanDeadlines(ctx context.Context, agenda repository.AgendaRepository, dispatcher events.Dispatcher, logger *zap.Logger, lookahead time.Duration) {
	deadlines, err := agenda.ListDeadlinesDueBefore(ctx, time.Now().Add(lookahead))
	if err != nil {
		logger.Warn("deadline scan failed", zap.Error(err))
		return
	}
	for _, deadline := range deadlines {
		_ = dispatcher.Publish(ctx, events.Event{
			Type:      events.EventDeadlineApproaching,
			ProcessID: deadline.ProcessID,
			Payload:   map[string]any{"title": deadline.Title, "date": deadline.Date},
		})
	}
	if len(deadlines) > 0 {
		logger.Info("deadline reminders published", zap.Int("count", len(deadlines)))
	}
}
