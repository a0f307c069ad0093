package usecase

import (
	"context"

	"github.com/fifahub/liga-tracker/internal/platform/logging"
)

// Notifier is the outbound reporting hook for settlement outcomes. The
// orchestrators call it best-effort; a failing notifier never fails the
// operation itself.
type Notifier interface {
	Success(ctx context.Context, event, message string)
	Error(ctx context.Context, event, message string)
}

// LogNotifier reports outcomes to the structured log only. Used when no
// webhook target is configured.
type LogNotifier struct {
	logger *logging.Logger
}

func NewLogNotifier(logger *logging.Logger) *LogNotifier {
	if logger == nil {
		logger = logging.Default()
	}
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Success(ctx context.Context, event, message string) {
	n.logger.InfoContext(ctx, "notify success", "event", event, "message", message)
}

func (n *LogNotifier) Error(ctx context.Context, event, message string) {
	n.logger.WarnContext(ctx, "notify error", "event", event, "message", message)
}
