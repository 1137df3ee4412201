// Package mail delivers password reset links. The only transport is the structured log;
// a real mail gateway plugs in behind the same port.
package mail

import (
	"context"
	"log/slog"

	"setralog/internal/core/ports"
)

var _ ports.PasswordResetNotifier = (*LogNotifier)(nil)

// LogNotifier writes the reset link to the log instead of sending an email.
type LogNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier creates a LogNotifier.
func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger.With("component", "mail")}
}

func (n *LogNotifier) NotifyPasswordReset(ctx context.Context, email, link string) error {
	n.logger.InfoContext(ctx, "Password reset email queued", "to", email, "link", link)
	return nil
}
