// Package notifications delivers resolved order lifecycle notifications to
// user devices. Dispatch is strictly best effort: a recipient without a push
// token is a successful no-op, and a provider failure is recorded and
// forgotten, never retried.
package notifications

import (
	"context"
	"log/slog"

	"marketplace/internal/core/domain/model/user"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/metrics"
)

// Notification is one resolved message ready for device delivery.
type Notification struct {
	Recipient *user.User
	Title     string
	Body      string
	DeepLink  string
}

// Result describes the outcome of one dispatch attempt.
// Exactly one of Delivered, NoTarget, or Err is set.
type Result struct {
	// Delivered is true when the provider accepted the message.
	Delivered bool

	// NoTarget is true when the recipient has no registered push token.
	// This is a normal outcome, not a failure.
	NoTarget bool

	// Err is the provider error when delivery failed.
	Err error
}

// Dispatcher hands notifications to the push provider.
type Dispatcher struct {
	sender ports.PushSender
	logger *slog.Logger
}

// NewDispatcher creates a dispatcher over the given push sender.
func NewDispatcher(sender ports.PushSender, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{
		sender: sender,
		logger: logger,
	}
}

// Dispatch attempts delivery of one notification.
// Never returns an error to the caller's control flow: outcomes are reported
// in the Result so callers can log without failing their own operation.
func (d *Dispatcher) Dispatch(ctx context.Context, notification Notification) Result {
	recipient := notification.Recipient
	if recipient == nil || !recipient.IsReachable() {
		metrics.NotificationsDispatched.WithLabelValues(metrics.DispatchNoTarget).Inc()
		d.logger.Debug("notification skipped, recipient has no push token",
			"title", notification.Title)
		return Result{NoTarget: true}
	}

	message := ports.PushMessage{
		Token:    *recipient.PushToken(),
		Title:    notification.Title,
		Body:     notification.Body,
		DeepLink: notification.DeepLink,
	}

	if err := d.sender.Send(ctx, message); err != nil {
		metrics.NotificationsDispatched.WithLabelValues(metrics.DispatchFailed).Inc()
		return Result{Err: err}
	}

	metrics.NotificationsDispatched.WithLabelValues(metrics.DispatchDelivered).Inc()
	return Result{Delivered: true}
}
