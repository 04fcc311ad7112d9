package ports

import (
	"context"
	"errors"
)

// ErrPushDeliveryFailed is returned by PushSender implementations when the
// provider rejected or could not deliver the message. Dispatch is best
// effort: callers log the failure and move on, they never retry.
var ErrPushDeliveryFailed = errors.New("push delivery failed")

// PushMessage is one push notification to a single device token.
type PushMessage struct {
	Token    string
	Title    string
	Body     string
	DeepLink string
}

// PushSender delivers push notifications to user devices.
type PushSender interface {
	// Send delivers one message. Returns ErrPushDeliveryFailed (possibly
	// wrapped) when the provider could not deliver it.
	Send(ctx context.Context, message PushMessage) error
}
