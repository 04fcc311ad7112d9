// Package fcm delivers push notifications through Firebase Cloud Messaging.
package fcm

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"

	"marketplace/internal/core/ports"
)

// Sender implements the PushSender port over FCM.
type Sender struct {
	client *messaging.Client
}

// NewSender creates a sender authenticated with a service account
// credentials file.
func NewSender(ctx context.Context, credentialsFile string) (*Sender, error) {
	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(credentialsFile))
	if err != nil {
		return nil, fmt.Errorf("initialize firebase app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("initialize messaging client: %w", err)
	}

	return &Sender{client: client}, nil
}

// Send delivers one push message to the device token.
// The deep link travels in the data payload so the app can route the tap
// even when the notification arrives in the background.
func (s *Sender) Send(ctx context.Context, message ports.PushMessage) error {
	_, err := s.client.Send(ctx, &messaging.Message{
		Token: message.Token,
		Notification: &messaging.Notification{
			Title: message.Title,
			Body:  message.Body,
		},
		Data: map[string]string{
			"deep_link": message.DeepLink,
		},
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ports.ErrPushDeliveryFailed, err)
	}

	return nil
}
