package services

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

var (
	// ErrBaseURLIsInvalid is returned when the router is constructed with a
	// base URL that is not absolute. Deep links are opened by a background
	// notification handler with no access to in-app routing state, so they
	// must be fully qualified.
	ErrBaseURLIsInvalid = errors.New("notification base URL must be an absolute http(s) URL")

	// ErrNoRecipient is returned when an event kind has no notification
	// routing rule.
	ErrNoRecipient = errors.New("no notification recipient for event")
)

// RoutedNotification is the dispatch-ready outcome of routing one order
// lifecycle event: who receives it and what it says. DeepLink is an
// absolute address usable outside the application's own runtime context.
type RoutedNotification struct {
	RecipientID kernel.UUID
	Title       string
	Body        string
	DeepLink    string
}

// NotificationRouter is a domain service that decides, for each order
// lifecycle event, which participant is notified and with which message.
//
// Routing rules:
//   - order_placed: the store learns a new order arrived
//   - status_changed: the buyer follows their order's progress
//   - payment_confirmed: the store learns it can start preparing
//
// The router never sends anything; it produces a RoutedNotification for the
// dispatcher. Keeping the who/what decision here keeps the dispatcher
// stateless and the state machine free of messaging concerns.
type NotificationRouter struct {
	baseURL string
}

// NewNotificationRouter creates a router that builds deep links under the
// given absolute base URL (e.g. "https://market.example.com").
func NewNotificationRouter(baseURL string) (NotificationRouter, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil || !parsed.IsAbs() || parsed.Host == "" ||
		(parsed.Scheme != "http" && parsed.Scheme != "https") {
		return NotificationRouter{}, fmt.Errorf("%w: %q", ErrBaseURLIsInvalid, baseURL)
	}

	return NotificationRouter{
		baseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

// Route resolves one lifecycle event into a dispatch-ready notification.
// The caller supplies the order's participants because events only carry the
// order id.
//
// Returns ErrNoRecipient for event kinds that notify nobody.
func (r NotificationRouter) Route(
	event order.Event,
	buyerID kernel.UUID,
	storeID kernel.UUID,
) (RoutedNotification, error) {
	deepLink := r.OrderDeepLink(event.OrderID)

	switch event.Kind {
	case order.EventOrderPlaced:
		return RoutedNotification{
			RecipientID: storeID,
			Title:       "New order received",
			Body:        "A customer just placed an order. Review it to start preparation.",
			DeepLink:    deepLink,
		}, nil

	case order.EventPaymentConfirmed:
		return RoutedNotification{
			RecipientID: storeID,
			Title:       "Payment confirmed",
			Body:        "The order has been paid and is ready to prepare.",
			DeepLink:    deepLink,
		}, nil

	case order.EventStatusChanged:
		body, ok := statusChangeBodies()[event.To]
		if !ok {
			return RoutedNotification{}, fmt.Errorf("%w: %s -> %s", ErrNoRecipient, event.From, event.To)
		}
		return RoutedNotification{
			RecipientID: buyerID,
			Title:       "Order update",
			Body:        body,
			DeepLink:    deepLink,
		}, nil

	default:
		return RoutedNotification{}, fmt.Errorf("%w: %s", ErrNoRecipient, event.Kind)
	}
}

// OrderDeepLink builds the absolute deep link for an order.
func (r NotificationRouter) OrderDeepLink(orderID kernel.UUID) string {
	return fmt.Sprintf("%s/orders/%s", r.baseURL, orderID)
}

// statusChangeBodies maps each buyer-facing status to its message body.
func statusChangeBodies() map[order.Status]string {
	return map[order.Status]string{
		order.Preparing:      "Your order is being prepared.",
		order.OutForDelivery: "Your order is on its way.",
		order.Delivered:      "Your order has been delivered. Enjoy!",
	}
}
