package orderstream_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketplace/internal/adapters/out/orderstream"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
)

func TestHub(t *testing.T) {
	t.Run("should deliver snapshots to the order's subscribers in order", func(t *testing.T) {
		hub := orderstream.NewHub()
		orderID := kernel.NewUUID()

		var seen []order.Status
		unsub := hub.Subscribe(orderID, func(s ports.OrderSnapshot) {
			seen = append(seen, s.Status)
		})
		defer unsub()

		hub.Publish(ports.OrderSnapshot{OrderID: orderID, Status: order.Created, ChangedAt: time.Now()})
		hub.Publish(ports.OrderSnapshot{OrderID: orderID, Status: order.Preparing, ChangedAt: time.Now()})

		require.Equal(t, []order.Status{order.Created, order.Preparing}, seen)
	})

	t.Run("should not deliver snapshots of other orders", func(t *testing.T) {
		hub := orderstream.NewHub()
		orderID := kernel.NewUUID()

		called := 0
		unsub := hub.Subscribe(orderID, func(ports.OrderSnapshot) { called++ })
		defer unsub()

		hub.Publish(ports.OrderSnapshot{OrderID: kernel.NewUUID(), Status: order.Created})

		assert.Zero(t, called)
	})

	t.Run("should stop delivering after unsubscribe", func(t *testing.T) {
		hub := orderstream.NewHub()
		orderID := kernel.NewUUID()

		called := 0
		unsub := hub.Subscribe(orderID, func(ports.OrderSnapshot) { called++ })

		hub.Publish(ports.OrderSnapshot{OrderID: orderID, Status: order.Created})
		unsub()
		hub.Publish(ports.OrderSnapshot{OrderID: orderID, Status: order.Preparing})

		assert.Equal(t, 1, called)
	})

	t.Run("should support multiple subscribers per order", func(t *testing.T) {
		hub := orderstream.NewHub()
		orderID := kernel.NewUUID()

		first, second := 0, 0
		unsubFirst := hub.Subscribe(orderID, func(ports.OrderSnapshot) { first++ })
		unsubSecond := hub.Subscribe(orderID, func(ports.OrderSnapshot) { second++ })
		defer unsubFirst()
		defer unsubSecond()

		hub.Publish(ports.OrderSnapshot{OrderID: orderID, Status: order.Created})

		assert.Equal(t, 1, first)
		assert.Equal(t, 1, second)
	})
}
