package tracking

import (
	"log/slog"
	"sync"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
)

// Manager runs the driver side of delivery tracking. It watches the change
// stream of each tracked order and reconciles that order's publisher: active
// exactly while the order is out for delivery with this driver assigned.
//
// Activation and deactivation both flow through the same reconcile path, so
// out-of-order or duplicated snapshots cannot wedge a publisher: the last
// observed state always wins.
type Manager struct {
	driverID kernel.UUID
	sensor   ports.LocationSensor
	sink     PositionSink
	stream   ports.OrderStreamSubscriber
	opts     ports.SampleOptions
	logger   *slog.Logger

	mu         sync.Mutex
	publishers map[kernel.UUID]*Publisher
	unsubs     map[kernel.UUID]ports.UnsubscribeFunc
}

// NewManager creates a manager for one driver's deliveries.
func NewManager(
	driverID kernel.UUID,
	sensor ports.LocationSensor,
	sink PositionSink,
	stream ports.OrderStreamSubscriber,
	opts ports.SampleOptions,
	logger *slog.Logger,
) *Manager {
	return &Manager{
		driverID:   driverID,
		sensor:     sensor,
		sink:       sink,
		stream:     stream,
		opts:       opts,
		logger:     logger,
		publishers: make(map[kernel.UUID]*Publisher),
		unsubs:     make(map[kernel.UUID]ports.UnsubscribeFunc),
	}
}

// Track starts following an order's changes. Idempotent.
func (m *Manager) Track(orderID kernel.UUID) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.publishers[orderID]; ok {
		return
	}

	publisher := NewPublisher(orderID, m.driverID, m.sensor, m.sink, m.opts, m.logger)
	m.publishers[orderID] = publisher
	m.unsubs[orderID] = m.stream.Subscribe(orderID, func(snapshot ports.OrderSnapshot) {
		m.reconcile(publisher, snapshot)
	})
}

// Untrack stops following an order and deactivates its publisher.
func (m *Manager) Untrack(orderID kernel.UUID) {
	m.mu.Lock()
	publisher, ok := m.publishers[orderID]
	unsub := m.unsubs[orderID]
	delete(m.publishers, orderID)
	delete(m.unsubs, orderID)
	m.mu.Unlock()

	if !ok {
		return
	}

	unsub()
	_ = publisher.Reconcile(false)
}

// Apply reconciles one order's publisher against a snapshot, for callers
// that already hold current state (e.g. right after loading the order).
func (m *Manager) Apply(snapshot ports.OrderSnapshot) {
	m.mu.Lock()
	publisher, ok := m.publishers[snapshot.OrderID]
	m.mu.Unlock()

	if ok {
		m.reconcile(publisher, snapshot)
	}
}

// Close deactivates every publisher and drops all subscriptions.
func (m *Manager) Close() {
	m.mu.Lock()
	publishers := m.publishers
	unsubs := m.unsubs
	m.publishers = make(map[kernel.UUID]*Publisher)
	m.unsubs = make(map[kernel.UUID]ports.UnsubscribeFunc)
	m.mu.Unlock()

	for _, unsub := range unsubs {
		unsub()
	}
	for _, publisher := range publishers {
		_ = publisher.Reconcile(false)
	}
}

func (m *Manager) reconcile(publisher *Publisher, snapshot ports.OrderSnapshot) {
	shouldBeActive := snapshot.Status == order.OutForDelivery &&
		snapshot.DriverID != nil &&
		snapshot.DriverID.IsEqual(m.driverID)

	if err := publisher.Reconcile(shouldBeActive); err != nil {
		m.logger.Warn("publisher reconcile failed",
			"order_id", snapshot.OrderID, "error", err)
	}
}
