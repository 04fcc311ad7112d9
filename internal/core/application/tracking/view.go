package tracking

import (
	"sync"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
)

// State is one read of a tracking view.
type State struct {
	OrderID       kernel.UUID
	Status        order.Status
	PaymentStatus order.PaymentStatus
	DriverID      *kernel.UUID
	DriverPoint   *kernel.GeoPoint
	DriverSeenAt  *time.Time

	// PositionIsStale is true when the driver's last position is older than
	// the freshness threshold at read time.
	PositionIsStale bool
}

// View maintains the live tracking state of one order from its change
// stream. A view is seeded with the order's stored state and then updated
// by every published snapshot; staleness is recomputed on each read, so a
// marker goes stale even while no new snapshots arrive.
type View struct {
	threshold time.Duration
	now       func() time.Time

	mu       sync.RWMutex
	snapshot ports.OrderSnapshot
	unsub    ports.UnsubscribeFunc
}

// NewView creates a view seeded with initial state and subscribed to the
// order's changes. Close must be called when the view is no longer needed.
func NewView(
	initial ports.OrderSnapshot,
	stream ports.OrderStreamSubscriber,
	threshold time.Duration,
) *View {
	view := &View{
		threshold: threshold,
		now:       time.Now,
		snapshot:  initial,
	}

	view.unsub = stream.Subscribe(initial.OrderID, view.apply)
	return view
}

// Current returns the latest tracking state.
func (v *View) Current() State {
	v.mu.RLock()
	snapshot := v.snapshot
	v.mu.RUnlock()

	state := State{
		OrderID:       snapshot.OrderID,
		Status:        snapshot.Status,
		PaymentStatus: snapshot.PaymentStatus,
		DriverID:      snapshot.DriverID,
		DriverPoint:   snapshot.DriverPoint,
		DriverSeenAt:  snapshot.DriverSeenAt,
	}

	if snapshot.DriverSeenAt != nil {
		state.PositionIsStale = v.now().Sub(*snapshot.DriverSeenAt) > v.threshold
	}

	return state
}

// Close detaches the view from the stream.
func (v *View) Close() {
	if v.unsub != nil {
		v.unsub()
	}
}

func (v *View) apply(snapshot ports.OrderSnapshot) {
	v.mu.Lock()
	defer v.mu.Unlock()

	// Keep the last known position when a lifecycle-only snapshot arrives
	// without one; the map marker should not vanish on a status change.
	if snapshot.DriverPoint == nil && v.snapshot.DriverPoint != nil {
		snapshot.DriverPoint = v.snapshot.DriverPoint
		snapshot.DriverSeenAt = v.snapshot.DriverSeenAt
	}

	v.snapshot = snapshot
}
