// Package tracking implements real-time delivery coordination: the driver
// side publishes position samples while an order is out for delivery, and
// the buyer side maintains a live view of the order from the change stream.
package tracking

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
)

// publishTimeout bounds one position write.
const publishTimeout = 10 * time.Second

// PositionSink receives the positions a publisher samples.
type PositionSink interface {
	// PublishPosition records one driver position for an order.
	// Returns order.ErrPositionNotPublishable when the order is no longer
	// out for delivery.
	PublishPosition(
		ctx context.Context,
		orderID kernel.UUID,
		driverID kernel.UUID,
		point kernel.GeoPoint,
		measuredAt time.Time,
	) error
}

// Publisher streams one driver's position for one order.
//
// A publisher is either inactive or active. Reconcile moves it between the
// two; callers invoke it with the desired state whenever the order changes,
// so repeated calls with the same target are cheap no-ops.
//
// The mutex is held across the active-flag check AND the write, which gives
// the shutdown guarantee: once Reconcile(false) has returned, no further
// position can reach the sink.
type Publisher struct {
	orderID  kernel.UUID
	driverID kernel.UUID
	sensor   ports.LocationSensor
	sink     PositionSink
	opts     ports.SampleOptions
	logger   *slog.Logger

	mu     sync.Mutex
	active bool
	cancel ports.CancelFunc
}

// NewPublisher creates an inactive publisher for one order/driver pair.
func NewPublisher(
	orderID kernel.UUID,
	driverID kernel.UUID,
	sensor ports.LocationSensor,
	sink PositionSink,
	opts ports.SampleOptions,
	logger *slog.Logger,
) *Publisher {
	return &Publisher{
		orderID:  orderID,
		driverID: driverID,
		sensor:   sensor,
		sink:     sink,
		opts:     opts,
		logger:   logger,
	}
}

// IsActive reports whether the publisher is currently streaming.
func (p *Publisher) IsActive() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.active
}

// Reconcile drives the publisher towards the desired state.
// Activation starts sensor sampling and returns the sensor's error when
// positioning is unavailable. Deactivation is synchronous: when it returns,
// no further write will reach the sink.
func (p *Publisher) Reconcile(shouldBeActive bool) error {
	if shouldBeActive {
		return p.activate()
	}

	p.deactivate()
	return nil
}

func (p *Publisher) activate() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.active {
		return nil
	}

	cancel, err := p.sensor.Watch(p.opts, p.onSample, p.onError)
	if err != nil {
		p.logger.Warn("location sensor activation failed",
			"order_id", p.orderID, "error", err)
		return err
	}

	p.active = true
	p.cancel = cancel

	p.logger.Info("location publishing started", "order_id", p.orderID)
	return nil
}

func (p *Publisher) deactivate() {
	p.mu.Lock()
	if !p.active {
		p.mu.Unlock()
		return
	}

	p.active = false
	cancel := p.cancel
	p.cancel = nil
	p.mu.Unlock()

	// Outside the lock: cancel blocks until in-flight sensor callbacks have
	// finished, and those callbacks take the same lock.
	if cancel != nil {
		cancel()
	}

	p.logger.Info("location publishing stopped", "order_id", p.orderID)
}

// stopLocked marks the publisher inactive from inside a sensor callback.
// The sensor cannot be cancelled from its own callback without deadlocking,
// so cancellation runs in a separate goroutine.
func (p *Publisher) stopLocked() {
	p.active = false
	cancel := p.cancel
	p.cancel = nil

	if cancel != nil {
		go cancel()
	}
}

func (p *Publisher) onSample(sample ports.LocationSample) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.active {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()

	err := p.sink.PublishPosition(ctx, p.orderID, p.driverID, sample.Point, sample.MeasuredAt)
	switch {
	case err == nil:
	case errors.Is(err, order.ErrPositionNotPublishable),
		errors.Is(err, order.ErrUnauthorized):
		// The order has moved on; this publisher's job is over until the
		// next reconcile.
		p.logger.Warn("position write rejected, stopping publisher",
			"order_id", p.orderID, "error", err)
		p.stopLocked()
	default:
		// Transient failure: drop the sample, the next one retries implicitly.
		p.logger.Warn("position write failed",
			"order_id", p.orderID, "error", err)
	}
}

func (p *Publisher) onError(err error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.active {
		return
	}

	p.logger.Warn("location sensor failed, stopping publisher",
		"order_id", p.orderID, "error", err)
	p.stopLocked()
}
