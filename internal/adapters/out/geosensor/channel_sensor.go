// Package geosensor provides the in-process location sensor adapter.
// It wraps a push-based positioning source (hardware bridge or simulator)
// behind the LocationSensor port and enforces the per-sample watchdog.
package geosensor

import (
	"errors"
	"sync"
	"time"

	"marketplace/internal/core/ports"
)

// ErrSampleTimedOut is delivered through the error callback when no fix
// arrives within the configured sample timeout.
var ErrSampleTimedOut = errors.New("location sample timed out")

// ChannelSensor is a LocationSensor fed through Feed.
// The positioning bridge pushes fixes in; each Watch subscription relays
// them to its callbacks and watches the gap between fixes.
type ChannelSensor struct {
	mu         sync.Mutex
	available  bool
	lastSample *ports.LocationSample
	watchers   map[int]chan ports.LocationSample
	nextID     int
}

// NewChannelSensor creates an available sensor with no watchers.
func NewChannelSensor() *ChannelSensor {
	return &ChannelSensor{
		available: true,
		watchers:  make(map[int]chan ports.LocationSample),
	}
}

// SetAvailable switches positioning on or off. While off, Watch fails with
// ports.ErrSensorUnavailable; running subscriptions keep their watchdogs and
// will time out on their own.
func (s *ChannelSensor) SetAvailable(available bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.available = available
}

// Feed pushes one fix to all active subscriptions.
func (s *ChannelSensor) Feed(sample ports.LocationSample) {
	s.mu.Lock()
	s.lastSample = &sample
	channels := make([]chan ports.LocationSample, 0, len(s.watchers))
	for _, ch := range s.watchers {
		channels = append(channels, ch)
	}
	s.mu.Unlock()

	for _, ch := range channels {
		select {
		case ch <- sample:
		default:
			// Watcher is behind; it will pick up the next fix.
		}
	}
}

// Watch starts relaying fixes to the callbacks.
// A cached fix no older than opts.MaxCacheAge is delivered immediately so
// tracking starts without waiting for the first fresh sample. Gaps longer
// than opts.SampleTimeout surface as ErrSampleTimedOut.
func (s *ChannelSensor) Watch(
	opts ports.SampleOptions,
	onSample func(ports.LocationSample),
	onError func(error),
) (ports.CancelFunc, error) {
	s.mu.Lock()
	if !s.available {
		s.mu.Unlock()
		return nil, ports.ErrSensorUnavailable
	}

	id := s.nextID
	s.nextID++
	ch := make(chan ports.LocationSample, 1)
	s.watchers[id] = ch

	var cached *ports.LocationSample
	if s.lastSample != nil && opts.MaxCacheAge > 0 &&
		time.Since(s.lastSample.MeasuredAt) <= opts.MaxCacheAge {
		sample := *s.lastSample
		cached = &sample
	}
	s.mu.Unlock()

	done := make(chan struct{})
	stopped := make(chan struct{})

	go func() {
		defer close(stopped)

		if cached != nil {
			onSample(*cached)
		}

		timeout := opts.SampleTimeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}

		watchdog := time.NewTimer(timeout)
		defer watchdog.Stop()

		for {
			select {
			case <-done:
				return
			case sample := <-ch:
				onSample(sample)
				if !watchdog.Stop() {
					select {
					case <-watchdog.C:
					default:
					}
				}
				watchdog.Reset(timeout)
			case <-watchdog.C:
				onError(ErrSampleTimedOut)
				watchdog.Reset(timeout)
			}
		}
	}()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.watchers, id)
			s.mu.Unlock()

			close(done)
		})
		<-stopped
	}

	return cancel, nil
}
