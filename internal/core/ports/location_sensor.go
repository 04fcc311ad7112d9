package ports

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
)

// ErrSensorUnavailable is reported by a LocationSensor when positioning is
// switched off or permission is missing. The publisher treats it as fatal
// for the current activation.
var ErrSensorUnavailable = errors.New("location sensor unavailable")

// LocationSample is one position fix delivered by the sensor.
type LocationSample struct {
	Point      kernel.GeoPoint
	MeasuredAt time.Time
}

// SampleOptions controls how the sensor acquires fixes.
type SampleOptions struct {
	// HighAccuracy requests the most precise positioning mode available.
	HighAccuracy bool

	// MaxCacheAge is the oldest cached fix the sensor may return instead of
	// acquiring a fresh one.
	MaxCacheAge time.Duration

	// SampleTimeout bounds how long a single fix may take. A sample that
	// exceeds it is delivered as an error, not silently skipped.
	SampleTimeout time.Duration
}

// CancelFunc stops a running sample subscription. It blocks until the
// sensor has stopped delivering callbacks.
type CancelFunc func()

// LocationSensor is a continuous source of position fixes. The in-process
// adapter wraps a hardware or simulated positioning source.
type LocationSensor interface {
	// Watch starts continuous sampling. Each fix is delivered through
	// onSample; sampling failures (including per-sample timeouts) are
	// delivered through onError. Callbacks stop after the returned
	// CancelFunc returns.
	Watch(opts SampleOptions, onSample func(LocationSample), onError func(error)) (CancelFunc, error)
}
