package common

import "time"

// Freshness tracks when a cached value was captured and how long it stays
// usable. The zero value is always stale.
type Freshness struct {
	CapturedAt time.Time
	TTL        time.Duration
}

// NewFreshness returns a stale Freshness with the given TTL
func NewFreshness(ttl time.Duration) Freshness {
	return Freshness{TTL: ttl}
}

// Fresh reports whether the captured value is still within its TTL
func (f Freshness) Fresh(now time.Time) bool {
	if f.CapturedAt.IsZero() {
		return false
	}
	return now.Sub(f.CapturedAt) < f.TTL
}

// Touch marks the value as captured at now
func (f *Freshness) Touch(now time.Time) {
	f.CapturedAt = now
}

// Invalidate forces the next Fresh check to fail
func (f *Freshness) Invalidate() {
	f.CapturedAt = time.Time{}
}
