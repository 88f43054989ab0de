package lottery

import (
	"math/rand"

	"go.uber.org/zap"
)

// Rand is the random source used by Draw. Int must return a non-negative
// value; *rand.Rand satisfies it.
type Rand interface {
	Int() int
}

// globalRand uses the process-wide math/rand generator.
type globalRand struct{}

func (globalRand) Int() int {
	return rand.Int()
}

type options struct {
	capacity   int
	maxEntries int
	rnd        Rand
	logger     *zap.Logger
}

type Option func(*options)

// WithCapacity limits the total number of tickets. Non-positive values are
// ignored.
func WithCapacity(capacity int) Option {
	return func(o *options) {
		if capacity > 0 {
			o.capacity = capacity
		}
	}
}

// WithMaxEntries limits the number of distinct items. Inserting past the
// limit fails with ErrStorageFull. Zero means unlimited.
func WithMaxEntries(n int) Option {
	return func(o *options) {
		if n >= 0 {
			o.maxEntries = n
		}
	}
}

// WithRand replaces the random source used by Draw.
func WithRand(r Rand) Option {
	return func(o *options) {
		if r != nil {
			o.rnd = r
		}
	}
}

// WithLogger sets the logger, zap.L() by default.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}
