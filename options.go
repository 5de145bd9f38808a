package firstfit

import "go.uber.org/zap"

// Option configures an Arena at construction.
type Option func(*options)

type options struct {
	log      *zap.Logger
	observer Observer
}

func defaultOptions() *options {
	return &options{
		log:      zap.NewNop(),
		observer: nopObserver{},
	}
}

// WithLogger sets the logger used for debug events. A nil logger is ignored.
func WithLogger(log *zap.Logger) Option {
	return func(o *options) {
		if log != nil {
			o.log = log
		}
	}
}

// WithObserver registers obs to be called synchronously on every placement,
// rejection and departure. A nil observer is ignored.
func WithObserver(obs Observer) Option {
	return func(o *options) {
		if obs != nil {
			o.observer = obs
		}
	}
}

// Observer receives arena events. Offsets are the physical start position of
// the tenant's segment. Implementations must not call back into the arena.
type Observer interface {
	Placed(t Tenant, offset int)
	Rejected(t Tenant)
	Departed(t Tenant, offset int)
}

type nopObserver struct{}

func (nopObserver) Placed(Tenant, int)   {}
func (nopObserver) Rejected(Tenant)      {}
func (nopObserver) Departed(Tenant, int) {}
