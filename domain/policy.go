package domain

import "sync/atomic"

// Policy carries the per-deployment switches read by running jobs.
// It replaces what would otherwise be hidden mutable global state.
type Policy struct {
	autoDelete atomic.Bool
}

func NewPolicy(autoDelete bool) *Policy {
	p := &Policy{}
	p.autoDelete.Store(autoDelete)
	return p
}

// AutoDelete reports whether finished jobs should remove both the status
// message and the triggering message.
func (p *Policy) AutoDelete() bool {
	return p.autoDelete.Load()
}

// ToggleAutoDelete flips the flag and returns the new value.
func (p *Policy) ToggleAutoDelete() bool {
	for {
		old := p.autoDelete.Load()
		if p.autoDelete.CompareAndSwap(old, !old) {
			return !old
		}
	}
}
