package service

import "sync/atomic"

// Join is a barrier for a fixed number of parties. The arrival that
// completes it runs fn exactly once; later arrivals do nothing.
type Join struct {
	remaining atomic.Int64
	fn        func()
	done      chan struct{}
}

func NewJoin(parties int, fn func()) *Join {
	if parties < 1 {
		parties = 1
	}
	j := &Join{fn: fn, done: make(chan struct{})}
	j.remaining.Store(int64(parties))
	return j
}

// Arrive records one party and reports whether it completed the join.
func (j *Join) Arrive() bool {
	if j.remaining.Add(-1) != 0 {
		return false
	}
	if j.fn != nil {
		j.fn()
	}
	close(j.done)
	return true
}

// Done is closed once the join has completed and fn has returned.
func (j *Join) Done() <-chan struct{} {
	return j.done
}
