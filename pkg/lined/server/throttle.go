package server

import "golang.org/x/time/rate"

// acceptThrottle optionally limits the rate of accepted connections.
// With no limit configured it admits everything.
type acceptThrottle struct {
	limiter *rate.Limiter
}

func newAcceptThrottle(perSecond float64) *acceptThrottle {
	if perSecond <= 0 {
		return &acceptThrottle{}
	}
	return &acceptThrottle{
		limiter: rate.NewLimiter(rate.Limit(perSecond), int(perSecond)+1),
	}
}

func (t *acceptThrottle) Allow() bool {
	if t.limiter == nil {
		return true
	}
	return t.limiter.Allow()
}
