package middleware

import (
	pkgLog "calendar-scheduler/pkg/log"
)

type Middleware struct {
	l       pkgLog.Logger
	limiter *rateLimiter
}

func New(l pkgLog.Logger, requestsPerMin int) Middleware {
	return Middleware{
		l:       l,
		limiter: newRateLimiter(requestsPerMin),
	}
}
