package ratelimit

import (
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/GlebRadaev/fruitshop/pkg/utils"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type KeyFunc func(r *http.Request) string

// ByIP keys requests by client address. chi's RealIP middleware has already
// replaced RemoteAddr when the request came through a proxy.
func ByIP(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

type Limiter struct {
	limit   rate.Limit
	burst   int
	keyFunc KeyFunc

	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

// New allows perMinute requests per key with the whole allowance usable at once.
// A non-positive perMinute disables limiting.
func New(perMinute int, keyFunc KeyFunc) *Limiter {
	l := &Limiter{
		limit:    rate.Inf,
		keyFunc:  keyFunc,
		limiters: make(map[string]*rate.Limiter),
	}
	if perMinute > 0 {
		l.limit = rate.Every(time.Minute / time.Duration(perMinute))
		l.burst = perMinute
	}
	return l
}

func (l *Limiter) get(key string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	limiter, ok := l.limiters[key]
	if !ok {
		limiter = rate.NewLimiter(l.limit, l.burst)
		l.limiters[key] = limiter
	}
	return limiter
}

func (l *Limiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if l == nil || l.limit == rate.Inf {
			next.ServeHTTP(w, r)
			return
		}

		key := l.keyFunc(r)
		limiter := l.get(key)
		if !limiter.Allow() {
			reservation := limiter.Reserve()
			retryAfter := max(int(reservation.Delay().Seconds()), 1)
			reservation.Cancel()

			zap.L().Warn("rate limit exceeded", zap.String("key", key), zap.String("path", r.URL.Path))
			w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
			utils.RespondWithError(w, http.StatusTooManyRequests, "Too many requests, try again later")
			return
		}
		next.ServeHTTP(w, r)
	})
}
