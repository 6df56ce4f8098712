package router

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/pasarhub/pasar/internal/pkg/config"
)

type visitorLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// middlewareRateLimit throttles configured routes per client IP using a
// token bucket. Routes not listed under app.ratelimit.endpoints pass
// through untouched.
func middlewareRateLimit(cfg config.Config) Middleware {
	endpoints := make(map[string]struct{})
	rps := rate.Limit(1)
	burst := 5

	if cfg != nil {
		for _, endpoint := range cfg.GetArray("app.ratelimit.endpoints") {
			endpoint = strings.TrimSpace(endpoint)
			if endpoint == "" {
				continue
			}
			endpoints[endpoint] = struct{}{}
		}
		if v := cfg.GetFloat64("app.ratelimit.rps"); v > 0 {
			rps = rate.Limit(v)
		}
		if v := cfg.GetInt("app.ratelimit.burst"); v > 0 {
			burst = v
		}
	}

	var mu sync.Mutex
	visitors := make(map[string]*visitorLimiter)

	get := func(ip string) *rate.Limiter {
		mu.Lock()
		defer mu.Unlock()
		if v, ok := visitors[ip]; ok {
			v.lastSeen = time.Now()
			return v.limiter
		}
		l := rate.NewLimiter(rps, burst)
		visitors[ip] = &visitorLimiter{limiter: l, lastSeen: time.Now()}
		return l
	}

	go func() {
		for {
			time.Sleep(5 * time.Minute)
			mu.Lock()
			for ip, v := range visitors {
				if time.Since(v.lastSeen) > 10*time.Minute {
					delete(visitors, ip)
				}
			}
			mu.Unlock()
		}
	}()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			route := matchedRoutePath(r)
			if _, limited := endpoints[route]; !limited {
				next.ServeHTTP(w, r)
				return
			}

			if !get(r.RemoteAddr).Allow() {
				writeJSON(w, errorResponse{Message: "Too many requests"}, http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
