package transport

import (
	"net/http"

	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

const apiVersion = "1.1.0"

func logMiddleware(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.WithFields(log.Fields{
			"method":     r.Method,
			"url":        r.URL,
			"remoteAddr": r.RemoteAddr,
			"userAgent":  r.UserAgent(),
		}).Info("got a new request")
		h.ServeHTTP(w, r)
	})
}

func versionMiddleware(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-API-VERSION", apiVersion)
		h.ServeHTTP(w, r)
	})
}

// rateLimitMiddleware applies a process-wide token bucket. A nil limiter
// disables it.
func rateLimitMiddleware(limiter *rate.Limiter, h http.Handler) http.Handler {
	if limiter == nil {
		return h
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !limiter.Allow() {
			http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
			return
		}
		h.ServeHTTP(w, r)
	})
}
