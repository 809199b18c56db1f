package middleware

import (
	"net/http"

	"github.com/hourlog/timesheet/internal/config"
	"github.com/hourlog/timesheet/internal/ctxkeys"
)

// Config middleware adds the sanitized app configuration to the request
// context so templates can read the app name and environment.
func Config(cfg *config.Config) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := ctxkeys.WithConfig(r.Context(), cfg.Sanitized())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
