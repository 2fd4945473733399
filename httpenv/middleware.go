package httpenv

import (
	"context"
	"net/http"

	"github.com/napalu/navlocale"
)

type localeKey struct{}

// WithLocale returns a copy of ctx carrying locale.
func WithLocale(ctx context.Context, locale string) context.Context {
	return context.WithValue(ctx, localeKey{}, locale)
}

// LocaleFromContext returns the locale stored by Middleware or WithLocale.
// The boolean is false when none was stored; a stored "" means the request
// carried no language signal.
func LocaleFromContext(ctx context.Context) (string, bool) {
	locale, ok := ctx.Value(localeKey{}).(string)
	return locale, ok
}

// Middleware detects the locale of every request and stores it in the
// request context before calling next.
func Middleware(cfg Config, opts ...navlocale.Option) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			locale := navlocale.New(FromRequest(r, cfg), opts...).DetectLocale()
			next.ServeHTTP(w, r.WithContext(WithLocale(r.Context(), locale)))
		})
	}
}
