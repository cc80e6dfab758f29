package monitoring

import (
	"fmt"
	"time"

	"github.com/getsentry/sentry-go"
)

// Init wires Sentry when a DSN is configured. With an empty DSN every
// capture is a no-op, so callers never have to branch.
func Init(dsn, environment string) error {
	err := sentry.Init(sentry.ClientOptions{
		Dsn:              dsn,
		Environment:      environment,
		TracesSampleRate: 0.2,
	})
	if err != nil {
		return fmt.Errorf("sentry initialization failed: %w", err)
	}
	return nil
}

// Flush drains buffered events; call it on shutdown.
func Flush() {
	sentry.Flush(2 * time.Second)
}

// CaptureError reports err with extra key-value context.
func CaptureError(err error, context map[string]interface{}) {
	if hub := sentry.CurrentHub(); hub != nil {
		hub.WithScope(func(scope *sentry.Scope) {
			for k, v := range context {
				scope.SetExtra(k, v)
			}
			hub.CaptureException(err)
		})
	}
}
