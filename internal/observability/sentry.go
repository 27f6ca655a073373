package observability

import (
	"context"
	"time"

	"github.com/getsentry/sentry-go"

	"github.com/atharhub/athar/internal/ctxutil"
)

func InitSentry(dsn, env, release string) (func(), error) {
	if dsn == "" {
		return func() {}, nil
	}
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         dsn,
		Environment: env,
		Release:     release,
	}); err != nil {
		return func() {}, err
	}
	sentry.ConfigureScope(func(scope *sentry.Scope) {
		scope.SetTag("service", "athar")
	})
	return func() { sentry.Flush(2 * time.Second) }, nil
}

func CaptureErr(err error) {
	if err != nil {
		sentry.CaptureException(err)
	}
}

// CaptureErrCtx reports err tagged with the request id and actor carried on
// ctx, so dashboard events correlate with the API log lines.
func CaptureErrCtx(ctx context.Context, err error) {
	if err == nil {
		return
	}
	sentry.WithScope(func(scope *sentry.Scope) {
		if rid, ok := ctxutil.RequestID(ctx); ok {
			scope.SetTag("request_id", rid)
		}
		if actor, ok := ctxutil.Actor(ctx); ok {
			scope.SetTag("actor", actor)
		}
		sentry.CaptureException(err)
	})
}
