package utils

import (
	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"
)

// InitSentry initializes Sentry for error tracking. It returns false when dsn is empty
// and error tracking stays disabled.
func InitSentry(dsn, environment string) (bool, error) {
	if dsn == "" {
		logrus.Info("SENTRY_DSN not set, error tracking disabled")
		return false, nil
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:              dsn,
		Environment:      environment,
		EnableTracing:    true,
		TracesSampleRate: 0.2,
		AttachStacktrace: true,
	})
	if err != nil {
		return false, err
	}

	logrus.Infof("Sentry initialized for environment %s", environment)
	return true, nil
}
