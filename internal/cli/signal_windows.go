//go:build windows

package cli

import (
	"context"
	"os"
	"os/signal"
)

// NotifyContext returns a context that is canceled on Ctrl+C.
// Windows has no SIGTERM; closing a hidden tool's process tree kills it outright.
func NotifyContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt)
}
