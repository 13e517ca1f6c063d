package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/riskibarqy/batting-insights/internal/platform/logging"
)

type profileInvalidator interface {
	Invalidate(ctx context.Context)
}

// watchProfileReload drops cached profiles on SIGHUP until ctx is done.
func watchProfileReload(ctx context.Context, cache profileInvalidator, logger *logging.Logger) {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGHUP)

	go func() {
		defer signal.Stop(signals)
		reloadOnSignal(ctx, signals, cache, logger)
	}()
}

func reloadOnSignal(ctx context.Context, signals <-chan os.Signal, cache profileInvalidator, logger *logging.Logger) {
	for {
		select {
		case <-ctx.Done():
			return
		case sig, ok := <-signals:
			if !ok {
				return
			}
			cache.Invalidate(ctx)
			logger.InfoContext(ctx, "player profile cache invalidated", "signal", sig.String())
		}
	}
}
