// Package utils provides interrupt handling for long-running CLI commands.
//
// Notification streams block for up to their timeout. Ctrl-C should end the
// stream cleanly instead of killing the process mid-line, so streaming
// commands run under a context that SIGINT and SIGTERM cancel.
package utils

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/concave-dev/gns3util/internal/logging"
)

// InterruptContext returns a child of parent that is cancelled on SIGINT or
// SIGTERM. The returned stop function releases the signal handler and must
// be called once the command finishes.
func InterruptContext(parent context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case sig := <-sigChan:
			logging.Info("Received %s, stopping", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	stop := func() {
		signal.Stop(sigChan)
		cancel()
	}
	return ctx, stop
}
