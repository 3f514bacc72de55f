package client

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/concave-dev/gns3util/internal/logging"
	"github.com/concave-dev/gns3util/internal/netutil"
	"github.com/dustin/go-humanize"
)

const (
	maxEventSize     = 4 * 1024 * 1024 // Largest single notification line accepted
	maxErrorBodySize = 64 * 1024       // Bytes of a failed stream response kept for the log
)

// Notifications consumes the controller notification stream until the server
// closes it, timeout elapses or ctx is cancelled. Each event is written to
// the client's output as one line.
func (api *APIClient) Notifications(ctx context.Context, timeout time.Duration) {
	api.streamNotifications(ctx, "/notifications", nil, timeout)
}

// ProjectNotifications consumes the notification stream of one project with
// the same bounds as Notifications.
func (api *APIClient) ProjectNotifications(ctx context.Context, projectID string, timeout time.Duration) {
	api.streamNotifications(ctx, "/projects/{id}/notifications", id(projectID), timeout)
}

// streamNotifications opens path as a raw response body and copies every
// non-empty line to the output. The outcome is logged; nothing is returned
// because the stream owns its reporting.
func (api *APIClient) streamNotifications(ctx context.Context, path string, params map[string]string, timeout time.Duration) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req := api.stream.R().
		SetContext(ctx).
		SetDoNotParseResponse(true)
	if len(params) > 0 {
		req.SetPathParams(params)
	}

	logging.Info("Opening notification stream %s (timeout %s)", path, timeout)

	resp, err := req.Get(path)
	if err != nil {
		if ctx.Err() != nil {
			logStreamEnd(ctx, path, timeout, 0)
			return
		}
		if hint := netutil.Hint(err); hint != "" {
			logging.Error("failed to open notification stream at %s%s: %s", api.baseURL, path, hint)
			return
		}
		logging.Error("failed to open notification stream at %s%s: %v", api.baseURL, path, err)
		return
	}

	body := resp.RawBody()
	if body == nil {
		logging.Error("notification stream %s returned no body", path)
		return
	}
	defer body.Close()

	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(body, maxErrorBodySize))
		logging.Error("notification stream %s failed with status %d: %s", path, resp.StatusCode(), errorDetail(detail))
		return
	}

	scanner := bufio.NewScanner(body)
	scanner.Buffer(make([]byte, 0, 64*1024), maxEventSize)

	var events int64
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		if _, err := fmt.Fprintf(api.out, "%s\n", line); err != nil {
			logging.Error("failed to write notification: %v", err)
			return
		}
		events++
	}

	if err := scanner.Err(); err != nil && ctx.Err() == nil {
		logging.Error("notification stream %s failed after %s events: %v", path, humanize.Comma(events), err)
		return
	}

	logStreamEnd(ctx, path, timeout, events)
}

// logStreamEnd reports why a stream stopped.
func logStreamEnd(ctx context.Context, path string, timeout time.Duration, events int64) {
	switch {
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		logging.Info("Notification stream %s timed out after %s (%s events)", path, timeout, humanize.Comma(events))
	case ctx.Err() != nil:
		logging.Info("Notification stream %s interrupted (%s events)", path, humanize.Comma(events))
	default:
		logging.Success("Notification stream %s closed by server (%s events)", path, humanize.Comma(events))
	}
}
