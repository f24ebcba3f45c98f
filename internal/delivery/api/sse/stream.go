// Package sse streams live feeds to browsers as Server-Sent Events.
package sse

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"canteen/config"
	deliverycontext "canteen/internal/delivery/context"
	domainerrors "canteen/internal/domain/errors"
	"canteen/internal/usecase/live"
	"canteen/internal/usecase/session"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const (
	// ContentType is the content type of SSE responses.
	ContentType = "text/event-stream"

	// EventSnapshot carries a rendered frame.
	EventSnapshot = "snapshot"
	// EventError ends the stream after a failed subscription; the client retries manually.
	EventError = "error"

	defaultKeepalive = 30 * time.Second

	streamFailedMessage = "Live updates stopped. Please reload to try again."
)

// Snapshot is the payload of a snapshot event.
type Snapshot struct {
	Version uint64 `json:"version"`
	Data    any    `json:"data"`
}

// Failure is the payload of an error event.
type Failure struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Opener starts the feed a stream renders. It runs once per connection.
type Opener func(ctx context.Context) live.Feed

// Streamer serves feeds over SSE.
type Streamer struct {
	keepalive time.Duration
	logger    *slog.Logger
	now       func() time.Time
}

// NewStreamer creates a streamer using the configured keep-alive interval.
func NewStreamer(cfg *config.Config, logger *slog.Logger) *Streamer {
	keepalive := defaultKeepalive
	if cfg != nil && cfg.HTTP.SSEKeepalive > 0 {
		keepalive = cfg.HTTP.SSEKeepalive
	}

	return &Streamer{keepalive: keepalive, logger: logger, now: time.Now}
}

// Serve opens the feed and streams its frames until the client disconnects or the feed
// fails. The feed is closed on every exit path. While streaming, s is held active so idle
// eviction never tears down its subscriptions.
func (st *Streamer) Serve(c echo.Context, s *session.Session, open Opener) error {
	ctx := c.Request().Context()
	log := deliverycontext.GetLoggerOrDefault(ctx, st.logger).With(slog.String("stream", c.Path()))

	if s != nil {
		release := s.Acquire(st.now())
		defer func() { release(st.now()) }()
	}

	feed := open(ctx)
	defer feed.Close()

	w := c.Response()
	// Streams outlive the server write timeout.
	if err := http.NewResponseController(w).SetWriteDeadline(time.Time{}); err != nil && !errors.Is(err, http.ErrNotSupported) {
		log.Debug("Failed to clear write deadline", slog.Any("error", err))
	}
	header := w.Header()
	header.Set(echo.HeaderContentType, ContentType)
	header.Set(echo.HeaderCacheControl, "no-cache")
	header.Set(echo.HeaderConnection, "keep-alive")
	header.Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)

	if _, err := fmt.Fprint(w, ": connected\n\n"); err != nil {
		return nil
	}
	w.Flush()
	log.Debug("Stream opened")

	keepalive := time.NewTicker(st.keepalive)
	defer keepalive.Stop()

	var (
		lastVersion uint64
		sent        bool
	)
	// push renders the current frame and reports whether the stream is over.
	push := func() bool {
		frame := feed.Frame(ctx)
		switch frame.State {
		case live.StateLoading:
			return false
		case live.StateReady:
			if sent && frame.Version == lastVersion {
				return false
			}
			if err := writeEvent(w, EventSnapshot, Snapshot{Version: frame.Version, Data: frame.Data}); err != nil {
				log.Debug("Stream write failed", slog.Any("error", err))

				return true
			}
			lastVersion, sent = frame.Version, true

			return false
		case live.StateFailed:
			log.Warn("Stream subscription failed", slog.Any("error", frame.Err))
			_ = writeEvent(w, EventError, failure(frame.Err))

			return true
		default:
			return true
		}
	}

	if push() {
		return nil
	}
	for {
		select {
		case <-ctx.Done():
			log.Debug("Stream closed by client")

			return nil
		case <-feed.Changed():
			if push() {
				return nil
			}
		case <-keepalive.C:
			if _, err := fmt.Fprint(w, ": keepalive\n\n"); err != nil {
				return nil
			}
			w.Flush()
		}
	}
}

func writeEvent(w *echo.Response, event string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return errors.Wrap(err, "failed to encode event")
	}
	if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, data); err != nil {
		return errors.WithStack(err)
	}
	w.Flush()

	return nil
}

// failure keeps raw backend errors away from the client.
func failure(err error) Failure {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) && appErr.HTTPCode() < http.StatusInternalServerError {
		return Failure{Code: appErr.ErrorCode(), Message: appErr.Message()}
	}

	return Failure{Code: "STREAM_FAILED", Message: streamFailedMessage}
}
