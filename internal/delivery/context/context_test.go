package context

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttach(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, nil))

	ctx, logger := Attach(context.Background(), base, "req-42")
	ctx = WithLogAttrs(ctx, base, slog.String("uid", "u1"))

	assert.Equal(t, "req-42", GetRequestIDFromContext(ctx))
	logger.Info("attached")
	GetLoggerOrDefault(ctx, base).Info("tagged")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)
	assert.Contains(t, string(lines[0]), `"request_id":"req-42"`)
	assert.NotContains(t, string(lines[0]), `"uid"`)
	assert.Contains(t, string(lines[1]), `"request_id":"req-42"`)
	assert.Contains(t, string(lines[1]), `"uid":"u1"`)
}

func TestGetLoggerOrDefault(t *testing.T) {
	fallback := slog.Default()

	assert.Same(t, fallback, GetLoggerOrDefault(context.Background(), fallback))
	assert.Empty(t, GetRequestIDFromContext(context.Background()))

	ctx := WithLogAttrs(context.Background(), nil)
	assert.Nil(t, GetLoggerOrDefault(ctx, nil))
}

func TestGetRequestID(t *testing.T) {
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/menu", nil), httptest.NewRecorder())

	generated := GetRequestID(c)
	assert.Len(t, generated, 36)

	SetRequestID(c, "req-7")
	assert.Equal(t, "req-7", GetRequestID(c))
}
