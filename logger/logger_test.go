package logger

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestNewLoggerWithoutTraceHeader(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)
	ctx.Request = httptest.NewRequest("GET", "http://example.com/health", nil)

	l, err := NewLogger(ctx)

	assert.NoError(t, err)
	assert.NotEmpty(t, l.Trace())

	// logging must not panic when cloud logging is disabled
	l.Info("hello world")
	l.Warningf("testing %d", 1)
}

func TestNewLoggerWithTraceHeader(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)
	ctx.Request = httptest.NewRequest("GET", "http://example.com/health", nil)
	ctx.Request.Header.Set("X-Cloud-Trace-Context", "abc123/span")

	l, err := NewLogger(ctx)

	assert.NoError(t, err)
	assert.Contains(t, l.Trace(), "abc123")
}

func TestFromContextReturnsStoredLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)
	ctx.Request = httptest.NewRequest("GET", "http://example.com/health", nil)

	l, err := NewLogger(ctx)
	assert.NoError(t, err)

	assert.Equal(t, ILogger(l), FromContext(ctx))
}

func TestLoggerLabels(t *testing.T) {
	l := newDefaultLogger()

	l.SetLabel("eventType", "checkout.session.completed")
	l.SetLabels(map[string]string{"sessionId": "cs_123"})

	assert.Equal(t, "checkout.session.completed", l.labels["eventType"])
	assert.Equal(t, "cs_123", l.labels["sessionId"])
}
