package testtools

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

// GenerateCtxWithJSON builds a gin test context carrying the given value as a
// JSON POST body.
func GenerateCtxWithJSON(t *testing.T, data map[string]interface{}) *gin.Context {
	recorder := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(recorder)
	ctx.Request = httptest.NewRequest("POST", "http://localhost:8080", nil)

	jsonbytes, err := json.Marshal(data)
	if err != nil {
		t.Fatal(err)
	}

	ctx.Request.Body = io.NopCloser(bytes.NewReader(jsonbytes))

	return ctx
}

// GenerateCtxWithRawBody builds a gin test context with an unparsed body and
// optional headers, as needed for webhook signature verification tests.
func GenerateCtxWithRawBody(t *testing.T, body []byte, headers map[string]string) *gin.Context {
	t.Helper()

	recorder := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(recorder)
	ctx.Request = httptest.NewRequest("POST", "http://localhost:8080", bytes.NewReader(body))

	for key, value := range headers {
		ctx.Request.Header.Set(key, value)
	}

	return ctx
}
