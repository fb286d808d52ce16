//go:build unit || e2e

package httptest

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

const HeaderRequestID = "X-Request-ID"

// AssertTracedJSON checks the JSON content type and the request id stamped by
// the logging middleware, and returns that id.
func AssertTracedJSON(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))
	id := w.Header().Get(HeaderRequestID)
	assert.NotEmpty(t, id, "missing %s header", HeaderRequestID)
	return id
}
