//go:build unit || e2e

package httptest

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

// AssertHeaders checks each expected header; an empty value means the header must be absent.
func AssertHeaders(t *testing.T, w *httptest.ResponseRecorder, expected map[string]string) {
	t.Helper()
	for name, want := range expected {
		values := w.Header().Values(name)
		if want == "" {
			assert.Empty(t, values, "header %s should not be set", name)
			continue
		}
		if assert.Len(t, values, 1, "header %s", name) {
			assert.Equal(t, want, values[0], "header %s mismatch", name)
		}
	}
}
