//go:build unit || e2e

package httptest

import (
	"net/http/httptest"
	"path"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func AssertHeaders(t *testing.T, w *httptest.ResponseRecorder, expected map[string]string) {
	t.Helper()
	for k, v := range expected {
		assert.Equal(t, v, w.Header().Get(k), "header %s mismatch", k)
	}
}

// LocationID returns the id at the end of the Location header of a 201 response.
func LocationID(t *testing.T, w *httptest.ResponseRecorder) uuid.UUID {
	t.Helper()
	loc := w.Header().Get("Location")
	require.NotEmpty(t, loc, "Location header missing")
	id, err := uuid.Parse(path.Base(loc))
	require.NoError(t, err, "Location %q does not end with an id", loc)
	return id
}
