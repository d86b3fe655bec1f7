package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoot(t *testing.T) {
	r, _, _ := newTestServer(t)

	w := doJSON(t, r, http.MethodGet, "/", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	decode(t, w, &body)
	assert.Equal(t, "OK", body["status"])
	assert.Equal(t, "BCR API is up and running!", body["message"])
}

func TestUnknownRouteIsNotFoundShaped(t *testing.T) {
	r, _, _ := newTestServer(t)

	w := doJSON(t, r, http.MethodGet, "/nonexistent", "", nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	var body errorBody
	decode(t, w, &body)
	assert.Equal(t, "NotFoundError", body.Error.Name)
	assert.Equal(t, "Not found!", body.Error.Message)

	var details requestDetails
	require.NoError(t, json.Unmarshal(body.Error.Details, &details))
	assert.Equal(t, http.MethodGet, details.Method)
	assert.Equal(t, "/nonexistent", details.URL)
}
