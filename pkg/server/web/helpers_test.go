package web

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderJSON(t *testing.T) {
	w := httptest.NewRecorder()
	err := RenderJSON(w, http.StatusCreated, map[string]string{"message": "hi"})
	require.NoError(t, err)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"message":"hi"}`, w.Body.String())
}

func TestRenderError(t *testing.T) {
	w := httptest.NewRecorder()
	RenderError(w, http.StatusRequestTimeout, "no message received within 1m0s")

	assert.Equal(t, http.StatusRequestTimeout, w.Code)
	assert.JSONEq(t, `{"error":"no message received within 1m0s"}`, w.Body.String())
}
