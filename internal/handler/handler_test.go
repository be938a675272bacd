package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"three-tier-api/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// brokenWriter accepts headers but fails every body write.
type brokenWriter struct {
	*httptest.ResponseRecorder
}

func (brokenWriter) Write([]byte) (int, error) {
	return 0, errors.New("write: broken pipe")
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)

	w := httptest.NewRecorder()
	writeJSON(w, logger, http.StatusCreated, model.TestResponse{Status: "success"})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Body.String(), `"status":"success"`)
	assert.Empty(t, buf.String())
}

func TestWriteJSON_LogsEncodeFailure(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)

	w := brokenWriter{httptest.NewRecorder()}
	writeJSON(w, logger, http.StatusOK, model.TestResponse{Status: "success"})

	assert.Equal(t, http.StatusOK, w.Code)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "debug", entry["level"])
	assert.Equal(t, "failed to write response", entry["message"])
	assert.Equal(t, "write: broken pipe", entry["error"])
	assert.Equal(t, float64(http.StatusOK), entry["status"])
}
