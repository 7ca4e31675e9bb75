package apiErrors

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()

	WriteError(rec, ErrInvalidStatus, "status inválido", map[string]string{"status": "RUNNING"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, ErrInvalidStatus, body.Code)
	assert.Equal(t, "status inválido", body.Message)
}

func TestStatusFor_UnknownCode(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, StatusFor("XYZ_999"))
	assert.Equal(t, http.StatusBadGateway, StatusFor(ErrMetaAPI))
	assert.Equal(t, http.StatusServiceUnavailable, StatusFor(ErrCredentialsNotConfigured))
}

func TestFromError(t *testing.T) {
	assert.Equal(t, ErrInternalServer, FromError(nil, ErrMetaAPI).Code)

	apiErr := FromError(errors.New("boom"), ErrMetaAPI)
	assert.Equal(t, ErrMetaAPI, apiErr.Code)
	assert.Equal(t, "boom", apiErr.Message)
}
