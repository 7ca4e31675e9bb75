package crmclient

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metadomain "github.com/vfg2006/meta-ads-agent/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/meta-ads-agent/internal/config"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *CRMClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewClient(config.CRM{
		BaseURL:    server.URL + "/",
		AgentID:    "agent-42",
		AgentToken: "tok",
	}, nil)
}

func TestFetchCredentials_Found(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/agents/agent-42/config:pull", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"meta_api":{"access_token":"EAAB","app_id":"1","ad_account_id":"act_987","timeout":12.5}}`))
	})

	assert.Nil(t, client.CachedCredentials())

	creds, err := client.FetchCredentials(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "EAAB", creds.AccessToken)
	assert.Equal(t, "987", creds.AdAccountID)
	assert.Equal(t, metadomain.DefaultBaseURL, creds.BaseURL)
	assert.Equal(t, 12500*time.Millisecond, creds.Timeout)

	cached := client.CachedCredentials()
	require.NotNil(t, cached)
	assert.Equal(t, "EAAB", cached.AccessToken)
}

func TestFetchCredentials_NotConfigured(t *testing.T) {
	bodies := []string{
		`{}`,
		`{"meta_api":null}`,
		`{"meta_api":{"access_token":""}}`,
	}

	for _, body := range bodies {
		t.Run(body, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(body))
			})

			_, err := client.FetchCredentials(context.Background())
			assert.ErrorIs(t, err, ErrNotConfigured)
			assert.Nil(t, client.CachedCredentials())
		})
	}
}

func TestFetchCredentials_TransportErrors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "status 500",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
				_, _ = w.Write([]byte(`boom`))
			},
		},
		{
			name: "json inválido",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{"meta_api":`))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, tt.handler)

			_, err := client.FetchCredentials(context.Background())
			var transportErr *TransportError
			require.True(t, errors.As(err, &transportErr))
			assert.False(t, errors.Is(err, ErrNotConfigured))
		})
	}
}

func TestFetchCredentials_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	client := NewClient(config.CRM{BaseURL: url, AgentID: "a", AgentToken: "t", Timeout: time.Second}, nil)

	_, err := client.FetchCredentials(context.Background())
	var transportErr *TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.NotNil(t, transportErr.Unwrap())
}
