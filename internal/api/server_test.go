package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/meta-ads-agent/internal/config"
	"github.com/vfg2006/meta-ads-agent/internal/domain"
	"github.com/vfg2006/meta-ads-agent/internal/usecases/authenticating"
	"github.com/vfg2006/meta-ads-agent/internal/usecases/campaigning/mocks"
	"go.uber.org/mock/gomock"
)

type idleRunner struct{}

func (idleRunner) RunNow(context.Context) (*domain.SyncResponse, error) { return nil, nil }
func (idleRunner) GetStatus() *domain.SyncStatus                        { return &domain.SyncStatus{} }

func TestServer_WiresMiddlewareChain(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockCampaignService(ctrl)
	service.EXPECT().GetConnectionStatus(gomock.Any()).Return(&domain.ConnectionStatus{Configured: false, Source: "env"})

	cfg := &config.Config{Server: config.Server{Host: "localhost", Port: "0", AllowedOrigins: []string{"http://localhost:3000"}}}
	srv, err := New(cfg, service, authenticating.NewService(config.Auth{}), idleRunner{})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/v1/meta/status", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	rec = httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}
