package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metadomain "github.com/vfg2006/meta-ads-agent/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/meta-ads-agent/internal/api/handler/router"
	"github.com/vfg2006/meta-ads-agent/internal/config"
	"github.com/vfg2006/meta-ads-agent/internal/domain"
	"github.com/vfg2006/meta-ads-agent/internal/scheduler"
	"github.com/vfg2006/meta-ads-agent/internal/usecases/authenticating"
	"github.com/vfg2006/meta-ads-agent/internal/usecases/campaigning"
	"github.com/vfg2006/meta-ads-agent/internal/usecases/campaigning/mocks"
	"github.com/vfg2006/meta-ads-agent/pkg/apiErrors"
	"github.com/vfg2006/meta-ads-agent/pkg/middleware"
	"go.uber.org/mock/gomock"
)

type fakeSyncRunner struct {
	resp   *domain.SyncResponse
	err    error
	status *domain.SyncStatus
}

func (f *fakeSyncRunner) RunNow(context.Context) (*domain.SyncResponse, error) {
	return f.resp, f.err
}

func (f *fakeSyncRunner) GetStatus() *domain.SyncStatus {
	return f.status
}

func newTestServer(t *testing.T, service campaigning.CampaignService, runner HierarchySyncRunner, authService authenticating.Authenticator) http.Handler {
	t.Helper()

	if authService == nil {
		authService = authenticating.NewService(config.Auth{})
	}

	rt := router.New(
		router.WithRoutes(Healthcheck()...),
		router.WithRoutes(Meta(service)...),
		router.WithRoutes(HierarchySync(runner)...),
	)

	return middleware.AuthMiddleware(authService)(rt)
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) apiErrors.APIError {
	t.Helper()
	var body apiErrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestGetCampaignHierarchy_ParsesFilters(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockCampaignService(ctrl)

	service.EXPECT().
		GetCampaignHierarchy(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filters domain.CampaignHierarchyFilters) (*domain.CampaignHierarchyResponse, error) {
			assert.Equal(t, 10, filters.Limit)
			assert.Equal(t, "last_7d", filters.DateRange.Preset)
			return &domain.CampaignHierarchyResponse{
				AdAccountID: "123",
				Campaigns:   []metadomain.CampaignNode{{ID: "c1", Name: "Black Friday"}},
				Count:       1,
			}, nil
		})

	srv := newTestServer(t, service, &fakeSyncRunner{}, nil)

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/meta/campaigns?limit=10&date_preset=last_7d", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"campaigns":[{"id":"c1"`)
}

func TestGetCampaignHierarchy_InvalidFilters(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockCampaignService(ctrl)
	srv := newTestServer(t, service, &fakeSyncRunner{}, nil)

	for _, target := range []string{
		"/v1/meta/campaigns?limit=abc",
		"/v1/meta/campaigns?date_preset=forever",
		"/v1/meta/campaigns?since=2024-01-01",
	} {
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
		assert.Equal(t, apiErrors.ErrInvalidFormat, decodeError(t, rec).Code, target)
	}
}

func TestGetCampaignHierarchy_NotConfigured(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockCampaignService(ctrl)
	service.EXPECT().GetCampaignHierarchy(gomock.Any(), gomock.Any()).Return(nil,
		campaigning.NewCampaignError(campaigning.ErrCredentialsNotConfigured, apiErrors.ErrCredentialsNotConfigured, ""))

	srv := newTestServer(t, service, &fakeSyncRunner{}, nil)

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/meta/campaigns", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, apiErrors.ErrCredentialsNotConfigured, decodeError(t, rec).Code)
}

func TestGetCampaignAdSets_UsesPathID(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockCampaignService(ctrl)
	service.EXPECT().GetCampaignAdSets(gomock.Any(), "c1", gomock.Any()).
		Return(&domain.AdSetsResponse{CampaignID: "c1", Count: 0}, nil)

	srv := newTestServer(t, service, &fakeSyncRunner{}, nil)

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/meta/campaigns/c1/adsets", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"campaign_id":"c1"`)
}

func TestCreateCampaign(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockCampaignService(ctrl)
	service.EXPECT().
		CreateCampaign(gomock.Any(), &domain.CreateCampaignRequest{Name: "Leads", Objective: "OUTCOME_LEADS"}).
		Return(&domain.CreateCampaignResponse{ID: "c9", Name: "Leads", Status: metadomain.StatusPaused}, nil)

	srv := newTestServer(t, service, &fakeSyncRunner{}, nil)

	rec := httptest.NewRecorder()
	body := strings.NewReader(`{"name":"Leads","objective":"OUTCOME_LEADS"}`)
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/meta/campaigns", body))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"id":"c9","name":"Leads","status":"PAUSED"}`, rec.Body.String())
}

func TestCreateCampaign_InvalidBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	srv := newTestServer(t, mocks.NewMockCampaignService(ctrl), &fakeSyncRunner{}, nil)

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/meta/campaigns", strings.NewReader("{")))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, apiErrors.ErrInvalidRequest, decodeError(t, rec).Code)
}

func TestUpdateAdSetStatus_GraphErrorKeepsCodeAndMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockCampaignService(ctrl)

	graphErr := &metadomain.APIError{
		StatusCode: http.StatusBadRequest,
		Details:    &metadomain.ErrorDetails{Code: 100, Message: "Invalid parameter"},
	}
	service.EXPECT().UpdateAdSetStatus(gomock.Any(), "as1", &domain.UpdateStatusRequest{Status: "ACTIVE"}).
		Return(nil, campaigning.NewCampaignErrorWithID(graphErr, apiErrors.ErrMetaAPI, "as1", ""))

	srv := newTestServer(t, service, &fakeSyncRunner{}, nil)

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/meta/adsets/as1/status", strings.NewReader(`{"status":"ACTIVE"}`)))

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, apiErrors.ErrMetaAPI, body.Code)
	assert.Contains(t, body.Message, "100")
	assert.Contains(t, body.Message, "Invalid parameter")
	assert.Equal(t, map[string]any{"resource_id": "as1"}, body.Details)
}

func TestMutations_RequireAdmin(t *testing.T) {
	authService := authenticating.NewService(config.Auth{Secret: "test-secret"})
	token, err := authService.GenerateToken("dashboard", domain.RoleViewer, time.Hour)
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	service := mocks.NewMockCampaignService(ctrl)
	service.EXPECT().GetConnectionStatus(gomock.Any()).Return(&domain.ConnectionStatus{Configured: true, Connected: true})

	srv := newTestServer(t, service, &fakeSyncRunner{}, authService)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/meta/adsets/as1/status", strings.NewReader(`{"status":"PAUSED"}`))
	req.Header.Set("Authorization", "Bearer "+token)
	srv.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/v1/meta/status", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	srv.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/meta/status", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHealthcheckIsPublic(t *testing.T) {
	authService := authenticating.NewService(config.Auth{Secret: "test-secret"})
	ctrl := gomock.NewController(t)
	srv := newTestServer(t, mocks.NewMockCampaignService(ctrl), &fakeSyncRunner{}, authService)

	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestRunHierarchySync(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockCampaignService(ctrl)

	t.Run("success", func(t *testing.T) {
		runner := &fakeSyncRunner{resp: &domain.SyncResponse{SnapshotID: "snap1", CampaignCount: 3}}
		rec := httptest.NewRecorder()
		newTestServer(t, service, runner, nil).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/sync", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"snap1"`)
	})

	t.Run("already running", func(t *testing.T) {
		runner := &fakeSyncRunner{err: scheduler.ErrSyncRunning}
		rec := httptest.NewRecorder()
		newTestServer(t, service, runner, nil).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/sync", nil))

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, apiErrors.ErrSyncRunning, decodeError(t, rec).Code)
	})

	t.Run("unexpected error", func(t *testing.T) {
		runner := &fakeSyncRunner{err: errors.New("boom")}
		rec := httptest.NewRecorder()
		newTestServer(t, service, runner, nil).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/sync", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("status", func(t *testing.T) {
		runner := &fakeSyncRunner{status: &domain.SyncStatus{Enabled: true, Schedule: "0 */6 * * *"}}
		rec := httptest.NewRecorder()
		newTestServer(t, service, runner, nil).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/sync/status", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"schedule":"0 */6 * * *"`)
	})
}
