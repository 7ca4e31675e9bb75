package campaigning

import (
	"context"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/meta-ads-agent/infrastructure/integrator/meta"
	metadomain "github.com/vfg2006/meta-ads-agent/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/meta-ads-agent/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/meta-ads-agent/infrastructure/repository"
	"github.com/vfg2006/meta-ads-agent/internal/domain"
	"github.com/vfg2006/meta-ads-agent/pkg/apiErrors"
	"github.com/vfg2006/meta-ads-agent/pkg/utils"
)

const (
	DefaultLimit = 25
	MaxLimit     = 100
)

type integratorFactory struct {
	httpClient metaclient.HTTPDoer
}

// NewIntegratorFactory devolve uma fábrica que monta metaclient + integrador por chamada
func NewIntegratorFactory(httpClient metaclient.HTTPDoer) IntegratorFactory {
	return &integratorFactory{httpClient: httpClient}
}

func (f *integratorFactory) New(creds metadomain.Credentials) MetaIntegrator {
	return meta.New(metaclient.NewClient(creds, f.httpClient))
}

type Service struct {
	credentials  CredentialProvider
	integrators  IntegratorFactory
	snapshotRepo repository.HierarchySnapshotRepository
	now          func() time.Time
	generateID   func() (string, error)
}

// NewService aceita snapshotRepo nil quando não há banco configurado; nesse caso o sync fica indisponível
func NewService(
	credentials CredentialProvider,
	integrators IntegratorFactory,
	snapshotRepo repository.HierarchySnapshotRepository,
) CampaignService {
	return &Service{
		credentials:  credentials,
		integrators:  integrators,
		snapshotRepo: snapshotRepo,
		now:          time.Now,
		generateID:   utils.GenerateID,
	}
}

func normalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}

// integrator resolve as credenciais e monta um integrador novo para a operação
func (s *Service) integrator(ctx context.Context) (MetaIntegrator, *metadomain.Credentials, error) {
	creds, err := s.credentials.Resolve(ctx)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"source": s.credentials.Source(),
			"error":  err.Error(),
		}).Warn("campaigns: could not resolve meta credentials")
		return nil, nil, classify(err, "")
	}

	return s.integrators.New(*creds), creds, nil
}

func (s *Service) GetCampaignHierarchy(ctx context.Context, filters domain.CampaignHierarchyFilters) (*domain.CampaignHierarchyResponse, error) {
	integrator, creds, err := s.integrator(ctx)
	if err != nil {
		return nil, err
	}

	campaigns, err := integrator.FetchHierarchy(ctx, normalizeLimit(filters.Limit), filters.DateRange)
	if err != nil {
		return nil, classify(err, creds.AdAccountID)
	}

	return &domain.CampaignHierarchyResponse{
		AdAccountID: creds.AdAccountID,
		Campaigns:   campaigns,
		Count:       len(campaigns),
		FetchedAt:   s.now(),
	}, nil
}

func (s *Service) GetCampaignAdSets(ctx context.Context, campaignID string, filters domain.CampaignHierarchyFilters) (*domain.AdSetsResponse, error) {
	if campaignID == "" {
		return nil, NewCampaignError(ErrMissingCampaignID, apiErrors.ErrMissingRequiredData, "")
	}

	integrator, _, err := s.integrator(ctx)
	if err != nil {
		return nil, err
	}

	adSets, err := integrator.GetAdSetsDetailed(ctx, campaignID, normalizeLimit(filters.Limit), filters.DateRange)
	if err != nil {
		return nil, classify(err, campaignID)
	}

	return &domain.AdSetsResponse{
		CampaignID: campaignID,
		AdSets:     adSets,
		Count:      len(adSets),
	}, nil
}

func (s *Service) CreateCampaign(ctx context.Context, request *domain.CreateCampaignRequest) (*domain.CreateCampaignResponse, error) {
	if request == nil {
		return nil, NewCampaignError(ErrInvalidRequest, apiErrors.ErrInvalidRequest, "corpo vazio")
	}

	integrator, _, err := s.integrator(ctx)
	if err != nil {
		return nil, err
	}

	status := request.Status
	if status == "" {
		status = metadomain.StatusPaused
	}

	created, err := integrator.CreateCampaign(ctx, request.Name, request.Objective, status)
	if err != nil {
		return nil, classify(err, "")
	}

	return &domain.CreateCampaignResponse{
		ID:     created.ID,
		Name:   request.Name,
		Status: status,
	}, nil
}

func (s *Service) UpdateAdSetStatus(ctx context.Context, adSetID string, request *domain.UpdateStatusRequest) (*domain.UpdateStatusResponse, error) {
	if adSetID == "" {
		return nil, NewCampaignError(ErrMissingAdSetID, apiErrors.ErrMissingRequiredData, "")
	}
	if request == nil || request.Status == "" {
		return nil, NewCampaignErrorWithID(ErrInvalidRequest, apiErrors.ErrMissingRequiredData, adSetID, "status obrigatório")
	}

	integrator, _, err := s.integrator(ctx)
	if err != nil {
		return nil, err
	}

	result, err := integrator.UpdateAdSetStatus(ctx, adSetID, request.Status)
	if err != nil {
		return nil, classify(err, adSetID)
	}

	return &domain.UpdateStatusResponse{
		ID:      adSetID,
		Status:  request.Status,
		Success: result.Success,
	}, nil
}

func (s *Service) GetAccountOverview(ctx context.Context, dateRange metadomain.DateRange) (*domain.AccountOverview, error) {
	integrator, creds, err := s.integrator(ctx)
	if err != nil {
		return nil, err
	}

	account, err := integrator.GetAdAccountInfo(ctx)
	if err != nil {
		return nil, classify(err, creds.AdAccountID)
	}

	insights, err := integrator.GetAccountInsights(ctx, dateRange)
	if err != nil {
		return nil, classify(err, creds.AdAccountID)
	}

	overview := &domain.AccountOverview{
		Account:  account,
		Insights: insights,
	}

	// app info é opcional; contas sem app_id configurado seguem sem ela
	if creds.AppID != "" {
		app, err := integrator.GetAppInfo(ctx)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"app_id": creds.AppID,
				"error":  err.Error(),
			}).Warn("campaigns: app info unavailable")
		} else {
			overview.App = app
		}
	}

	return overview, nil
}

func (s *Service) GetConnectionStatus(ctx context.Context) *domain.ConnectionStatus {
	status := &domain.ConnectionStatus{Source: s.credentials.Source()}

	integrator, creds, err := s.integrator(ctx)
	if err != nil {
		status.Message = err.Error()
		return status
	}

	status.Configured = true
	status.AdAccountID = creds.AdAccountID
	status.Connected = integrator.TestConnection(ctx)
	if !status.Connected {
		status.Message = "não foi possível ler a conta de anúncios com as credenciais atuais"
	}

	return status
}

// SyncHierarchy busca a árvore completa e grava um snapshot no histórico
func (s *Service) SyncHierarchy(ctx context.Context, filters domain.CampaignHierarchyFilters) (*domain.SyncResponse, error) {
	if s.snapshotRepo == nil {
		return nil, NewCampaignError(ErrSaveSnapshot, apiErrors.ErrSyncDisabled, "banco de dados não configurado")
	}

	hierarchy, err := s.GetCampaignHierarchy(ctx, filters)
	if err != nil {
		return nil, err
	}

	id, err := s.generateID()
	if err != nil {
		return nil, NewCampaignError(ErrGenerateID, apiErrors.ErrInternalServer, err.Error())
	}

	snapshot := buildSnapshot(id, hierarchy, filters.DateRange)
	snapshot.CreatedAt = s.now()

	if err := s.snapshotRepo.Save(ctx, snapshot); err != nil {
		return nil, NewCampaignError(ErrSaveSnapshot, apiErrors.ErrDatabaseOperation, err.Error())
	}

	logrus.WithFields(logrus.Fields{
		"snapshot_id":   snapshot.ID,
		"ad_account_id": snapshot.AdAccountID,
		"campaigns":     snapshot.CampaignCount,
		"adsets":        snapshot.AdSetCount,
		"ads":           snapshot.AdCount,
		"total_spend":   snapshot.TotalSpend,
	}).Info("sync: hierarchy snapshot saved")

	return &domain.SyncResponse{
		SnapshotID:    snapshot.ID,
		CampaignCount: snapshot.CampaignCount,
		Message:       "Snapshot gravado com sucesso",
	}, nil
}

func buildSnapshot(id string, hierarchy *domain.CampaignHierarchyResponse, dateRange metadomain.DateRange) *domain.HierarchySnapshot {
	snapshot := &domain.HierarchySnapshot{
		ID:            id,
		AdAccountID:   hierarchy.AdAccountID,
		DatePreset:    dateRange.Preset,
		Since:         dateRange.Since,
		Until:         dateRange.Until,
		CampaignCount: len(hierarchy.Campaigns),
		Campaigns:     hierarchy.Campaigns,
	}

	var spend float64
	for _, campaign := range hierarchy.Campaigns {
		spend += metricValue(campaign.PerformanceMetrics, "spend")
		snapshot.AdSetCount += len(campaign.AdSets)
		for _, adSet := range campaign.AdSets {
			snapshot.AdCount += len(adSet.Ads)
		}
	}
	snapshot.TotalSpend = utils.RoundWithTwoDecimalPlace(spend)

	return snapshot
}

// metricValue lê uma métrica numérica; a Graph API devolve números como string
func metricValue(metrics metadomain.PerformanceMetrics, key string) float64 {
	switch v := metrics[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}
