package campaigning

import (
	"context"

	metadomain "github.com/vfg2006/meta-ads-agent/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/meta-ads-agent/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/interfaces.go -package=mocks

// MetaIntegrator é o subconjunto do integrador do Meta usado pelos casos de uso
type MetaIntegrator interface {
	GetAppInfo(ctx context.Context) (*metadomain.AppInfo, error)
	GetAdAccountInfo(ctx context.Context) (*metadomain.AdAccountInfo, error)
	GetAccountInsights(ctx context.Context, dateRange metadomain.DateRange) (metadomain.PerformanceMetrics, error)
	TestConnection(ctx context.Context) bool
	FetchHierarchy(ctx context.Context, limit int, dateRange metadomain.DateRange) ([]metadomain.CampaignNode, error)
	GetAdSetsDetailed(ctx context.Context, campaignID string, limit int, dateRange metadomain.DateRange) ([]metadomain.AdSetNode, error)
	CreateCampaign(ctx context.Context, name, objective, status string) (*metadomain.CreatedCampaign, error)
	UpdateAdSetStatus(ctx context.Context, adSetID, status string) (*metadomain.StatusUpdateResult, error)
}

// IntegratorFactory cria um integrador para um conjunto de credenciais.
// Cada operação resolve credenciais e constrói o próprio cliente, sem estado compartilhado.
type IntegratorFactory interface {
	New(creds metadomain.Credentials) MetaIntegrator
}

// CredentialProvider resolve as credenciais do Meta para a operação corrente
type CredentialProvider interface {
	Resolve(ctx context.Context) (*metadomain.Credentials, error)
	Source() string
}

type CampaignService interface {
	GetCampaignHierarchy(ctx context.Context, filters domain.CampaignHierarchyFilters) (*domain.CampaignHierarchyResponse, error)
	GetCampaignAdSets(ctx context.Context, campaignID string, filters domain.CampaignHierarchyFilters) (*domain.AdSetsResponse, error)
	CreateCampaign(ctx context.Context, request *domain.CreateCampaignRequest) (*domain.CreateCampaignResponse, error)
	UpdateAdSetStatus(ctx context.Context, adSetID string, request *domain.UpdateStatusRequest) (*domain.UpdateStatusResponse, error)
	GetAccountOverview(ctx context.Context, dateRange metadomain.DateRange) (*domain.AccountOverview, error)
	GetConnectionStatus(ctx context.Context) *domain.ConnectionStatus
	SyncHierarchy(ctx context.Context, filters domain.CampaignHierarchyFilters) (*domain.SyncResponse, error)
}
