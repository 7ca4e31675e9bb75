package meta

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/meta-ads-agent/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/meta-ads-agent/infrastructure/integrator/meta/metaclient"
)

var (
	ErrInvalidStatus     = errors.New("invalid status")
	ErrMissingName       = errors.New("campaign name is required")
	ErrMissingObjective  = errors.New("campaign objective is required")
	ErrMissingResourceID = errors.New("resource id is required")
)

type MetaIntegrator struct {
	Client metaclient.Client
}

func New(client metaclient.Client) *MetaIntegrator {
	return &MetaIntegrator{
		Client: client,
	}
}

func (s *MetaIntegrator) accountEndpoint() string {
	return fmt.Sprintf("act_%s", s.Client.AdAccountID())
}

func (s *MetaIntegrator) campaignsEndpoint() string {
	return s.accountEndpoint() + "/campaigns"
}

func listParams(limit int, fields metaclient.FieldList) url.Values {
	params := url.Values{}
	params.Set("limit", strconv.Itoa(limit))
	params.Set("fields", fields.String())
	return params
}

func (s *MetaIntegrator) GetAppInfo(ctx context.Context) (*metadomain.AppInfo, error) {
	params := url.Values{}
	params.Set("fields", metaclient.AppFields.String())

	var info metadomain.AppInfo
	if err := s.Client.GetObject(ctx, s.Client.AppID(), params, &info); err != nil {
		return nil, errors.Wrap(err, "failed to get app info")
	}

	return &info, nil
}

func (s *MetaIntegrator) GetAdAccountInfo(ctx context.Context) (*metadomain.AdAccountInfo, error) {
	params := url.Values{}
	params.Set("fields", metaclient.AdAccountFields.String())

	var info metadomain.AdAccountInfo
	if err := s.Client.GetObject(ctx, s.accountEndpoint(), params, &info); err != nil {
		return nil, errors.Wrap(err, "failed to get ad account info")
	}

	return &info, nil
}

// GetAccountInsights devolve as métricas agregadas da conta no período, ou um registro vazio
func (s *MetaIntegrator) GetAccountInsights(ctx context.Context, dateRange metadomain.DateRange) (metadomain.PerformanceMetrics, error) {
	params := url.Values{}
	params.Set("fields", metaclient.AccountInsightFields.String())
	dateRange.Apply(params)

	page, err := s.Client.GetPage(ctx, s.accountEndpoint()+"/insights", params)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get account insights")
	}

	metrics := metadomain.PerformanceMetrics{}
	if len(page.Data) > 0 {
		for k, v := range page.Data[0] {
			metrics[k] = v
		}
	}

	return metrics, nil
}

// TestConnection verifica se as credenciais conseguem ler a conta de anúncios
func (s *MetaIntegrator) TestConnection(ctx context.Context) bool {
	if _, err := s.GetAdAccountInfo(ctx); err != nil {
		logrus.WithFields(logrus.Fields{
			"ad_account_id": s.Client.AdAccountID(),
			"error":         err.Error(),
		}).Error("meta: connection test failed")
		return false
	}
	return true
}

func (s *MetaIntegrator) GetCampaigns(ctx context.Context, limit int) ([]metadomain.CampaignNode, error) {
	raw, err := s.Client.CollectAll(ctx, s.campaignsEndpoint(), listParams(limit, metaclient.CampaignFields))
	if err != nil {
		return nil, errors.Wrap(err, "failed to get campaigns")
	}
	return NormalizeCampaigns(raw), nil
}

func (s *MetaIntegrator) GetAdSets(ctx context.Context, campaignID string, limit int) ([]metadomain.AdSetNode, error) {
	raw, err := s.Client.CollectAll(ctx, campaignID+"/adsets", listParams(limit, metaclient.AdSetFields))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get ad sets for campaign %s", campaignID)
	}
	return normalizeAdSets(raw), nil
}

// GetAdSetsDetailed busca os conjuntos de uma campanha com insights e anúncios embutidos
func (s *MetaIntegrator) GetAdSetsDetailed(ctx context.Context, campaignID string, limit int, dateRange metadomain.DateRange) ([]metadomain.AdSetNode, error) {
	if campaignID == "" {
		return nil, ErrMissingResourceID
	}

	ads := metaclient.AdFields.With(metaclient.Nested("insights", metaclient.InsightFields))
	fields := metaclient.AdSetFields.With(
		metaclient.Nested("insights", metaclient.InsightFields),
		metaclient.Nested("ads", ads),
	)

	params := listParams(limit, fields)
	dateRange.Apply(params)

	raw, err := s.Client.CollectAll(ctx, campaignID+"/adsets", params)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get detailed ad sets for campaign %s", campaignID)
	}
	return normalizeAdSets(raw), nil
}

func (s *MetaIntegrator) GetAds(ctx context.Context, adSetID string, limit int) ([]metadomain.AdNode, error) {
	raw, err := s.Client.CollectAll(ctx, adSetID+"/ads", listParams(limit, metaclient.AdFields))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get ads for ad set %s", adSetID)
	}
	return normalizeAds(raw), nil
}

// CreateCampaign cria uma campanha; status vazio vira PAUSED. Erros da API não são encapsulados.
func (s *MetaIntegrator) CreateCampaign(ctx context.Context, name, objective, status string) (*metadomain.CreatedCampaign, error) {
	if name == "" {
		return nil, ErrMissingName
	}
	if objective == "" {
		return nil, ErrMissingObjective
	}
	if status == "" {
		status = metadomain.StatusPaused
	}
	if !metadomain.IsValidStatus(status) {
		return nil, errors.Wrap(ErrInvalidStatus, status)
	}

	created, err := s.Client.CreateCampaign(ctx, metaclient.CreateCampaignParams{
		Name:      name,
		Objective: objective,
		Status:    status,
	})
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"campaign_id": created.ID,
		"objective":   objective,
		"status":      status,
	}).Info("meta: campaign created")

	return created, nil
}

func (s *MetaIntegrator) UpdateAdSetStatus(ctx context.Context, adSetID, status string) (*metadomain.StatusUpdateResult, error) {
	if adSetID == "" {
		return nil, ErrMissingResourceID
	}
	if !metadomain.IsValidStatus(status) {
		return nil, errors.Wrap(ErrInvalidStatus, status)
	}

	result, err := s.Client.UpdateStatus(ctx, adSetID, status)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"ad_set_id": adSetID,
		"status":    status,
	}).Info("meta: ad set status updated")

	return result, nil
}
