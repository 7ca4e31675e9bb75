package meta

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/meta-ads-agent/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/meta-ads-agent/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/meta-ads-agent/pkg/metrics"
)

// fallbackChildLimit é o tamanho de página usado para conjuntos e anúncios na busca por nível
const fallbackChildLimit = 50

// FetchHierarchy busca campanhas, conjuntos, anúncios e insights numa única consulta aninhada.
// Se a consulta falhar, a árvore é remontada com uma requisição por nível.
func (s *MetaIntegrator) FetchHierarchy(ctx context.Context, limit int, dateRange metadomain.DateRange) ([]metadomain.CampaignNode, error) {
	campaigns, err := s.fetchHierarchyBatched(ctx, limit, dateRange)
	if err == nil {
		metrics.HierarchyFetch.WithLabelValues(metrics.StrategyBatched, metrics.OutcomeSuccess).Inc()

		logrus.WithFields(logrus.Fields{
			"ad_account_id": s.Client.AdAccountID(),
			"campaigns":     len(campaigns),
		}).Debug("hierarchy: batched fetch succeeded")

		return campaigns, nil
	}

	metrics.HierarchyFetch.WithLabelValues(metrics.StrategyBatched, metrics.OutcomeError).Inc()

	logrus.WithFields(logrus.Fields{
		"ad_account_id": s.Client.AdAccountID(),
		"error":         err.Error(),
	}).Warn("hierarchy: batched fetch failed, falling back to per-level requests")

	return s.FetchHierarchyFallback(ctx, limit)
}

func (s *MetaIntegrator) fetchHierarchyBatched(ctx context.Context, limit int, dateRange metadomain.DateRange) ([]metadomain.CampaignNode, error) {
	params := listParams(limit, metaclient.HierarchyFields())
	dateRange.Apply(params)

	raw, err := s.Client.CollectAll(ctx, s.campaignsEndpoint(), params)
	if err != nil {
		return nil, errors.Wrap(err, "batched hierarchy request failed")
	}

	return NormalizeCampaigns(raw), nil
}

// FetchHierarchyFallback monta a árvore com uma requisição por campanha e por conjunto.
// Falhas ao buscar filhos de uma entidade deixam apenas aquela entidade sem filhos.
func (s *MetaIntegrator) FetchHierarchyFallback(ctx context.Context, limit int) ([]metadomain.CampaignNode, error) {
	campaigns, err := s.GetCampaigns(ctx, limit)
	if err != nil {
		metrics.HierarchyFetch.WithLabelValues(metrics.StrategyFallback, metrics.OutcomeError).Inc()
		return nil, errors.Wrap(err, "fallback hierarchy fetch failed")
	}

	for i := range campaigns {
		campaigns[i].AdSets = s.fallbackAdSets(ctx, campaigns[i].ID)
	}

	metrics.HierarchyFetch.WithLabelValues(metrics.StrategyFallback, metrics.OutcomeSuccess).Inc()

	logrus.WithFields(logrus.Fields{
		"ad_account_id": s.Client.AdAccountID(),
		"campaigns":     len(campaigns),
	}).Info("hierarchy: fallback fetch assembled")

	return campaigns, nil
}

func (s *MetaIntegrator) fallbackAdSets(ctx context.Context, campaignID string) []metadomain.AdSetNode {
	if campaignID == "" {
		logrus.Warn("hierarchy: campaign without id, skipping ad sets")
		return []metadomain.AdSetNode{}
	}

	adSets, err := s.GetAdSets(ctx, campaignID, fallbackChildLimit)
	if err != nil {
		metrics.FallbackEntityFailures.WithLabelValues(metrics.LevelCampaign).Inc()

		logrus.WithFields(logrus.Fields{
			"campaign_id": campaignID,
			"error":       err.Error(),
		}).Warn("hierarchy: failed to get ad sets for campaign")

		return []metadomain.AdSetNode{}
	}

	for i := range adSets {
		adSets[i].Ads = s.fallbackAds(ctx, adSets[i].ID)
	}

	return adSets
}

func (s *MetaIntegrator) fallbackAds(ctx context.Context, adSetID string) []metadomain.AdNode {
	if adSetID == "" {
		logrus.Warn("hierarchy: ad set without id, skipping ads")
		return []metadomain.AdNode{}
	}

	ads, err := s.GetAds(ctx, adSetID, fallbackChildLimit)
	if err != nil {
		metrics.FallbackEntityFailures.WithLabelValues(metrics.LevelAdSet).Inc()

		logrus.WithFields(logrus.Fields{
			"ad_set_id": adSetID,
			"error":     err.Error(),
		}).Warn("hierarchy: failed to get ads for ad set")

		return []metadomain.AdNode{}
	}

	return ads
}
