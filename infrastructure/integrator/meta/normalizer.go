package meta

import (
	"strconv"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/meta-ads-agent/infrastructure/integrator/meta/domain"
)

// envelopeShape descreve como a Graph API representou uma coleção embutida num nó
type envelopeShape int

const (
	shapeAbsent envelopeShape = iota
	shapeEnvelope
	shapeList
	shapeMalformed
)

func (s envelopeShape) String() string {
	switch s {
	case shapeAbsent:
		return "absent"
	case shapeEnvelope:
		return "envelope"
	case shapeList:
		return "list"
	default:
		return "malformed"
	}
}

const (
	insightsKey = "insights"
	adSetsKey   = "adsets"
	adsKey      = "ads"
)

// classifyEnvelope identifica o formato de raw[key]: objeto com lista em "data", lista simples,
// ausente ou qualquer outra coisa. Só os dois primeiros formatos devolvem itens.
func classifyEnvelope(raw metadomain.RawNode, key string) (envelopeShape, []any) {
	value, ok := raw[key]
	if !ok || value == nil {
		return shapeAbsent, nil
	}

	switch v := value.(type) {
	case map[string]any:
		if data, ok := v["data"].([]any); ok {
			return shapeEnvelope, data
		}
	case metadomain.RawNode:
		if data, ok := v["data"].([]any); ok {
			return shapeEnvelope, data
		}
	case []any:
		return shapeList, v
	}

	return shapeMalformed, nil
}

func asNode(item any) (metadomain.RawNode, bool) {
	switch v := item.(type) {
	case map[string]any:
		return metadomain.RawNode(v), true
	case metadomain.RawNode:
		return v, true
	}
	return nil, false
}

// normalizeMetrics devolve o primeiro registro de insights, ou um registro vazio
func normalizeMetrics(raw metadomain.RawNode) metadomain.PerformanceMetrics {
	shape, items := classifyEnvelope(raw, insightsKey)
	if shape == shapeMalformed {
		logrus.WithFields(logrus.Fields{
			"node_id": stringField(raw, "id"),
		}).Debug("normalizer: unexpected insights shape, using empty metrics")
	}

	metrics := metadomain.PerformanceMetrics{}
	if len(items) == 0 {
		return metrics
	}

	first, ok := asNode(items[0])
	if !ok {
		return metrics
	}
	for k, v := range first {
		metrics[k] = v
	}

	return metrics
}

// childNodes devolve os filhos embutidos em raw[key]; itens que não são objetos são ignorados
func childNodes(raw metadomain.RawNode, key string) []metadomain.RawNode {
	shape, items := classifyEnvelope(raw, key)
	if shape == shapeMalformed {
		logrus.WithFields(logrus.Fields{
			"node_id": stringField(raw, "id"),
			"field":   key,
		}).Debug("normalizer: unexpected child collection shape, using empty list")
	}

	children := make([]metadomain.RawNode, 0, len(items))
	for _, item := range items {
		if node, ok := asNode(item); ok {
			children = append(children, node)
		}
	}

	return children
}

func stringField(raw metadomain.RawNode, key string) string {
	switch v := raw[key].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case bool:
		return strconv.FormatBool(v)
	}
	return ""
}

func creativeField(raw metadomain.RawNode) *metadomain.CreativeRef {
	switch v := raw["creative"].(type) {
	case string:
		if v == "" {
			return nil
		}
		return &metadomain.CreativeRef{ID: v}
	default:
		node, ok := asNode(v)
		if !ok {
			return nil
		}
		return &metadomain.CreativeRef{
			ID:   stringField(node, "id"),
			Name: stringField(node, "name"),
		}
	}
}

func NormalizeCampaign(raw metadomain.RawNode) metadomain.CampaignNode {
	campaign := metadomain.CampaignNode{
		ID:                 stringField(raw, "id"),
		Name:               stringField(raw, "name"),
		Status:             stringField(raw, "status"),
		Objective:          stringField(raw, "objective"),
		CreatedTime:        stringField(raw, "created_time"),
		UpdatedTime:        stringField(raw, "updated_time"),
		DailyBudget:        stringField(raw, "daily_budget"),
		LifetimeBudget:     stringField(raw, "lifetime_budget"),
		PerformanceMetrics: normalizeMetrics(raw),
	}

	rawAdSets := childNodes(raw, adSetsKey)
	campaign.AdSets = make([]metadomain.AdSetNode, 0, len(rawAdSets))
	for _, rawAdSet := range rawAdSets {
		campaign.AdSets = append(campaign.AdSets, NormalizeAdSet(rawAdSet))
	}

	return campaign
}

func NormalizeAdSet(raw metadomain.RawNode) metadomain.AdSetNode {
	adSet := metadomain.AdSetNode{
		ID:                 stringField(raw, "id"),
		Name:               stringField(raw, "name"),
		Status:             stringField(raw, "status"),
		EffectiveStatus:    stringField(raw, "effective_status"),
		OptimizationGoal:   stringField(raw, "optimization_goal"),
		DailyBudget:        stringField(raw, "daily_budget"),
		LifetimeBudget:     stringField(raw, "lifetime_budget"),
		CreatedTime:        stringField(raw, "created_time"),
		UpdatedTime:        stringField(raw, "updated_time"),
		PerformanceMetrics: normalizeMetrics(raw),
	}

	rawAds := childNodes(raw, adsKey)
	adSet.Ads = make([]metadomain.AdNode, 0, len(rawAds))
	for _, rawAd := range rawAds {
		adSet.Ads = append(adSet.Ads, NormalizeAd(rawAd))
	}

	return adSet
}

func NormalizeAd(raw metadomain.RawNode) metadomain.AdNode {
	return metadomain.AdNode{
		ID:                 stringField(raw, "id"),
		Name:               stringField(raw, "name"),
		Status:             stringField(raw, "status"),
		EffectiveStatus:    stringField(raw, "effective_status"),
		Creative:           creativeField(raw),
		CreatedTime:        stringField(raw, "created_time"),
		UpdatedTime:        stringField(raw, "updated_time"),
		PerformanceMetrics: normalizeMetrics(raw),
	}
}

func NormalizeCampaigns(raw []metadomain.RawNode) []metadomain.CampaignNode {
	campaigns := make([]metadomain.CampaignNode, 0, len(raw))
	for _, node := range raw {
		campaigns = append(campaigns, NormalizeCampaign(node))
	}
	return campaigns
}

func normalizeAdSets(raw []metadomain.RawNode) []metadomain.AdSetNode {
	adSets := make([]metadomain.AdSetNode, 0, len(raw))
	for _, node := range raw {
		adSets = append(adSets, NormalizeAdSet(node))
	}
	return adSets
}

func normalizeAds(raw []metadomain.RawNode) []metadomain.AdNode {
	ads := make([]metadomain.AdNode, 0, len(raw))
	for _, node := range raw {
		ads = append(ads, NormalizeAd(node))
	}
	return ads
}
