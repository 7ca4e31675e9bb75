package domain

import (
	"time"

	metadomain "github.com/vfg2006/meta-ads-agent/infrastructure/integrator/meta/domain"
)

type CampaignHierarchyFilters struct {
	Limit     int
	DateRange metadomain.DateRange
}

type CampaignHierarchyResponse struct {
	AdAccountID string                    `json:"ad_account_id"`
	Campaigns   []metadomain.CampaignNode `json:"campaigns"`
	Count       int                       `json:"count"`
	FetchedAt   time.Time                 `json:"fetched_at"`
}

type AdSetsResponse struct {
	CampaignID string                 `json:"campaign_id"`
	AdSets     []metadomain.AdSetNode `json:"adsets"`
	Count      int                    `json:"count"`
}

type CreateCampaignRequest struct {
	Name      string `json:"name"`
	Objective string `json:"objective"`
	Status    string `json:"status"`
}

type CreateCampaignResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

type UpdateStatusResponse struct {
	ID      string `json:"id"`
	Status  string `json:"status"`
	Success bool   `json:"success"`
}

type AccountOverview struct {
	Account  *metadomain.AdAccountInfo     `json:"account"`
	App      *metadomain.AppInfo           `json:"app,omitempty"`
	Insights metadomain.PerformanceMetrics `json:"insights"`
}

type ConnectionStatus struct {
	Configured  bool   `json:"configured"`
	Connected   bool   `json:"connected"`
	Source      string `json:"source"`
	AdAccountID string `json:"ad_account_id,omitempty"`
	Message     string `json:"message,omitempty"`
}
