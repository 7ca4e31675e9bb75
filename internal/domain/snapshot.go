package domain

import (
	"time"

	metadomain "github.com/vfg2006/meta-ads-agent/infrastructure/integrator/meta/domain"
)

// HierarchySnapshot é uma fotografia da árvore de campanhas gravada pelo sync
type HierarchySnapshot struct {
	ID            string                    `json:"id"`
	AdAccountID   string                    `json:"ad_account_id"`
	DatePreset    string                    `json:"date_preset"`
	Since         *time.Time                `json:"since,omitempty"` // preenchidos quando o sync usa since/until
	Until         *time.Time                `json:"until,omitempty"`
	CampaignCount int                       `json:"campaign_count"`
	AdSetCount    int                       `json:"adset_count"`
	AdCount       int                       `json:"ad_count"`
	TotalSpend    float64                   `json:"total_spend"`
	Campaigns     []metadomain.CampaignNode `json:"campaigns"`
	CreatedAt     time.Time                 `json:"created_at"`
}

type SyncResponse struct {
	SnapshotID    string `json:"snapshot_id"`
	CampaignCount int    `json:"campaign_count"`
	Message       string `json:"message"`
	Error         bool   `json:"error"`
}

type SyncStatus struct {
	Enabled  bool       `json:"enabled"`
	Running  bool       `json:"running"`
	Schedule string     `json:"schedule"`
	LastRun  *time.Time `json:"last_run,omitempty"`
	NextRun  *time.Time `json:"next_run,omitempty"`
	LastErr  string     `json:"last_error,omitempty"`
}
