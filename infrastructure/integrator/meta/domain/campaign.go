package metadomain

// RawNode é um objeto JSON cru retornado pela Graph API (campanha, conjunto ou anúncio)
type RawNode map[string]any

// PerformanceMetrics é o registro de insights de um nó. Nunca é nil após a normalização.
type PerformanceMetrics map[string]any

type CreativeRef struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

type CampaignNode struct {
	ID                 string             `json:"id"`
	Name               string             `json:"name"`
	Status             string             `json:"status"`
	Objective          string             `json:"objective"`
	CreatedTime        string             `json:"created_time,omitempty"`
	UpdatedTime        string             `json:"updated_time,omitempty"`
	DailyBudget        string             `json:"daily_budget,omitempty"`
	LifetimeBudget     string             `json:"lifetime_budget,omitempty"`
	PerformanceMetrics PerformanceMetrics `json:"performance_metrics"`
	AdSets             []AdSetNode        `json:"ad_sets"`
}

type AdSetNode struct {
	ID                 string             `json:"id"`
	Name               string             `json:"name"`
	Status             string             `json:"status"`
	EffectiveStatus    string             `json:"effective_status,omitempty"`
	OptimizationGoal   string             `json:"optimization_goal,omitempty"`
	DailyBudget        string             `json:"daily_budget,omitempty"`
	LifetimeBudget     string             `json:"lifetime_budget,omitempty"`
	CreatedTime        string             `json:"created_time,omitempty"`
	UpdatedTime        string             `json:"updated_time,omitempty"`
	PerformanceMetrics PerformanceMetrics `json:"performance_metrics"`
	Ads                []AdNode           `json:"ads"`
}

type AdNode struct {
	ID                 string             `json:"id"`
	Name               string             `json:"name"`
	Status             string             `json:"status"`
	EffectiveStatus    string             `json:"effective_status,omitempty"`
	Creative           *CreativeRef       `json:"creative,omitempty"`
	CreatedTime        string             `json:"created_time,omitempty"`
	UpdatedTime        string             `json:"updated_time,omitempty"`
	PerformanceMetrics PerformanceMetrics `json:"performance_metrics"`
}

type Cursors struct {
	Before string `json:"before"`
	After  string `json:"after"`
}

type Paging struct {
	Cursors  Cursors `json:"cursors"`
	Next     string  `json:"next,omitempty"`
	Previous string  `json:"previous,omitempty"`
}

// Page é uma página de resultados de uma aresta da Graph API
type Page struct {
	Data   []RawNode `json:"data"`
	Paging *Paging   `json:"paging,omitempty"`
}

// NextPage retorna a URL da próxima página, ou vazio quando a sequência terminou
func (p *Page) NextPage() string {
	if p == nil || p.Paging == nil {
		return ""
	}
	return p.Paging.Next
}

// AdAccountInfo representa os dados básicos da conta de anúncios
type AdAccountInfo struct {
	ID            string `json:"id"`
	AccountID     string `json:"account_id"`
	Currency      string `json:"currency"`
	AccountStatus int    `json:"account_status"`
	TimezoneName  string `json:"timezone_name"`
}

type AppInfo struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type CreatedCampaign struct {
	ID string `json:"id"`
}

type StatusUpdateResult struct {
	Success bool `json:"success"`
}

// Status aceitos pela Graph API para campanhas, conjuntos e anúncios
const (
	StatusActive   = "ACTIVE"
	StatusPaused   = "PAUSED"
	StatusArchived = "ARCHIVED"
	StatusDeleted  = "DELETED"
)

func IsValidStatus(status string) bool {
	switch status {
	case StatusActive, StatusPaused, StatusArchived, StatusDeleted:
		return true
	}
	return false
}
