package metaclient

import (
	"context"
	"net/http"
	"net/url"

	jsoniter "github.com/json-iterator/go"
	metadomain "github.com/vfg2006/meta-ads-agent/infrastructure/integrator/meta/domain"
)

//go:generate mockgen -source=client.go -destination=mocks/client.go -package=mocks

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// HTTPDoer é o transporte usado pelo cliente. *http.Client satisfaz a interface.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

type Client interface {
	AdAccountID() string
	AppID() string
	GetObject(ctx context.Context, endpoint string, params url.Values, out any) error
	GetPage(ctx context.Context, endpoint string, params url.Values) (*metadomain.Page, error)
	CollectAll(ctx context.Context, endpoint string, params url.Values) ([]metadomain.RawNode, error)
	CreateCampaign(ctx context.Context, params CreateCampaignParams) (*metadomain.CreatedCampaign, error)
	UpdateStatus(ctx context.Context, resourceID, status string) (*metadomain.StatusUpdateResult, error)
}

type MetaClient struct {
	creds      metadomain.Credentials
	httpClient HTTPDoer
}

// NewClient cria um cliente da Graph API. Quando httpClient é nil, usa um *http.Client
// com o timeout das credenciais.
func NewClient(creds metadomain.Credentials, httpClient HTTPDoer) Client {
	creds = creds.WithDefaults()

	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: creds.Timeout,
		}
	}

	return &MetaClient{
		creds:      creds,
		httpClient: httpClient,
	}
}

func (c *MetaClient) AdAccountID() string {
	return c.creds.AdAccountID
}

func (c *MetaClient) AppID() string {
	return c.creds.AppID
}
