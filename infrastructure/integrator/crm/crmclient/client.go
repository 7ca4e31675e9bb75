package crmclient

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/meta-ads-agent/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/meta-ads-agent/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ErrNotConfigured indica que o CRM respondeu, mas ainda não há credenciais do Meta para o agente
var ErrNotConfigured = errors.New("meta credentials not configured")

// TransportError indica que o CRM não pôde ser consultado
type TransportError struct {
	Detail string
	Err    error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("crm: %s: %v", e.Detail, e.Err)
	}
	return "crm: " + e.Detail
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

type Client interface {
	FetchCredentials(ctx context.Context) (*metadomain.Credentials, error)
	CachedCredentials() *metadomain.Credentials
}

type CRMClient struct {
	baseURL    string
	agentID    string
	agentToken string
	httpClient *http.Client

	mu     sync.RWMutex
	cached *metadomain.Credentials
}

func NewClient(cfg config.CRM, httpClient *http.Client) *CRMClient {
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	return &CRMClient{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		agentID:    cfg.AgentID,
		agentToken: cfg.AgentToken,
		httpClient: httpClient,
	}
}

type configPullResponse struct {
	MetaAPI *metaAPIConfig `json:"meta_api"`
}

type metaAPIConfig struct {
	AccessToken string  `json:"access_token"`
	AppID       string  `json:"app_id"`
	AppSecret   string  `json:"app_secret"`
	AdAccountID string  `json:"ad_account_id"`
	BaseURL     string  `json:"base_url"`
	Timeout     float64 `json:"timeout"`
}

func (m *metaAPIConfig) toCredentials() *metadomain.Credentials {
	creds := metadomain.Credentials{
		AccessToken: m.AccessToken,
		AppID:       m.AppID,
		AppSecret:   m.AppSecret,
		AdAccountID: strings.TrimPrefix(m.AdAccountID, "act_"),
		BaseURL:     m.BaseURL,
		Timeout:     time.Duration(m.Timeout * float64(time.Second)),
	}.WithDefaults()
	return &creds
}

// FetchCredentials puxa a configuração do agente no CRM.
// Retorna ErrNotConfigured quando o CRM não tem token do Meta e *TransportError quando a consulta falha.
func (c *CRMClient) FetchCredentials(ctx context.Context) (*metadomain.Credentials, error) {
	url := fmt.Sprintf("%s/api/agents/%s/config:pull", c.baseURL, c.agentID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, nil)
	if err != nil {
		return nil, &TransportError{Detail: "erro ao criar a requisição", Err: err}
	}
	req.Header.Set("Authorization", "Bearer "+c.agentToken)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Detail: "erro ao executar a requisição", Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Detail: "erro ao ler resposta", Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &TransportError{Detail: fmt.Sprintf("config pull falhou com status %d: %s", resp.StatusCode, body)}
	}

	var pulled configPullResponse
	if err := json.Unmarshal(body, &pulled); err != nil {
		return nil, &TransportError{Detail: "erro ao decodificar a resposta", Err: err}
	}

	if pulled.MetaAPI == nil || pulled.MetaAPI.AccessToken == "" {
		logrus.WithField("agent_id", c.agentID).Info("crm: meta credentials not configured yet")
		return nil, ErrNotConfigured
	}

	creds := pulled.MetaAPI.toCredentials()

	c.mu.Lock()
	c.cached = creds
	c.mu.Unlock()

	logrus.WithFields(logrus.Fields{
		"agent_id":      c.agentID,
		"ad_account_id": creds.AdAccountID,
	}).Debug("crm: meta credentials pulled")

	return creds, nil
}

// CachedCredentials devolve as últimas credenciais obtidas com sucesso, ou nil
func (c *CRMClient) CachedCredentials() *metadomain.Credentials {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.cached == nil {
		return nil
	}
	creds := *c.cached
	return &creds
}
