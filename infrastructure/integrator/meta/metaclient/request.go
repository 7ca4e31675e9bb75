package metaclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/meta-ads-agent/infrastructure/integrator/meta/domain"
)

// endpointURL monta a URL absoluta de um endpoint relativo, sem query string
func (c *MetaClient) endpointURL(endpoint string) string {
	return strings.TrimRight(c.creds.BaseURL, "/") + "/" + strings.TrimLeft(endpoint, "/")
}

// get executa um GET com a query já codificada e devolve o corpo de uma resposta 2xx
func (c *MetaClient) get(ctx context.Context, endpoint, rawQuery string) ([]byte, error) {
	requestURL := c.endpointURL(endpoint)
	if rawQuery != "" {
		requestURL += "?" + rawQuery
	}

	return c.do(ctx, http.MethodGet, requestURL, nil, "")
}

func (c *MetaClient) postJSON(ctx context.Context, endpoint string, payload any) ([]byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("erro ao codificar corpo da requisição: %w", err)
	}

	return c.do(ctx, http.MethodPost, c.endpointURL(endpoint), body, "application/json")
}

// postForm envia um corpo form-encoded e repete o token na query string, como a Graph API exige para atualizações
func (c *MetaClient) postForm(ctx context.Context, endpoint string, form url.Values) ([]byte, error) {
	query := url.Values{}
	query.Set("access_token", c.creds.AccessToken)

	requestURL := c.endpointURL(endpoint) + "?" + query.Encode()

	return c.do(ctx, http.MethodPost, requestURL, []byte(form.Encode()), "application/x-www-form-urlencoded")
}

func (c *MetaClient) do(ctx context.Context, method, requestURL string, body []byte, contentType string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, c.creds.Timeout)
	defer cancel()

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, requestURL, reader)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.creds.AccessToken)
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	return HandleResponse(resp)
}

// ParseErrorResponse tenta parsear um erro da API do Meta
func ParseErrorResponse(body []byte) (*metadomain.ErrorResponse, error) {
	var errorResp metadomain.ErrorResponse
	if err := json.Unmarshal(body, &errorResp); err != nil {
		return nil, err
	}
	return &errorResp, nil
}

// HandleResponse lê o corpo e converte respostas fora da faixa 2xx em *metadomain.APIError
func HandleResponse(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler resposta: %w", err)
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return body, nil
	}

	apiErr := &metadomain.APIError{
		StatusCode: resp.StatusCode,
		Body:       string(body),
	}

	if errorResp, parseErr := ParseErrorResponse(body); parseErr == nil {
		apiErr.Details = &errorResp.Error
	}

	if apiErr.IsTokenExpired() {
		logrus.WithFields(logrus.Fields{
			"code":    apiErr.Details.Code,
			"subcode": apiErr.Details.ErrorSubcode,
		}).Warn("metaclient: access token expired or invalid")
	}

	return nil, apiErr
}

// GetObject busca um único objeto da Graph API e decodifica em out
func (c *MetaClient) GetObject(ctx context.Context, endpoint string, params url.Values, out any) error {
	body, err := c.get(ctx, endpoint, params.Encode())
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("erro ao decodificar JSON: %w", err)
	}

	return nil
}
