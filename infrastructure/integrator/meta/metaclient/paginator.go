package metaclient

import (
	"context"
	"fmt"
	"net/url"
	"path"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/meta-ads-agent/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/meta-ads-agent/pkg/metrics"
)

type pageWire struct {
	Data   []any              `json:"data"`
	Paging *metadomain.Paging `json:"paging"`
}

// GetPage busca uma única página de uma aresta
func (c *MetaClient) GetPage(ctx context.Context, endpoint string, params url.Values) (*metadomain.Page, error) {
	return c.getPage(ctx, endpoint, params.Encode())
}

func (c *MetaClient) getPage(ctx context.Context, endpoint, rawQuery string) (*metadomain.Page, error) {
	body, err := c.get(ctx, endpoint, rawQuery)
	if err != nil {
		return nil, err
	}

	var wire pageWire
	if err := json.Unmarshal(body, &wire); err != nil {
		return nil, fmt.Errorf("erro ao decodificar página de %s: %w", endpoint, err)
	}

	page := &metadomain.Page{
		Data:   make([]metadomain.RawNode, 0, len(wire.Data)),
		Paging: wire.Paging,
	}
	for i, item := range wire.Data {
		node, ok := item.(map[string]any)
		if !ok {
			logrus.WithFields(logrus.Fields{
				"endpoint": endpoint,
				"index":    i,
			}).Warn("metaclient: ignoring non-object item in page data")
			continue
		}
		page.Data = append(page.Data, metadomain.RawNode(node))
	}

	return page, nil
}

// CollectAll percorre todas as páginas de uma aresta e devolve os itens na ordem recebida.
// Falha na primeira página é retornada; falhas nas páginas seguintes encerram a paginação
// mantendo os itens já coletados.
func (c *MetaClient) CollectAll(ctx context.Context, endpoint string, params url.Values) ([]metadomain.RawNode, error) {
	page, err := c.GetPage(ctx, endpoint, params)
	if err != nil {
		return nil, err
	}

	items := page.Data

	for next := page.NextPage(); next != ""; next = page.NextPage() {
		rawQuery, err := nextPageQuery(next)
		if err != nil {
			truncated(endpoint, len(items), err)
			break
		}

		page, err = c.getPage(ctx, endpoint, rawQuery)
		if err != nil {
			truncated(endpoint, len(items), err)
			break
		}

		items = append(items, page.Data...)
	}

	return items, nil
}

// nextPageQuery extrai a query string de paging.next para ser reenviada sem alterações
func nextPageQuery(next string) (string, error) {
	parsed, err := url.Parse(next)
	if err != nil {
		return "", fmt.Errorf("paging.next inválido: %w", err)
	}
	if parsed.RawQuery == "" {
		return "", fmt.Errorf("paging.next sem query string: %s", next)
	}
	return parsed.RawQuery, nil
}

func truncated(endpoint string, collected int, err error) {
	metrics.PaginationTruncated.WithLabelValues(path.Base(endpoint)).Inc()

	logrus.WithFields(logrus.Fields{
		"endpoint":  endpoint,
		"collected": collected,
		"error":     err.Error(),
	}).Warn("metaclient: failed to fetch next page, returning partial results")
}
