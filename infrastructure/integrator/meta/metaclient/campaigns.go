package metaclient

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/meta-ads-agent/infrastructure/integrator/meta/domain"
)

type CreateCampaignParams struct {
	Name      string `json:"name"`
	Objective string `json:"objective"`
	Status    string `json:"status"`
}

// CreateCampaign cria uma campanha na conta de anúncios. Erros da API são devolvidos sem alteração.
func (c *MetaClient) CreateCampaign(ctx context.Context, params CreateCampaignParams) (*metadomain.CreatedCampaign, error) {
	if params.Status == "" {
		params.Status = metadomain.StatusPaused
	}

	endpoint := fmt.Sprintf("act_%s/campaigns", c.creds.AdAccountID)

	body, err := c.postJSON(ctx, endpoint, params)
	if err != nil {
		return nil, err
	}

	var created metadomain.CreatedCampaign
	if err := json.Unmarshal(body, &created); err != nil {
		logrus.WithError(err).Error("metaclient: failed to decode created campaign")
		return nil, fmt.Errorf("erro ao decodificar JSON: %w", err)
	}

	return &created, nil
}

// UpdateStatus altera o status de uma campanha, conjunto ou anúncio
func (c *MetaClient) UpdateStatus(ctx context.Context, resourceID, status string) (*metadomain.StatusUpdateResult, error) {
	form := url.Values{}
	form.Set("status", status)

	body, err := c.postForm(ctx, resourceID, form)
	if err != nil {
		var apiErr *metadomain.APIError
		if errors.As(err, &apiErr) {
			logrus.WithFields(logrus.Fields{
				"resource_id": resourceID,
				"status":      status,
				"response":    apiErr.Body,
			}).Error(apiErr.Error())
			return nil, fmt.Errorf("erro ao atualizar status de %s: %w", resourceID, apiErr)
		}
		logrus.WithError(err).WithField("resource_id", resourceID).Error("metaclient: status update request failed")
		return nil, err
	}

	var result metadomain.StatusUpdateResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("erro ao decodificar JSON: %w", err)
	}

	return &result, nil
}
