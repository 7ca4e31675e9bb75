package campaigning

import (
	"errors"
	"fmt"

	"github.com/vfg2006/meta-ads-agent/infrastructure/integrator/crm/crmclient"
	"github.com/vfg2006/meta-ads-agent/infrastructure/integrator/meta"
	metadomain "github.com/vfg2006/meta-ads-agent/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/meta-ads-agent/pkg/apiErrors"
)

var (
	ErrCredentialsNotConfigured = errors.New("meta credentials not configured")
	ErrCredentialSource         = errors.New("error fetching credentials")
	ErrMetaIntegration          = errors.New("error calling the Meta Graph API")
	ErrMissingCampaignID        = errors.New("campaign ID is required")
	ErrMissingAdSetID           = errors.New("ad set ID is required")
	ErrInvalidRequest           = errors.New("invalid request")
	ErrSaveSnapshot             = errors.New("error saving hierarchy snapshot")
	ErrGenerateID               = errors.New("error generating ID")
)

// CampaignError é um erro com contexto adicional para operações de campanha
type CampaignError struct {
	Err        error  // Erro base
	Code       string // Código de erro para API
	ResourceID string // ID da campanha ou conjunto envolvido (quando aplicável)
	Details    string
}

func (e *CampaignError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *CampaignError) Unwrap() error {
	return e.Err
}

func NewCampaignError(err error, code string, details string) *CampaignError {
	return &CampaignError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

func NewCampaignErrorWithID(err error, code string, resourceID string, details string) *CampaignError {
	return &CampaignError{
		Err:        err,
		Code:       code,
		ResourceID: resourceID,
		Details:    details,
	}
}

// classify traduz erros das camadas de integração para um CampaignError com código de API.
// O erro original é mantido para que código e mensagem da Graph API cheguem ao chamador.
func classify(err error, resourceID string) *CampaignError {
	var campaignErr *CampaignError
	if errors.As(err, &campaignErr) {
		return campaignErr
	}

	var apiErr *metadomain.APIError
	var transportErr *crmclient.TransportError

	switch {
	case errors.Is(err, ErrCredentialsNotConfigured), errors.Is(err, crmclient.ErrNotConfigured):
		return NewCampaignErrorWithID(err, apiErrors.ErrCredentialsNotConfigured, resourceID, "")
	case errors.As(err, &transportErr):
		return NewCampaignErrorWithID(err, apiErrors.ErrCommunication, resourceID, "")
	case errors.Is(err, meta.ErrInvalidStatus):
		return NewCampaignErrorWithID(err, apiErrors.ErrInvalidStatus, resourceID, "")
	case errors.Is(err, meta.ErrMissingName), errors.Is(err, meta.ErrMissingObjective), errors.Is(err, meta.ErrMissingResourceID):
		return NewCampaignErrorWithID(err, apiErrors.ErrMissingRequiredData, resourceID, "")
	case errors.As(err, &apiErr) && apiErr.IsTokenExpired():
		return NewCampaignErrorWithID(err, apiErrors.ErrMetaTokenExpired, resourceID, "")
	case errors.As(err, &apiErr):
		return NewCampaignErrorWithID(err, apiErrors.ErrMetaAPI, resourceID, "")
	default:
		return NewCampaignErrorWithID(err, apiErrors.ErrExternalService, resourceID, "")
	}
}
