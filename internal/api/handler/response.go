package handler

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/meta-ads-agent/internal/usecases/campaigning"
	"github.com/vfg2006/meta-ads-agent/pkg/apiErrors"
	"github.com/vfg2006/meta-ads-agent/pkg/log"
	"github.com/vfg2006/meta-ads-agent/pkg/middleware"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, logger log.Logger, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.WithError(err).Error("erro ao enviar resposta")
	}
}

// writeServiceError converte o erro do caso de uso na resposta padronizada.
// A mensagem preserva código e texto devolvidos pela Graph API.
func writeServiceError(w http.ResponseWriter, logger log.Logger, err error) {
	var campaignErr *campaigning.CampaignError
	if !errors.As(err, &campaignErr) {
		logger.WithError(err).Error("erro inesperado")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno no servidor", nil)
		return
	}

	var details any
	if campaignErr.ResourceID != "" {
		details = map[string]string{"resource_id": campaignErr.ResourceID}
	}

	entry := logger.WithFields(log.Fields{
		"code":  campaignErr.Code,
		"error": campaignErr.Error(),
	})
	if apiErrors.StatusFor(campaignErr.Code) >= http.StatusInternalServerError {
		entry.Error("falha na operação")
	} else {
		entry.Warn("operação rejeitada")
	}

	apiErrors.WriteError(w, campaignErr.Code, campaignErr.Error(), details)
}

// requestedBy identifica o autor de uma alteração nos logs de auditoria
func requestedBy(r *http.Request) log.Fields {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		return log.Fields{"requested_by": "unknown"}
	}
	return log.Fields{
		"requested_by": claims.Subject,
		"role":         claims.Role,
	}
}
