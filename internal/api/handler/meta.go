package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	metadomain "github.com/vfg2006/meta-ads-agent/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/meta-ads-agent/internal/domain"
	"github.com/vfg2006/meta-ads-agent/internal/usecases/campaigning"
	"github.com/vfg2006/meta-ads-agent/pkg/apiErrors"
	"github.com/vfg2006/meta-ads-agent/pkg/log"
)

var errInvalidLimit = errors.New("limit deve ser um inteiro não negativo")

// parseFilters lê limit, date_preset, since e until da query string
func parseFilters(r *http.Request) (domain.CampaignHierarchyFilters, error) {
	query := r.URL.Query()

	filters := domain.CampaignHierarchyFilters{}

	if rawLimit := query.Get("limit"); rawLimit != "" {
		limit, err := strconv.Atoi(rawLimit)
		if err != nil || limit < 0 {
			return filters, errInvalidLimit
		}
		filters.Limit = limit
	}

	dateRange, err := metadomain.ParseDateRange(query.Get("date_preset"), query.Get("since"), query.Get("until"))
	if err != nil {
		return filters, err
	}
	filters.DateRange = dateRange

	return filters, nil
}

func GetConnectionStatus(service campaigning.CampaignService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		status := service.GetConnectionStatus(r.Context())

		logger.WithFields(log.Fields{
			"configured": status.Configured,
			"connected":  status.Connected,
			"source":     status.Source,
		}).Info("meta: connection status checked")

		writeJSON(w, logger, http.StatusOK, status)
	})
}

func GetAccountOverview(service campaigning.CampaignService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		query := r.URL.Query()
		dateRange, err := metadomain.ParseDateRange(query.Get("date_preset"), query.Get("since"), query.Get("until"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		overview, err := service.GetAccountOverview(r.Context(), dateRange)
		if err != nil {
			writeServiceError(w, logger, err)
			return
		}

		writeJSON(w, logger, http.StatusOK, overview)
	})
}

func GetCampaignHierarchy(service campaigning.CampaignService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, err := parseFilters(r)
		if err != nil {
			logger.WithError(err).Warn("meta: invalid hierarchy filters")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		hierarchy, err := service.GetCampaignHierarchy(r.Context(), filters)
		if err != nil {
			writeServiceError(w, logger, err)
			return
		}

		logger.WithFields(log.Fields{
			"ad_account_id": hierarchy.AdAccountID,
			"count":         hierarchy.Count,
		}).Info("meta: campaign hierarchy fetched")

		writeJSON(w, logger, http.StatusOK, hierarchy)
	})
}

func GetCampaignAdSets(service campaigning.CampaignService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		campaignID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		filters, err := parseFilters(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		adSets, err := service.GetCampaignAdSets(r.Context(), campaignID, filters)
		if err != nil {
			writeServiceError(w, logger, err)
			return
		}

		writeJSON(w, logger, http.StatusOK, adSets)
	})
}

func CreateCampaign(service campaigning.CampaignService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context()).WithFields(requestedBy(r))

		var request domain.CreateCampaignRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			logger.WithError(err).Warn("meta: invalid create campaign body")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		created, err := service.CreateCampaign(r.Context(), &request)
		if err != nil {
			writeServiceError(w, logger, err)
			return
		}

		logger.WithFields(log.Fields{
			"campaign_id": created.ID,
			"status":      created.Status,
		}).Info("meta: campaign created")

		writeJSON(w, logger, http.StatusCreated, created)
	})
}

func UpdateAdSetStatus(service campaigning.CampaignService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context()).WithFields(requestedBy(r))

		adSetID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var request domain.UpdateStatusRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		result, err := service.UpdateAdSetStatus(r.Context(), adSetID, &request)
		if err != nil {
			writeServiceError(w, logger, err)
			return
		}

		logger.WithFields(log.Fields{
			"adset_id": adSetID,
			"status":   result.Status,
		}).Info("meta: ad set status updated")

		writeJSON(w, logger, http.StatusOK, result)
	})
}
