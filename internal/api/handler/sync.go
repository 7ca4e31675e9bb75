package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/vfg2006/meta-ads-agent/internal/domain"
	"github.com/vfg2006/meta-ads-agent/internal/scheduler"
	"github.com/vfg2006/meta-ads-agent/pkg/apiErrors"
	"github.com/vfg2006/meta-ads-agent/pkg/log"
)

// HierarchySyncRunner é satisfeito por *scheduler.HierarchySyncService
type HierarchySyncRunner interface {
	RunNow(ctx context.Context) (*domain.SyncResponse, error)
	GetStatus() *domain.SyncStatus
}

// RunHierarchySync grava um snapshot imediatamente, fora do agendamento
func RunHierarchySync(runner HierarchySyncRunner) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context()).WithFields(requestedBy(r))
		logger.Info("INIT - RunHierarchySync")

		resp, err := runner.RunNow(r.Context())
		if errors.Is(err, scheduler.ErrSyncRunning) {
			apiErrors.WriteError(w, apiErrors.ErrSyncRunning, err.Error(), nil)
			return
		}
		if err != nil {
			writeServiceError(w, logger, err)
			return
		}

		writeJSON(w, logger, http.StatusOK, resp)
	})
}

func GetHierarchySyncStatus(runner HierarchySyncRunner) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, log.ForContext(r.Context()), http.StatusOK, runner.GetStatus())
	})
}
