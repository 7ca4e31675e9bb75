package handler

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/vfg2006/meta-ads-agent/internal/api/handler/router"
	"github.com/vfg2006/meta-ads-agent/internal/usecases/campaigning"
	"github.com/vfg2006/meta-ads-agent/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: promhttp.Handler(),
		},
	}
}

func Meta(service campaigning.CampaignService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/meta/status",
			Method:      http.MethodGet,
			Handler:     GetConnectionStatus(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/meta/account",
			Method:      http.MethodGet,
			Handler:     GetAccountOverview(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/meta/campaigns",
			Method:      http.MethodGet,
			Handler:     GetCampaignHierarchy(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/meta/campaigns",
			Method:      http.MethodPost,
			Handler:     CreateCampaign(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/meta/campaigns/:id/adsets",
			Method:      http.MethodGet,
			Handler:     GetCampaignAdSets(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/meta/adsets/:id/status",
			Method:      http.MethodPost,
			Handler:     UpdateAdSetStatus(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func HierarchySync(runner HierarchySyncRunner) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/sync",
			Method:      http.MethodPost,
			Handler:     RunHierarchySync(runner),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/sync/status",
			Method:      http.MethodGet,
			Handler:     GetHierarchySyncStatus(runner),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}
