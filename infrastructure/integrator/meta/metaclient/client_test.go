package metaclient

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metadomain "github.com/vfg2006/meta-ads-agent/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/meta-ads-agent/pkg/metrics"
)

type recordedRequest struct {
	Method      string
	Path        string
	Query       url.Values
	Body        string
	ContentType string
	Auth        string
}

// graphServer responde por caminho e guarda as requisições recebidas
type graphServer struct {
	t        *testing.T
	mu       sync.Mutex
	requests []recordedRequest
	routes   map[string]http.HandlerFunc
	server   *httptest.Server
}

func newGraphServer(t *testing.T) *graphServer {
	g := &graphServer{t: t, routes: map[string]http.HandlerFunc{}}
	g.server = httptest.NewServer(http.HandlerFunc(g.serve))
	t.Cleanup(g.server.Close)
	return g
}

func (g *graphServer) serve(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	g.mu.Lock()
	g.requests = append(g.requests, recordedRequest{
		Method:      r.Method,
		Path:        r.URL.Path,
		Query:       r.URL.Query(),
		Body:        string(body),
		ContentType: r.Header.Get("Content-Type"),
		Auth:        r.Header.Get("Authorization"),
	})
	g.mu.Unlock()

	handler, ok := g.routes[r.URL.Path]
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":{"message":"Unknown path","type":"GraphMethodException","code":803}}`))
		return
	}
	handler(w, r)
}

func (g *graphServer) client() Client {
	return NewClient(metadomain.Credentials{
		AccessToken: "EAAB",
		AdAccountID: "123",
		BaseURL:     g.server.URL + "/v20.0",
		Timeout:     5 * time.Second,
	}, g.server.Client())
}

func (g *graphServer) nextURL(path, after string) string {
	return g.server.URL + path + "?access_token=EAAB&limit=2&after=" + after
}

func TestCollectAll_FollowsCursorsInOrder(t *testing.T) {
	g := newGraphServer(t)
	g.routes["/v20.0/act_123/campaigns"] = func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("after") {
		case "":
			_, _ = io.WriteString(w, `{"data":[{"id":"1"},{"id":"2"}],"paging":{"cursors":{"after":"c2"},"next":"`+g.nextURL(r.URL.Path, "c2")+`"}}`)
		case "c2":
			_, _ = io.WriteString(w, `{"data":[{"id":"3"},{"id":"4"}],"paging":{"cursors":{"after":"c4"},"next":"`+g.nextURL(r.URL.Path, "c4")+`"}}`)
		case "c4":
			_, _ = io.WriteString(w, `{"data":[{"id":"5"}],"paging":{"cursors":{"before":"c4"}}}`)
		}
	}

	params := url.Values{}
	params.Set("limit", "2")
	params.Set("fields", "id")

	items, err := g.client().CollectAll(context.Background(), "act_123/campaigns", params)
	require.NoError(t, err)

	ids := make([]string, 0, len(items))
	for _, item := range items {
		ids = append(ids, item["id"].(string))
	}
	assert.Equal(t, []string{"1", "2", "3", "4", "5"}, ids)
	assert.Len(t, g.requests, 3)
	assert.Equal(t, "c4", g.requests[2].Query.Get("after"))
	assert.Equal(t, "Bearer EAAB", g.requests[0].Auth)
}

func TestCollectAll_FollowUpFailureKeepsCollectedItems(t *testing.T) {
	g := newGraphServer(t)
	g.routes["/v20.0/c1/adsets"] = func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("after") == "" {
			_, _ = io.WriteString(w, `{"data":[{"id":"s1"},{"id":"s2"}],"paging":{"next":"`+g.nextURL(r.URL.Path, "x")+`"}}`)
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = io.WriteString(w, `{"error":{"message":"An unknown error occurred","type":"OAuthException","code":1}}`)
	}

	before := testutil.ToFloat64(metrics.PaginationTruncated.WithLabelValues("adsets"))

	items, err := g.client().CollectAll(context.Background(), "c1/adsets", url.Values{})
	require.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.PaginationTruncated.WithLabelValues("adsets")))
}

func TestCollectAll_MalformedNextStopsPagination(t *testing.T) {
	g := newGraphServer(t)
	g.routes["/v20.0/s1/ads"] = func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{"data":[{"id":"a1"},"not-an-object",{"id":"a2"}],"paging":{"next":"https://graph.facebook.com/v20.0/s1/ads"}}`)
	}

	items, err := g.client().CollectAll(context.Background(), "s1/ads", url.Values{})
	require.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Len(t, g.requests, 1)
}

func TestCollectAll_FirstPageErrorIsReturned(t *testing.T) {
	g := newGraphServer(t)
	g.routes["/v20.0/act_123/campaigns"] = func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, `{"error":{"message":"Invalid OAuth access token.","type":"OAuthException","code":190,"fbtrace_id":"AbC"}}`)
	}

	_, err := g.client().CollectAll(context.Background(), "act_123/campaigns", url.Values{})
	require.Error(t, err)

	var apiErr *metadomain.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, 190, apiErr.Code())
	assert.True(t, apiErr.IsTokenExpired())
	assert.Contains(t, err.Error(), "AbC")
}

func TestGetObject(t *testing.T) {
	g := newGraphServer(t)
	g.routes["/v20.0/act_123"] = func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "id,currency", r.URL.Query().Get("fields"))
		_, _ = io.WriteString(w, `{"id":"act_123","account_id":"123","currency":"BRL","account_status":1}`)
	}

	params := url.Values{}
	params.Set("fields", "id,currency")

	var info metadomain.AdAccountInfo
	require.NoError(t, g.client().GetObject(context.Background(), "act_123", params, &info))
	assert.Equal(t, "BRL", info.Currency)
	assert.Equal(t, 1, info.AccountStatus)
}

func TestUpdateStatus_SendsFormWithTokenInQuery(t *testing.T) {
	g := newGraphServer(t)
	g.routes["/v20.0/238"] = func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{"success":true}`)
	}

	result, err := g.client().UpdateStatus(context.Background(), "238", "PAUSED")
	require.NoError(t, err)
	assert.True(t, result.Success)

	require.Len(t, g.requests, 1)
	req := g.requests[0]
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "application/x-www-form-urlencoded", req.ContentType)
	assert.Equal(t, "status=PAUSED", req.Body)
	assert.Equal(t, "EAAB", req.Query.Get("access_token"))
}

func TestUpdateStatus_ErrorCarriesCodeAndMessage(t *testing.T) {
	g := newGraphServer(t)
	g.routes["/v20.0/238"] = func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, `{"error":{"message":"Invalid parameter","type":"OAuthException","code":100,"fbtrace_id":"Fb1"}}`)
	}

	_, err := g.client().UpdateStatus(context.Background(), "238", "ACTIVE")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "100")
	assert.Contains(t, err.Error(), "Invalid parameter")

	var apiErr *metadomain.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
}

func TestCreateCampaign(t *testing.T) {
	g := newGraphServer(t)
	g.routes["/v20.0/act_123/campaigns"] = func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{"id":"120210"}`)
	}

	created, err := g.client().CreateCampaign(context.Background(), CreateCampaignParams{
		Name:      "Lançamento",
		Objective: "OUTCOME_TRAFFIC",
	})
	require.NoError(t, err)
	assert.Equal(t, "120210", created.ID)

	req := g.requests[0]
	assert.Equal(t, "application/json", req.ContentType)
	assert.JSONEq(t, `{"name":"Lançamento","objective":"OUTCOME_TRAFFIC","status":"PAUSED"}`, req.Body)
}

func TestCreateCampaign_PropagatesAPIError(t *testing.T) {
	g := newGraphServer(t)
	g.routes["/v20.0/act_123/campaigns"] = func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = io.WriteString(w, `{"error":{"message":"Permissions error","type":"OAuthException","code":200}}`)
	}

	_, err := g.client().CreateCampaign(context.Background(), CreateCampaignParams{Name: "x", Objective: "y"})

	var apiErr *metadomain.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, 200, apiErr.Code())
	assert.Equal(t, err, error(apiErr))
}

func TestHandleResponse_NonJSONError(t *testing.T) {
	g := newGraphServer(t)
	g.routes["/v20.0/me"] = func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = io.WriteString(w, `<html>bad gateway</html>`)
	}

	err := g.client().GetObject(context.Background(), "me", url.Values{}, &struct{}{})

	var apiErr *metadomain.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 0, apiErr.Code())
	assert.Contains(t, err.Error(), "bad gateway")
}

func TestNewClient_TimeoutFollowsCredentials(t *testing.T) {
	g := newGraphServer(t)
	g.routes["/v20.0/act_123"] = func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = io.WriteString(w, `{"id":"act_123","currency":"BRL"}`)
	}

	newClient := func(timeout time.Duration) Client {
		return NewClient(metadomain.Credentials{
			AccessToken: "EAAB",
			AdAccountID: "123",
			BaseURL:     g.server.URL + "/v20.0",
			Timeout:     timeout,
		}, nil)
	}

	var info metadomain.AdAccountInfo
	err := newClient(50*time.Millisecond).GetObject(context.Background(), "act_123", url.Values{}, &info)
	require.Error(t, err)

	require.NoError(t, newClient(5*time.Second).GetObject(context.Background(), "act_123", url.Values{}, &info))
	assert.Equal(t, "BRL", info.Currency)
}
