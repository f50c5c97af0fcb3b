package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/basketlab/copurchase/pkg/category"
	"github.com/basketlab/copurchase/pkg/graph"
	"github.com/basketlab/copurchase/pkg/logging"
	"github.com/basketlab/copurchase/pkg/metrics"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	store := graph.New()
	store.AddTransaction([]string{"whole milk", "yogurt", "soda"})
	store.AddTransaction([]string{"whole milk", "yogurt"})
	store.AddTransaction([]string{"whole milk", "soda"})
	store.AddTransaction([]string{"rolls/buns"})

	index := category.NewIndex(map[string]string{
		"whole milk": "dairy",
		"yogurt":     "dairy",
		"soda":       "beverages",
		"rolls/buns": "bakery",
	})

	logger := logging.NewJSONLogger(io.Discard, logging.ErrorLevel)
	srv, err := NewServer(store, index, metrics.NewRegistry(), logger, 0)
	require.NoError(t, err)

	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func getJSON(t *testing.T, ts *httptest.Server, path string, out any) *http.Response {
	t.Helper()

	resp, err := http.Get(ts.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp
}

func TestHealthEndpoint(t *testing.T) {
	ts := newTestServer(t)

	var health HealthResponse
	resp := getJSON(t, ts, "/health", &health)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "healthy", health.Status)
	assert.Equal(t, 4, health.Items)
	assert.Equal(t, uint64(4), health.Transactions)
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
}

func TestCoPurchasesEndpoint(t *testing.T) {
	ts := newTestServer(t)

	var body CoPurchasesResponse
	resp := getJSON(t, ts, "/co-purchases?item=whole+milk&n=2", &body)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "whole milk", body.Item)
	require.Len(t, body.Results, 2)
	assert.Equal(t, "soda", body.Results[0].Item)
	assert.Equal(t, 2, body.Results[0].Count)
	assert.Equal(t, "yogurt", body.Results[1].Item)
	assert.Equal(t, 2, body.Results[1].Count)
}

func TestCoPurchasesUnknownItem(t *testing.T) {
	ts := newTestServer(t)

	var body CoPurchasesResponse
	resp := getJSON(t, ts, "/co-purchases?item=caviar", &body)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, body.Results)
}

func TestCoPurchasesMissingItem(t *testing.T) {
	ts := newTestServer(t)

	var body ErrorResponse
	resp := getJSON(t, ts, "/co-purchases", &body)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, body.Error, "item")
}

func TestCoPurchasesBadCount(t *testing.T) {
	ts := newTestServer(t)

	resp := getJSON(t, ts, "/co-purchases?item=soda&n=zero", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = getJSON(t, ts, "/co-purchases?item=soda&n=-1", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestTopPairsEndpoint(t *testing.T) {
	ts := newTestServer(t)

	var body TopPairsResponse
	resp := getJSON(t, ts, "/top-pairs?k=2", &body)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, body.Results, 2)
	assert.Equal(t, "soda", body.Results[0].A)
	assert.Equal(t, "whole milk", body.Results[0].B)
	assert.Equal(t, 2, body.Results[0].Count)
	assert.Equal(t, "whole milk", body.Results[1].A)
	assert.Equal(t, "yogurt", body.Results[1].B)
}

func TestRelationEndpoint(t *testing.T) {
	ts := newTestServer(t)

	var body RelationResponse
	resp := getJSON(t, ts, "/relation?a=whole+milk&b=soda", &body)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 2, body.Count)

	resp = getJSON(t, ts, "/relation?a=whole+milk&b=rolls%2Fbuns", &body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 0, body.Count)

	resp = getJSON(t, ts, "/relation?a=whole+milk", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCategoryEndpoint(t *testing.T) {
	ts := newTestServer(t)

	var body CategoryResponse
	resp := getJSON(t, ts, "/category?name=dairy", &body)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, body.Known)
	require.Contains(t, body.Items, "whole milk")
	assert.Equal(t, 2, body.Items["whole milk"]["yogurt"])

	body = CategoryResponse{}
	resp = getJSON(t, ts, "/category?name=electronics", &body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.False(t, body.Known)
	assert.Empty(t, body.Items)
}

func TestRecommendEndpoint(t *testing.T) {
	ts := newTestServer(t)

	var body RecommendResponse
	resp := getJSON(t, ts, "/recommend?items=whole+milk,yogurt&n=1", &body)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, []string{"whole milk", "yogurt"}, body.Inputs)
	require.Len(t, body.Results, 1)
	assert.Equal(t, "soda", body.Results[0].Item)
	assert.Equal(t, 3, body.Results[0].Count)

	resp = getJSON(t, ts, "/recommend?items=,,", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestVisualizationEndpoint(t *testing.T) {
	ts := newTestServer(t)

	var body VisualizationResponse
	resp := getJSON(t, ts, "/visualization?n=3&layout=circular", &body)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "circular", body.Layout)
	assert.Len(t, body.Nodes, 3)
	assert.Len(t, body.Positions, 3)
	for _, edge := range body.Edges {
		assert.Less(t, edge.A, edge.B)
	}

	resp = getJSON(t, ts, "/visualization?layout=spiral", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestMetricsEndpoint(t *testing.T) {
	ts := newTestServer(t)

	// Touch one query endpoint so counters exist.
	getJSON(t, ts, "/top-pairs", nil)

	resp, err := http.Get(ts.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(raw), "copurchase_queries_total")
}

func TestCORSPreflight(t *testing.T) {
	ts := newTestServer(t)

	req, err := http.NewRequest(http.MethodOptions, ts.URL+"/top-pairs", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestRequestIDPreserved(t *testing.T) {
	ts := newTestServer(t)

	req, err := http.NewRequest(http.MethodGet, ts.URL+"/health", nil)
	require.NoError(t, err)
	req.Header.Set("X-Request-ID", "caller-supplied")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "caller-supplied", resp.Header.Get("X-Request-ID"))
}
