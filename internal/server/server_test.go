package server

import (
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"budgetplanner/internal/aws/pricing/models"
	"budgetplanner/internal/logging"
	"budgetplanner/internal/projects"
)

const testOrigin = "http://localhost:5173"

type stubSource struct {
	fail bool
}

func (s stubSource) result(price float64) models.PriceResult {
	if s.fail {
		return models.PriceResult{Status: models.NotFound}
	}
	return models.PriceResult{Status: models.Found, Price: price}
}

func (s stubSource) EC2Price(context.Context, string) models.PriceResult { return s.result(0.0042) }
func (s stubSource) RDSPrice(context.Context, string, string) models.PriceResult {
	return s.result(0.016)
}
func (s stubSource) LambdaPrices(context.Context) models.LambdaResult {
	return models.LambdaResult{Requests: s.result(0.0000002), Duration: s.result(0.0000166667)}
}

func newTestServer(t *testing.T, src projects.PriceSource) *httptest.Server {
	t.Helper()
	prev := logging.SetOutput(io.Discard)
	t.Cleanup(func() { logging.SetOutput(prev) })

	s := New(projects.NewCatalog(src, 0), Options{AllowedOrigin: testOrigin, Version: "0.1.0"})
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func getJSON(t *testing.T, url string, v interface{}) *http.Response {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
	return resp
}

func TestRoot(t *testing.T) {
	ts := newTestServer(t, stubSource{})

	var body map[string]string
	resp := getJSON(t, ts.URL+"/", &body)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "AWS Budget Planner API", body["message"])
	assert.Equal(t, "0.1.0", body["version"])
}

func TestProjectsDefaultBudget(t *testing.T) {
	ts := newTestServer(t, stubSource{fail: true})

	var body projects.BudgetResult
	resp := getJSON(t, ts.URL+"/api/projects", &body)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 10.0, body.Budget)
	assert.Equal(t, 6, body.AffordableCount)
	assert.Equal(t, projects.SourceFallback, body.PricingSource)
}

func TestProjectsBudgetOne(t *testing.T) {
	ts := newTestServer(t, stubSource{fail: true})

	var body projects.BudgetResult
	getJSON(t, ts.URL+"/api/projects?budget=1", &body)

	require.Len(t, body.Affordable, 1)
	assert.Equal(t, "Discord/Slack Bot", body.Affordable[0].Name)
	assert.Len(t, body.Expensive, 5)
	for _, tpl := range body.Expensive {
		assert.Greater(t, tpl.TotalCost, 1.0)
	}
}

func TestProjectsLive(t *testing.T) {
	ts := newTestServer(t, stubSource{})

	var body projects.BudgetResult
	getJSON(t, ts.URL+"/api/projects?budget=10000", &body)

	assert.Equal(t, projects.SourceLive, body.PricingSource)
	assert.Equal(t, 6, body.AffordableCount)
	for _, tpl := range body.Affordable {
		assert.Equal(t, projects.SourceLive, tpl.PricingSource)
	}
}

func TestProjectsValidation(t *testing.T) {
	ts := newTestServer(t, stubSource{})

	tests := []struct {
		query    string
		wantType string
	}{
		{"budget=0.5", "greater_than_equal"},
		{"budget=10001", "less_than_equal"},
		{"budget=abc", "float_parsing"},
		{"budget=NaN", "float_parsing"},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			var body validationResponse
			resp := getJSON(t, ts.URL+"/api/projects?"+tt.query, &body)

			assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
			require.Len(t, body.Detail, 1)
			assert.Equal(t, []string{"query", "budget"}, body.Detail[0].Loc)
			assert.Equal(t, tt.wantType, body.Detail[0].Type)
		})
	}
}

func TestAllProjects(t *testing.T) {
	ts := newTestServer(t, stubSource{})

	var body allProjectsResponse
	resp := getJSON(t, ts.URL+"/api/projects/all", &body)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 6, body.Count)
	assert.Len(t, body.Projects, 6)
	assert.Equal(t, projects.SourceLive, body.PricingSource)
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t, stubSource{fail: true})

	var body healthResponse
	getJSON(t, ts.URL+"/api/health", &body)

	assert.Equal(t, "healthy", body.Status)
	assert.Equal(t, 6, body.ProjectsLoaded)
	assert.Equal(t, projects.SourceFallback, body.PricingSource)
	assert.Equal(t, Endpoints, body.Endpoints)
}

func TestUnknownRouteAndMethod(t *testing.T) {
	ts := newTestServer(t, stubSource{})

	resp, err := http.Get(ts.URL + "/api/nope")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, err = http.Post(ts.URL+"/api/projects", "application/json", nil)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestCORS(t *testing.T) {
	ts := newTestServer(t, stubSource{})

	t.Run("simple request from allowed origin", func(t *testing.T) {
		req, _ := http.NewRequest(http.MethodGet, ts.URL+"/api/health", nil)
		req.Header.Set("Origin", testOrigin)
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		resp.Body.Close()

		assert.Equal(t, testOrigin, resp.Header.Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "true", resp.Header.Get("Access-Control-Allow-Credentials"))
	})

	t.Run("other origin gets no grant", func(t *testing.T) {
		req, _ := http.NewRequest(http.MethodGet, ts.URL+"/api/health", nil)
		req.Header.Set("Origin", "http://evil.example")
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Empty(t, resp.Header.Get("Access-Control-Allow-Origin"))
	})

	t.Run("preflight", func(t *testing.T) {
		req, _ := http.NewRequest(http.MethodOptions, ts.URL+"/api/projects", nil)
		req.Header.Set("Origin", testOrigin)
		req.Header.Set("Access-Control-Request-Method", "GET")
		req.Header.Set("Access-Control-Request-Headers", "Content-Type")
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		resp.Body.Close()

		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
		assert.Contains(t, resp.Header.Get("Access-Control-Allow-Methods"), "GET")
		assert.Equal(t, "Content-Type", resp.Header.Get("Access-Control-Allow-Headers"))
	})

	t.Run("preflight from other origin", func(t *testing.T) {
		req, _ := http.NewRequest(http.MethodOptions, ts.URL+"/api/projects", nil)
		req.Header.Set("Origin", "http://evil.example")
		req.Header.Set("Access-Control-Request-Method", "GET")
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		resp.Body.Close()

		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})
}

func TestServeShutsDownOnCancel(t *testing.T) {
	prev := logging.SetOutput(io.Discard)
	defer logging.SetOutput(prev)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	s := New(projects.NewCatalog(stubSource{}, 0), Options{ShutdownTimeout: time.Second})
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, ln) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + ln.Addr().String() + "/")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not shut down")
	}
}
