package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"go.uber.org/zap"
)

func newTestRouter(opts Options) (http.Handler, *Metrics) {
	opts.Logger = zap.NewNop()
	if opts.Metrics == nil {
		opts.Metrics = NewMetrics()
	}
	return NewRouter(opts), opts.Metrics
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var v map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("invalid JSON body %q: %v", rec.Body.String(), err)
	}
	return v
}

func TestHealthz(t *testing.T) {
	h, _ := newTestRouter(Options{})
	rec := do(t, h, http.MethodGet, "/healthz", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got := decodeBody(t, rec)["status"]; got != "ok" {
		t.Errorf("status = %v, want ok", got)
	}
}

func TestProjections(t *testing.T) {
	h, m := newTestRouter(Options{})
	rec := do(t, h, http.MethodPost, "/v1/projections",
		`{"principal":1000,"rate":10,"years":2,"frequency":"yearly"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	body := decodeBody(t, rec)
	if got := body["balance"]; got != 1210.0 {
		t.Errorf("balance = %v, want 1210", got)
	}
	if got := body["interest"]; got != 210.0 {
		t.Errorf("interest = %v, want 210", got)
	}
	records, ok := body["records"].([]any)
	if !ok || len(records) != 2 {
		t.Fatalf("records = %v, want 2 records", body["records"])
	}
	first := records[0].(map[string]any)
	if first["balance"] != 1100.0 || first["year"] != 1.0 {
		t.Errorf("first record = %v, want year 1 balance 1100", first)
	}
	if got := testutil.ToFloat64(m.projections.WithLabelValues("yearly")); got != 1 {
		t.Errorf("projections counter = %v, want 1", got)
	}
}

func TestProjections_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantField  string
	}{
		{"negative principal", `{"principal":-1,"rate":5,"years":1}`, http.StatusBadRequest, "principal"},
		{"negative rate", `{"principal":1,"rate":-5,"years":1}`, http.StatusBadRequest, "rate"},
		{"negative years", `{"principal":1,"rate":5,"years":-1}`, http.StatusBadRequest, "years"},
		{"negative contribution", `{"principal":1,"rate":5,"years":1,"contribution":-3}`, http.StatusBadRequest, "contribution"},
		{"unknown frequency", `{"principal":1,"rate":5,"years":1,"frequency":"hourly"}`, http.StatusBadRequest, "frequency"},
		{"too many periods", `{"principal":1,"rate":5,"years":1000,"frequency":"daily"}`, http.StatusBadRequest, "years"},
		{"malformed", `{"principal":`, http.StatusBadRequest, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestRouter(Options{})
			rec := do(t, h, http.MethodPost, "/v1/projections", tt.body)
			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d: %s", rec.Code, tt.wantStatus, rec.Body.String())
			}
			body := decodeBody(t, rec)
			if got, _ := body["field"].(string); got != tt.wantField {
				t.Errorf("field = %q, want %q", got, tt.wantField)
			}
			if got := body["status"]; got != float64(tt.wantStatus) {
				t.Errorf("status in body = %v, want %d", got, tt.wantStatus)
			}
			if msg, _ := body["message"].(string); msg == "" {
				t.Error("message is empty")
			}
		})
	}
}

func TestProjections_Cache(t *testing.T) {
	h, m := newTestRouter(Options{CacheTTL: time.Minute})
	const body = `{"principal":1000,"rate":12,"years":1,"frequency":"monthly","contribution":100}`
	first := do(t, h, http.MethodPost, "/v1/projections", body)
	second := do(t, h, http.MethodPost, "/v1/projections", body)
	if first.Code != http.StatusOK || second.Code != http.StatusOK {
		t.Fatalf("status = %d, %d, want 200", first.Code, second.Code)
	}
	if first.Body.String() != second.Body.String() {
		t.Errorf("cached response differs:\n%s\n%s", first.Body.String(), second.Body.String())
	}
	if got := testutil.ToFloat64(m.cacheMisses); got != 1 {
		t.Errorf("cache misses = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.cacheHits); got != 1 {
		t.Errorf("cache hits = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.projections.WithLabelValues("monthly")); got != 1 {
		t.Errorf("projections counter = %v, want 1", got)
	}
}

func TestPortfolioTotals(t *testing.T) {
	h, _ := newTestRouter(Options{})
	rec := do(t, h, http.MethodPost, "/v1/portfolio/totals", `[
		{"name":"A","principal":1000,"rate":10,"years":1},
		{"name":"B","principal":500,"rate":0,"years":3,"contribution":100}
	]`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	body := decodeBody(t, rec)
	projections, ok := body["projections"].([]any)
	if !ok || len(projections) != 2 {
		t.Fatalf("projections = %v, want 2", body["projections"])
	}
	totals := body["totals"].(map[string]any)
	want := map[string]float64{
		"count":         2,
		"principal":     1500,
		"contributions": 300,
		"interest":      100,
		"value":         1900,
		"nominalRate":   10,
	}
	for k, v := range want {
		if totals[k] != v {
			t.Errorf("totals[%q] = %v, want %v", k, totals[k], v)
		}
	}
}

func TestPortfolioTotals_Empty(t *testing.T) {
	h, _ := newTestRouter(Options{})
	rec := do(t, h, http.MethodPost, "/v1/portfolio/totals", `[]`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	totals := decodeBody(t, rec)["totals"].(map[string]any)
	if totals["count"] != 0.0 || totals["value"] != 0.0 || totals["effectiveRate"] != 0.0 {
		t.Errorf("totals = %v, want zero", totals)
	}
}

func TestPortfolioTotals_Errors(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantField string
	}{
		{"invalid investment", `[{"principal":1,"rate":1,"years":1},{"principal":-1,"rate":1,"years":1}]`, "principal"},
		{"mixed currencies", `[{"principal":1,"currency":"USD","years":1},{"principal":1,"currency":"EUR","years":1}]`, "currency"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestRouter(Options{})
			rec := do(t, h, http.MethodPost, "/v1/portfolio/totals", tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400: %s", rec.Code, rec.Body.String())
			}
			if got, _ := decodeBody(t, rec)["field"].(string); got != tt.wantField {
				t.Errorf("field = %q, want %q", got, tt.wantField)
			}
		})
	}
}

func TestMetricsEndpoint(t *testing.T) {
	h, _ := newTestRouter(Options{})
	do(t, h, http.MethodPost, "/v1/projections", `{"principal":1,"rate":1,"years":1}`)
	rec := do(t, h, http.MethodGet, "/metrics", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	for _, name := range []string{"invest_projections_total", "invest_request_duration_seconds"} {
		if !strings.Contains(rec.Body.String(), name) {
			t.Errorf("/metrics does not expose %s", name)
		}
	}
}

func TestZapLoggerMiddleware(t *testing.T) {
	h := ZapLoggerMiddleware(NewLogger(false))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusTeapot {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusTeapot)
	}
}

func TestPortfolioTotals_Cache(t *testing.T) {
	h, m := newTestRouter(Options{CacheTTL: time.Minute})
	const body = `[{"principal":100,"rate":5,"years":2},{"principal":100,"rate":5,"years":2}]`
	if rec := do(t, h, http.MethodPost, "/v1/portfolio/totals", body); rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	if got := testutil.ToFloat64(m.cacheHits); got != 1 {
		t.Errorf("cache hits = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.projections.WithLabelValues("yearly")); got != 1 {
		t.Errorf("projections counter = %v, want 1", got)
	}
}
