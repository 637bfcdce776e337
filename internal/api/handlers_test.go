package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	appconfig "github.com/ashik160799-create/Gold-XAU-USD/config"
	"github.com/ashik160799-create/Gold-XAU-USD/internal/analysis"
	"github.com/ashik160799-create/Gold-XAU-USD/internal/market"
	"github.com/ashik160799-create/Gold-XAU-USD/internal/metrics"
	"github.com/ashik160799-create/Gold-XAU-USD/internal/scoring"
	"github.com/ashik160799-create/Gold-XAU-USD/internal/session"
)

type stubService struct {
	batch  *analysis.Batch
	result *analysis.Result
	err    error
}

func (s *stubService) Analyze(ctx context.Context) (*analysis.Batch, error) {
	return s.batch, s.err
}

func (s *stubService) AnalyzeTimeframe(ctx context.Context, tf market.Timeframe) (*analysis.Result, error) {
	return s.result, s.err
}

func buyResult() analysis.Result {
	return analysis.Result{
		Timeframe:  market.TF1h,
		Action:     scoring.ActionBuy,
		Confidence: 82.5,
		Factors: []scoring.Factor{
			{Kind: scoring.FactorTrend, Direction: scoring.TrendBullish, Weight: 20, Detail: "full EMA alignment"},
		},
		Guide:      &scoring.TradeGuide{Entry: 2405.123, StopLoss: 2401.0, TakeProfit: 2414.5},
		NextCandle: scoring.ActionBuy,
		LastPrice:  2405.123,
	}
}

func newTestServer(svc AnalysisService) *Server {
	cfg := appconfig.ServerConfig{
		Host:           "127.0.0.1",
		Port:           0,
		ProductionMode: true,
		AllowedOrigins: []string{"*"},
	}
	stream := appconfig.StreamConfig{RefreshInterval: time.Minute}
	return NewServer(cfg, stream, svc, metrics.New(), zerolog.Nop())
}

func doRequest(t *testing.T, s *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	return rec
}

func TestHealthEndpoint(t *testing.T) {
	s := newTestServer(&stubService{})

	rec := doRequest(t, s, "/health")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body["status"] != "ok" {
		t.Fatalf("status field = %q, want ok", body["status"])
	}
}

func TestAnalysisEndpoint(t *testing.T) {
	batch := &analysis.Batch{
		ID:          uuid.New(),
		GeneratedAt: time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC),
		Session:     session.Profile{Name: "LONDON (BREAKOUT)", Multiplier: 1.2},
		Results:     []analysis.Result{buyResult()},
	}
	s := newTestServer(&stubService{batch: batch})

	rec := doRequest(t, s, "/api/analysis")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var body BatchResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body.ID != batch.ID.String() {
		t.Errorf("id = %q, want %q", body.ID, batch.ID.String())
	}
	if body.Session.Name != "LONDON (BREAKOUT)" {
		t.Errorf("session = %q", body.Session.Name)
	}
	if len(body.Results) != 1 {
		t.Fatalf("results = %d, want 1", len(body.Results))
	}

	got := body.Results[0]
	if got.Action != "BUY" || got.Display != "BUY (82.5%)" {
		t.Errorf("action/display = %q/%q", got.Action, got.Display)
	}
	if !strings.Contains(got.Reasons, "full EMA alignment") {
		t.Errorf("reasons = %q, want the trend detail", got.Reasons)
	}
	if got.Guide == nil || got.Guide.Entry != "2405.12" {
		t.Errorf("guide = %+v, want entry rounded to 2405.12", got.Guide)
	}
}

func TestAnalysisEndpointServiceError(t *testing.T) {
	s := newTestServer(&stubService{err: errors.New("upstream down")})

	rec := doRequest(t, s, "/api/analysis")
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rec.Code)
	}
}

func TestAnalysisTimeframeEndpoint(t *testing.T) {
	r := buyResult()
	s := newTestServer(&stubService{result: &r})

	rec := doRequest(t, s, "/api/analysis/1h")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var body ResultResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body.Timeframe != "1h" || body.NextCandle != "BUY" {
		t.Errorf("timeframe/next = %q/%q", body.Timeframe, body.NextCandle)
	}
}

func TestAnalysisTimeframeEndpointRejectsUnknown(t *testing.T) {
	s := newTestServer(&stubService{})

	rec := doRequest(t, s, "/api/analysis/3h")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestTimeframesEndpoint(t *testing.T) {
	s := newTestServer(&stubService{})

	rec := doRequest(t, s, "/api/timeframes")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var body struct {
		Timeframes []string `json:"timeframes"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(body.Timeframes) != len(market.AllTimeframes) {
		t.Fatalf("timeframes = %v, want all %d", body.Timeframes, len(market.AllTimeframes))
	}
	if body.Timeframes[0] != "1m" || body.Timeframes[len(body.Timeframes)-1] != "1wk" {
		t.Fatalf("order = %v, want 1m first and 1wk last", body.Timeframes)
	}
}

func TestWaitResultOmitsGuide(t *testing.T) {
	r := analysis.Result{
		Timeframe:  market.TF5m,
		Action:     scoring.ActionWait,
		Confidence: 50,
		NextCandle: scoring.ActionWait,
		Factors: []scoring.Factor{
			{Kind: scoring.FactorData, Direction: scoring.TrendNeutral, Detail: "data feed offline"},
		},
	}
	s := newTestServer(&stubService{result: &r})

	rec := doRequest(t, s, "/api/analysis/5m")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "\"guide\"") {
		t.Fatalf("WAIT payload must omit the guide: %s", rec.Body.String())
	}
}
