package api

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ashik160799-create/Gold-XAU-USD/internal/analysis"
	"github.com/ashik160799-create/Gold-XAU-USD/internal/market"
	"github.com/ashik160799-create/Gold-XAU-USD/internal/session"
)

// ResultResponse is the wire form of a single timeframe decision
type ResultResponse struct {
	Timeframe  string         `json:"timeframe"`
	Action     string         `json:"action"`
	Confidence float64        `json:"confidence"`
	Display    string         `json:"display"`
	Reasons    string         `json:"reasons"`
	NextCandle string         `json:"next_candle"`
	LastPrice  float64        `json:"last_price"`
	Guide      *GuideResponse `json:"guide,omitempty"`
}

// GuideResponse carries the trade bracket with display-rounded levels
type GuideResponse struct {
	Entry      string `json:"entry"`
	StopLoss   string `json:"stop_loss"`
	TakeProfit string `json:"take_profit"`
}

// BatchResponse is the full multi-timeframe payload
type BatchResponse struct {
	ID          string           `json:"id"`
	GeneratedAt time.Time        `json:"generated_at"`
	Session     session.Profile  `json:"session"`
	Results     []ResultResponse `json:"results"`
}

func toResultResponse(r analysis.Result) ResultResponse {
	reasons := make([]string, 0, len(r.Factors))
	for _, f := range r.Factors {
		reasons = append(reasons, f.String())
	}

	out := ResultResponse{
		Timeframe:  string(r.Timeframe),
		Action:     string(r.Action),
		Confidence: r.Confidence,
		Display:    fmt.Sprintf("%s (%.1f%%)", r.Action, r.Confidence),
		Reasons:    strings.Join(reasons, "; "),
		NextCandle: string(r.NextCandle),
		LastPrice:  r.LastPrice,
	}
	if r.Guide != nil {
		out.Guide = &GuideResponse{
			Entry:      fmt.Sprintf("%.2f", r.Guide.Entry),
			StopLoss:   fmt.Sprintf("%.2f", r.Guide.StopLoss),
			TakeProfit: fmt.Sprintf("%.2f", r.Guide.TakeProfit),
		}
	}
	return out
}

func toBatchResponse(b *analysis.Batch) BatchResponse {
	results := make([]ResultResponse, 0, len(b.Results))
	for _, r := range b.Results {
		results = append(results, toResultResponse(r))
	}
	return BatchResponse{
		ID:          b.ID.String(),
		GeneratedAt: b.GeneratedAt,
		Session:     b.Session,
		Results:     results,
	}
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleAnalysis(c *gin.Context) {
	batch, err := s.analysis.Analyze(c.Request.Context())
	if err != nil {
		s.logger.Error().Err(err).Msg("analysis request failed")
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, toBatchResponse(batch))
}

func (s *Server) handleAnalysisTimeframe(c *gin.Context) {
	tf, err := market.ParseTimeframe(c.Param("timeframe"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := s.analysis.AnalyzeTimeframe(c.Request.Context(), tf)
	if err != nil {
		s.logger.Error().Err(err).Str("timeframe", string(tf)).Msg("timeframe analysis failed")
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, toResultResponse(*result))
}

func (s *Server) handleTimeframes(c *gin.Context) {
	out := make([]string, 0, len(market.AllTimeframes))
	for _, tf := range market.AllTimeframes {
		out = append(out, string(tf))
	}
	c.JSON(http.StatusOK, gin.H{"timeframes": out})
}
