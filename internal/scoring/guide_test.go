package scoring

import (
	"math"
	"testing"

	"github.com/ashik160799-create/Gold-XAU-USD/internal/indicators"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestGuideStandardBuy(t *testing.T) {
	w := DefaultWeights()
	g := BuildGuide(ActionBuy, 68, 2000, indicators.Some(2), w)

	if g == nil {
		t.Fatal("actionable signal with positive ATR must produce a guide")
	}
	if !almostEqual(g.Entry, 2000) || !almostEqual(g.StopLoss, 1997) || !almostEqual(g.TakeProfit, 2006) {
		t.Errorf("standard buy bracket wrong: %+v", g)
	}
}

func TestGuideStrongBuyWidens(t *testing.T) {
	w := DefaultWeights()
	g := BuildGuide(ActionBuy, 82, 2000, indicators.Some(2), w)

	if g == nil {
		t.Fatal("expected a guide")
	}
	if !almostEqual(g.StopLoss, 1996) || !almostEqual(g.TakeProfit, 2009) {
		t.Errorf("strong buy should use the wide tier: %+v", g)
	}
}

func TestGuideStrongSellMirrors(t *testing.T) {
	w := DefaultWeights()
	g := BuildGuide(ActionSell, 18, 2000, indicators.Some(2), w)

	if g == nil {
		t.Fatal("expected a guide")
	}
	if !almostEqual(g.StopLoss, 2004) || !almostEqual(g.TakeProfit, 1991) {
		t.Errorf("strong sell bracket wrong: %+v", g)
	}
}

func TestGuideTierBoundary(t *testing.T) {
	w := DefaultWeights()

	// Exactly 75 / 25 takes the wide tier; just inside stays standard
	g := BuildGuide(ActionBuy, 75, 2000, indicators.Some(2), w)
	if !almostEqual(g.StopLoss, 1996) || !almostEqual(g.TakeProfit, 2009) {
		t.Errorf("confidence 75 must take the wide tier: %+v", g)
	}
	g = BuildGuide(ActionBuy, 74.9, 2000, indicators.Some(2), w)
	if !almostEqual(g.StopLoss, 1997) || !almostEqual(g.TakeProfit, 2006) {
		t.Errorf("confidence 74.9 must stay on the standard tier: %+v", g)
	}

	g = BuildGuide(ActionSell, 25, 2000, indicators.Some(2), w)
	if !almostEqual(g.StopLoss, 2004) || !almostEqual(g.TakeProfit, 1991) {
		t.Errorf("confidence 25 must take the wide tier: %+v", g)
	}
	g = BuildGuide(ActionSell, 25.1, 2000, indicators.Some(2), w)
	if !almostEqual(g.StopLoss, 2003) || !almostEqual(g.TakeProfit, 1994) {
		t.Errorf("confidence 25.1 must stay on the standard tier: %+v", g)
	}
}

func TestGuideAbsentForWait(t *testing.T) {
	w := DefaultWeights()
	if g := BuildGuide(ActionWait, 50, 2000, indicators.Some(2), w); g != nil {
		t.Error("WAIT must not carry a trade guide")
	}
}

func TestGuideAbsentWithoutATR(t *testing.T) {
	w := DefaultWeights()
	if g := BuildGuide(ActionBuy, 80, 2000, indicators.None(), w); g != nil {
		t.Error("undefined ATR must suppress the guide")
	}
	if g := BuildGuide(ActionBuy, 80, 2000, indicators.Some(0), w); g != nil {
		t.Error("zero ATR must suppress the guide")
	}
}
