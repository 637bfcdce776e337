package scoring

import "github.com/ashik160799-create/Gold-XAU-USD/internal/indicators"

// TradeGuide is the suggested bracket for an actionable signal
type TradeGuide struct {
	Entry      float64 `json:"entry"`
	StopLoss   float64 `json:"stop_loss"`
	TakeProfit float64 `json:"take_profit"`
}

// BuildGuide derives the stop/target bracket from the decision and current
// volatility. WAIT decisions and unknown or zero ATR yield no guide.
// High-confidence signals get the wider tier for a better asymmetric reward.
func BuildGuide(action Action, confidence, entry float64, atr indicators.Value, w Weights) *TradeGuide {
	if action == ActionWait || !atr.Defined() || atr.Float() <= 0 {
		return nil
	}

	stopATRs := w.StopATR
	targetATRs := w.TargetATR
	if strongSignal(action, confidence, w) {
		stopATRs = w.StrongStopATR
		targetATRs = w.StrongTargetATR
	}

	stop := stopATRs * atr.Float()
	target := targetATRs * atr.Float()

	if action == ActionSell {
		return &TradeGuide{
			Entry:      entry,
			StopLoss:   entry + stop,
			TakeProfit: entry - target,
		}
	}
	return &TradeGuide{
		Entry:      entry,
		StopLoss:   entry - stop,
		TakeProfit: entry + target,
	}
}

func strongSignal(action Action, confidence float64, w Weights) bool {
	switch action {
	case ActionBuy:
		return confidence >= w.StrongConfidence+5
	case ActionSell:
		return confidence <= 100-w.StrongConfidence-5
	}
	return false
}
