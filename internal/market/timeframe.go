package market

import "fmt"

// Timeframe represents a chart timeframe
type Timeframe string

const (
	TF1m  Timeframe = "1m"
	TF5m  Timeframe = "5m"
	TF15m Timeframe = "15m"
	TF1h  Timeframe = "1h"
	TF2h  Timeframe = "2h"
	TF4h  Timeframe = "4h"
	TF1d  Timeframe = "1d"
	TF1wk Timeframe = "1wk"
)

// AllTimeframes lists every timeframe the engine evaluates, shortest first.
// The order is also the order results are returned in.
var AllTimeframes = []Timeframe{TF1m, TF5m, TF15m, TF1h, TF2h, TF4h, TF1d, TF1wk}

// ParseTimeframe validates a timeframe string from an external caller
func ParseTimeframe(s string) (Timeframe, error) {
	for _, tf := range AllTimeframes {
		if string(tf) == s {
			return tf, nil
		}
	}
	return "", fmt.Errorf("unknown timeframe %q", s)
}
