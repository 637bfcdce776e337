package session

import "time"

// Profile names the current trading session and carries its volatility
// multiplier. The multiplier scales how far a score is allowed to deviate
// from neutral: quiet sessions dampen signals, the London/NY overlap
// amplifies them.
type Profile struct {
	Name       string  `json:"name"`
	Multiplier float64 `json:"multiplier"`
}

// Session boundaries are taken on the Dubai wall clock (UTC+4)
const dubaiOffsetHours = 4

// ProfileAt returns the session profile for the given instant
func ProfileAt(t time.Time) Profile {
	hour := (t.UTC().Hour() + dubaiOffsetHours) % 24

	switch {
	case hour >= 2 && hour < 12:
		return Profile{Name: "ASIAN (RANGE)", Multiplier: 0.7}
	case hour >= 12 && hour < 17:
		return Profile{Name: "LONDON (BREAKOUT)", Multiplier: 1.2}
	case hour >= 17 && hour < 21:
		return Profile{Name: "OVERLAP (STRONGEST)", Multiplier: 1.6}
	case hour >= 21 && hour < 23:
		return Profile{Name: "NY (VOLATILE)", Multiplier: 1.4}
	default:
		return Profile{Name: "LATE NY (FADE)", Multiplier: 0.9}
	}
}
