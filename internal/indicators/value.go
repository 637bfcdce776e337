package indicators

// Value is an optional indicator value. An indicator whose lookback window
// exceeds the available history is undefined, and every consumer must check
// Defined before reading it. This keeps half-warmed indicators from leaking
// zeros or NaNs into scoring.
type Value struct {
	v  float64
	ok bool
}

// Some wraps a defined value
func Some(v float64) Value {
	return Value{v: v, ok: true}
}

// None is the undefined value
func None() Value {
	return Value{}
}

// Defined reports whether the value is usable
func (v Value) Defined() bool {
	return v.ok
}

// Float returns the underlying value, or 0 when undefined
func (v Value) Float() float64 {
	return v.v
}

// GreaterThan reports v > other; false unless both sides are defined
func (v Value) GreaterThan(other Value) bool {
	return v.ok && other.ok && v.v > other.v
}

// LessThan reports v < other; false unless both sides are defined
func (v Value) LessThan(other Value) bool {
	return v.ok && other.ok && v.v < other.v
}
