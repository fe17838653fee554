package viewport

// MarginConfig is the number of rows kept visible around the cursor row.
type MarginConfig struct {
	Top    int
	Bottom int
}

// DefaultMargins keeps two rows of context on each side.
func DefaultMargins() MarginConfig {
	return MarginConfig{Top: 2, Bottom: 2}
}

// NoMargins lets the cursor reach the edges.
func NoMargins() MarginConfig {
	return MarginConfig{}
}

// clamp limits each margin to a third of height and to zero from below.
func (m MarginConfig) clamp(height int) MarginConfig {
	limit := height / 3
	return MarginConfig{Top: between(m.Top, 0, limit), Bottom: between(m.Bottom, 0, limit)}
}

func between(n, lo, hi int) int {
	return max(lo, min(n, hi))
}

// SetMarginsFromConfig sets both margins.
func (v *Viewport) SetMarginsFromConfig(config MarginConfig) {
	v.SetMargins(config.Top, config.Bottom)
}

// EffectiveMargins returns the margins after clamping to the viewport height.
func (v *Viewport) EffectiveMargins() MarginConfig {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.margins()
}

func (v *Viewport) margins() MarginConfig {
	return MarginConfig{Top: v.marginTop, Bottom: v.marginBottom}.clamp(v.height)
}
