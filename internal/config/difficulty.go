package config

// DifficultyManager maps score to a discrete difficulty tier.
type DifficultyManager struct {
	cfg DifficultyConfig
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{cfg: cfg}
}

// Tier returns the difficulty tier for a score: one step every
// PointsPerTier points starting from InitialTier, capped at MaxTier.
// With progression disabled the tier stays at InitialTier.
func (d *DifficultyManager) Tier(score int) int {
	base := max(d.cfg.InitialTier, 1)
	maxTier := max(d.cfg.MaxTier, 1)
	if !d.cfg.Enabled || d.cfg.PointsPerTier <= 0 {
		return min(base, maxTier)
	}
	return min(base+score/d.cfg.PointsPerTier, maxTier)
}

// SpeedFactor returns the scroll speed multiplier for a tier.
func (d *DifficultyManager) SpeedFactor(tier int) float64 {
	if tier <= 1 {
		return 1
	}
	return 1 + float64(tier-1)*d.cfg.SpeedPerTier
}
