package contracts

// Tolerance is the closed set of risk-tolerance tiers
type Tolerance string

const (
	ToleranceLow    Tolerance = "low"
	ToleranceMedium Tolerance = "medium"
	ToleranceHigh   Tolerance = "high"
)

// Tolerances lists the tiers in ascending order
func Tolerances() []Tolerance {
	return []Tolerance{ToleranceLow, ToleranceMedium, ToleranceHigh}
}

// ParseTolerance matches a tag exactly against the canonical tiers
func ParseTolerance(tag string) (Tolerance, bool) {
	switch Tolerance(tag) {
	case ToleranceLow, ToleranceMedium, ToleranceHigh:
		return Tolerance(tag), true
	}
	return "", false
}

// String implements fmt.Stringer
func (t Tolerance) String() string {
	return string(t)
}

// RiskProfile is the fixed threshold bundle bound to a tolerance tier
// ⭐ SSOT: Registry → Screener 임계값 전달
type RiskProfile struct {
	// MaxVolatility is informational; eligibility never checks it
	MaxVolatility        Volatility  `json:"max_volatility"`
	MinMarketCapRank     int         `json:"min_market_cap_rank"`    // rank <= this
	MinRegulatoryClarity int         `json:"min_regulatory_clarity"` // clarity >= this
	PreferredRiskLevels  []RiskLevel `json:"preferred_risk_levels"`
}

// Prefers reports whether level is in the profile's accepted set
func (p RiskProfile) Prefers(level RiskLevel) bool {
	for _, l := range p.PreferredRiskLevels {
		if l == level {
			return true
		}
	}
	return false
}

// Clone returns a copy with its own PreferredRiskLevels slice
func (p RiskProfile) Clone() RiskProfile {
	out := p
	out.PreferredRiskLevels = append([]RiskLevel(nil), p.PreferredRiskLevels...)
	return out
}
