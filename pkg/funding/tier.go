package funding

// Tier is a donor recognition level derived from cumulative giving.
type Tier string

const (
	Platinum Tier = "platinum"
	Gold     Tier = "gold"
	Silver   Tier = "silver"
	Bronze   Tier = "bronze"
	Regular  Tier = "regular"
)

// TierInfo describes how a tier is presented.
type TierInfo struct {
	Tier           Tier   `json:"tier"`
	MinAmount      int64  `json:"min_amount"`
	Icon           string `json:"icon"`
	TranslationKey string `json:"translation_key"`
}

// tiers is ordered highest first; RecognitionTier relies on that order.
var tiers = []TierInfo{
	{Tier: Platinum, MinAmount: 100_000, Icon: "👑", TranslationKey: "tier.platinum"},
	{Tier: Gold, MinAmount: 50_000, Icon: "🏆", TranslationKey: "tier.gold"},
	{Tier: Silver, MinAmount: 10_000, Icon: "🥈", TranslationKey: "tier.silver"},
	{Tier: Bronze, MinAmount: 1_000, Icon: "🥉", TranslationKey: "tier.bronze"},
	{Tier: Regular, MinAmount: 0, Icon: "💙", TranslationKey: "tier.regular"},
}

// RecognitionTier classifies a cumulative donation amount. Lower bounds are
// inclusive: exactly 100,000 is platinum.
func RecognitionTier(amount int64) Tier {
	for _, t := range tiers {
		if amount >= t.MinAmount {
			return t.Tier
		}
	}
	return Regular
}

// Tiers returns the tier table, highest first.
func Tiers() []TierInfo {
	out := make([]TierInfo, len(tiers))
	copy(out, tiers)
	return out
}

// Info returns the presentation data of t. Unknown tiers fall back to Regular.
func Info(t Tier) TierInfo {
	for _, info := range tiers {
		if info.Tier == t {
			return info
		}
	}
	return tiers[len(tiers)-1]
}

// NextTier returns the tier above the one amount qualifies for and how much
// more giving reaches it. ok is false at platinum.
func NextTier(amount int64) (next TierInfo, shortfall int64, ok bool) {
	current := RecognitionTier(amount)
	for i, info := range tiers {
		if info.Tier == current {
			if i == 0 {
				return TierInfo{}, 0, false
			}
			next = tiers[i-1]
			return next, next.MinAmount - max(amount, 0), true
		}
	}
	return TierInfo{}, 0, false
}

// Valid reports whether t is one of the known tiers.
func (t Tier) Valid() bool {
	switch t {
	case Platinum, Gold, Silver, Bronze, Regular:
		return true
	}
	return false
}

func (t Tier) String() string {
	return string(t)
}
