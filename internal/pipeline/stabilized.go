package pipeline

import (
	"math"

	"go.uber.org/zap"

	"github.com/sells-group/rentmap/internal/config"
	"github.com/sells-group/rentmap/internal/model"
)

// StabilizationRule reports whether a listing looks rent-stabilized rather
// than market-rate. Rules compose by boolean OR.
type StabilizationRule func(model.Listing) bool

// RatioRule flags listings priced below threshold times the local median.
// Listings in cells with no stored median are never flagged by this rule.
func RatioRule(index *MedianIndex, threshold float64) StabilizationRule {
	return func(l model.Listing) bool {
		local, ok := index.Lookup(l.Lat, l.Lng)
		return ok && l.Rent < local*threshold
	}
}

// DigitPatternRule flags sub-ceiling rents that are not a multiple of the
// step denomination. Statutory legal rents rarely land on round market-style
// numbers, so a $1,937 asking rent below the ceiling is suspect.
func DigitPatternRule(ceiling float64, step int) StabilizationRule {
	return func(l model.Listing) bool {
		return l.Rent < ceiling && math.Mod(l.Rent, float64(step)) != 0
	}
}

// RulesFor assembles the enabled stabilization rules from configuration.
func RulesFor(cfg config.StabilizeConfig, index *MedianIndex) []StabilizationRule {
	var rules []StabilizationRule
	if cfg.DigitEnabled {
		rules = append(rules, DigitPatternRule(cfg.DigitCeiling, cfg.DigitStep))
	}
	if cfg.RatioEnabled {
		rules = append(rules, RatioRule(index, cfg.RatioThreshold))
	}
	return rules
}

// FilterStabilized removes listings flagged by any rule and returns the
// market cohort plus the flagged count.
func FilterStabilized(cohort []model.Listing, rules []StabilizationRule, report *model.Report) []model.Listing {
	market := make([]model.Listing, 0, len(cohort))
	for _, l := range cohort {
		flagged := false
		for _, rule := range rules {
			if rule(l) {
				flagged = true
				break
			}
		}
		if flagged {
			report.Stabilized++
			continue
		}
		market = append(market, l)
	}
	report.MarketCount = len(market)

	zap.L().Info("pipeline: stabilized listings excluded",
		zap.Int("flagged", report.Stabilized),
		zap.Int("market", report.MarketCount),
	)
	return market
}
