package scoring

import "Backend-FormReview/src/models"

// MinWeight and MaxWeight bound a field's weight multiplier.
const (
	MinWeight = 1
	MaxWeight = 5
)

// ValidateSettings checks the form-level scoring settings.
func ValidateSettings(s models.ScoringSettings) error {
	if s.MaxTotalPoints <= 0 {
		return configErr("maxTotalPoints", "must be greater than 0, got %d", s.MaxTotalPoints)
	}
	if s.PassingScore < 0 || s.PassingScore > 100 {
		return configErr("passingScore", "must be within 0..100, got %d", s.PassingScore)
	}

	t := s.RiskThresholds
	if t.Low < 0 || t.High > 100 {
		return configErr("riskThresholds", "must be within 0..100, got low=%d high=%d", t.Low, t.High)
	}
	if !(t.Low < t.Medium && t.Medium < t.High) {
		return configErr("riskThresholds", "must be strictly increasing (low < medium < high), got %d/%d/%d", t.Low, t.Medium, t.High)
	}
	return nil
}

// ValidateFields checks field ids and the scoring block of every scoring-enabled field.
func ValidateFields(fields []models.FormField) error {
	seen := make(map[string]bool, len(fields))
	for _, f := range fields {
		if f.ID == "" {
			return configErr("fields", "field id must not be empty")
		}
		if seen[f.ID] {
			return configErr("fields", "duplicate field id %q", f.ID)
		}
		seen[f.ID] = true

		if !f.ScoringEnabled() {
			continue
		}
		if w := f.Scoring.WeightMultiplier; w < MinWeight || w > MaxWeight {
			return configErr("fields."+f.ID+".weightMultiplier", "must be within %d..%d, got %d", MinWeight, MaxWeight, w)
		}
		if f.Scoring.MaxPoints < 0 {
			return configErr("fields."+f.ID+".maxPoints", "must not be negative, got %g", f.Scoring.MaxPoints)
		}
	}
	return nil
}

// Classify maps a percentage to a risk level using the threshold bands:
// below low is critical, [low, medium) is high, [medium, high) is medium, high and above is low.
func Classify(percentage int, t models.RiskThresholds) models.RiskLevel {
	switch {
	case percentage < t.Low:
		return models.RiskCritical
	case percentage < t.Medium:
		return models.RiskHigh
	case percentage < t.High:
		return models.RiskMedium
	default:
		return models.RiskLow
	}
}
