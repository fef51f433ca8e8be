package scoring

import "Backend-FormReview/src/models"

// Registry is a read-only view over a form's scoring-enabled fields.
// It is built per call and never cached, so weight edits are always reflected.
type Registry struct {
	fields []models.FormField
}

// NewRegistry selects the scoring-enabled fields after validating them.
func NewRegistry(fields []models.FormField) (*Registry, error) {
	if err := ValidateFields(fields); err != nil {
		return nil, err
	}

	scored := make([]models.FormField, 0, len(fields))
	for _, f := range fields {
		if f.ScoringEnabled() {
			scored = append(scored, f)
		}
	}
	return &Registry{fields: scored}, nil
}

// Fields returns a copy of the scoring-enabled fields in form order.
func (r *Registry) Fields() []models.FormField {
	out := make([]models.FormField, len(r.fields))
	copy(out, r.fields)
	return out
}

// Len returns the number of scoring-enabled fields.
func (r *Registry) Len() int {
	return len(r.fields)
}

// Weight returns the weight multiplier of a scoring field.
func (r *Registry) Weight(fieldID string) (int, bool) {
	for _, f := range r.fields {
		if f.ID == fieldID {
			return f.Scoring.WeightMultiplier, true
		}
	}
	return 0, false
}

// TotalWeight is the sum of all weight multipliers.
func (r *Registry) TotalWeight() int {
	total := 0
	for _, f := range r.fields {
		total += f.Scoring.WeightMultiplier
	}
	return total
}

// MaxAchievable is the weighted total a submission earns when every scoring field is awarded.
func (r *Registry) MaxAchievable() float64 {
	var total float64
	for _, f := range r.fields {
		total += f.Scoring.MaxPoints * float64(f.Scoring.WeightMultiplier)
	}
	return total
}

// Impacts returns each field's share of the total weight in percent.
// The shares of a non-empty registry sum to 100.
func (r *Registry) Impacts() []models.FieldImpact {
	total := r.TotalWeight()
	out := make([]models.FieldImpact, 0, len(r.fields))
	for _, f := range r.fields {
		impact := 0.0
		if total > 0 {
			impact = float64(f.Scoring.WeightMultiplier) / float64(total) * 100
		}
		out = append(out, models.FieldImpact{
			FieldID:          f.ID,
			WeightMultiplier: f.Scoring.WeightMultiplier,
			ImpactPercent:    impact,
		})
	}
	return out
}
