// Package scoring computes weighted, normalized scores and risk levels for form
// submissions. Everything here is pure: no I/O, no shared state, safe to call
// concurrently and repeatedly.
package scoring

import (
	"math"
	"strings"

	"Backend-FormReview/src/models"
)

// ComputeScore scores responses against the scoring-enabled fields of a form.
// It returns a *ConfigurationError, and no score, when settings or fields are invalid.
func ComputeScore(fields []models.FormField, responses map[string]interface{}, settings models.ScoringSettings) (*models.Score, error) {
	if err := ValidateSettings(settings); err != nil {
		return nil, err
	}
	reg, err := NewRegistry(fields)
	if err != nil {
		return nil, err
	}

	maxTotal := float64(settings.MaxTotalPoints)
	score := &models.Score{
		MaxTotal:  maxTotal,
		Breakdown: map[string]float64{},
	}

	for _, f := range reg.fields {
		earned := FieldPoints(f, responses[f.ID]) * float64(f.Scoring.WeightMultiplier)
		score.Total += earned
		score.Breakdown[category(f)] += earned
	}

	score.Percentage = Percentage(score.Total, maxTotal)
	score.RiskLevel = Classify(score.Percentage, settings.RiskThresholds)
	score.Passed = score.Percentage >= settings.PassingScore
	return score, nil
}

// FieldPoints returns the unweighted points a single response earns.
// With correct answers configured the response must match them; without, any
// non-empty answer earns the field's max points.
func FieldPoints(f models.FormField, response interface{}) float64 {
	if !f.ScoringEnabled() {
		return 0
	}
	values, multi := models.ResponseValues(response)
	if len(values) == 0 {
		return 0
	}
	if len(f.Scoring.CorrectAnswers) == 0 {
		return f.Scoring.MaxPoints
	}
	if matches(values, multi, f.Scoring.CorrectAnswers) {
		return f.Scoring.MaxPoints
	}
	return 0
}

// Percentage returns round(total/maxTotal*100) clamped to 0..100.
func Percentage(total, maxTotal float64) int {
	if maxTotal <= 0 {
		return 0
	}
	p := math.Round(total / maxTotal * 100)
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return int(p)
}

// matches compares single values case-insensitively against any correct answer,
// and multi-valued responses by set equality.
func matches(values []string, multi bool, correct []string) bool {
	if !multi {
		for _, c := range correct {
			if strings.EqualFold(strings.TrimSpace(c), values[0]) {
				return true
			}
		}
		return false
	}

	got := foldSet(values)
	want := foldSet(correct)
	if len(got) != len(want) {
		return false
	}
	for v := range got {
		if !want[v] {
			return false
		}
	}
	return true
}

func foldSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		if s := strings.ToLower(strings.TrimSpace(v)); s != "" {
			set[s] = true
		}
	}
	return set
}

func category(f models.FormField) string {
	if c := strings.TrimSpace(f.Scoring.Category); c != "" {
		return c
	}
	return models.DefaultCategory
}
