package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Backend-FormReview/src/models"
)

func testSettings() models.ScoringSettings {
	return models.ScoringSettings{
		Enabled:        true,
		MaxTotalPoints: 100,
		PassingScore:   70,
		RiskThresholds: models.RiskThresholds{Low: 30, Medium: 60, High: 90},
	}
}

func scoredField(id string, maxPoints float64, weight int, correct ...string) models.FormField {
	return models.FormField{
		ID:   id,
		Type: "text",
		Scoring: &models.FieldScoring{
			Enabled:          true,
			MaxPoints:        maxPoints,
			WeightMultiplier: weight,
			CorrectAnswers:   correct,
		},
	}
}

func TestComputeScore_NoScoringFields(t *testing.T) {
	fields := []models.FormField{{ID: "name", Type: "text", Required: true}}

	score, err := ComputeScore(fields, map[string]interface{}{"name": "Ada"}, testSettings())
	require.NoError(t, err)

	assert.Equal(t, 0.0, score.Total)
	assert.Equal(t, 100.0, score.MaxTotal)
	assert.Equal(t, 0, score.Percentage)
	assert.Equal(t, models.RiskCritical, score.RiskLevel)
	assert.Empty(t, score.Breakdown)
}

func TestComputeScore_WeightedTotal(t *testing.T) {
	fields := []models.FormField{
		scoredField("iso", 10, 3, "yes"),
		scoredField("policy", 20, 2),
		scoredField("insurance", 10, 1, "yes"),
	}
	responses := map[string]interface{}{
		"iso":       "YES",
		"policy":    "We keep one",
		"insurance": "no",
	}

	score, err := ComputeScore(fields, responses, testSettings())
	require.NoError(t, err)

	// 10*3 + 20*2 + 0*1
	assert.Equal(t, 70.0, score.Total)
	assert.Equal(t, 70, score.Percentage)
	assert.Equal(t, models.RiskMedium, score.RiskLevel)
	assert.True(t, score.Passed)
	assert.Equal(t, map[string]float64{models.DefaultCategory: 70}, score.Breakdown)
}

func TestComputeScore_Breakdown(t *testing.T) {
	a := scoredField("a", 10, 1)
	a.Scoring.Category = "security"
	b := scoredField("b", 10, 2)
	b.Scoring.Category = "security"
	c := scoredField("c", 5, 1)

	score, err := ComputeScore([]models.FormField{a, b, c}, map[string]interface{}{
		"a": "x", "b": "y", "c": "",
	}, testSettings())
	require.NoError(t, err)

	assert.Equal(t, 30.0, score.Breakdown["security"])
	assert.Equal(t, 0.0, score.Breakdown[models.DefaultCategory])
}

func TestComputeScore_PercentageIsClamped(t *testing.T) {
	fields := []models.FormField{scoredField("big", 100, 5)}
	score, err := ComputeScore(fields, map[string]interface{}{"big": "ok"}, testSettings())
	require.NoError(t, err)

	assert.Equal(t, 500.0, score.Total)
	assert.Equal(t, 100, score.Percentage)
	assert.Equal(t, models.RiskLow, score.RiskLevel)
}

func TestComputeScore_Deterministic(t *testing.T) {
	fields := []models.FormField{
		scoredField("a", 7, 3, "x"),
		scoredField("b", 3.5, 2),
		scoredField("c", 11, 4, "p", "q"),
	}
	responses := map[string]interface{}{"a": "X", "b": "answer", "c": []interface{}{"Q", "p"}}

	first, err := ComputeScore(fields, responses, testSettings())
	require.NoError(t, err)
	for i := 0; i < 20; i++ {
		again, err := ComputeScore(fields, responses, testSettings())
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestComputeScore_NegativeMaxTotalPoints(t *testing.T) {
	settings := testSettings()
	settings.MaxTotalPoints = -1

	score, err := ComputeScore([]models.FormField{scoredField("a", 10, 1)}, nil, settings)

	assert.Nil(t, score)
	var cfgErr *ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "maxTotalPoints", cfgErr.Field)
}

func TestComputeScore_InvalidConfiguration(t *testing.T) {
	cases := []struct {
		name     string
		settings func(*models.ScoringSettings)
		fields   []models.FormField
	}{
		{"zero max total", func(s *models.ScoringSettings) { s.MaxTotalPoints = 0 }, nil},
		{"thresholds equal", func(s *models.ScoringSettings) { s.RiskThresholds.Medium = 30 }, nil},
		{"thresholds decreasing", func(s *models.ScoringSettings) {
			s.RiskThresholds = models.RiskThresholds{Low: 90, Medium: 60, High: 30}
		}, nil},
		{"threshold above 100", func(s *models.ScoringSettings) { s.RiskThresholds.High = 120 }, nil},
		{"passing score above 100", func(s *models.ScoringSettings) { s.PassingScore = 101 }, nil},
		{"weight zero", nil, []models.FormField{scoredField("a", 10, 0)}},
		{"weight six", nil, []models.FormField{scoredField("a", 10, 6)}},
		{"negative max points", nil, []models.FormField{scoredField("a", -1, 1)}},
		{"duplicate ids", nil, []models.FormField{scoredField("a", 1, 1), scoredField("a", 1, 1)}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			settings := testSettings()
			if tc.settings != nil {
				tc.settings(&settings)
			}
			score, err := ComputeScore(tc.fields, nil, settings)
			assert.Nil(t, score)
			var cfgErr *ConfigurationError
			assert.ErrorAs(t, err, &cfgErr)
		})
	}
}

func TestFieldPoints(t *testing.T) {
	single := scoredField("s", 10, 1, "Blue", "Navy")
	multi := scoredField("m", 10, 1, "a", "b")
	open := scoredField("o", 4, 1)

	cases := []struct {
		name     string
		field    models.FormField
		response interface{}
		want     float64
	}{
		{"single match case-insensitive", single, "blue", 10},
		{"single match any correct answer", single, " NAVY ", 10},
		{"single mismatch", single, "green", 0},
		{"single missing", single, nil, 0},
		{"multi set equal", multi, []interface{}{"B", "a"}, 10},
		{"multi set equal with duplicates", multi, []string{"a", "b", "A"}, 10},
		{"multi subset", multi, []string{"a"}, 0},
		{"multi superset", multi, []string{"a", "b", "c"}, 0},
		{"multi empty", multi, []string{}, 0},
		{"open answered", open, "anything", 4},
		{"open number answered", open, 42.0, 4},
		{"open blank", open, "   ", 0},
		{"open empty set", open, []interface{}{}, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, FieldPoints(tc.field, tc.response))
		})
	}
}

func TestFieldPoints_DisabledField(t *testing.T) {
	f := scoredField("x", 10, 1)
	f.Scoring.Enabled = false
	assert.Equal(t, 0.0, FieldPoints(f, "answer"))
}

func TestClassify(t *testing.T) {
	th := models.RiskThresholds{Low: 30, Medium: 60, High: 90}
	cases := []struct {
		percentage int
		want       models.RiskLevel
	}{
		{0, models.RiskCritical},
		{29, models.RiskCritical},
		{30, models.RiskHigh},
		{59, models.RiskHigh},
		{60, models.RiskMedium},
		{89, models.RiskMedium},
		{90, models.RiskLow},
		{100, models.RiskLow},
	}
	for _, c := range cases {
		if got := Classify(c.percentage, th); got != c.want {
			t.Errorf("Classify(%d) = %s, want %s", c.percentage, got, c.want)
		}
	}
}

func TestPercentage(t *testing.T) {
	assert.Equal(t, 67, Percentage(2, 3))
	assert.Equal(t, 33, Percentage(1, 3))
	assert.Equal(t, 0, Percentage(5, 0))
	assert.Equal(t, 0, Percentage(-5, 10))
	assert.Equal(t, 100, Percentage(11, 10))
}
