package seeder

import (
	"context"
	"log"

	"Backend-FormReview/src/models"
)

// FormCreator is the part of the forms service the seeder needs.
type FormCreator interface {
	CreateForm(ctx context.Context, form *models.Form) (*models.Form, error)
}

// SampleForms returns demo forms that exercise weighted scoring, categories
// and multi-valued answers.
func SampleForms() []*models.Form {
	return []*models.Form{
		{
			Title:       "Supplier onboarding",
			Description: "Basic compliance questionnaire for new suppliers",
			Fields: []models.FormField{
				{ID: "company_name", Label: "Company name", Type: "text", Required: true},
				{ID: "country", Label: "Country of registration", Type: "select", Required: true},
				{
					ID: "iso_certified", Label: "Are you ISO 9001 certified?", Type: "radio", Required: true,
					Scoring: &models.FieldScoring{Enabled: true, MaxPoints: 10, WeightMultiplier: 3, CorrectAnswers: []string{"yes"}, Category: "compliance"},
				},
				{
					ID: "data_policies", Label: "Which policies do you maintain?", Type: "checkbox", Required: true,
					Scoring: &models.FieldScoring{Enabled: true, MaxPoints: 10, WeightMultiplier: 2, CorrectAnswers: []string{"privacy", "retention"}, Category: "security"},
				},
				{
					ID: "incident_history", Label: "Describe any security incidents in the last 3 years", Type: "textarea",
					Scoring: &models.FieldScoring{Enabled: true, MaxPoints: 5, WeightMultiplier: 1, RequiresManualReview: true, Category: "security"},
				},
			},
			Scoring: models.ScoringSettings{
				Enabled:        true,
				MaxTotalPoints: 55,
				PassingScore:   70,
				RiskThresholds: models.RiskThresholds{Low: 30, Medium: 60, High: 85},
			},
		},
		{
			Title:       "Event feedback",
			Description: "Unscored feedback form",
			Fields: []models.FormField{
				{ID: "rating", Label: "Overall rating", Type: "radio", Required: true},
				{ID: "comments", Label: "Comments", Type: "textarea"},
			},
		},
	}
}

// SeedSampleForms creates the sample forms.
func SeedSampleForms(ctx context.Context, svc FormCreator) error {
	for _, form := range SampleForms() {
		created, err := svc.CreateForm(ctx, form)
		if err != nil {
			return err
		}
		log.Printf("✅ Seeded form %q id=%s", created.Title, created.ID.Hex())
	}
	return nil
}
