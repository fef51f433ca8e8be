package forms

import (
	"context"
	"log"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"Backend-FormReview/src/models"
	"Backend-FormReview/src/services/scoring"
)

// WeightSummary is what the weight editor needs after every change.
type WeightSummary struct {
	FormID        primitive.ObjectID   `json:"formId"`
	TotalWeight   int                  `json:"totalWeight"`
	MaxAchievable float64              `json:"maxAchievable"`
	Impacts       []models.FieldImpact `json:"impacts"`
}

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// CreateForm validates the scoring configuration before the form is stored,
// so submissions are never scored against a broken form.
func (s *Service) CreateForm(ctx context.Context, form *models.Form) (*models.Form, error) {
	form.Title = strings.TrimSpace(form.Title)
	if err := ValidateForm(form); err != nil {
		return nil, err
	}
	if err := s.store.Create(ctx, form); err != nil {
		return nil, err
	}
	log.Printf("[forms] created id=%s fields=%d scoring=%v", form.ID.Hex(), len(form.Fields), form.Scoring.Enabled)
	return form, nil
}

func (s *Service) GetForm(ctx context.Context, id primitive.ObjectID) (*models.Form, error) {
	return s.store.Get(ctx, id)
}

// Impacts recomputes each scoring field's share of the total weight.
func (s *Service) Impacts(ctx context.Context, id primitive.ObjectID) (*WeightSummary, error) {
	form, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return summarize(form)
}

// UpdateFieldWeight changes one field's multiplier and returns the new impacts.
func (s *Service) UpdateFieldWeight(ctx context.Context, id primitive.ObjectID, fieldID string, weight int) (*WeightSummary, error) {
	if weight < scoring.MinWeight || weight > scoring.MaxWeight {
		return nil, &scoring.ConfigurationError{
			Field:  "fields." + fieldID + ".weightMultiplier",
			Reason: "must be within 1..5",
		}
	}
	if err := s.store.UpdateFieldWeight(ctx, id, fieldID, weight); err != nil {
		return nil, err
	}
	log.Printf("[forms] weight updated form=%s field=%s weight=%d", id.Hex(), fieldID, weight)
	return s.Impacts(ctx, id)
}

// ValidateForm checks field ids and weights, and the scoring settings when scoring is on.
func ValidateForm(form *models.Form) error {
	if err := scoring.ValidateFields(form.Fields); err != nil {
		return err
	}
	if form.Scoring.Enabled {
		return scoring.ValidateSettings(form.Scoring)
	}
	return nil
}

func summarize(form *models.Form) (*WeightSummary, error) {
	reg, err := scoring.NewRegistry(form.Fields)
	if err != nil {
		return nil, err
	}
	return &WeightSummary{
		FormID:        form.ID,
		TotalWeight:   reg.TotalWeight(),
		MaxAchievable: reg.MaxAchievable(),
		Impacts:       reg.Impacts(),
	}, nil
}
