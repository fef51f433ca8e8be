package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DefaultCategory is the breakdown bucket for scoring fields without a category tag.
const DefaultCategory = "general"

// --- Form ---
type Form struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Title       string             `bson:"title" json:"title" example:"Supplier onboarding"`
	Description string             `bson:"description" json:"description"`
	Fields      []FormField        `bson:"fields" json:"fields"`
	Scoring     ScoringSettings    `bson:"scoring" json:"scoring"`
	CreatedAt   time.Time          `bson:"createdAt,omitempty" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt,omitempty" json:"updatedAt"`
}

// RequiredFields returns the fields that must be answered for the form to be complete.
func (f *Form) RequiredFields() []FormField {
	out := make([]FormField, 0, len(f.Fields))
	for _, field := range f.Fields {
		if field.Required {
			out = append(out, field)
		}
	}
	return out
}

// --- FormField ---
type FormField struct {
	ID       string        `bson:"id" json:"id" example:"company_name"`
	Label    string        `bson:"label,omitempty" json:"label,omitempty"`
	Type     string        `bson:"type" json:"type" example:"text"`
	Required bool          `bson:"required" json:"required"`
	Scoring  *FieldScoring `bson:"scoring,omitempty" json:"scoring,omitempty"`
}

// ScoringEnabled reports whether the field contributes to the score.
func (f FormField) ScoringEnabled() bool {
	return f.Scoring != nil && f.Scoring.Enabled
}

// FieldScoring holds the per-field scoring configuration.
type FieldScoring struct {
	Enabled              bool     `bson:"enabled" json:"enabled"`
	MaxPoints            float64  `bson:"maxPoints" json:"maxPoints" example:"10"`
	WeightMultiplier     int      `bson:"weightMultiplier" json:"weightMultiplier" example:"2"`
	RequiresManualReview bool     `bson:"requiresManualReview" json:"requiresManualReview"`
	CorrectAnswers       []string `bson:"correctAnswers,omitempty" json:"correctAnswers,omitempty"`
	Category             string   `bson:"category,omitempty" json:"category,omitempty" example:"compliance"`
}

// --- ScoringSettings ---
type ScoringSettings struct {
	Enabled        bool           `bson:"enabled" json:"enabled"`
	MaxTotalPoints int            `bson:"maxTotalPoints" json:"maxTotalPoints" example:"100"`
	PassingScore   int            `bson:"passingScore" json:"passingScore" example:"70"`
	RiskThresholds RiskThresholds `bson:"riskThresholds" json:"riskThresholds"`
}

// RiskThresholds are percentage cutoffs, strictly increasing.
type RiskThresholds struct {
	Low    int `bson:"low" json:"low" example:"30"`
	Medium int `bson:"medium" json:"medium" example:"60"`
	High   int `bson:"high" json:"high" example:"90"`
}

// FieldImpact is the relative share of one scoring field's weight.
type FieldImpact struct {
	FieldID          string  `json:"fieldId"`
	WeightMultiplier int     `json:"weightMultiplier"`
	ImpactPercent    float64 `json:"impactPercent"`
}
