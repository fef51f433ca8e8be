package forms

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"Backend-FormReview/src/models"
	"Backend-FormReview/src/services/scoring"
)

// memStore is an in-memory Store.
type memStore struct {
	forms map[primitive.ObjectID]*models.Form
	gets  int
}

func newMemStore() *memStore {
	return &memStore{forms: map[primitive.ObjectID]*models.Form{}}
}

func (m *memStore) Create(_ context.Context, form *models.Form) error {
	form.ID = primitive.NewObjectID()
	cp := *form
	m.forms[form.ID] = &cp
	return nil
}

func (m *memStore) Get(_ context.Context, id primitive.ObjectID) (*models.Form, error) {
	m.gets++
	f, ok := m.forms[id]
	if !ok {
		return nil, ErrFormNotFound
	}
	cp := *f
	return &cp, nil
}

func (m *memStore) UpdateFieldWeight(_ context.Context, id primitive.ObjectID, fieldID string, weight int) error {
	f, ok := m.forms[id]
	if !ok {
		return ErrFormNotFound
	}
	for i := range f.Fields {
		if f.Fields[i].ID == fieldID && f.Fields[i].ScoringEnabled() {
			f.Fields[i].Scoring.WeightMultiplier = weight
			return nil
		}
	}
	return ErrFieldNotFound
}

func scoredForm() *models.Form {
	return &models.Form{
		Title: "  Vendor risk  ",
		Fields: []models.FormField{
			{ID: "name", Type: "text", Required: true},
			{ID: "iso", Type: "radio", Scoring: &models.FieldScoring{Enabled: true, MaxPoints: 10, WeightMultiplier: 1, CorrectAnswers: []string{"yes"}}},
			{ID: "audit", Type: "radio", Scoring: &models.FieldScoring{Enabled: true, MaxPoints: 10, WeightMultiplier: 3}},
		},
		Scoring: models.ScoringSettings{
			Enabled:        true,
			MaxTotalPoints: 40,
			PassingScore:   60,
			RiskThresholds: models.RiskThresholds{Low: 30, Medium: 60, High: 90},
		},
	}
}

func TestCreateForm(t *testing.T) {
	svc := NewService(newMemStore())

	form, err := svc.CreateForm(context.Background(), scoredForm())
	require.NoError(t, err)
	assert.False(t, form.ID.IsZero())
	assert.Equal(t, "Vendor risk", form.Title)
}

func TestCreateForm_RejectsBadScoringConfig(t *testing.T) {
	store := newMemStore()
	svc := NewService(store)

	form := scoredForm()
	form.Scoring.MaxTotalPoints = -1
	_, err := svc.CreateForm(context.Background(), form)
	var cfgErr *scoring.ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.Empty(t, store.forms)

	form = scoredForm()
	form.Fields[1].Scoring.WeightMultiplier = 9
	_, err = svc.CreateForm(context.Background(), form)
	assert.ErrorAs(t, err, &cfgErr)
}

func TestCreateForm_ScoringDisabledSkipsSettings(t *testing.T) {
	svc := NewService(newMemStore())
	form := scoredForm()
	form.Scoring = models.ScoringSettings{}

	_, err := svc.CreateForm(context.Background(), form)
	assert.NoError(t, err)
}

func TestImpactsAndWeightUpdate(t *testing.T) {
	svc := NewService(newMemStore())
	form, err := svc.CreateForm(context.Background(), scoredForm())
	require.NoError(t, err)

	summary, err := svc.Impacts(context.Background(), form.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, summary.TotalWeight)
	assert.Equal(t, 40.0, summary.MaxAchievable)
	require.Len(t, summary.Impacts, 2)
	assert.InDelta(t, 25.0, summary.Impacts[0].ImpactPercent, 1e-9)
	assert.InDelta(t, 75.0, summary.Impacts[1].ImpactPercent, 1e-9)

	summary, err = svc.UpdateFieldWeight(context.Background(), form.ID, "iso", 5)
	require.NoError(t, err)
	assert.Equal(t, 8, summary.TotalWeight)
	sum := 0.0
	for _, i := range summary.Impacts {
		sum += i.ImpactPercent
	}
	assert.True(t, math.Abs(sum-100) <= 0.01)
	assert.InDelta(t, 62.5, summary.Impacts[0].ImpactPercent, 1e-9)
}

func TestUpdateFieldWeight_Errors(t *testing.T) {
	svc := NewService(newMemStore())
	form, err := svc.CreateForm(context.Background(), scoredForm())
	require.NoError(t, err)

	_, err = svc.UpdateFieldWeight(context.Background(), form.ID, "iso", 0)
	var cfgErr *scoring.ConfigurationError
	assert.ErrorAs(t, err, &cfgErr)

	_, err = svc.UpdateFieldWeight(context.Background(), form.ID, "name", 2)
	assert.ErrorIs(t, err, ErrFieldNotFound)

	_, err = svc.UpdateFieldWeight(context.Background(), primitive.NewObjectID(), "iso", 2)
	assert.ErrorIs(t, err, ErrFormNotFound)
}

func TestCachedStore_WithoutRedisPassesThrough(t *testing.T) {
	inner := newMemStore()
	cached := NewCachedStore(inner, nil, 0)

	form := scoredForm()
	require.NoError(t, cached.Create(context.Background(), form))

	got, err := cached.Get(context.Background(), form.ID)
	require.NoError(t, err)
	assert.Equal(t, form.ID, got.ID)

	_, err = cached.Get(context.Background(), form.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, inner.gets)

	require.NoError(t, cached.UpdateFieldWeight(context.Background(), form.ID, "audit", 2))
	assert.Equal(t, "form:"+form.ID.Hex(), cacheKey(form.ID))
}
