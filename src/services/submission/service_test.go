package submission

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"Backend-FormReview/src/models"
	"Backend-FormReview/src/services/activitylog"
	"Backend-FormReview/src/services/review"
)

// --- Fakes ---

var errFormMissing = errors.New("form not found")

type fakeForms struct {
	forms map[primitive.ObjectID]*models.Form
}

func (f *fakeForms) Get(_ context.Context, id primitive.ObjectID) (*models.Form, error) {
	form, ok := f.forms[id]
	if !ok {
		return nil, errFormMissing
	}
	return form, nil
}

// memStore mimics the Mongo compare-and-set on version and revision.
type memStore struct {
	mu   sync.Mutex
	subs map[primitive.ObjectID]models.FormSubmission
}

func newMemStore() *memStore {
	return &memStore{subs: map[primitive.ObjectID]models.FormSubmission{}}
}

func (m *memStore) Insert(_ context.Context, sub *models.FormSubmission) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.subs[sub.ID] = *sub
	return nil
}

func (m *memStore) Get(_ context.Context, id primitive.ObjectID) (*models.FormSubmission, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	sub, ok := m.subs[id]
	if !ok {
		return nil, ErrSubmissionNotFound
	}
	sub.ActivityLog = append([]models.ReviewActivity(nil), sub.ActivityLog...)
	return &sub, nil
}

func (m *memStore) ListByForm(_ context.Context, formID primitive.ObjectID, params models.PaginationParams) ([]models.FormSubmission, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.FormSubmission
	for _, sub := range m.subs {
		if sub.FormID == formID && (params.Status == "" || string(sub.Status) == params.Status) {
			out = append(out, sub)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID.Hex() < out[j].ID.Hex() })
	return out, int64(len(out)), nil
}

func (m *memStore) UpdateResponses(_ context.Context, id primitive.ObjectID, responses map[string]interface{}, score *models.Score, version, revision int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	sub, ok := m.subs[id]
	if !ok {
		return ErrSubmissionNotFound
	}
	if sub.Version != version || sub.Revision != revision {
		return review.ErrConcurrencyConflict
	}
	sub.Responses = responses
	sub.Score = score
	sub.Revision++
	m.subs[id] = sub
	return nil
}

func (m *memStore) SaveTransition(_ context.Context, next *models.FormSubmission, entry models.ReviewActivity, expectedVersion int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cur, ok := m.subs[next.ID]
	if !ok {
		return ErrSubmissionNotFound
	}
	if cur.Version != expectedVersion || cur.Revision != next.Revision {
		return fmt.Errorf("%w: expected version %d revision %d, current version %d revision %d",
			review.ErrConcurrencyConflict, expectedVersion, next.Revision, cur.Version, cur.Revision)
	}
	cur.Status = next.Status
	cur.ApprovalType = next.ApprovalType
	if next.Score != nil && cur.Score != nil {
		stamped := *cur.Score
		stamped.ReviewedBy = next.Score.ReviewedBy
		stamped.ReviewedAt = next.Score.ReviewedAt
		stamped.ReviewComments = next.Score.ReviewComments
		cur.Score = &stamped
	}
	cur.Version = next.Version
	cur.UpdatedAt = next.UpdatedAt
	cur.ActivityLog = append(append([]models.ReviewActivity(nil), cur.ActivityLog...), entry)
	m.subs[next.ID] = cur
	return nil
}

type fakeNotifier struct {
	calls []models.ReviewActivity
	err   error
}

func (n *fakeNotifier) Notify(_ context.Context, _ *models.FormSubmission, activity models.ReviewActivity) error {
	n.calls = append(n.calls, activity)
	return n.err
}

// --- Helpers ---

func testForm() *models.Form {
	return &models.Form{
		ID:    primitive.NewObjectID(),
		Title: "Supplier onboarding",
		Fields: []models.FormField{
			{ID: "company", Type: "text", Required: true},
			{ID: "iso", Type: "radio", Required: true, Scoring: &models.FieldScoring{Enabled: true, MaxPoints: 10, WeightMultiplier: 2, CorrectAnswers: []string{"yes"}}},
			{ID: "audit", Type: "text", Scoring: &models.FieldScoring{Enabled: true, MaxPoints: 10, WeightMultiplier: 3}},
		},
		Scoring: models.ScoringSettings{
			Enabled:        true,
			MaxTotalPoints: 50,
			PassingScore:   60,
			RiskThresholds: models.RiskThresholds{Low: 30, Medium: 60, High: 90},
		},
	}
}

type fixture struct {
	svc      *Service
	store    *memStore
	notifier *fakeNotifier
	form     *models.Form
}

func newFixture() *fixture {
	form := testForm()
	store := newMemStore()
	notifier := &fakeNotifier{}
	forms := &fakeForms{forms: map[primitive.ObjectID]*models.Form{form.ID: form}}
	return &fixture{
		svc:      NewService(forms, store, notifier),
		store:    store,
		notifier: notifier,
		form:     form,
	}
}

func (f *fixture) create(t *testing.T, responses map[string]interface{}) *models.FormSubmission {
	t.Helper()
	sub, err := f.svc.Create(context.Background(), models.CreateSubmissionRequest{
		FormID:         f.form.ID.Hex(),
		SubmittedBy:    "vendor-42",
		SubmitterEmail: "vendor@example.com",
		Responses:      responses,
	})
	require.NoError(t, err)
	return sub
}

func fullResponses() map[string]interface{} {
	return map[string]interface{}{"company": "Acme", "iso": "yes", "audit": "done"}
}

func approve(version int64) models.ReviewRequest {
	t := models.ApprovalFully
	return models.ReviewRequest{
		Action:          "approve",
		Comments:        "All documents verified",
		ExpectedVersion: version,
		Metadata:        &models.ActivityMetadata{ApprovalType: &t},
	}
}

// --- Tests ---

func TestCreate(t *testing.T) {
	f := newFixture()
	sub := f.create(t, fullResponses())

	assert.Equal(t, models.StatusSubmitted, sub.Status)
	assert.Equal(t, int64(0), sub.Version)
	assert.Empty(t, sub.ActivityLog)
	require.NotNil(t, sub.Score)
	assert.Equal(t, 50.0, sub.Score.Total)
	assert.Equal(t, 100, sub.Score.Percentage)
	assert.Equal(t, models.RiskLow, sub.Score.RiskLevel)
}

func TestCreate_Errors(t *testing.T) {
	f := newFixture()

	_, err := f.svc.Create(context.Background(), models.CreateSubmissionRequest{FormID: "nope", Responses: fullResponses()})
	assert.ErrorIs(t, err, review.ErrValidation)

	_, err = f.svc.Create(context.Background(), models.CreateSubmissionRequest{FormID: primitive.NewObjectID().Hex(), Responses: fullResponses()})
	assert.ErrorIs(t, err, errFormMissing)
}

func TestCreate_ScoringDisabled(t *testing.T) {
	f := newFixture()
	f.form.Scoring.Enabled = false

	sub := f.create(t, fullResponses())
	assert.Nil(t, sub.Score)

	s, err := f.svc.Suggestion(context.Background(), sub.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ApprovalFully, s.Type)
	assert.Equal(t, "No scoring data available", s.Reason)
}

func TestCompletionAndReminder(t *testing.T) {
	f := newFixture()
	sub := f.create(t, map[string]interface{}{"iso": "yes"})
	ctx := context.Background()

	c, err := f.svc.Completion(ctx, sub.ID)
	require.NoError(t, err)
	assert.Equal(t, 50, c.Percentage)
	assert.False(t, c.FormComplete)
	assert.Equal(t, []string{"company"}, c.Missing)

	_, err = f.svc.Review(ctx, sub.ID, "reviewer-1", approve(0))
	assert.ErrorIs(t, err, review.ErrIncompleteSubmission)

	res, err := f.svc.Review(ctx, sub.ID, "reviewer-1", models.ReviewRequest{
		Action:          "send_reminder",
		Comments:        "Please add your company name",
		ExpectedVersion: 0,
		Metadata:        &models.ActivityMetadata{Urgency: models.UrgencyHigh, SpecificFields: []string{"company"}},
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusSubmitted, res.Submission.Status)
	assert.Equal(t, int64(1), res.Submission.Version)
	assert.Equal(t, models.ActivityReminderSent, res.Activity.Action)
	require.Len(t, f.notifier.calls, 1)
	assert.Equal(t, res.Activity.ID, f.notifier.calls[0].ID)
}

func TestReview_ApprovePersists(t *testing.T) {
	f := newFixture()
	sub := f.create(t, fullResponses())
	ctx := context.Background()

	res, err := f.svc.Review(ctx, sub.ID, "reviewer-1", approve(0))
	require.NoError(t, err)
	assert.Equal(t, models.StatusApproved, res.Submission.Status)
	require.NotNil(t, res.Submission.ApprovalType)
	assert.Equal(t, models.ApprovalFully, *res.Submission.ApprovalType)
	assert.Empty(t, f.notifier.calls)

	stored, err := f.svc.Get(ctx, sub.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stored.Version)
	require.Len(t, stored.ActivityLog, 1)
	assert.Equal(t, models.ActivityApproved, stored.ActivityLog[0].Action)
	assert.Equal(t, "reviewer-1", stored.Score.ReviewedBy)
	assert.Equal(t, "All documents verified", stored.Score.ReviewComments)
}

// Two reviewers read version 0; the second write must lose.
func TestReview_ConcurrentReviewersConflict(t *testing.T) {
	f := newFixture()
	sub := f.create(t, fullResponses())
	ctx := context.Background()

	_, err := f.svc.Review(ctx, sub.ID, "reviewer-1", approve(0))
	require.NoError(t, err)

	_, err = f.svc.Review(ctx, sub.ID, "reviewer-2", models.ReviewRequest{
		Action: "reject", Comments: "Missing certificate", ExpectedVersion: 0,
	})
	assert.ErrorIs(t, err, review.ErrConcurrencyConflict)

	stored, err := f.svc.Get(ctx, sub.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusApproved, stored.Status)
	assert.Len(t, stored.ActivityLog, 1)
}

// The store check catches a write that raced past the in-memory version check.
func TestStore_CompareAndSet(t *testing.T) {
	f := newFixture()
	sub := f.create(t, fullResponses())
	ctx := context.Background()

	next, entry, err := review.ApplyTransition(sub, f.form, review.Request{
		Action: review.ActionReject, Comments: "no", ReviewedBy: "r", ExpectedVersion: 0,
	})
	require.NoError(t, err)

	_, err = f.svc.Review(ctx, sub.ID, "reviewer-1", approve(0))
	require.NoError(t, err)

	err = f.store.SaveTransition(ctx, next, entry, 0)
	assert.ErrorIs(t, err, review.ErrConcurrencyConflict)
}

// editingStore runs an edit between the review's load and its save.
type editingStore struct {
	*memStore
	beforeSave func()
}

func (e *editingStore) SaveTransition(ctx context.Context, next *models.FormSubmission, entry models.ReviewActivity, expectedVersion int64) error {
	if e.beforeSave != nil {
		hook := e.beforeSave
		e.beforeSave = nil
		hook()
	}
	return e.memStore.SaveTransition(ctx, next, entry, expectedVersion)
}

// A response edit that lands mid-review must not be stamped as reviewed.
func TestReview_ResponseEditDuringReviewConflicts(t *testing.T) {
	form := testForm()
	store := &editingStore{memStore: newMemStore()}
	forms := &fakeForms{forms: map[primitive.ObjectID]*models.Form{form.ID: form}}
	svc := NewService(forms, store, &fakeNotifier{})
	ctx := context.Background()

	sub, err := svc.Create(ctx, models.CreateSubmissionRequest{
		FormID:         form.ID.Hex(),
		SubmittedBy:    "vendor-42",
		SubmitterEmail: "vendor@example.com",
		Responses:      fullResponses(),
	})
	require.NoError(t, err)
	require.Equal(t, 100, sub.Score.Percentage)

	store.beforeSave = func() {
		_, err := svc.UpdateResponses(ctx, sub.ID, map[string]interface{}{"company": "Acme", "iso": "no"})
		require.NoError(t, err)
	}
	_, err = svc.Review(ctx, sub.ID, "reviewer-1", approve(0))
	assert.ErrorIs(t, err, review.ErrConcurrencyConflict)

	stored, err := svc.Get(ctx, sub.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusSubmitted, stored.Status)
	assert.Equal(t, int64(1), stored.Revision)
	assert.Empty(t, stored.ActivityLog)
	require.NotNil(t, stored.Score)
	assert.Equal(t, 0, stored.Score.Percentage)
	assert.Empty(t, stored.Score.ReviewedBy)

	// A retry reads the edited responses and stamps the recomputed score.
	res, err := svc.Review(ctx, sub.ID, "reviewer-1", approve(0))
	require.NoError(t, err)
	assert.Equal(t, models.StatusApproved, res.Submission.Status)

	stored, err = svc.Get(ctx, sub.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, stored.Score.Percentage)
	assert.Equal(t, "reviewer-1", stored.Score.ReviewedBy)
}

func TestReview_ActivityLogIsAppendOnly(t *testing.T) {
	f := newFixture()
	sub := f.create(t, fullResponses())
	ctx := context.Background()

	var prev []models.ReviewActivity
	steps := []models.ReviewRequest{
		{Action: "request_more_info", Comments: "Need the audit report"},
		{Action: "reject", Comments: "Audit report missing"},
		{Action: "resend", Comments: "Please resubmit"},
		approve(0),
	}
	for i, req := range steps {
		req.ExpectedVersion = int64(i)
		_, err := f.svc.Review(ctx, sub.ID, "reviewer-1", req)
		require.NoError(t, err, "step %d", i)

		log, err := f.svc.Activity(ctx, sub.ID)
		require.NoError(t, err)
		assert.Len(t, log, i+1)
		assert.True(t, activitylog.IsExtension(prev, log))
		prev = log
	}

	require.Len(t, f.notifier.calls, 1)
	assert.Equal(t, models.ActivityResent, f.notifier.calls[0].Action)
}

func TestReview_NotifierFailureKeepsTransition(t *testing.T) {
	f := newFixture()
	f.notifier.err = errors.New("smtp down")
	sub := f.create(t, map[string]interface{}{"iso": "yes"})

	res, err := f.svc.Review(context.Background(), sub.ID, "reviewer-1", models.ReviewRequest{
		Action: "send_reminder", Comments: "Reminder", ExpectedVersion: 0,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.Submission.Version)
}

func TestUpdateResponses(t *testing.T) {
	f := newFixture()
	sub := f.create(t, map[string]interface{}{"iso": "no"})
	ctx := context.Background()
	require.Equal(t, 0, sub.Score.Percentage)

	updated, err := f.svc.UpdateResponses(ctx, sub.ID, fullResponses())
	require.NoError(t, err)
	assert.Equal(t, 100, updated.Score.Percentage)
	assert.Equal(t, int64(0), updated.Version)
	assert.Equal(t, int64(1), updated.Revision)

	_, err = f.svc.Review(ctx, sub.ID, "reviewer-1", approve(0))
	require.NoError(t, err)

	_, err = f.svc.UpdateResponses(ctx, sub.ID, fullResponses())
	assert.ErrorIs(t, err, review.ErrValidation)
}

func TestAvailableActions(t *testing.T) {
	f := newFixture()
	sub := f.create(t, fullResponses())

	actions, err := f.svc.AvailableActions(context.Background(), sub.ID, false)
	require.NoError(t, err)
	require.Len(t, actions, len(review.Actions))

	byAction := map[string]models.ActionAvailability{}
	for _, a := range actions {
		byAction[a.Action] = a
	}
	assert.False(t, byAction["approve"].Allowed)
	assert.True(t, byAction["reject"].Allowed)
	assert.False(t, byAction["send_reminder"].Allowed)
}

func TestListByForm(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	first := f.create(t, fullResponses())
	f.create(t, fullResponses())

	_, err := f.svc.Review(ctx, first.ID, "reviewer-1", approve(0))
	require.NoError(t, err)

	page, err := f.svc.ListByForm(ctx, f.form.ID, models.PaginationParams{Status: "approved"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), page.Total)
	assert.Equal(t, 10, page.Limit)

	_, err = f.svc.ListByForm(ctx, f.form.ID, models.PaginationParams{Status: "archived"})
	assert.ErrorIs(t, err, review.ErrValidation)
}

func TestGet_NotFound(t *testing.T) {
	f := newFixture()
	_, err := f.svc.Get(context.Background(), primitive.NewObjectID())
	assert.ErrorIs(t, err, ErrSubmissionNotFound)
}
