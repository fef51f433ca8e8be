// Package activitylog is the append-only audit trail of review actions.
// There is no update or delete: a correction is recorded as a new entry.
package activitylog

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"Backend-FormReview/src/models"
)

// newID is a package-level variable for testability.
var newID = uuid.NewString

var (
	ErrEmptyID     = errors.New("activity id must not be empty")
	ErrDuplicateID = errors.New("activity id already exists in the log")
)

// NewEntry builds an activity with a fresh id, stamped at the given time in UTC.
func NewEntry(action models.ActivityAction, comments, reviewedBy string, metadata *models.ActivityMetadata, at time.Time) models.ReviewActivity {
	return models.ReviewActivity{
		ID:         newID(),
		Action:     action,
		Comments:   strings.TrimSpace(comments),
		ReviewedBy: reviewedBy,
		ReviewedAt: at.UTC(),
		Metadata:   metadata.Clone(),
	}
}

// Append returns a new log with entry at the end. The input slice is never modified.
// An entry stamped earlier than the current tail is moved up to the tail's time so
// the log stays chronological by reviewedAt; equal times keep insertion order.
func Append(log []models.ReviewActivity, entry models.ReviewActivity) ([]models.ReviewActivity, models.ReviewActivity, error) {
	if entry.ID == "" {
		return nil, models.ReviewActivity{}, ErrEmptyID
	}
	for _, existing := range log {
		if existing.ID == entry.ID {
			return nil, models.ReviewActivity{}, fmt.Errorf("%w: %s", ErrDuplicateID, entry.ID)
		}
	}
	if n := len(log); n > 0 && entry.ReviewedAt.Before(log[n-1].ReviewedAt) {
		entry.ReviewedAt = log[n-1].ReviewedAt
	}

	out := make([]models.ReviewActivity, len(log), len(log)+1)
	copy(out, log)
	out = append(out, entry)
	return out, entry, nil
}

// Chronological returns a copy of the log ordered by reviewedAt, ties in insertion order.
func Chronological(log []models.ReviewActivity) []models.ReviewActivity {
	out := make([]models.ReviewActivity, len(log))
	copy(out, log)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ReviewedAt.Before(out[j].ReviewedAt)
	})
	return out
}

// IsExtension reports whether next is prev plus exactly one entry, with every
// prior entry unchanged.
func IsExtension(prev, next []models.ReviewActivity) bool {
	if len(next) != len(prev)+1 {
		return false
	}
	for i := range prev {
		if !sameEntry(prev[i], next[i]) {
			return false
		}
	}
	return true
}

// Last returns the most recent entry, if any.
func Last(log []models.ReviewActivity) (models.ReviewActivity, bool) {
	if len(log) == 0 {
		return models.ReviewActivity{}, false
	}
	return log[len(log)-1], true
}

func sameEntry(a, b models.ReviewActivity) bool {
	return a.ID == b.ID &&
		a.Action == b.Action &&
		a.Comments == b.Comments &&
		a.ReviewedBy == b.ReviewedBy &&
		a.ReviewedAt.Equal(b.ReviewedAt) &&
		reflect.DeepEqual(a.Metadata, b.Metadata)
}
