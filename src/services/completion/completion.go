// Package completion measures how much of a form's required input a submission provides.
package completion

import (
	"math"

	"Backend-FormReview/src/models"
)

// Percentage returns the share of required fields with a non-empty response, 0..100.
// A form without required fields is always 100% complete.
func Percentage(requiredFields []models.FormField, responses map[string]interface{}) int {
	if len(requiredFields) == 0 {
		return 100
	}

	answered := 0
	for _, f := range requiredFields {
		if models.IsAnswered(responses[f.ID]) {
			answered++
		}
	}
	return int(math.Round(float64(answered) / float64(len(requiredFields)) * 100))
}

// IsFormComplete is true when every required field is answered, or when the
// submission is already under review or approved. Those were vetted by a reviewer
// even if a later edit left a field empty.
func IsFormComplete(sub *models.FormSubmission, form *models.Form) bool {
	if sub.Status == models.StatusUnderReview || sub.Status == models.StatusApproved {
		return true
	}
	return Percentage(form.RequiredFields(), sub.Responses) == 100
}

// Missing lists the ids of required fields that have no usable response.
func Missing(requiredFields []models.FormField, responses map[string]interface{}) []string {
	var out []string
	for _, f := range requiredFields {
		if !models.IsAnswered(responses[f.ID]) {
			out = append(out, f.ID)
		}
	}
	return out
}
