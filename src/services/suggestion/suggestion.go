// Package suggestion proposes an approval type from a submission's score.
// It is advisory only and never changes a submission.
package suggestion

import (
	"fmt"

	"Backend-FormReview/src/models"
)

const (
	fullApprovalMin    = 85
	partialApprovalMin = 60
)

// SuggestApproval applies the rules in order; the first match wins.
func SuggestApproval(score *models.Score) models.ApprovalSuggestion {
	if score == nil {
		return models.ApprovalSuggestion{Type: models.ApprovalFully, Reason: "No scoring data available"}
	}

	p, risk := score.Percentage, score.RiskLevel
	switch {
	case p >= fullApprovalMin && (risk == models.RiskLow || risk == models.RiskMedium):
		return models.ApprovalSuggestion{
			Type:   models.ApprovalFully,
			Reason: fmt.Sprintf("High score (%d%%) with %s risk level indicates full compliance", p, risk),
		}
	case p >= partialApprovalMin && p < fullApprovalMin:
		return models.ApprovalSuggestion{
			Type:   models.ApprovalPartially,
			Reason: fmt.Sprintf("Moderate score (%d%%) suggests partial approval with conditions", p),
		}
	case p < partialApprovalMin || risk == models.RiskHigh || risk == models.RiskCritical:
		return models.ApprovalSuggestion{
			Type:   models.ApprovalPartially,
			Reason: fmt.Sprintf("Low score (%d%%) or %s risk requires conditional approval", p, risk),
		}
	}
	return models.ApprovalSuggestion{Type: models.ApprovalFully, Reason: "Standard approval criteria met"}
}
