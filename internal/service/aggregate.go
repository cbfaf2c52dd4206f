package service

import "github.com/noah-isme/sma-publisher-api/internal/models"

// Aggregate combines per-course outcomes into one result. Purely computed;
// safe to call repeatedly on the same outcome list. An empty outcome list
// never reaches this point (empty course selection is a precondition error).
func Aggregate(outcomes []models.DistributionOutcome) models.DistributionResult {
	result := models.DistributionResult{Outcomes: outcomes}
	for _, outcome := range outcomes {
		if outcome.Success {
			result.Succeeded++
		} else {
			result.Failed++
		}
	}

	switch {
	case result.Failed == 0:
		result.Status = models.DistributionComplete
	case result.Succeeded == 0:
		result.Status = models.DistributionFailed
	default:
		result.Status = models.DistributionPartial
	}

	return result
}
