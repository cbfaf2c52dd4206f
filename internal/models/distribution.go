package models

// DistributionStatus classifies an aggregate distribution result.
type DistributionStatus string

const (
	DistributionComplete DistributionStatus = "COMPLETE_SUCCESS"
	DistributionPartial  DistributionStatus = "PARTIAL_SUCCESS"
	DistributionFailed   DistributionStatus = "COMPLETE_FAILURE"
)

// DistributionOutcome records the result of the create call for one course.
type DistributionOutcome struct {
	CourseID   string `json:"course_id"`
	CourseName string `json:"course_name"`
	Success    bool   `json:"success"`
	Error      string `json:"error,omitempty"`
}

// DistributionResult is the ordered per-course outcome list for one publish
// operation plus derived counts. Outcome order matches the caller's course
// selection order.
type DistributionResult struct {
	Status    DistributionStatus    `json:"status"`
	Succeeded int                   `json:"succeeded"`
	Failed    int                   `json:"failed"`
	Outcomes  []DistributionOutcome `json:"outcomes"`
}

// FailedOutcomes returns only the failing entries, preserving order.
func (r DistributionResult) FailedOutcomes() []DistributionOutcome {
	var failed []DistributionOutcome
	for _, outcome := range r.Outcomes {
		if !outcome.Success {
			failed = append(failed, outcome)
		}
	}
	return failed
}
