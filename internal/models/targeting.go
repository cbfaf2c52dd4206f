package models

// TargetingMode selects between broadcast and restricted addressing.
type TargetingMode string

const (
	TargetingAllStudents      TargetingMode = "ALL_STUDENTS"
	TargetingSelectedStudents TargetingMode = "SELECTED_STUDENTS"
)

// Targeting is the resolved addressing for one course in one distribution
// attempt. Computed fresh per course, never persisted.
type Targeting struct {
	Mode       TargetingMode `json:"mode"`
	StudentIDs []string      `json:"student_ids,omitempty"`
}

// AllStudents returns broadcast targeting.
func AllStudents() Targeting {
	return Targeting{Mode: TargetingAllStudents}
}

// SelectedStudents returns targeting restricted to the given student set.
func SelectedStudents(studentIDs []string) Targeting {
	return Targeting{Mode: TargetingSelectedStudents, StudentIDs: studentIDs}
}

// Restricted reports whether the targeting limits recipients.
func (t Targeting) Restricted() bool {
	return t.Mode == TargetingSelectedStudents
}
