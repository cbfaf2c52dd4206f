package classroom

// Wire shapes for the remote classroom platform. Field absence matters: the
// platform treats a missing assigneeMode as broadcast, while an empty
// individualStudentsOptions list is a different (invalid) request. All
// optional fields therefore use pointers or omitempty.

// AssigneeMode values accepted by the platform.
const (
	AssigneeModeAllStudents        = "ALL_STUDENTS"
	AssigneeModeIndividualStudents = "INDIVIDUAL_STUDENTS"
)

// WorkType values accepted by the coursework endpoint.
const (
	WorkTypeAssignment             = "ASSIGNMENT"
	WorkTypeShortAnswerQuestion    = "SHORT_ANSWER_QUESTION"
	WorkTypeMultipleChoiceQuestion = "MULTIPLE_CHOICE_QUESTION"
)

// Link is a URL material.
type Link struct {
	URL   string `json:"url"`
	Title string `json:"title,omitempty"`
}

// Video is a hosted-video material.
type Video struct {
	URL   string `json:"url"`
	Title string `json:"title,omitempty"`
}

// DriveFile is a stored-file material.
type DriveFile struct {
	ID    string `json:"id"`
	Title string `json:"title,omitempty"`
}

// Material wraps exactly one attachment flavour.
type Material struct {
	Link      *Link      `json:"link,omitempty"`
	Video     *Video     `json:"video,omitempty"`
	DriveFile *DriveFile `json:"driveFile,omitempty"`
}

// IndividualStudentsOptions restricts a post to an explicit student set.
type IndividualStudentsOptions struct {
	StudentIDs []string `json:"studentIds"`
}

// Date is a calendar date without timezone.
type Date struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

// TimeOfDay is a wall-clock time without date.
type TimeOfDay struct {
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
}

// MultipleChoiceQuestion carries the answer choices for MC questions.
type MultipleChoiceQuestion struct {
	Choices []string `json:"choices"`
}

// AnnouncementRequest is the create-announcement body.
type AnnouncementRequest struct {
	Text                      string                     `json:"text"`
	Materials                 []Material                 `json:"materials,omitempty"`
	AssigneeMode              string                     `json:"assigneeMode,omitempty"`
	IndividualStudentsOptions *IndividualStudentsOptions `json:"individualStudentsOptions,omitempty"`
}

// CourseWorkRequest is the create-coursework body for assignments and
// questions.
type CourseWorkRequest struct {
	Title                     string                     `json:"title"`
	Description               string                     `json:"description,omitempty"`
	Materials                 []Material                 `json:"materials,omitempty"`
	WorkType                  string                     `json:"workType"`
	MaxPoints                 *float64                   `json:"maxPoints,omitempty"`
	DueDate                   *Date                      `json:"dueDate,omitempty"`
	DueTime                   *TimeOfDay                 `json:"dueTime,omitempty"`
	TopicID                   string                     `json:"topicId,omitempty"`
	MultipleChoiceQuestion    *MultipleChoiceQuestion    `json:"multipleChoiceQuestion,omitempty"`
	AssigneeMode              string                     `json:"assigneeMode,omitempty"`
	IndividualStudentsOptions *IndividualStudentsOptions `json:"individualStudentsOptions,omitempty"`
}

// Topic is a platform topic inside one course.
type Topic struct {
	TopicID  string `json:"topicId"`
	CourseID string `json:"courseId"`
	Name     string `json:"name"`
}

// CreatedPost is the opaque success payload returned by create calls.
type CreatedPost struct {
	ID           string `json:"id"`
	AlternateURL string `json:"alternateLink,omitempty"`
}

type topicListResponse struct {
	Topic []Topic `json:"topic"`
}

type platformError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}
