package models

import "time"

// ItemKind identifies what the composer is publishing.
type ItemKind string

const (
	ItemKindAnnouncement ItemKind = "ANNOUNCEMENT"
	ItemKindAssignment   ItemKind = "ASSIGNMENT"
	ItemKindQuestion     ItemKind = "QUESTION"
)

// Valid reports whether the kind is one of the supported post types.
func (k ItemKind) Valid() bool {
	switch k {
	case ItemKindAnnouncement, ItemKindAssignment, ItemKindQuestion:
		return true
	default:
		return false
	}
}

// IsCourseWork reports whether the kind maps to a coursework create call.
func (k ItemKind) IsCourseWork() bool {
	return k == ItemKindAssignment || k == ItemKindQuestion
}

// AttachmentKind identifies the attachment material type.
type AttachmentKind string

const (
	AttachmentLink  AttachmentKind = "LINK"
	AttachmentVideo AttachmentKind = "VIDEO"
	AttachmentFile  AttachmentKind = "FILE"
)

// Attachment references external material shared with the item.
type Attachment struct {
	Kind  AttachmentKind `json:"kind"`
	URL   string         `json:"url"`
	Title string         `json:"title,omitempty"`
}

// QuestionType narrows the question flavour for coursework posts.
type QuestionType string

const (
	QuestionShortAnswer    QuestionType = "SHORT_ANSWER"
	QuestionMultipleChoice QuestionType = "MULTIPLE_CHOICE"
)

// AuthoredItem is the content authored once in the composer and distributed
// unchanged to every target course. Immutable once a publish begins.
type AuthoredItem struct {
	Kind        ItemKind     `json:"kind"`
	Title       string       `json:"title,omitempty"`
	Body        string       `json:"body"`
	Attachments []Attachment `json:"attachments,omitempty"`

	// Coursework-only fields.
	MaxPoints    *float64     `json:"max_points,omitempty"`
	DueAt        *time.Time   `json:"due_at,omitempty"`
	QuestionType QuestionType `json:"question_type,omitempty"`
	Choices      []string     `json:"choices,omitempty"`
}
