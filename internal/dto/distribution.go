package dto

import (
	"time"

	"github.com/noah-isme/sma-publisher-api/internal/models"
)

// ItemPayload is the authored content of one publish request.
type ItemPayload struct {
	Kind         string              `json:"kind" validate:"required"`
	Title        string              `json:"title"`
	Body         string              `json:"body"`
	Attachments  []AttachmentPayload `json:"attachments" validate:"omitempty,dive"`
	MaxPoints    *float64            `json:"max_points" validate:"omitempty,gt=0"`
	DueAt        *time.Time          `json:"due_at"`
	QuestionType string              `json:"question_type"`
	Choices      []string            `json:"choices"`
}

// AttachmentPayload is one attachment reference.
type AttachmentPayload struct {
	Kind  string `json:"kind" validate:"required,oneof=LINK VIDEO FILE"`
	URL   string `json:"url" validate:"required"`
	Title string `json:"title"`
}

// TargetPayload selects one course for distribution.
type TargetPayload struct {
	CourseID   string `json:"course_id" validate:"required"`
	CourseName string `json:"course_name"`
}

// PublishRequest is the immutable value constructed once per publish action.
// The reference selection (section or topic) is expressed in terms of the
// reference course; per-course equivalents are resolved server-side.
type PublishRequest struct {
	Item              ItemPayload     `json:"item" validate:"required"`
	Targets           []TargetPayload `json:"targets" validate:"required,min=1,dive"`
	ReferenceCourseID string          `json:"reference_course_id" validate:"required"`
	SectionID         string          `json:"section_id"`
	TopicID           string          `json:"topic_id"`
}

// Item converts the payload into the domain model.
func (p ItemPayload) Item() models.AuthoredItem {
	item := models.AuthoredItem{
		Kind:         models.ItemKind(p.Kind),
		Title:        p.Title,
		Body:         p.Body,
		MaxPoints:    p.MaxPoints,
		DueAt:        p.DueAt,
		QuestionType: models.QuestionType(p.QuestionType),
		Choices:      p.Choices,
	}
	for _, att := range p.Attachments {
		item.Attachments = append(item.Attachments, models.Attachment{
			Kind:  models.AttachmentKind(att.Kind),
			URL:   att.URL,
			Title: att.Title,
		})
	}
	return item
}

// Courses converts the target list into domain models, preserving order.
func (r PublishRequest) Courses() []models.TargetCourse {
	courses := make([]models.TargetCourse, 0, len(r.Targets))
	for _, target := range r.Targets {
		courses = append(courses, models.TargetCourse{ID: target.CourseID, Name: target.CourseName})
	}
	return courses
}
