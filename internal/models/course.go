package models

import (
	"time"

	"github.com/lib/pq"
)

// TargetCourse is one course selected for distribution.
type TargetCourse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Section is a named, colored subset of a course's students. Section ids are
// scoped to a single course; sections representing "the same" grouping in
// different courses share only their display name.
type Section struct {
	ID         string         `db:"id" json:"id"`
	CourseID   string         `db:"course_id" json:"course_id"`
	Name       string         `db:"name" json:"name"`
	Color      string         `db:"color" json:"color"`
	StudentIDs pq.StringArray `db:"student_ids" json:"student_ids"`
	CreatedAt  time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time      `db:"updated_at" json:"updated_at"`
}

// Topic is a platform-side grouping for coursework within one course. Topic
// ids are per-course; names may coincide across courses.
type Topic struct {
	ID       string `json:"id"`
	CourseID string `json:"course_id"`
	Name     string `json:"name"`
}

// TopicSectionLink associates a topic with a default section inside one course.
type TopicSectionLink struct {
	ID        string    `db:"id" json:"id"`
	CourseID  string    `db:"course_id" json:"course_id"`
	TopicID   string    `db:"topic_id" json:"topic_id"`
	SectionID string    `db:"section_id" json:"section_id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// CourseSnapshot is the fully loaded per-course context the targeting core
// operates on. Assembled fresh (or from cache) before dispatch begins.
type CourseSnapshot struct {
	Course        TargetCourse      `json:"course"`
	Sections      []Section         `json:"sections"`
	Topics        []Topic           `json:"topics"`
	TopicSections map[string]string `json:"topic_sections"`
}

// SectionByID returns the section with the given id, if present.
func (s CourseSnapshot) SectionByID(id string) (Section, bool) {
	for _, sec := range s.Sections {
		if sec.ID == id {
			return sec, true
		}
	}
	return Section{}, false
}

// TopicByID returns the topic with the given id, if present.
func (s CourseSnapshot) TopicByID(id string) (Topic, bool) {
	for _, topic := range s.Topics {
		if topic.ID == id {
			return topic, true
		}
	}
	return Topic{}, false
}
