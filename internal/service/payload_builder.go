package service

import (
	"strings"

	"github.com/noah-isme/sma-publisher-api/internal/classroom"
	"github.com/noah-isme/sma-publisher-api/internal/models"
)

// Payload building is deterministic: for a fixed (item, targeting, topic)
// triple the output is identical on every call. Targeting fields are omitted
// entirely for all-students addressing — the platform treats field absence as
// broadcast, and an empty restriction list means something else.

// BuildAnnouncement assembles the create-announcement body for one course.
func BuildAnnouncement(item models.AuthoredItem, targeting models.Targeting) classroom.AnnouncementRequest {
	req := classroom.AnnouncementRequest{
		Text:      item.Body,
		Materials: buildMaterials(item.Attachments),
	}
	applyTargeting(&req.AssigneeMode, &req.IndividualStudentsOptions, targeting)
	return req
}

// BuildCourseWork assembles the create-coursework body for one course. The
// topic id must already be resolved for this course; the composer's chosen
// topic id belongs to the reference course and is not valid here.
func BuildCourseWork(item models.AuthoredItem, targeting models.Targeting, topicID string) classroom.CourseWorkRequest {
	req := classroom.CourseWorkRequest{
		Title:       item.Title,
		Description: item.Body,
		Materials:   buildMaterials(item.Attachments),
		WorkType:    workType(item),
		TopicID:     topicID,
	}

	if item.Kind == models.ItemKindAssignment {
		req.MaxPoints = item.MaxPoints
	}

	if item.DueAt != nil {
		due := item.DueAt.UTC()
		req.DueDate = &classroom.Date{
			Year:  due.Year(),
			Month: int(due.Month()),
			Day:   due.Day(),
		}
		req.DueTime = &classroom.TimeOfDay{
			Hours:   due.Hour(),
			Minutes: due.Minute(),
		}
	}

	if item.Kind == models.ItemKindQuestion && item.QuestionType == models.QuestionMultipleChoice {
		choices := filterChoices(item.Choices)
		req.MultipleChoiceQuestion = &classroom.MultipleChoiceQuestion{Choices: choices}
	}

	applyTargeting(&req.AssigneeMode, &req.IndividualStudentsOptions, targeting)
	return req
}

func workType(item models.AuthoredItem) string {
	switch item.Kind {
	case models.ItemKindQuestion:
		if item.QuestionType == models.QuestionMultipleChoice {
			return classroom.WorkTypeMultipleChoiceQuestion
		}
		return classroom.WorkTypeShortAnswerQuestion
	default:
		return classroom.WorkTypeAssignment
	}
}

func buildMaterials(attachments []models.Attachment) []classroom.Material {
	if len(attachments) == 0 {
		return nil
	}
	materials := make([]classroom.Material, 0, len(attachments))
	for _, att := range attachments {
		switch att.Kind {
		case models.AttachmentVideo:
			materials = append(materials, classroom.Material{Video: &classroom.Video{URL: att.URL, Title: att.Title}})
		case models.AttachmentFile:
			materials = append(materials, classroom.Material{DriveFile: &classroom.DriveFile{ID: att.URL, Title: att.Title}})
		default:
			materials = append(materials, classroom.Material{Link: &classroom.Link{URL: att.URL, Title: att.Title}})
		}
	}
	return materials
}

func filterChoices(choices []string) []string {
	filtered := make([]string, 0, len(choices))
	for _, choice := range choices {
		if trimmed := strings.TrimSpace(choice); trimmed != "" {
			filtered = append(filtered, trimmed)
		}
	}
	return filtered
}

func applyTargeting(mode *string, options **classroom.IndividualStudentsOptions, targeting models.Targeting) {
	if !targeting.Restricted() {
		return
	}
	*mode = classroom.AssigneeModeIndividualStudents
	*options = &classroom.IndividualStudentsOptions{StudentIDs: targeting.StudentIDs}
}
