package service

import "github.com/noah-isme/sma-publisher-api/internal/models"

// ReferenceSelection is the section or topic the composer picked in the
// reference course. Both nil means "general" (no restriction).
type ReferenceSelection struct {
	Section *models.Section
	Topic   *models.Topic
}

// General reports whether no restriction was chosen.
func (s ReferenceSelection) General() bool {
	return s.Section == nil && s.Topic == nil
}

// ResolveTargeting converts the reference selection into addressing for one
// target course. It operates purely on the already-loaded snapshot and never
// fails: any lookup miss degrades to all-students so a missing cross-course
// correlation cannot block the distribution.
func ResolveTargeting(snapshot models.CourseSnapshot, selection ReferenceSelection) models.Targeting {
	if selection.General() {
		return models.AllStudents()
	}

	if selection.Section != nil {
		return resolveSection(snapshot, *selection.Section)
	}

	topic, ok := MatchTopic(*selection.Topic, snapshot.Topics)
	if !ok {
		return models.AllStudents()
	}
	sectionID, ok := snapshot.TopicSections[topic.ID]
	if !ok {
		return models.AllStudents()
	}
	section, ok := snapshot.SectionByID(sectionID)
	if !ok {
		return models.AllStudents()
	}
	return resolveSection(snapshot, section)
}

func resolveSection(snapshot models.CourseSnapshot, ref models.Section) models.Targeting {
	section, ok := MatchSection(ref, snapshot.Sections)
	if !ok || len(section.StudentIDs) == 0 {
		return models.AllStudents()
	}
	return models.SelectedStudents([]string(section.StudentIDs))
}
