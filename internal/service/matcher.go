package service

import "github.com/noah-isme/sma-publisher-api/internal/models"

// The classroom platform assigns unrelated identifiers to logically
// equivalent sections and topics in each course. The only correlation signal
// across courses is the display name, so matching is exact, case-sensitive
// name equality. No-match is a valid terminal state, never an error.

// MatchSection finds the target-course section equivalent to the reference
// section. Identifier equality wins first so the reference course matches its
// own section without relying on naming convention; otherwise the first
// section with an identical display name is returned.
func MatchSection(ref models.Section, candidates []models.Section) (models.Section, bool) {
	for _, candidate := range candidates {
		if candidate.ID == ref.ID {
			return candidate, true
		}
	}
	for _, candidate := range candidates {
		if candidate.Name == ref.Name {
			return candidate, true
		}
	}
	return models.Section{}, false
}

// MatchTopic finds the target-course topic whose display name equals the
// reference topic's name.
func MatchTopic(ref models.Topic, candidates []models.Topic) (models.Topic, bool) {
	for _, candidate := range candidates {
		if candidate.Name == ref.Name {
			return candidate, true
		}
	}
	return models.Topic{}, false
}
