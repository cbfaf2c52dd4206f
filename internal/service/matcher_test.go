package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/sma-publisher-api/internal/models"
)

func TestMatchSectionPrefersIDOverName(t *testing.T) {
	ref := models.Section{ID: "sec-1", Name: "Group A"}
	candidates := []models.Section{
		{ID: "sec-9", Name: "Group A"},
		{ID: "sec-1", Name: "Renamed"},
	}

	match, ok := MatchSection(ref, candidates)
	require.True(t, ok)
	assert.Equal(t, "sec-1", match.ID)
	assert.Equal(t, "Renamed", match.Name)
}

func TestMatchSectionByName(t *testing.T) {
	ref := models.Section{ID: "sec-1", Name: "Group A"}
	candidates := []models.Section{
		{ID: "sec-7", Name: "Group B"},
		{ID: "sec-8", Name: "Group A"},
	}

	match, ok := MatchSection(ref, candidates)
	require.True(t, ok)
	assert.Equal(t, "sec-8", match.ID)
}

func TestMatchSectionCaseSensitive(t *testing.T) {
	ref := models.Section{ID: "sec-1", Name: "Group A"}
	candidates := []models.Section{
		{ID: "sec-7", Name: "group a"},
		{ID: "sec-8", Name: "GROUP A"},
	}

	_, ok := MatchSection(ref, candidates)
	assert.False(t, ok)
}

func TestMatchSectionNoCandidates(t *testing.T) {
	_, ok := MatchSection(models.Section{ID: "sec-1", Name: "Group A"}, nil)
	assert.False(t, ok)
}

func TestMatchTopicByName(t *testing.T) {
	ref := models.Topic{ID: "topic-1", Name: "Algebra"}
	candidates := []models.Topic{
		{ID: "topic-5", Name: "Geometry"},
		{ID: "topic-6", Name: "Algebra"},
	}

	match, ok := MatchTopic(ref, candidates)
	require.True(t, ok)
	assert.Equal(t, "topic-6", match.ID)
}

func TestMatchTopicIgnoresID(t *testing.T) {
	ref := models.Topic{ID: "topic-1", Name: "Algebra"}
	candidates := []models.Topic{
		{ID: "topic-1", Name: "Geometry"},
	}

	_, ok := MatchTopic(ref, candidates)
	assert.False(t, ok)
}

func TestMatchTopicFirstOfDuplicateNames(t *testing.T) {
	ref := models.Topic{ID: "topic-1", Name: "Algebra"}
	candidates := []models.Topic{
		{ID: "topic-5", Name: "Algebra"},
		{ID: "topic-6", Name: "Algebra"},
	}

	match, ok := MatchTopic(ref, candidates)
	require.True(t, ok)
	assert.Equal(t, "topic-5", match.ID)
}
