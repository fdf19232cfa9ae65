package service

import (
	"context"
	"testing"

	"nura_backend/internal/config"
	"nura_backend/internal/model"
	"nura_backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTagTestService(t *testing.T) (*TagService, *gorm.DB) {
	db := newTestDB(t)
	s := NewTagService(
		repository.NewTagRepository(db),
		repository.NewCourseRepository(db),
		NewAIService(config.AIConfig{}),
	)
	return s, db
}

func TestSuggestKeywordMatches(t *testing.T) {
	s, _ := newTagTestService(t)

	suggestions := s.Suggest(context.Background(),
		"Modern React Patterns",
		"Component design with JavaScript",
		"Hooks, context and rendering.")

	byName := make(map[string]model.TagSuggestion)
	for _, sg := range suggestions {
		byName[sg.Name] = sg
	}

	require.Contains(t, byName, "React")
	require.Contains(t, byName, "JavaScript")
	assert.Equal(t, 0.8, byName["React"].Confidence, "whole-word match")
	assert.Equal(t, model.TagTechnology, byName["React"].Category)
}

func TestSuggestSubstringConfidence(t *testing.T) {
	s, _ := newTagTestService(t)

	// "go" appears only inside other words here, so the match is a substring,
	// not a bounded word.
	suggestions := s.Suggest(context.Background(), "Django for beginners", "", "")

	var goConfidence float64
	for _, sg := range suggestions {
		if sg.Name == "Go" {
			goConfidence = sg.Confidence
		}
	}
	assert.Equal(t, 0.6, goConfidence)
}

func TestSuggestSortedAndDeduplicated(t *testing.T) {
	s, _ := newTagTestService(t)

	suggestions := s.Suggest(context.Background(),
		"Docker and Kubernetes",
		"Deploying with Docker",
		"More Docker content")

	seen := make(map[string]int)
	for i, sg := range suggestions {
		seen[sg.Name]++
		if i > 0 {
			assert.GreaterOrEqual(t, suggestions[i-1].Confidence, sg.Confidence, "descending confidence order")
		}
	}
	assert.Equal(t, 1, seen["Docker"], "duplicates collapse to one entry")
}

func TestSuggestIdempotent(t *testing.T) {
	s, _ := newTagTestService(t)

	first := s.Suggest(context.Background(), "Intro to SQL", "Relational queries", "")
	second := s.Suggest(context.Background(), "Intro to SQL", "Relational queries", "")
	assert.Equal(t, first, second, "keyword matching is deterministic")
}

func TestParseTagLines(t *testing.T) {
	text := "Go|technology|0.9|Go language\n" +
		"garbage line without pipes\n" +
		"Web Development|domain|not-a-number|broken confidence\n" +
		"Security|domain|1.5|out of range\n" +
		"Testing|skill|0.7|Writing tests\n" +
		"|technology|0.8|empty name\n" +
		"Weird|made-up-category|0.65|unknown category"

	out := parseTagLines(text)
	require.Len(t, out, 3)
	assert.Equal(t, "Go", out[0].Name)
	assert.Equal(t, 0.9, out[0].Confidence)
	assert.Equal(t, "Testing", out[1].Name)
	assert.Equal(t, model.TagManual, out[2].Category, "unknown categories fall back to manual")
}

func TestParseTagLinesCapsAtEight(t *testing.T) {
	text := ""
	for i := 0; i < 12; i++ {
		text += "Tag" + string(rune('A'+i)) + "|technology|0.7|desc\n"
	}
	assert.Len(t, parseTagLines(text), 8)
}

func TestAutoTagPersistsAboveThreshold(t *testing.T) {
	s, db := newTagTestService(t)

	course := model.Course{Title: "Go course", Status: model.CoursePublished, OwnerID: 1}
	require.NoError(t, db.Create(&course).Error)

	err := s.AutoTag(context.Background(), course.ID,
		"Practical Go", "Backend services in Go", "Django appears in passing", nil)
	require.NoError(t, err)

	links, err := s.ListCourseTags(course.ID)
	require.NoError(t, err)
	require.Len(t, links, 1, "the 0.6 substring match sits on the threshold and is not persisted")
	assert.Equal(t, 0.8, links[0].Confidence)
	assert.Equal(t, "Go", links[0].Tag.Name)
	assert.Equal(t, "#00add8", links[0].Tag.Color, "vocabulary entries keep their fixed color")
}

func TestAutoTagManualTags(t *testing.T) {
	s, db := newTagTestService(t)

	course := model.Course{Title: "Untitled", OwnerID: 1}
	require.NoError(t, db.Create(&course).Error)

	err := s.AutoTag(context.Background(), course.ID, "Untitled", "", "", []string{"Career Advice", " ", "career advice"})
	require.NoError(t, err)

	links, err := s.ListCourseTags(course.ID)
	require.NoError(t, err)
	require.Len(t, links, 1, "manual names dedupe case-insensitively")
	assert.Equal(t, 1.0, links[0].Confidence)
	assert.Equal(t, model.TagManual, links[0].Tag.Category)
}

func TestUpsertCourseTagHigherConfidenceWins(t *testing.T) {
	_, db := newTagTestService(t)
	repo := repository.NewTagRepository(db)

	tag := model.Tag{Name: "Go", Category: model.TagTechnology, Color: "#00add8"}
	require.NoError(t, repo.Create(&tag))

	require.NoError(t, repo.UpsertCourseTag(1, tag.ID, 0.7))
	require.NoError(t, repo.UpsertCourseTag(1, tag.ID, 0.9))
	require.NoError(t, repo.UpsertCourseTag(1, tag.ID, 0.5))

	links, err := repo.ListCourseTags(1)
	require.NoError(t, err)
	require.Len(t, links, 1)
	assert.Equal(t, 0.9, links[0].Confidence)
}

func TestBackfillUntagged(t *testing.T) {
	s, db := newTagTestService(t)

	tagged := model.Course{Title: "Docker Deep Dive", Status: model.CoursePublished, OwnerID: 1}
	untagged := model.Course{Title: "Kubernetes Basics", Status: model.CoursePublished, OwnerID: 1}
	draft := model.Course{Title: "SQL Draft", Status: model.CourseDraft, OwnerID: 1}
	require.NoError(t, db.Create(&tagged).Error)
	require.NoError(t, db.Create(&untagged).Error)
	require.NoError(t, db.Create(&draft).Error)

	require.NoError(t, s.AutoTag(context.Background(), tagged.ID, tagged.Title, "", "", nil))

	s.BackfillUntagged(context.Background(), 10)

	links, err := s.ListCourseTags(untagged.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, links, "published untagged course gets tagged")

	draftLinks, err := s.ListCourseTags(draft.ID)
	require.NoError(t, err)
	assert.Empty(t, draftLinks, "drafts are left alone")
}
