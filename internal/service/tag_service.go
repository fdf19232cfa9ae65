package service

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"nura_backend/internal/model"
	"nura_backend/internal/repository"
	"nura_backend/pkg/logger"
	"nura_backend/pkg/monitoring"

	"go.uber.org/zap"
)

// autoTagThreshold is the minimum suggestion confidence that gets persisted
// as a course-tag link.
const autoTagThreshold = 0.6

type vocabularyEntry struct {
	Name        string
	Category    model.TagCategory
	Color       string
	Description string
}

// tagVocabulary is the fixed keyword table matched against course text.
// Matching is deterministic, so suggestions from this table are idempotent.
var tagVocabulary = []vocabularyEntry{
	{"JavaScript", model.TagTechnology, "#f7df1e", "JavaScript language and ecosystem"},
	{"TypeScript", model.TagTechnology, "#3178c6", "Typed superset of JavaScript"},
	{"Python", model.TagTechnology, "#3776ab", "Python language and ecosystem"},
	{"Go", model.TagTechnology, "#00add8", "Go language and ecosystem"},
	{"React", model.TagTechnology, "#61dafb", "React UI library"},
	{"Node.js", model.TagTechnology, "#339933", "Server-side JavaScript runtime"},
	{"SQL", model.TagTechnology, "#e38c00", "Relational databases and queries"},
	{"Docker", model.TagTechnology, "#2496ed", "Container tooling"},
	{"Kubernetes", model.TagTechnology, "#326ce5", "Container orchestration"},
	{"Machine Learning", model.TagDomain, "#ff6f61", "ML models and training"},
	{"Data Science", model.TagDomain, "#8e44ad", "Data analysis and statistics"},
	{"Web Development", model.TagDomain, "#16a085", "Building web applications"},
	{"DevOps", model.TagDomain, "#e67e22", "Delivery and operations practice"},
	{"Security", model.TagDomain, "#c0392b", "Application and network security"},
	{"Algorithms", model.TagSkill, "#2c3e50", "Algorithms and data structures"},
	{"Cloud Computing", model.TagDomain, "#2980b9", "Cloud platforms and services"},
}

// tagPalette supplies display colors for tags created without one.
var tagPalette = [...]string{
	"#e74c3c", "#e67e22", "#f1c40f", "#2ecc71", "#1abc9c",
	"#3498db", "#9b59b6", "#34495e", "#16a085", "#27ae60",
	"#2980b9", "#8e44ad", "#d35400", "#c0392b", "#7f8c8d",
}

// TagService suggests and persists course tags from a keyword vocabulary,
// optionally enriched by the text-generation API.
type TagService struct {
	TagRepo    *repository.TagRepository
	CourseRepo *repository.CourseRepository
	AI         *AIService
}

func NewTagService(tagRepo *repository.TagRepository, courseRepo *repository.CourseRepository, ai *AIService) *TagService {
	return &TagService{TagRepo: tagRepo, CourseRepo: courseRepo, AI: ai}
}

// Suggest matches the course text against the vocabulary and, when an API
// credential is configured, asks the generation endpoint for more candidates.
// Results are deduplicated by case-insensitive name (first occurrence wins)
// and sorted by descending confidence.
func (s *TagService) Suggest(ctx context.Context, title, description, content string) []model.TagSuggestion {
	text := strings.ToLower(title + " " + description + " " + content)

	var suggestions []model.TagSuggestion
	for _, entry := range tagVocabulary {
		name := strings.ToLower(entry.Name)
		var confidence float64
		if containsWord(text, name) {
			confidence = 0.8
		} else if strings.Contains(text, name) {
			confidence = 0.6
		} else {
			continue
		}
		suggestions = append(suggestions, model.TagSuggestion{
			Name:        entry.Name,
			Category:    entry.Category,
			Confidence:  confidence,
			Description: entry.Description,
		})
	}

	if s.AI.Enabled() {
		aiSuggestions, err := s.suggestFromAI(ctx, title, description, content)
		if err != nil {
			logger.Log.Warn("tag generation failed, keyword matches only", zap.Error(err))
			monitoring.AIFallbackCounter.Inc()
		} else {
			suggestions = append(suggestions, aiSuggestions...)
		}
	}

	suggestions = dedupeSuggestions(suggestions)
	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].Confidence > suggestions[j].Confidence
	})
	return suggestions
}

func (s *TagService) suggestFromAI(ctx context.Context, title, description, content string) ([]model.TagSuggestion, error) {
	prompt := fmt.Sprintf(
		"Suggest up to 8 topic tags for this course. Output one tag per line in the exact format "+
			"name|category|confidence|description where category is technology, domain or skill and "+
			"confidence is a number between 0 and 1. No other text.\nTitle: %s\nDescription: %s\nContent: %s",
		title, description, truncate(content, 1500),
	)
	text, err := s.AI.Generate(ctx, "You label educational content with concise topic tags.", prompt)
	if err != nil {
		return nil, err
	}
	return parseTagLines(text), nil
}

// parseTagLines parses pipe-delimited suggestion lines. Malformed lines are
// dropped without error.
func parseTagLines(text string) []model.TagSuggestion {
	var out []model.TagSuggestion
	for _, line := range strings.Split(text, "\n") {
		parts := strings.Split(strings.TrimSpace(line), "|")
		if len(parts) != 4 {
			continue
		}
		name := strings.TrimSpace(parts[0])
		if name == "" {
			continue
		}
		confidence, err := strconv.ParseFloat(strings.TrimSpace(parts[2]), 64)
		if err != nil || confidence < 0 || confidence > 1 {
			continue
		}
		out = append(out, model.TagSuggestion{
			Name:        name,
			Category:    parseCategory(parts[1]),
			Confidence:  confidence,
			Description: strings.TrimSpace(parts[3]),
		})
		if len(out) == 8 {
			break
		}
	}
	return out
}

func parseCategory(raw string) model.TagCategory {
	switch model.TagCategory(strings.ToLower(strings.TrimSpace(raw))) {
	case model.TagTechnology:
		return model.TagTechnology
	case model.TagDomain:
		return model.TagDomain
	case model.TagSkill:
		return model.TagSkill
	default:
		return model.TagManual
	}
}

func dedupeSuggestions(in []model.TagSuggestion) []model.TagSuggestion {
	seen := make(map[string]bool, len(in))
	out := in[:0]
	for _, s := range in {
		key := strings.ToLower(s.Name)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, s)
	}
	return out
}

// containsWord reports whether word occurs in text bounded by non-letter,
// non-digit runes on both sides.
func containsWord(text, word string) bool {
	for start := 0; ; {
		idx := strings.Index(text[start:], word)
		if idx < 0 {
			return false
		}
		idx += start
		end := idx + len(word)
		beforeOK := idx == 0 || !isWordRune(rune(text[idx-1]))
		afterOK := end == len(text) || !isWordRune(rune(text[end]))
		if beforeOK && afterOK {
			return true
		}
		start = idx + 1
	}
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// AutoTag persists every suggestion above the threshold as a course-tag link,
// creating missing tags on the way, and links manual tags at full confidence.
// Individual failures are logged and skipped so one bad tag never blocks the
// rest.
func (s *TagService) AutoTag(ctx context.Context, courseID uint, title, description, content string, manualTags []string) error {
	for _, suggestion := range s.Suggest(ctx, title, description, content) {
		if suggestion.Confidence <= autoTagThreshold {
			continue
		}
		tag, err := s.ensureTag(suggestion.Name, suggestion.Category, suggestion.Description, "")
		if err != nil {
			logger.Log.Warn("failed to create tag", zap.String("name", suggestion.Name), zap.Error(err))
			continue
		}
		if err := s.TagRepo.UpsertCourseTag(courseID, tag.ID, suggestion.Confidence); err != nil {
			logger.Log.Warn("failed to link tag", zap.String("name", suggestion.Name), zap.Error(err))
		}
	}

	for _, name := range manualTags {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		tag, err := s.ensureTag(name, model.TagManual, "", "")
		if err != nil {
			logger.Log.Warn("failed to create manual tag", zap.String("name", name), zap.Error(err))
			continue
		}
		if err := s.TagRepo.UpsertCourseTag(courseID, tag.ID, 1.0); err != nil {
			logger.Log.Warn("failed to link manual tag", zap.String("name", name), zap.Error(err))
		}
	}
	return nil
}

func (s *TagService) ensureTag(name string, category model.TagCategory, description, color string) (*model.Tag, error) {
	if tag, err := s.TagRepo.FindByName(name); err == nil {
		return tag, nil
	}
	if color == "" {
		for _, entry := range tagVocabulary {
			if strings.EqualFold(entry.Name, name) {
				color = entry.Color
				break
			}
		}
	}
	if color == "" {
		color = tagPalette[rand.Intn(len(tagPalette))]
	}
	tag := &model.Tag{Name: name, Category: category, Description: description, Color: color}
	if err := s.TagRepo.Create(tag); err != nil {
		// Lost a create race; the other writer's row wins.
		if existing, ferr := s.TagRepo.FindByName(name); ferr == nil {
			return existing, nil
		}
		return nil, err
	}
	return tag, nil
}

func (s *TagService) ListTags() ([]model.Tag, error) {
	return s.TagRepo.List()
}

func (s *TagService) ListCourseTags(courseID uint) ([]model.CourseTag, error) {
	return s.TagRepo.ListCourseTags(courseID)
}

func (s *TagService) DeleteTag(id uint) error {
	return s.TagRepo.Delete(id)
}

// BackfillUntagged tags published courses that have no links yet. Runs from
// the nightly background task and the manual backfill script.
func (s *TagService) BackfillUntagged(ctx context.Context, limit int) {
	courses, err := s.CourseRepo.ListUntagged(limit)
	if err != nil {
		logger.Log.Error("failed to list untagged courses", zap.Error(err))
		return
	}
	if len(courses) == 0 {
		return
	}

	logger.Log.Info("tagging backfill started", zap.Int("count", len(courses)))
	for _, course := range courses {
		if err := s.AutoTag(ctx, course.ID, course.Title, course.Description, course.Content, nil); err != nil {
			logger.Log.Warn("backfill tagging failed", zap.Uint("courseId", course.ID), zap.Error(err))
		}
	}
	logger.Log.Info("tagging backfill finished", zap.Int("count", len(courses)))
}

// truncate limits prompt text to n runes.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
