package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"nura_backend/internal/model"
	"nura_backend/internal/repository"
	"nura_backend/pkg/logger"
	"nura_backend/pkg/monitoring"

	"go.uber.org/zap"
)

// reportConfidence is a static value stored on every generated report. The
// generation endpoint gives no calibrated confidence to propagate.
const reportConfidence = 0.75

// ReportService generates stored analysis reports from aggregate metrics.
// Insights and recommendations are extracted from the generated text after
// the fact by line-pattern matching, not structured at generation time.
type ReportService struct {
	ReportRepo *repository.ReportRepository
	Analytics  *AnalyticsService
	AI         *AIService
}

func NewReportService(reportRepo *repository.ReportRepository, analytics *AnalyticsService, ai *AIService) *ReportService {
	return &ReportService{ReportRepo: reportRepo, Analytics: analytics, AI: ai}
}

func (s *ReportService) Generate(ctx context.Context, reportType model.ReportType, targetID uint) (*model.AIReport, error) {
	filter := filterForReport(reportType, targetID)

	overview, err := s.Analytics.Overview(filter)
	if err != nil {
		return nil, err
	}

	metadata, err := json.Marshal(overview)
	if err != nil {
		return nil, err
	}

	content := s.generateContent(ctx, reportType, overview)

	insights, _ := json.Marshal(extractLines(content, "insight", "trend", "notably"))
	recommendations, _ := json.Marshal(extractLines(content, "recommend", "should", "consider"))

	report := &model.AIReport{
		Type:            reportType,
		TargetID:        targetID,
		Content:         content,
		Insights:        insights,
		Recommendations: recommendations,
		Confidence:      reportConfidence,
		Metadata:        metadata,
	}
	if err := s.ReportRepo.Create(report); err != nil {
		return nil, err
	}
	return report, nil
}

func (s *ReportService) Get(id uint) (*model.AIReport, error) {
	return s.ReportRepo.FindByID(id)
}

func (s *ReportService) List(reportType model.ReportType, targetID uint, page, limit int) ([]model.AIReport, int64, error) {
	return s.ReportRepo.List(reportType, targetID, page, limit)
}

func filterForReport(reportType model.ReportType, targetID uint) model.AnalyticsFilter {
	switch reportType {
	case model.ReportStudent:
		return model.AnalyticsFilter{UserID: targetID}
	case model.ReportCourse:
		return model.AnalyticsFilter{CourseID: targetID}
	case model.ReportQuizFeedback:
		return model.AnalyticsFilter{QuizID: targetID}
	default:
		return model.AnalyticsFilter{}
	}
}

func (s *ReportService) generateContent(ctx context.Context, reportType model.ReportType, overview *model.DashboardOverview) string {
	if !s.AI.Enabled() {
		monitoring.AIFallbackCounter.Inc()
		return fallbackReport(reportType, overview)
	}

	content, err := s.AI.Generate(ctx,
		"You write concise, factual reports for an online learning platform.",
		s.buildPrompt(reportType, overview))
	if err != nil {
		logger.Log.Warn("report generation failed, using template",
			zap.String("type", string(reportType)), zap.Error(err))
		monitoring.AIFallbackCounter.Inc()
		return fallbackReport(reportType, overview)
	}
	return content
}

func (s *ReportService) buildPrompt(reportType model.ReportType, overview *model.DashboardOverview) string {
	return fmt.Sprintf(
		"Write a short %s performance report based on these metrics. Use plain prose with one "+
			"'Insights:' section and one 'Recommendations:' section, each as bullet lines.\n"+
			"Enrollments: %d total, %d active, %d completed, average progress %.1f%%, "+
			"average days to finish %.1f.\n"+
			"Quizzes: %d submissions, %d passed, average score %.1f, pass rate %.0f%%.\n"+
			"Certificates issued: %d.",
		reportSubject(reportType),
		overview.Enrollments.TotalEnrollments,
		overview.Enrollments.ActiveEnrollments,
		overview.Enrollments.CompletedEnrollments,
		overview.Enrollments.AverageProgress,
		overview.Enrollments.AverageDaysToFinish,
		overview.Quizzes.TotalSubmissions,
		overview.Quizzes.PassedCount,
		overview.Quizzes.AverageScore,
		overview.Quizzes.PassRate*100,
		overview.Certifications,
	)
}

func reportSubject(reportType model.ReportType) string {
	switch reportType {
	case model.ReportStudent:
		return "learner"
	case model.ReportCourse:
		return "course"
	case model.ReportQuizFeedback:
		return "quiz outcome"
	default:
		return "platform"
	}
}

// fallbackReport renders the metrics as plain text when generation is
// unavailable.
func fallbackReport(reportType model.ReportType, overview *model.DashboardOverview) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Automated %s report.\n\n", reportSubject(reportType))
	fmt.Fprintf(&b, "Insights:\n")
	fmt.Fprintf(&b, "- %d enrollments on record, %d completed.\n",
		overview.Enrollments.TotalEnrollments, overview.Enrollments.CompletedEnrollments)
	fmt.Fprintf(&b, "- Average progress is %.1f%% with an average of %.1f days to finish.\n",
		overview.Enrollments.AverageProgress, overview.Enrollments.AverageDaysToFinish)
	fmt.Fprintf(&b, "- Quiz pass rate is %.0f%% over %d submissions.\n",
		overview.Quizzes.PassRate*100, overview.Quizzes.TotalSubmissions)
	fmt.Fprintf(&b, "\nRecommendations:\n")
	if overview.Quizzes.PassRate < 0.5 && overview.Quizzes.TotalSubmissions > 0 {
		fmt.Fprintf(&b, "- Consider reviewing quiz difficulty; fewer than half of submissions pass.\n")
	}
	if overview.Enrollments.AverageProgress < 50 && overview.Enrollments.TotalEnrollments > 0 {
		fmt.Fprintf(&b, "- Consider adding progress reminders; average progress is below 50%%.\n")
	} else {
		fmt.Fprintf(&b, "- Keep monitoring these metrics for changes.\n")
	}
	return b.String()
}

// extractLines pulls bullet or sentence lines containing any of the given
// keywords, capped at 10 entries. Naive on purpose.
func extractLines(content string, keywords ...string) []string {
	var out []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(line), "-*• "))
		if line == "" || strings.HasSuffix(line, ":") {
			continue
		}
		lower := strings.ToLower(line)
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				out = append(out, line)
				break
			}
		}
		if len(out) == 10 {
			break
		}
	}
	if out == nil {
		out = []string{}
	}
	return out
}
