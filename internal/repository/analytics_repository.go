package repository

import (
	"nura_backend/internal/model"

	"gorm.io/gorm"
)

// AnalyticsRepository runs the aggregate queries behind the dashboards. Every
// call re-queries; nothing is cached here.
type AnalyticsRepository struct {
	DB *gorm.DB
}

func NewAnalyticsRepository(db *gorm.DB) *AnalyticsRepository {
	return &AnalyticsRepository{DB: db}
}

// scopeEnrollments applies the typed filter to an enrollments query. The
// organization filter goes through the course, since enrollments carry no
// organization column of their own.
func scopeEnrollments(query *gorm.DB, f model.AnalyticsFilter) *gorm.DB {
	if f.DateFrom != "" {
		query = query.Where("enrollments.enrolled_at >= ?", f.DateFrom)
	}
	if f.DateTo != "" {
		query = query.Where("enrollments.enrolled_at <= ?", f.DateTo)
	}
	if f.CourseID > 0 {
		query = query.Where("enrollments.course_id = ?", f.CourseID)
	}
	if f.UserID > 0 {
		query = query.Where("enrollments.user_id = ?", f.UserID)
	}
	if f.OrganizationID > 0 {
		query = query.Joins("JOIN courses ON courses.id = enrollments.course_id").
			Where("courses.organization_id = ?", f.OrganizationID)
	}
	return query
}

func scopeSubmissions(query *gorm.DB, f model.AnalyticsFilter) *gorm.DB {
	if f.DateFrom != "" {
		query = query.Where("quiz_submissions.submitted_at >= ?", f.DateFrom)
	}
	if f.DateTo != "" {
		query = query.Where("quiz_submissions.submitted_at <= ?", f.DateTo)
	}
	if f.UserID > 0 {
		query = query.Where("quiz_submissions.user_id = ?", f.UserID)
	}
	if f.QuizID > 0 {
		query = query.Where("quiz_submissions.quiz_id = ?", f.QuizID)
	}
	if f.CourseID > 0 || f.OrganizationID > 0 {
		query = query.Joins("JOIN quizzes ON quizzes.id = quiz_submissions.quiz_id")
		if f.CourseID > 0 {
			query = query.Where("quizzes.course_id = ?", f.CourseID)
		}
		if f.OrganizationID > 0 {
			query = query.Joins("JOIN courses ON courses.id = quizzes.course_id").
				Where("courses.organization_id = ?", f.OrganizationID)
		}
	}
	return query
}

func (r *AnalyticsRepository) EnrollmentStats(f model.AnalyticsFilter) (*model.EnrollmentStats, error) {
	stats := &model.EnrollmentStats{}

	base := scopeEnrollments(r.DB.Model(&model.Enrollment{}), f)
	if err := base.Count(&stats.TotalEnrollments).Error; err != nil {
		return nil, err
	}

	if err := scopeEnrollments(r.DB.Model(&model.Enrollment{}), f).
		Where("enrollments.status = ?", model.EnrollmentActive).
		Count(&stats.ActiveEnrollments).Error; err != nil {
		return nil, err
	}

	if err := scopeEnrollments(r.DB.Model(&model.Enrollment{}), f).
		Where("enrollments.status = ?", model.EnrollmentCompleted).
		Count(&stats.CompletedEnrollments).Error; err != nil {
		return nil, err
	}

	var avgProgress *float64
	if err := scopeEnrollments(r.DB.Model(&model.Enrollment{}), f).
		Select("AVG(enrollments.progress)").Scan(&avgProgress).Error; err != nil {
		return nil, err
	}
	if avgProgress != nil {
		stats.AverageProgress = *avgProgress
	}

	var avgDays *float64
	if err := scopeEnrollments(r.DB.Model(&model.Enrollment{}), f).
		Where("enrollments.completed_at IS NOT NULL").
		Select("AVG(DATEDIFF(enrollments.completed_at, enrollments.enrolled_at))").
		Scan(&avgDays).Error; err != nil {
		return nil, err
	}
	if avgDays != nil {
		stats.AverageDaysToFinish = *avgDays
	}

	return stats, nil
}

func (r *AnalyticsRepository) QuizStats(f model.AnalyticsFilter) (*model.QuizStats, error) {
	stats := &model.QuizStats{}

	if err := scopeSubmissions(r.DB.Model(&model.QuizSubmission{}), f).
		Count(&stats.TotalSubmissions).Error; err != nil {
		return nil, err
	}

	if err := scopeSubmissions(r.DB.Model(&model.QuizSubmission{}), f).
		Where("quiz_submissions.is_passed = ?", true).
		Count(&stats.PassedCount).Error; err != nil {
		return nil, err
	}

	var avgScore *float64
	if err := scopeSubmissions(r.DB.Model(&model.QuizSubmission{}), f).
		Select("AVG(quiz_submissions.score)").Scan(&avgScore).Error; err != nil {
		return nil, err
	}
	if avgScore != nil {
		stats.AverageScore = *avgScore
	}

	if stats.TotalSubmissions > 0 {
		stats.PassRate = float64(stats.PassedCount) / float64(stats.TotalSubmissions)
	}

	return stats, nil
}

func (r *AnalyticsRepository) CertificationCount(f model.AnalyticsFilter) (int64, error) {
	var count int64
	query := r.DB.Model(&model.Certification{})
	if f.DateFrom != "" {
		query = query.Where("certifications.issued_at >= ?", f.DateFrom)
	}
	if f.DateTo != "" {
		query = query.Where("certifications.issued_at <= ?", f.DateTo)
	}
	if f.CourseID > 0 {
		query = query.Where("certifications.course_id = ?", f.CourseID)
	}
	if f.UserID > 0 {
		query = query.Where("certifications.user_id = ?", f.UserID)
	}
	if f.OrganizationID > 0 {
		query = query.Joins("JOIN courses ON courses.id = certifications.course_id").
			Where("courses.organization_id = ?", f.OrganizationID)
	}
	err := query.Count(&count).Error
	return count, err
}

type monthCount struct {
	Month string
	Total int64
}

// MonthlyTrend computes real month-bucketed counts for the last `months`
// months. Buckets with no rows are filled with zeros by the service layer.
func (r *AnalyticsRepository) MonthlyTrend(f model.AnalyticsFilter, months int) (map[string]*model.TrendPoint, error) {
	points := make(map[string]*model.TrendPoint)

	var enrolled []monthCount
	if err := scopeEnrollments(r.DB.Model(&model.Enrollment{}), f).
		Select("DATE_FORMAT(enrollments.enrolled_at, '%Y-%m') AS month, COUNT(*) AS total").
		Where("enrollments.enrolled_at >= DATE_SUB(CURDATE(), INTERVAL ? MONTH)", months).
		Group("month").Scan(&enrolled).Error; err != nil {
		return nil, err
	}
	for _, row := range enrolled {
		ensurePoint(points, row.Month).Enrollments = row.Total
	}

	var completed []monthCount
	if err := scopeEnrollments(r.DB.Model(&model.Enrollment{}), f).
		Select("DATE_FORMAT(enrollments.completed_at, '%Y-%m') AS month, COUNT(*) AS total").
		Where("enrollments.completed_at IS NOT NULL").
		Where("enrollments.completed_at >= DATE_SUB(CURDATE(), INTERVAL ? MONTH)", months).
		Group("month").Scan(&completed).Error; err != nil {
		return nil, err
	}
	for _, row := range completed {
		ensurePoint(points, row.Month).Completions = row.Total
	}

	var submitted []monthCount
	if err := scopeSubmissions(r.DB.Model(&model.QuizSubmission{}), f).
		Select("DATE_FORMAT(quiz_submissions.submitted_at, '%Y-%m') AS month, COUNT(*) AS total").
		Where("quiz_submissions.submitted_at >= DATE_SUB(CURDATE(), INTERVAL ? MONTH)", months).
		Group("month").Scan(&submitted).Error; err != nil {
		return nil, err
	}
	for _, row := range submitted {
		ensurePoint(points, row.Month).Submissions = row.Total
	}

	return points, nil
}

func ensurePoint(points map[string]*model.TrendPoint, month string) *model.TrendPoint {
	if p, ok := points[month]; ok {
		return p
	}
	p := &model.TrendPoint{Month: month}
	points[month] = p
	return p
}
