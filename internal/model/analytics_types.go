package model

// AnalyticsFilter is the typed variant over the optional dashboard query
// parameters. Zero values mean "not filtered".
type AnalyticsFilter struct {
	DateFrom       string `form:"from"`
	DateTo         string `form:"to"`
	OrganizationID uint   `form:"organizationId"`
	CourseID       uint   `form:"courseId"`
	QuizID         uint   `form:"quizId"`
	UserID         uint   `form:"userId"`
}

// EnrollmentStats is the dashboard headline block.
type EnrollmentStats struct {
	TotalEnrollments     int64   `json:"totalEnrollments"`
	ActiveEnrollments    int64   `json:"activeEnrollments"`
	CompletedEnrollments int64   `json:"completedEnrollments"`
	AverageProgress      float64 `json:"averageProgress"`
	AverageDaysToFinish  float64 `json:"averageDaysToFinish"`
}

// QuizStats aggregates graded submissions.
type QuizStats struct {
	TotalSubmissions int64   `json:"totalSubmissions"`
	PassedCount      int64   `json:"passedCount"`
	AverageScore     float64 `json:"averageScore"`
	PassRate         float64 `json:"passRate"`
}

// TrendPoint is one month bucket of a trend series.
type TrendPoint struct {
	Month       string `json:"month"` // YYYY-MM
	Enrollments int64  `json:"enrollments"`
	Completions int64  `json:"completions"`
	Submissions int64  `json:"submissions"`
}

// DashboardOverview groups the numbers a role dashboard renders.
type DashboardOverview struct {
	Enrollments    EnrollmentStats `json:"enrollments"`
	Quizzes        QuizStats       `json:"quizzes"`
	Certifications int64           `json:"certifications"`
	Trend          []TrendPoint    `json:"trend"`
}
