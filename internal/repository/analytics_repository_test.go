package repository

import (
	"testing"

	"nura_backend/internal/model"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func countRows(n int64) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"count(*)"}).AddRow(n)
}

func avgRows(v any) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"avg"}).AddRow(v)
}

func TestEnrollmentStats(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAnalyticsRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM .enrollments.`).
		WillReturnRows(countRows(10))
	mock.ExpectQuery(`SELECT count\(\*\) FROM .enrollments. WHERE enrollments\.status`).
		WithArgs("active").
		WillReturnRows(countRows(6))
	mock.ExpectQuery(`SELECT count\(\*\) FROM .enrollments. WHERE enrollments\.status`).
		WithArgs("completed").
		WillReturnRows(countRows(3))
	mock.ExpectQuery(`SELECT AVG\(enrollments\.progress\) FROM .enrollments.`).
		WillReturnRows(avgRows(54.5))
	mock.ExpectQuery(`SELECT AVG\(DATEDIFF\(enrollments\.completed_at, enrollments\.enrolled_at\)\) FROM .enrollments. WHERE enrollments\.completed_at IS NOT NULL`).
		WillReturnRows(avgRows(12.0))

	stats, err := repo.EnrollmentStats(model.AnalyticsFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(10), stats.TotalEnrollments)
	assert.Equal(t, int64(6), stats.ActiveEnrollments)
	assert.Equal(t, int64(3), stats.CompletedEnrollments)
	assert.Equal(t, 54.5, stats.AverageProgress)
	assert.Equal(t, 12.0, stats.AverageDaysToFinish)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnrollmentStatsEmptyAverages(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAnalyticsRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM .enrollments.`).WillReturnRows(countRows(0))
	mock.ExpectQuery(`SELECT count\(\*\) FROM .enrollments.`).WithArgs("active").WillReturnRows(countRows(0))
	mock.ExpectQuery(`SELECT count\(\*\) FROM .enrollments.`).WithArgs("completed").WillReturnRows(countRows(0))
	mock.ExpectQuery(`SELECT AVG\(enrollments\.progress\)`).WillReturnRows(avgRows(nil))
	mock.ExpectQuery(`SELECT AVG\(DATEDIFF`).WillReturnRows(avgRows(nil))

	stats, err := repo.EnrollmentStats(model.AnalyticsFilter{})
	require.NoError(t, err)
	assert.Zero(t, stats.AverageProgress, "NULL average scans as zero")
	assert.Zero(t, stats.AverageDaysToFinish)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnrollmentStatsOrganizationJoinsCourses(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAnalyticsRepository(db)

	joined := `SELECT count\(\*\) FROM .enrollments. JOIN courses ON courses\.id = enrollments\.course_id WHERE courses\.organization_id`
	mock.ExpectQuery(joined).WithArgs(9).WillReturnRows(countRows(4))
	mock.ExpectQuery(joined).WithArgs(9, "active").WillReturnRows(countRows(2))
	mock.ExpectQuery(joined).WithArgs(9, "completed").WillReturnRows(countRows(1))
	mock.ExpectQuery(`SELECT AVG\(enrollments\.progress\) FROM .enrollments. JOIN courses`).
		WithArgs(9).WillReturnRows(avgRows(30.0))
	mock.ExpectQuery(`SELECT AVG\(DATEDIFF.* FROM .enrollments. JOIN courses`).
		WithArgs(9).WillReturnRows(avgRows(nil))

	stats, err := repo.EnrollmentStats(model.AnalyticsFilter{OrganizationID: 9})
	require.NoError(t, err)
	assert.Equal(t, int64(4), stats.TotalEnrollments)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQuizStatsPassRate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAnalyticsRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM .quiz_submissions.`).
		WillReturnRows(countRows(8))
	mock.ExpectQuery(`SELECT count\(\*\) FROM .quiz_submissions. WHERE quiz_submissions\.is_passed`).
		WithArgs(true).
		WillReturnRows(countRows(6))
	mock.ExpectQuery(`SELECT AVG\(quiz_submissions\.score\) FROM .quiz_submissions.`).
		WillReturnRows(avgRows(7.25))

	stats, err := repo.QuizStats(model.AnalyticsFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(8), stats.TotalSubmissions)
	assert.Equal(t, int64(6), stats.PassedCount)
	assert.Equal(t, 0.75, stats.PassRate)
	assert.Equal(t, 7.25, stats.AverageScore)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQuizStatsNoSubmissions(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAnalyticsRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM .quiz_submissions.`).WillReturnRows(countRows(0))
	mock.ExpectQuery(`SELECT count\(\*\) FROM .quiz_submissions.`).WithArgs(true).WillReturnRows(countRows(0))
	mock.ExpectQuery(`SELECT AVG\(quiz_submissions\.score\)`).WillReturnRows(avgRows(nil))

	stats, err := repo.QuizStats(model.AnalyticsFilter{})
	require.NoError(t, err)
	assert.Zero(t, stats.PassRate, "no division by zero on an empty set")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQuizStatsCourseFilterJoinsQuizzes(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAnalyticsRepository(db)

	joined := `SELECT count\(\*\) FROM .quiz_submissions. JOIN quizzes ON quizzes\.id = quiz_submissions\.quiz_id WHERE quizzes\.course_id`
	mock.ExpectQuery(joined).WithArgs(3).WillReturnRows(countRows(5))
	mock.ExpectQuery(joined).WithArgs(3, true).WillReturnRows(countRows(2))
	mock.ExpectQuery(`SELECT AVG\(quiz_submissions\.score\) FROM .quiz_submissions. JOIN quizzes`).
		WithArgs(3).WillReturnRows(avgRows(4.0))

	stats, err := repo.QuizStats(model.AnalyticsFilter{CourseID: 3})
	require.NoError(t, err)
	assert.Equal(t, int64(5), stats.TotalSubmissions)
	assert.Equal(t, 0.4, stats.PassRate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMonthlyTrendMergesSeries(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAnalyticsRepository(db)

	monthRows := func(pairs ...any) *sqlmock.Rows {
		rows := sqlmock.NewRows([]string{"month", "total"})
		for i := 0; i < len(pairs); i += 2 {
			rows.AddRow(pairs[i], pairs[i+1])
		}
		return rows
	}

	mock.ExpectQuery(`SELECT DATE_FORMAT\(enrollments\.enrolled_at, '%Y-%m'\) AS month, COUNT\(\*\) AS total`).
		WithArgs(6).
		WillReturnRows(monthRows("2026-07", int64(4), "2026-08", int64(2)))
	mock.ExpectQuery(`SELECT DATE_FORMAT\(enrollments\.completed_at, '%Y-%m'\) AS month`).
		WithArgs(6).
		WillReturnRows(monthRows("2026-08", int64(1)))
	mock.ExpectQuery(`SELECT DATE_FORMAT\(quiz_submissions\.submitted_at, '%Y-%m'\) AS month`).
		WithArgs(6).
		WillReturnRows(monthRows("2026-07", int64(9)))

	points, err := repo.MonthlyTrend(model.AnalyticsFilter{}, 6)
	require.NoError(t, err)
	require.Contains(t, points, "2026-07")
	require.Contains(t, points, "2026-08")
	assert.Equal(t, int64(4), points["2026-07"].Enrollments)
	assert.Equal(t, int64(9), points["2026-07"].Submissions)
	assert.Equal(t, int64(2), points["2026-08"].Enrollments)
	assert.Equal(t, int64(1), points["2026-08"].Completions)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCertificationCountWithOrganization(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAnalyticsRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM .certifications. JOIN courses ON courses\.id = certifications\.course_id WHERE courses\.organization_id`).
		WithArgs(2).
		WillReturnRows(countRows(7))

	count, err := repo.CertificationCount(model.AnalyticsFilter{OrganizationID: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(7), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}
