package service

import (
	"testing"

	"nura_backend/internal/model"
	"nura_backend/internal/repository"
	"nura_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newEnrollmentTestService(t *testing.T) (*EnrollmentService, *gorm.DB) {
	db := newTestDB(t)
	s := NewEnrollmentService(
		repository.NewEnrollmentRepository(db),
		repository.NewCourseRepository(db),
		repository.NewCertificationRepository(db),
		NewNotificationService(repository.NewNotificationRepository(db)),
	)
	return s, db
}

func seedPublishedCourse(t *testing.T, db *gorm.DB) *model.Course {
	t.Helper()
	course := model.Course{Title: "Published course", Status: model.CoursePublished, OwnerID: 1}
	require.NoError(t, db.Create(&course).Error)
	return &course
}

func TestEnrollOnlyPublishedOnce(t *testing.T) {
	s, db := newEnrollmentTestService(t)
	course := seedPublishedCourse(t, db)

	enrollment, err := s.Enroll(42, course.ID)
	require.NoError(t, err)
	assert.Equal(t, model.EnrollmentActive, enrollment.Status)

	_, err = s.Enroll(42, course.ID)
	assert.ErrorIs(t, err, util.ErrAlreadyEnrolled)

	draft := model.Course{Title: "Draft", Status: model.CourseDraft, OwnerID: 1}
	require.NoError(t, db.Create(&draft).Error)
	_, err = s.Enroll(42, draft.ID)
	assert.ErrorIs(t, err, util.ErrCourseNotFound, "drafts are invisible to learners")
}

func TestUpdateProgressClampsRange(t *testing.T) {
	s, db := newEnrollmentTestService(t)
	course := seedPublishedCourse(t, db)

	_, err := s.Enroll(42, course.ID)
	require.NoError(t, err)

	enrollment, err := s.UpdateProgress(42, course.ID, -10)
	require.NoError(t, err)
	assert.Equal(t, float64(0), enrollment.Progress)

	enrollment, err = s.UpdateProgress(42, course.ID, 55)
	require.NoError(t, err)
	assert.Equal(t, float64(55), enrollment.Progress)
	assert.Equal(t, model.EnrollmentActive, enrollment.Status)
}

func TestCompletionIssuesCertificateOnce(t *testing.T) {
	s, db := newEnrollmentTestService(t)
	course := seedPublishedCourse(t, db)

	_, err := s.Enroll(42, course.ID)
	require.NoError(t, err)

	enrollment, err := s.UpdateProgress(42, course.ID, 150)
	require.NoError(t, err)
	assert.Equal(t, float64(100), enrollment.Progress, "progress clamps at 100")
	assert.Equal(t, model.EnrollmentCompleted, enrollment.Status)

	certs, err := s.Certificates(42)
	require.NoError(t, err)
	require.Len(t, certs, 1)
	assert.NotEmpty(t, certs[0].CertificateCode)

	// Re-reporting completion must not mint a second certificate.
	_, err = s.UpdateProgress(42, course.ID, 100)
	require.NoError(t, err)
	certs, err = s.Certificates(42)
	require.NoError(t, err)
	assert.Len(t, certs, 1)

	var notifications []model.Notification
	require.NoError(t, db.Where("user_id = ?", 42).Find(&notifications).Error)
	assert.NotEmpty(t, notifications, "completion notifies the learner")
}

func TestVerifyCertificate(t *testing.T) {
	s, db := newEnrollmentTestService(t)
	course := seedPublishedCourse(t, db)

	_, err := s.Enroll(42, course.ID)
	require.NoError(t, err)
	_, err = s.UpdateProgress(42, course.ID, 100)
	require.NoError(t, err)

	certs, err := s.Certificates(42)
	require.NoError(t, err)
	require.Len(t, certs, 1)

	found, err := s.VerifyCertificate(certs[0].CertificateCode)
	require.NoError(t, err)
	assert.Equal(t, uint(42), found.UserID)

	_, err = s.VerifyCertificate("no-such-code")
	assert.ErrorIs(t, err, util.ErrValidation)
}

func TestDropRequiresEnrollment(t *testing.T) {
	s, db := newEnrollmentTestService(t)
	course := seedPublishedCourse(t, db)

	assert.ErrorIs(t, s.Drop(42, course.ID), util.ErrNotEnrolled)

	_, err := s.Enroll(42, course.ID)
	require.NoError(t, err)
	require.NoError(t, s.Drop(42, course.ID))

	enrollments, err := s.ListMine(42)
	require.NoError(t, err)
	require.Len(t, enrollments, 1)
	assert.Equal(t, model.EnrollmentDropped, enrollments[0].Status)
}
