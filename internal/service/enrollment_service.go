package service

import (
	"errors"
	"time"

	"nura_backend/internal/model"
	"nura_backend/internal/repository"
	"nura_backend/internal/util"
	"nura_backend/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type EnrollmentService struct {
	EnrollmentRepo    *repository.EnrollmentRepository
	CourseRepo        *repository.CourseRepository
	CertificationRepo *repository.CertificationRepository
	Notifications     *NotificationService
}

func NewEnrollmentService(enrollmentRepo *repository.EnrollmentRepository, courseRepo *repository.CourseRepository, certificationRepo *repository.CertificationRepository, notifications *NotificationService) *EnrollmentService {
	return &EnrollmentService{
		EnrollmentRepo:    enrollmentRepo,
		CourseRepo:        courseRepo,
		CertificationRepo: certificationRepo,
		Notifications:     notifications,
	}
}

func (s *EnrollmentService) Enroll(userID, courseID uint) (*model.Enrollment, error) {
	course, err := s.CourseRepo.FindByID(courseID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrCourseNotFound
	}
	if err != nil {
		return nil, err
	}
	if course.Status != model.CoursePublished {
		return nil, util.ErrCourseNotFound
	}

	if _, err := s.EnrollmentRepo.FindByUserAndCourse(userID, courseID); err == nil {
		return nil, util.ErrAlreadyEnrolled
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	enrollment := &model.Enrollment{
		UserID:     userID,
		CourseID:   courseID,
		Status:     model.EnrollmentActive,
		EnrolledAt: time.Now(),
	}
	if err := s.EnrollmentRepo.Create(enrollment); err != nil {
		return nil, err
	}
	return enrollment, nil
}

// UpdateProgress records progress for the caller's own enrollment. Reaching
// 100% marks it completed and issues a certificate if none exists yet.
func (s *EnrollmentService) UpdateProgress(userID, courseID uint, progress float64) (*model.Enrollment, error) {
	enrollment, err := s.EnrollmentRepo.FindByUserAndCourse(userID, courseID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrNotEnrolled
	}
	if err != nil {
		return nil, err
	}

	if progress < 0 {
		progress = 0
	}
	if progress > 100 {
		progress = 100
	}
	if err := s.EnrollmentRepo.UpdateProgress(enrollment.ID, progress); err != nil {
		return nil, err
	}

	if progress >= 100 {
		s.issueCertificate(userID, courseID)
	}

	return s.EnrollmentRepo.FindByUserAndCourse(userID, courseID)
}

func (s *EnrollmentService) issueCertificate(userID, courseID uint) {
	if _, err := s.CertificationRepo.FindByUserAndCourse(userID, courseID); err == nil {
		return
	}

	cert := &model.Certification{
		UserID:          userID,
		CourseID:        courseID,
		CertificateCode: model.GenerateUUID(),
		IssuedAt:        time.Now(),
	}
	if err := s.CertificationRepo.Create(cert); err != nil {
		logger.Log.Error("failed to issue certificate",
			zap.Uint("userId", userID), zap.Uint("courseId", courseID), zap.Error(err))
		return
	}

	s.Notifications.Notify(userID, "certificate",
		"Course completed",
		"Congratulations! Your certificate is ready. Code: "+cert.CertificateCode)
}

func (s *EnrollmentService) ListMine(userID uint) ([]model.Enrollment, error) {
	return s.EnrollmentRepo.ListByUser(userID)
}

func (s *EnrollmentService) ListByCourse(requesterID uint, role model.UserRole, courseID uint, page, limit int) ([]model.Enrollment, int64, error) {
	course, err := s.CourseRepo.FindByID(courseID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, 0, util.ErrCourseNotFound
	}
	if err != nil {
		return nil, 0, err
	}
	if course.OwnerID != requesterID && role != model.Admin {
		return nil, 0, util.ErrPermissionDenied
	}
	return s.EnrollmentRepo.ListByCourse(courseID, page, limit)
}

func (s *EnrollmentService) Drop(userID, courseID uint) error {
	enrollment, err := s.EnrollmentRepo.FindByUserAndCourse(userID, courseID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return util.ErrNotEnrolled
	}
	if err != nil {
		return err
	}
	return s.EnrollmentRepo.UpdateStatus(enrollment.ID, model.EnrollmentDropped)
}

func (s *EnrollmentService) Certificates(userID uint) ([]model.Certification, error) {
	return s.CertificationRepo.ListByUser(userID)
}

// VerifyCertificate is a public lookup by code.
func (s *EnrollmentService) VerifyCertificate(code string) (*model.Certification, error) {
	cert, err := s.CertificationRepo.FindByCode(code)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrValidation
	}
	return cert, err
}
