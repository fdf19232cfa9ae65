package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"nura_backend/internal/model"
	"nura_backend/internal/repository"
	"nura_backend/internal/util"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AssignmentService struct {
	AssignmentRepo *repository.AssignmentRepository
	CourseRepo     *repository.CourseRepository
	EnrollmentRepo *repository.EnrollmentRepository
	Storage        *StorageService
	Notifications  *NotificationService
}

func NewAssignmentService(assignmentRepo *repository.AssignmentRepository, courseRepo *repository.CourseRepository, enrollmentRepo *repository.EnrollmentRepository, storage *StorageService, notifications *NotificationService) *AssignmentService {
	return &AssignmentService{
		AssignmentRepo: assignmentRepo,
		CourseRepo:     courseRepo,
		EnrollmentRepo: enrollmentRepo,
		Storage:        storage,
		Notifications:  notifications,
	}
}

func (s *AssignmentService) Create(ownerID uint, assignment *model.Assignment) error {
	course, err := s.CourseRepo.FindByID(assignment.CourseID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return util.ErrCourseNotFound
	}
	if err != nil {
		return err
	}
	if course.OwnerID != ownerID {
		return util.ErrPermissionDenied
	}
	if assignment.MaxScore <= 0 {
		assignment.MaxScore = 100
	}
	return s.AssignmentRepo.Create(assignment)
}

func (s *AssignmentService) Get(id uint) (*model.Assignment, error) {
	assignment, err := s.AssignmentRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrAssignmentNotFound
	}
	return assignment, err
}

func (s *AssignmentService) ListByCourse(courseID uint) ([]model.Assignment, error) {
	return s.AssignmentRepo.ListByCourse(courseID)
}

func (s *AssignmentService) Delete(ownerID, id uint) error {
	assignment, err := s.Get(id)
	if err != nil {
		return err
	}
	course, err := s.CourseRepo.FindByID(assignment.CourseID)
	if err != nil {
		return err
	}
	if course.OwnerID != ownerID {
		return util.ErrPermissionDenied
	}
	return s.AssignmentRepo.Delete(id)
}

// Submit stores a learner's work. An optional attachment goes through the
// storage provider; resubmitting before grading replaces the previous upload.
func (s *AssignmentService) Submit(ctx context.Context, userID, assignmentID uint, content string, file io.Reader, fileSize int64, filename, contentType string) (*model.AssignmentSubmission, error) {
	assignment, err := s.Get(assignmentID)
	if err != nil {
		return nil, err
	}
	if _, err := s.EnrollmentRepo.FindByUserAndCourse(userID, assignment.CourseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrNotEnrolled
		}
		return nil, err
	}

	fileURL := ""
	if file != nil {
		objectName := fmt.Sprintf("assignments/%d/%d/%s%s", assignmentID, userID, uuid.NewString(), filepath.Ext(filename))
		fileURL, err = s.Storage.Upload(ctx, objectName, file, fileSize, contentType)
		if err != nil {
			return nil, err
		}
	}

	existing, err := s.AssignmentRepo.FindSubmissionByUser(assignmentID, userID)
	if err == nil {
		if existing.Status == model.AssignmentGraded {
			return nil, util.ErrValidation
		}
		existing.Content = content
		if fileURL != "" {
			existing.FileURL = fileURL
		}
		if err := s.AssignmentRepo.UpdateSubmission(existing); err != nil {
			return nil, err
		}
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	submission := &model.AssignmentSubmission{
		AssignmentID: assignmentID,
		UserID:       userID,
		Content:      content,
		FileURL:      fileURL,
		Status:       model.AssignmentSubmitted,
	}
	if err := s.AssignmentRepo.CreateSubmission(submission); err != nil {
		return nil, err
	}
	return submission, nil
}

func (s *AssignmentService) ListSubmissions(ownerID, assignmentID uint) ([]model.AssignmentSubmission, error) {
	assignment, err := s.Get(assignmentID)
	if err != nil {
		return nil, err
	}
	course, err := s.CourseRepo.FindByID(assignment.CourseID)
	if err != nil {
		return nil, err
	}
	if course.OwnerID != ownerID {
		return nil, util.ErrPermissionDenied
	}
	return s.AssignmentRepo.ListSubmissions(assignmentID)
}

func (s *AssignmentService) GradeSubmission(graderID, submissionID uint, score int, feedback string) (*model.AssignmentSubmission, error) {
	submission, err := s.AssignmentRepo.FindSubmissionByID(submissionID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrAssignmentNotFound
	}
	if err != nil {
		return nil, err
	}

	assignment, err := s.Get(submission.AssignmentID)
	if err != nil {
		return nil, err
	}
	course, err := s.CourseRepo.FindByID(assignment.CourseID)
	if err != nil {
		return nil, err
	}
	if course.OwnerID != graderID {
		return nil, util.ErrPermissionDenied
	}
	if score < 0 || score > assignment.MaxScore {
		return nil, util.ErrValidation
	}

	submission.Score = &score
	submission.Feedback = feedback
	submission.Status = model.AssignmentGraded
	if err := s.AssignmentRepo.UpdateSubmission(submission); err != nil {
		return nil, err
	}

	s.Notifications.Notify(submission.UserID, "assignment_graded",
		"Assignment graded",
		fmt.Sprintf("%q was graded: %d/%d", assignment.Title, score, assignment.MaxScore))
	return submission, nil
}
