package service

import (
	"nura_backend/internal/model"
	"nura_backend/internal/repository"
)

// DashboardService assembles role-scoped views over the analytics queries.
type DashboardService struct {
	Analytics  *AnalyticsService
	CourseRepo *repository.CourseRepository
}

func NewDashboardService(analytics *AnalyticsService, courseRepo *repository.CourseRepository) *DashboardService {
	return &DashboardService{Analytics: analytics, CourseRepo: courseRepo}
}

// LearnerDashboard scopes everything to the caller's own activity.
func (s *DashboardService) LearnerDashboard(userID uint) (*model.DashboardOverview, error) {
	return s.Analytics.Overview(model.AnalyticsFilter{UserID: userID})
}

// MentorCourseStats is one owned course with its aggregate numbers.
type MentorCourseStats struct {
	Course      model.Course            `json:"course"`
	Enrollments model.EnrollmentStats   `json:"enrollments"`
	Quizzes     model.QuizStats         `json:"quizzes"`
}

// MentorDashboard returns per-course stats for every course the mentor owns,
// first page sized generously since mentors rarely own many.
func (s *DashboardService) MentorDashboard(mentorID uint) ([]MentorCourseStats, error) {
	courses, _, err := s.CourseRepo.ListByOwner(mentorID, 1, 50)
	if err != nil {
		return nil, err
	}

	stats := make([]MentorCourseStats, 0, len(courses))
	for _, course := range courses {
		filter := model.AnalyticsFilter{CourseID: course.ID}
		enrollments, err := s.Analytics.EnrollmentStats(filter)
		if err != nil {
			return nil, err
		}
		quizzes, err := s.Analytics.QuizStats(filter)
		if err != nil {
			return nil, err
		}
		stats = append(stats, MentorCourseStats{
			Course:      course,
			Enrollments: *enrollments,
			Quizzes:     *quizzes,
		})
	}
	return stats, nil
}

// AdminDashboard is the unscoped platform overview, optionally narrowed by
// the standard filter parameters.
func (s *DashboardService) AdminDashboard(filter model.AnalyticsFilter) (*model.DashboardOverview, error) {
	return s.Analytics.Overview(filter)
}
