package service

import (
	"time"

	"nura_backend/internal/model"
	"nura_backend/internal/repository"
	"nura_backend/internal/util"
)

const trendMonths = 12

// AnalyticsService answers dashboard aggregation queries. Stateless; every
// call goes back to the database.
type AnalyticsService struct {
	AnalyticsRepo *repository.AnalyticsRepository
}

func NewAnalyticsService(analyticsRepo *repository.AnalyticsRepository) *AnalyticsService {
	return &AnalyticsService{AnalyticsRepo: analyticsRepo}
}

func (s *AnalyticsService) EnrollmentStats(f model.AnalyticsFilter) (*model.EnrollmentStats, error) {
	return s.AnalyticsRepo.EnrollmentStats(f)
}

func (s *AnalyticsService) QuizStats(f model.AnalyticsFilter) (*model.QuizStats, error) {
	return s.AnalyticsRepo.QuizStats(f)
}

// Trend returns one point per month for the trailing window, oldest first.
// Months with no activity appear as zero points rather than being omitted.
func (s *AnalyticsService) Trend(f model.AnalyticsFilter, months int) ([]model.TrendPoint, error) {
	if months <= 0 {
		months = trendMonths
	}
	buckets, err := s.AnalyticsRepo.MonthlyTrend(f, months)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	series := make([]model.TrendPoint, 0, months)
	for i := months - 1; i >= 0; i-- {
		month := firstOfMonth.AddDate(0, -i, 0).Format(util.MonthFormat)
		if p, ok := buckets[month]; ok {
			series = append(series, *p)
		} else {
			series = append(series, model.TrendPoint{Month: month})
		}
	}
	return series, nil
}

func (s *AnalyticsService) Overview(f model.AnalyticsFilter) (*model.DashboardOverview, error) {
	enrollments, err := s.AnalyticsRepo.EnrollmentStats(f)
	if err != nil {
		return nil, err
	}
	quizzes, err := s.AnalyticsRepo.QuizStats(f)
	if err != nil {
		return nil, err
	}
	certifications, err := s.AnalyticsRepo.CertificationCount(f)
	if err != nil {
		return nil, err
	}
	trend, err := s.Trend(f, trendMonths)
	if err != nil {
		return nil, err
	}

	return &model.DashboardOverview{
		Enrollments:    *enrollments,
		Quizzes:        *quizzes,
		Certifications: certifications,
		Trend:          trend,
	}, nil
}
