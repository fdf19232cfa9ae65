package repository

import (
	"nura_backend/internal/model"

	"gorm.io/gorm"
)

type CourseRepository struct {
	DB *gorm.DB
}

func NewCourseRepository(db *gorm.DB) *CourseRepository {
	return &CourseRepository{DB: db}
}

func (r *CourseRepository) Create(course *model.Course) error {
	return r.DB.Create(course).Error
}

func (r *CourseRepository) FindByID(id uint) (*model.Course, error) {
	var course model.Course
	err := r.DB.Preload("Tags.Tag").Preload("Owner").First(&course, id).Error
	return &course, err
}

func (r *CourseRepository) Update(course *model.Course) error {
	return r.DB.Save(course).Error
}

// Delete removes the course and its dependent rows. Quizzes cascade to their
// questions, submissions and answers.
func (r *CourseRepository) Delete(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		var quizIDs []uint
		if err := tx.Model(&model.Quiz{}).Where("course_id = ?", id).Pluck("id", &quizIDs).Error; err != nil {
			return err
		}
		if len(quizIDs) > 0 {
			var submissionIDs []uint
			if err := tx.Model(&model.QuizSubmission{}).Where("quiz_id IN ?", quizIDs).Pluck("id", &submissionIDs).Error; err != nil {
				return err
			}
			if len(submissionIDs) > 0 {
				if err := tx.Where("submission_id IN ?", submissionIDs).Delete(&model.QuizAnswer{}).Error; err != nil {
					return err
				}
			}
			if err := tx.Where("quiz_id IN ?", quizIDs).Delete(&model.QuizSubmission{}).Error; err != nil {
				return err
			}
			if err := tx.Where("quiz_id IN ?", quizIDs).Delete(&model.QuizQuestion{}).Error; err != nil {
				return err
			}
			if err := tx.Where("course_id = ?", id).Delete(&model.Quiz{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("course_id = ?", id).Delete(&model.CourseTag{}).Error; err != nil {
			return err
		}
		if err := tx.Where("course_id = ?", id).Delete(&model.Enrollment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Course{}, id).Error
	})
}

func (r *CourseRepository) ListPublished(page, limit int) ([]model.Course, int64, error) {
	var courses []model.Course
	var total int64
	query := r.DB.Model(&model.Course{}).Where("status = ?", model.CoursePublished)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset := (page - 1) * limit
	err := query.Preload("Tags.Tag").Order("created_at desc").Offset(offset).Limit(limit).Find(&courses).Error
	return courses, total, err
}

func (r *CourseRepository) ListByOwner(ownerID uint, page, limit int) ([]model.Course, int64, error) {
	var courses []model.Course
	var total int64
	query := r.DB.Model(&model.Course{}).Where("owner_id = ?", ownerID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset := (page - 1) * limit
	err := query.Preload("Tags.Tag").Order("created_at desc").Offset(offset).Limit(limit).Find(&courses).Error
	return courses, total, err
}

// ListUntagged returns published courses with no tag links, for the nightly
// tagging backfill.
func (r *CourseRepository) ListUntagged(limit int) ([]model.Course, error) {
	var courses []model.Course
	err := r.DB.Where("status = ?", model.CoursePublished).
		Where("id NOT IN (?)", r.DB.Model(&model.CourseTag{}).Select("course_id")).
		Limit(limit).Find(&courses).Error
	return courses, err
}

func (r *CourseRepository) UpdateVideoMetadata(id uint, videoURL, thumbnailURL string, duration float64) error {
	return r.DB.Model(&model.Course{}).Where("id = ?", id).Updates(map[string]interface{}{
		"video_url":      videoURL,
		"thumbnail_url":  thumbnailURL,
		"video_duration": duration,
	}).Error
}
