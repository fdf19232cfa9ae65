package repository

import (
	"time"

	"nura_backend/internal/model"

	"gorm.io/gorm"
)

type EnrollmentRepository struct {
	DB *gorm.DB
}

func NewEnrollmentRepository(db *gorm.DB) *EnrollmentRepository {
	return &EnrollmentRepository{DB: db}
}

func (r *EnrollmentRepository) Create(e *model.Enrollment) error {
	return r.DB.Create(e).Error
}

func (r *EnrollmentRepository) FindByUserAndCourse(userID, courseID uint) (*model.Enrollment, error) {
	var e model.Enrollment
	err := r.DB.Where("user_id = ? AND course_id = ?", userID, courseID).First(&e).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *EnrollmentRepository) ListByUser(userID uint) ([]model.Enrollment, error) {
	var es []model.Enrollment
	err := r.DB.Preload("Course").Where("user_id = ?", userID).Order("enrolled_at desc").Find(&es).Error
	return es, err
}

func (r *EnrollmentRepository) ListByCourse(courseID uint, page, limit int) ([]model.Enrollment, int64, error) {
	var es []model.Enrollment
	var total int64
	query := r.DB.Model(&model.Enrollment{}).Where("course_id = ?", courseID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset := (page - 1) * limit
	err := query.Preload("User").Order("enrolled_at desc").Offset(offset).Limit(limit).Find(&es).Error
	return es, total, err
}

func (r *EnrollmentRepository) UpdateProgress(id uint, progress float64) error {
	updates := map[string]interface{}{"progress": progress}
	if progress >= 100 {
		now := time.Now()
		updates["status"] = model.EnrollmentCompleted
		updates["completed_at"] = &now
		updates["progress"] = 100.0
	}
	return r.DB.Model(&model.Enrollment{}).Where("id = ?", id).Updates(updates).Error
}

func (r *EnrollmentRepository) UpdateStatus(id uint, status model.EnrollmentStatus) error {
	return r.DB.Model(&model.Enrollment{}).Where("id = ?", id).Update("status", status).Error
}
