package repository

import (
	"nura_backend/internal/model"

	"gorm.io/gorm"
)

type CertificationRepository struct {
	DB *gorm.DB
}

func NewCertificationRepository(db *gorm.DB) *CertificationRepository {
	return &CertificationRepository{DB: db}
}

func (r *CertificationRepository) Create(c *model.Certification) error {
	return r.DB.Create(c).Error
}

func (r *CertificationRepository) FindByUserAndCourse(userID, courseID uint) (*model.Certification, error) {
	var c model.Certification
	err := r.DB.Where("user_id = ? AND course_id = ?", userID, courseID).First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CertificationRepository) FindByCode(code string) (*model.Certification, error) {
	var c model.Certification
	err := r.DB.Preload("User").Preload("Course").Where("certificate_code = ?", code).First(&c).Error
	return &c, err
}

func (r *CertificationRepository) ListByUser(userID uint) ([]model.Certification, error) {
	var cs []model.Certification
	err := r.DB.Preload("Course").Where("user_id = ?", userID).Order("issued_at desc").Find(&cs).Error
	return cs, err
}
