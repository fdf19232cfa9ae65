package repository

import (
	"nura_backend/internal/model"

	"gorm.io/gorm"
)

type ReportRepository struct {
	DB *gorm.DB
}

func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{DB: db}
}

func (r *ReportRepository) Create(report *model.AIReport) error {
	return r.DB.Create(report).Error
}

func (r *ReportRepository) FindByID(id uint) (*model.AIReport, error) {
	var report model.AIReport
	err := r.DB.First(&report, id).Error
	return &report, err
}

func (r *ReportRepository) List(reportType model.ReportType, targetID uint, page, limit int) ([]model.AIReport, int64, error) {
	var reports []model.AIReport
	var total int64
	query := r.DB.Model(&model.AIReport{})
	if reportType != "" {
		query = query.Where("type = ?", reportType)
	}
	if targetID > 0 {
		query = query.Where("target_id = ?", targetID)
	}
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset := (page - 1) * limit
	err := query.Order("created_at desc").Offset(offset).Limit(limit).Find(&reports).Error
	return reports, total, err
}
