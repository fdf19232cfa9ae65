package repository

import (
	"errors"

	"nura_backend/internal/model"

	"gorm.io/gorm"
)

type TagRepository struct {
	DB *gorm.DB
}

func NewTagRepository(db *gorm.DB) *TagRepository {
	return &TagRepository{DB: db}
}

func (r *TagRepository) Create(tag *model.Tag) error {
	return r.DB.Create(tag).Error
}

func (r *TagRepository) FindByName(name string) (*model.Tag, error) {
	var tag model.Tag
	err := r.DB.Where("LOWER(name) = LOWER(?)", name).First(&tag).Error
	if err != nil {
		return nil, err
	}
	return &tag, nil
}

func (r *TagRepository) List() ([]model.Tag, error) {
	var tags []model.Tag
	err := r.DB.Order("name asc").Find(&tags).Error
	return tags, err
}

func (r *TagRepository) Delete(id uint) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("tag_id = ?", id).Delete(&model.CourseTag{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Tag{}, id).Error
	})
}

// UpsertCourseTag links a tag to a course. A higher confidence overwrites the
// stored value; an equal or lower one leaves the link untouched.
func (r *TagRepository) UpsertCourseTag(courseID, tagID uint, confidence float64) error {
	var link model.CourseTag
	err := r.DB.Where("course_id = ? AND tag_id = ?", courseID, tagID).First(&link).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		link = model.CourseTag{CourseID: courseID, TagID: tagID, Confidence: confidence}
		return r.DB.Create(&link).Error
	}
	if err != nil {
		return err
	}
	if confidence > link.Confidence {
		return r.DB.Model(&link).Update("confidence", confidence).Error
	}
	return nil
}

func (r *TagRepository) ListCourseTags(courseID uint) ([]model.CourseTag, error) {
	var links []model.CourseTag
	err := r.DB.Preload("Tag").Where("course_id = ?", courseID).Order("confidence desc").Find(&links).Error
	return links, err
}
