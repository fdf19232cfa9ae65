package repository

import (
	"nura_backend/internal/model"
	"nura_backend/internal/util"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SubmissionRepository struct {
	DB *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) *SubmissionRepository {
	return &SubmissionRepository{DB: db}
}

func (r *SubmissionRepository) CountByUserAndQuiz(userID, quizID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.QuizSubmission{}).
		Where("user_id = ? AND quiz_id = ?", userID, quizID).
		Count(&count).Error
	return count, err
}

// CreateGraded persists a submission and its answer rows atomically. The
// attempt count is re-checked inside the transaction under a row lock, so two
// concurrent submissions by the same user cannot both slip past the limit.
func (r *SubmissionRepository) CreateGraded(submission *model.QuizSubmission, answers []model.QuizAnswer, maxAttempts int) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		countQuery := tx.Model(&model.QuizSubmission{})
		// sqlite has no row locks; its transactions serialize writers anyway.
		if tx.Dialector.Name() == "mysql" {
			countQuery = countQuery.Clauses(clause.Locking{Strength: "UPDATE"})
		}
		var count int64
		err := countQuery.
			Where("user_id = ? AND quiz_id = ?", submission.UserID, submission.QuizID).
			Count(&count).Error
		if err != nil {
			return err
		}
		if maxAttempts > 0 && count >= int64(maxAttempts) {
			return util.ErrAttemptsExceeded
		}

		if err := tx.Create(submission).Error; err != nil {
			return err
		}

		for i := range answers {
			answers[i].SubmissionID = submission.ID
		}
		if len(answers) > 0 {
			if err := tx.Create(&answers).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *SubmissionRepository) FindByID(id uint) (*model.QuizSubmission, error) {
	var s model.QuizSubmission
	err := r.DB.Preload("Answers").First(&s, id).Error
	return &s, err
}

func (r *SubmissionRepository) ListByUser(userID uint, quizID uint) ([]model.QuizSubmission, error) {
	var ss []model.QuizSubmission
	query := r.DB.Where("user_id = ?", userID)
	if quizID > 0 {
		query = query.Where("quiz_id = ?", quizID)
	}
	err := query.Order("submitted_at desc").Find(&ss).Error
	return ss, err
}

func (r *SubmissionRepository) ListByQuiz(quizID uint, page, limit int) ([]model.QuizSubmission, int64, error) {
	var ss []model.QuizSubmission
	var total int64
	query := r.DB.Model(&model.QuizSubmission{}).Where("quiz_id = ?", quizID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	offset := (page - 1) * limit
	err := query.Preload("User").Order("submitted_at desc").Offset(offset).Limit(limit).Find(&ss).Error
	return ss, total, err
}

// SetAIFeedback stores asynchronously generated feedback on one answer row.
func (r *SubmissionRepository) SetAIFeedback(answerID uint, feedback string) error {
	return r.DB.Model(&model.QuizAnswer{}).Where("id = ?", answerID).Update("ai_feedback", feedback).Error
}
