package service

import (
	"encoding/json"
	"errors"
	"math/rand"
	"time"

	"nura_backend/internal/model"
	"nura_backend/internal/repository"
	"nura_backend/internal/util"
	"nura_backend/pkg/monitoring"

	"gorm.io/gorm"
)

type QuizService struct {
	QuizRepo       *repository.QuizRepository
	SubmissionRepo *repository.SubmissionRepository
	CourseRepo     *repository.CourseRepository
	Feedback       *FeedbackService
}

func NewQuizService(quizRepo *repository.QuizRepository, submissionRepo *repository.SubmissionRepository, courseRepo *repository.CourseRepository, feedback *FeedbackService) *QuizService {
	return &QuizService{
		QuizRepo:       quizRepo,
		SubmissionRepo: submissionRepo,
		CourseRepo:     courseRepo,
		Feedback:       feedback,
	}
}

// QuizResult is what the submitter sees immediately after grading. Wrong
// answers are included separately for direct display; their AI feedback
// arrives later, if at all.
type QuizResult struct {
	Submission   *model.QuizSubmission `json:"submission"`
	Score        int                   `json:"score"`
	MaxScore     int                   `json:"maxScore"`
	IsPassed     bool                  `json:"isPassed"`
	WrongAnswers []model.QuizAnswer    `json:"wrongAnswers"`
}

func (s *QuizService) CreateQuiz(ownerID uint, quiz *model.Quiz) error {
	course, err := s.CourseRepo.FindByID(quiz.CourseID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return util.ErrCourseNotFound
	}
	if err != nil {
		return err
	}
	if course.OwnerID != ownerID {
		return util.ErrPermissionDenied
	}

	for i := range quiz.Questions {
		if quiz.Questions[i].OrderIndex == 0 {
			quiz.Questions[i].OrderIndex = i + 1
		}
	}
	return s.QuizRepo.Create(quiz)
}

// GetQuiz loads a quiz with its questions. Learners see a shuffled order when
// the quiz asks for it; authors always see the stable order-index order.
func (s *QuizService) GetQuiz(id uint, role model.UserRole) (*model.Quiz, error) {
	quiz, err := s.QuizRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrQuizNotFound
	}
	if err != nil {
		return nil, err
	}
	questions, err := s.QuizRepo.ListQuestions(id)
	if err != nil {
		return nil, err
	}
	if quiz.Randomize && role == model.Student {
		rand.Shuffle(len(questions), func(i, j int) {
			questions[i], questions[j] = questions[j], questions[i]
		})
	}
	quiz.Questions = questions
	return quiz, nil
}

func (s *QuizService) ListByCourse(courseID uint) ([]model.Quiz, error) {
	return s.QuizRepo.ListByCourse(courseID)
}

func (s *QuizService) UpdateQuiz(ownerID uint, quiz *model.Quiz) error {
	existing, err := s.QuizRepo.FindByID(quiz.ID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return util.ErrQuizNotFound
	}
	if err != nil {
		return err
	}
	if err := s.checkCourseOwner(existing.CourseID, ownerID); err != nil {
		return err
	}
	quiz.CourseID = existing.CourseID
	return s.QuizRepo.Update(quiz)
}

func (s *QuizService) DeleteQuiz(ownerID, id uint) error {
	quiz, err := s.QuizRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return util.ErrQuizNotFound
	}
	if err != nil {
		return err
	}
	if err := s.checkCourseOwner(quiz.CourseID, ownerID); err != nil {
		return err
	}
	return s.QuizRepo.Delete(id)
}

func (s *QuizService) AddQuestion(ownerID uint, q *model.QuizQuestion) error {
	quiz, err := s.QuizRepo.FindByID(q.QuizID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return util.ErrQuizNotFound
	}
	if err != nil {
		return err
	}
	if err := s.checkCourseOwner(quiz.CourseID, ownerID); err != nil {
		return err
	}
	if q.OrderIndex == 0 {
		questions, err := s.QuizRepo.ListQuestions(q.QuizID)
		if err != nil {
			return err
		}
		q.OrderIndex = len(questions) + 1
	}
	if q.Points <= 0 {
		q.Points = 1
	}
	return s.QuizRepo.CreateQuestion(q)
}

func (s *QuizService) UpdateQuestion(ownerID uint, q *model.QuizQuestion) error {
	existing, err := s.QuizRepo.FindQuestionByID(q.ID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return util.ErrQuizNotFound
	}
	if err != nil {
		return err
	}
	quiz, err := s.QuizRepo.FindByID(existing.QuizID)
	if err != nil {
		return err
	}
	if err := s.checkCourseOwner(quiz.CourseID, ownerID); err != nil {
		return err
	}
	q.QuizID = existing.QuizID
	if q.OrderIndex == 0 {
		q.OrderIndex = existing.OrderIndex
	}
	if q.Points <= 0 {
		q.Points = existing.Points
	}
	return s.QuizRepo.UpdateQuestion(q)
}

func (s *QuizService) DeleteQuestion(ownerID, questionID uint) error {
	q, err := s.QuizRepo.FindQuestionByID(questionID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return util.ErrQuizNotFound
	}
	if err != nil {
		return err
	}
	quiz, err := s.QuizRepo.FindByID(q.QuizID)
	if err != nil {
		return err
	}
	if err := s.checkCourseOwner(quiz.CourseID, ownerID); err != nil {
		return err
	}
	return s.QuizRepo.DeleteQuestion(questionID)
}

func (s *QuizService) checkCourseOwner(courseID, userID uint) error {
	course, err := s.CourseRepo.FindByID(courseID)
	if err != nil {
		return err
	}
	if course.OwnerID != userID {
		return util.ErrPermissionDenied
	}
	return nil
}

// SubmitQuiz grades one complete answer set and persists the attempt. The
// attempt limit is checked here for a fast failure and re-checked inside the
// insert transaction, so concurrent submissions cannot overshoot it. Feedback
// enrichment for wrong answers is queued after commit and never affects the
// returned result.
func (s *QuizService) SubmitQuiz(quizID, userID uint, answers []model.SubmittedAnswer) (*QuizResult, error) {
	quiz, err := s.QuizRepo.FindByID(quizID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrQuizNotFound
	}
	if err != nil {
		return nil, err
	}

	count, err := s.SubmissionRepo.CountByUserAndQuiz(userID, quizID)
	if err != nil {
		return nil, err
	}
	if quiz.MaxAttempts > 0 && count >= int64(quiz.MaxAttempts) {
		return nil, util.ErrAttemptsExceeded
	}

	questions, err := s.QuizRepo.ListQuestions(quizID)
	if err != nil {
		return nil, err
	}

	answerByQuestion := make(map[uint]string, len(answers))
	for _, a := range answers {
		answerByQuestion[a.QuestionID] = a.Answer
	}

	var score, maxScore int
	graded := make([]model.QuizAnswer, 0, len(questions))
	questionByID := make(map[uint]model.QuizQuestion, len(questions))
	for _, q := range questions {
		questionByID[q.ID] = q
		answerText := answerByQuestion[q.ID]
		correct, feedback := Grade(&q, answerText)

		points := 0
		if correct {
			points = q.Points
		}
		score += points
		maxScore += q.Points

		graded = append(graded, model.QuizAnswer{
			QuestionID: q.ID,
			AnswerText: answerText,
			IsCorrect:  correct,
			Points:     points,
			Feedback:   feedback,
		})
	}

	rawAnswers, err := json.Marshal(answers)
	if err != nil {
		return nil, err
	}

	// Score is an absolute point sum compared directly against the passing
	// score, not normalized to a percentage.
	submission := &model.QuizSubmission{
		QuizID:      quizID,
		UserID:      userID,
		RawAnswers:  rawAnswers,
		Score:       score,
		MaxScore:    maxScore,
		IsPassed:    score >= quiz.PassingScore,
		SubmittedAt: time.Now(),
	}

	if err := s.SubmissionRepo.CreateGraded(submission, graded, quiz.MaxAttempts); err != nil {
		return nil, err
	}

	result := "failed"
	if submission.IsPassed {
		result = "passed"
	}
	monitoring.QuizSubmissionCounter.WithLabelValues(result).Inc()

	var wrong []model.QuizAnswer
	for _, a := range graded {
		if a.IsCorrect {
			continue
		}
		wrong = append(wrong, a)
		if q, ok := questionByID[a.QuestionID]; ok {
			s.Feedback.Enqueue(a.ID, q, a.AnswerText)
		}
	}

	submission.Answers = graded
	return &QuizResult{
		Submission:   submission,
		Score:        score,
		MaxScore:     maxScore,
		IsPassed:     submission.IsPassed,
		WrongAnswers: wrong,
	}, nil
}

func (s *QuizService) GetSubmission(id, userID uint, role model.UserRole) (*model.QuizSubmission, error) {
	submission, err := s.SubmissionRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrQuizNotFound
	}
	if err != nil {
		return nil, err
	}
	if submission.UserID != userID && role == model.Student {
		return nil, util.ErrPermissionDenied
	}
	return submission, nil
}

func (s *QuizService) ListMySubmissions(userID, quizID uint) ([]model.QuizSubmission, error) {
	return s.SubmissionRepo.ListByUser(userID, quizID)
}

func (s *QuizService) ListQuizSubmissions(ownerID, quizID uint, page, limit int) ([]model.QuizSubmission, int64, error) {
	quiz, err := s.QuizRepo.FindByID(quizID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, 0, util.ErrQuizNotFound
	}
	if err != nil {
		return nil, 0, err
	}
	if err := s.checkCourseOwner(quiz.CourseID, ownerID); err != nil {
		return nil, 0, err
	}
	return s.SubmissionRepo.ListByQuiz(quizID, page, limit)
}
