package controller

import (
	"encoding/json"

	"nura_backend/internal/model"
	"nura_backend/internal/service"
	"nura_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuizController struct {
	QuizService *service.QuizService
}

func NewQuizController(quizService *service.QuizService) *QuizController {
	return &QuizController{QuizService: quizService}
}

// swagger:model QuestionRequest
type QuestionRequest struct {
	Type          string   `json:"type" binding:"required,oneof=multiple_choice true_false short_answer essay"`
	Prompt        string   `json:"prompt" binding:"required"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
	Points        int      `json:"points"`
	Explanation   string   `json:"explanation"`
	OrderIndex    int      `json:"orderIndex"`
}

func (r *QuestionRequest) toModel() model.QuizQuestion {
	var options json.RawMessage
	if len(r.Options) > 0 {
		options, _ = json.Marshal(r.Options)
	}
	points := r.Points
	if points <= 0 {
		points = 1
	}
	return model.QuizQuestion{
		Type:          model.QuestionType(r.Type),
		Prompt:        r.Prompt,
		Options:       options,
		CorrectAnswer: r.CorrectAnswer,
		Points:        points,
		Explanation:   r.Explanation,
		OrderIndex:    r.OrderIndex,
	}
}

// swagger:model QuizRequest
type QuizRequest struct {
	CourseID     uint              `json:"courseId" binding:"required"`
	Title        string            `json:"title" binding:"required"`
	Description  string            `json:"description"`
	TimeLimit    int               `json:"timeLimit"`
	PassingScore int               `json:"passingScore"`
	Randomize    bool              `json:"randomize"`
	MaxAttempts  int               `json:"maxAttempts"`
	Questions    []QuestionRequest `json:"questions"`
}

// Create godoc
// @Summary Create a quiz with its questions
// @Tags quizzes
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body QuizRequest true "Quiz definition"
// @Success 201 {object} util.Response{data=model.Quiz}
// @Router /api/quizzes [post]
func (c *QuizController) Create(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req QuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	quiz := &model.Quiz{
		CourseID:     req.CourseID,
		Title:        req.Title,
		Description:  req.Description,
		TimeLimit:    req.TimeLimit,
		PassingScore: req.PassingScore,
		Randomize:    req.Randomize,
		MaxAttempts:  req.MaxAttempts,
	}
	if quiz.PassingScore <= 0 {
		quiz.PassingScore = 70
	}
	if quiz.MaxAttempts <= 0 {
		quiz.MaxAttempts = 1
	}
	for _, q := range req.Questions {
		quiz.Questions = append(quiz.Questions, q.toModel())
	}

	if err := c.QuizService.CreateQuiz(claims.UserID, quiz); err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, quiz)
}

// Get godoc
// @Summary Quiz detail with questions
// @Description Correct answers are never serialized
// @Tags quizzes
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Quiz ID"
// @Success 200 {object} util.Response{data=model.Quiz}
// @Failure 404 {object} util.Response
// @Router /api/quizzes/{id} [get]
func (c *QuizController) Get(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}
	quiz, err := c.QuizService.GetQuiz(util.MustParseUint(ctx.Param("id")), claims.Role)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, quiz)
}

// swagger:model QuizUpdateRequest
type QuizUpdateRequest struct {
	Title        string `json:"title" binding:"required"`
	Description  string `json:"description"`
	TimeLimit    int    `json:"timeLimit"`
	PassingScore int    `json:"passingScore" binding:"required,min=1"`
	Randomize    bool   `json:"randomize"`
	MaxAttempts  int    `json:"maxAttempts" binding:"required,min=1"`
}

// Update godoc
// @Summary Update quiz settings
// @Description Questions are managed through their own endpoints
// @Tags quizzes
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Quiz ID"
// @Param body body QuizUpdateRequest true "New settings"
// @Success 200 {object} util.Response{data=model.Quiz}
// @Router /api/quizzes/{id} [put]
func (c *QuizController) Update(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req QuizUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	quiz := &model.Quiz{
		Title:        req.Title,
		Description:  req.Description,
		TimeLimit:    req.TimeLimit,
		PassingScore: req.PassingScore,
		Randomize:    req.Randomize,
		MaxAttempts:  req.MaxAttempts,
	}
	quiz.ID = util.MustParseUint(ctx.Param("id"))

	if err := c.QuizService.UpdateQuiz(claims.UserID, quiz); err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, quiz)
}

// ListByCourse godoc
// @Summary Quizzes of a course
// @Tags quizzes
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Course ID"
// @Success 200 {object} util.Response{data=[]model.Quiz}
// @Router /api/courses/{id}/quizzes [get]
func (c *QuizController) ListByCourse(ctx *gin.Context) {
	quizzes, err := c.QuizService.ListByCourse(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, quizzes)
}

// Delete godoc
// @Summary Delete a quiz and all its submissions
// @Tags quizzes
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Quiz ID"
// @Success 200 {object} util.Response
// @Router /api/quizzes/{id} [delete]
func (c *QuizController) Delete(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}
	if err := c.QuizService.DeleteQuiz(claims.UserID, util.MustParseUint(ctx.Param("id"))); err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// AddQuestion godoc
// @Summary Append a question to a quiz
// @Tags quizzes
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Quiz ID"
// @Param body body QuestionRequest true "Question definition"
// @Success 201 {object} util.Response{data=model.QuizQuestion}
// @Router /api/quizzes/{id}/questions [post]
func (c *QuizController) AddQuestion(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req QuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	question := req.toModel()
	question.QuizID = util.MustParseUint(ctx.Param("id"))
	if err := c.QuizService.AddQuestion(claims.UserID, &question); err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, question)
}

// UpdateQuestion godoc
// @Summary Edit a question
// @Tags quizzes
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Question ID"
// @Param body body QuestionRequest true "Question definition"
// @Success 200 {object} util.Response{data=model.QuizQuestion}
// @Router /api/questions/{id} [put]
func (c *QuizController) UpdateQuestion(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req QuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	question := req.toModel()
	question.ID = util.MustParseUint(ctx.Param("id"))
	if err := c.QuizService.UpdateQuestion(claims.UserID, &question); err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, question)
}

// DeleteQuestion godoc
// @Summary Remove a question
// @Tags quizzes
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Question ID"
// @Success 200 {object} util.Response
// @Router /api/questions/{id} [delete]
func (c *QuizController) DeleteQuestion(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}
	if err := c.QuizService.DeleteQuestion(claims.UserID, util.MustParseUint(ctx.Param("id"))); err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// swagger:model SubmitQuizRequest
type SubmitQuizRequest struct {
	Answers []model.SubmittedAnswer `json:"answers" binding:"required"`
}

// Submit godoc
// @Summary Submit quiz answers for grading
// @Description Grades the whole answer set atomically and returns the result with per-question feedback
// @Tags quizzes
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Quiz ID"
// @Param body body SubmitQuizRequest true "Answer set"
// @Success 200 {object} util.Response{data=service.QuizResult}
// @Failure 404 {object} util.Response "Quiz not found"
// @Failure 409 {object} util.Response "Attempt limit reached"
// @Router /api/quizzes/{id}/submit [post]
func (c *QuizController) Submit(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req SubmitQuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.QuizService.SubmitQuiz(util.MustParseUint(ctx.Param("id")), claims.UserID, req.Answers)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, result)
}

// MySubmissions godoc
// @Summary Caller's submissions, optionally for one quiz
// @Tags quizzes
// @Produce json
// @Security ApiKeyAuth
// @Param quizId query int false "Quiz filter"
// @Success 200 {object} util.Response{data=[]model.QuizSubmission}
// @Router /api/submissions/mine [get]
func (c *QuizController) MySubmissions(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}
	submissions, err := c.QuizService.ListMySubmissions(claims.UserID, util.MustParseUint(ctx.Query("quizId")))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, submissions)
}

// GetSubmission godoc
// @Summary One submission with graded answers
// @Tags quizzes
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Submission ID"
// @Success 200 {object} util.Response{data=model.QuizSubmission}
// @Router /api/submissions/{id} [get]
func (c *QuizController) GetSubmission(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}
	submission, err := c.QuizService.GetSubmission(util.MustParseUint(ctx.Param("id")), claims.UserID, claims.Role)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, submission)
}

// ListSubmissions godoc
// @Summary All submissions for a quiz (course owner only)
// @Tags quizzes
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Quiz ID"
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Router /api/quizzes/{id}/submissions [get]
func (c *QuizController) ListSubmissions(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}
	page, limit := pageParams(ctx)
	submissions, total, err := c.QuizService.ListQuizSubmissions(claims.UserID, util.MustParseUint(ctx.Param("id")), page, limit)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, util.PageResponse{List: submissions, Total: total, Page: page, Limit: limit})
}
