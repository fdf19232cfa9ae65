package controller

import (
	"io"
	"time"

	"nura_backend/internal/model"
	"nura_backend/internal/service"
	"nura_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AssignmentController struct {
	AssignmentService *service.AssignmentService
}

func NewAssignmentController(assignmentService *service.AssignmentService) *AssignmentController {
	return &AssignmentController{AssignmentService: assignmentService}
}

// swagger:model AssignmentRequest
type AssignmentRequest struct {
	CourseID    uint       `json:"courseId" binding:"required"`
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description"`
	DueDate     *time.Time `json:"dueDate"`
	MaxScore    int        `json:"maxScore"`
}

// Create godoc
// @Summary Create an assignment
// @Tags assignments
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body AssignmentRequest true "Assignment fields"
// @Success 201 {object} util.Response{data=model.Assignment}
// @Router /api/assignments [post]
func (c *AssignmentController) Create(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req AssignmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	assignment := &model.Assignment{
		CourseID:    req.CourseID,
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		MaxScore:    req.MaxScore,
	}
	if err := c.AssignmentService.Create(claims.UserID, assignment); err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, assignment)
}

// ListByCourse godoc
// @Summary Assignments of a course
// @Tags assignments
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Course ID"
// @Success 200 {object} util.Response{data=[]model.Assignment}
// @Router /api/courses/{id}/assignments [get]
func (c *AssignmentController) ListByCourse(ctx *gin.Context) {
	assignments, err := c.AssignmentService.ListByCourse(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, assignments)
}

// Delete godoc
// @Summary Delete an assignment
// @Tags assignments
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Assignment ID"
// @Success 200 {object} util.Response
// @Router /api/assignments/{id} [delete]
func (c *AssignmentController) Delete(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}
	if err := c.AssignmentService.Delete(claims.UserID, util.MustParseUint(ctx.Param("id"))); err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// Submit godoc
// @Summary Submit work for an assignment
// @Description Accepts text content and an optional file attachment
// @Tags assignments
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Assignment ID"
// @Param content formData string false "Text answer"
// @Param file formData file false "Attachment"
// @Success 201 {object} util.Response{data=model.AssignmentSubmission}
// @Router /api/assignments/{id}/submit [post]
func (c *AssignmentController) Submit(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	content := ctx.PostForm("content")
	var (
		reader      io.Reader
		size        int64
		filename    string
		contentType string
	)
	if fileHeader, err := ctx.FormFile("file"); err == nil {
		file, err := fileHeader.Open()
		if err != nil {
			util.LogInternalError(ctx, err)
			return
		}
		defer file.Close()
		reader = file
		size = fileHeader.Size
		filename = fileHeader.Filename
		contentType = fileHeader.Header.Get("Content-Type")
		if contentType == "" {
			contentType = util.MimeOctetStream
		}
	}

	if content == "" && reader == nil {
		util.BadRequest(ctx, "submission needs content or a file")
		return
	}

	submission, err := c.AssignmentService.Submit(ctx.Request.Context(), claims.UserID, util.MustParseUint(ctx.Param("id")), content, reader, size, filename, contentType)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, submission)
}

// ListSubmissions godoc
// @Summary Submissions for an assignment (owner only)
// @Tags assignments
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Assignment ID"
// @Success 200 {object} util.Response{data=[]model.AssignmentSubmission}
// @Router /api/assignments/{id}/submissions [get]
func (c *AssignmentController) ListSubmissions(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}
	submissions, err := c.AssignmentService.ListSubmissions(claims.UserID, util.MustParseUint(ctx.Param("id")))
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, submissions)
}

type GradeRequest struct {
	Score    int    `json:"score" binding:"min=0"`
	Feedback string `json:"feedback"`
}

// Grade godoc
// @Summary Grade a submission
// @Tags assignments
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Submission ID"
// @Param body body GradeRequest true "Score and feedback"
// @Success 200 {object} util.Response{data=model.AssignmentSubmission}
// @Router /api/assignment-submissions/{id}/grade [put]
func (c *AssignmentController) Grade(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req GradeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	submission, err := c.AssignmentService.GradeSubmission(claims.UserID, util.MustParseUint(ctx.Param("id")), req.Score, req.Feedback)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, submission)
}
