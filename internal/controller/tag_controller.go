package controller

import (
	"context"
	"net/http"

	"nura_backend/internal/service"
	"nura_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type TagController struct {
	TagService *service.TagService
}

func NewTagController(tagService *service.TagService) *TagController {
	return &TagController{TagService: tagService}
}

// List godoc
// @Summary All tags
// @Tags tags
// @Produce json
// @Success 200 {object} util.Response{data=[]model.Tag}
// @Router /api/tags [get]
func (c *TagController) List(ctx *gin.Context) {
	tags, err := c.TagService.ListTags()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, tags)
}

// ListCourseTags godoc
// @Summary Tags linked to a course, highest confidence first
// @Tags tags
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} util.Response{data=[]model.CourseTag}
// @Router /api/courses/{id}/tags [get]
func (c *TagController) ListCourseTags(ctx *gin.Context) {
	links, err := c.TagService.ListCourseTags(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, links)
}

// swagger:model SuggestTagsRequest
type SuggestTagsRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Content     string `json:"content"`
}

// Suggest godoc
// @Summary Preview tag suggestions for course text
// @Description Keyword matches plus optional generated candidates; nothing is persisted
// @Tags tags
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body SuggestTagsRequest true "Course text"
// @Success 200 {object} util.Response{data=[]model.TagSuggestion}
// @Router /api/tags/suggest [post]
func (c *TagController) Suggest(ctx *gin.Context) {
	var req SuggestTagsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	util.Success(ctx, c.TagService.Suggest(ctx.Request.Context(), req.Title, req.Description, req.Content))
}

// Backfill godoc
// @Summary Re-run auto-tagging over untagged published courses
// @Tags tags
// @Produce json
// @Security ApiKeyAuth
// @Param limit query int false "Maximum courses to process, default 100"
// @Success 202 {object} util.Response
// @Router /api/admin/tags/backfill [post]
func (c *TagController) Backfill(ctx *gin.Context) {
	limit := int(util.MustParseUint(ctx.DefaultQuery("limit", "100")))
	go c.TagService.BackfillUntagged(context.Background(), limit)
	ctx.JSON(http.StatusAccepted, util.Response{Code: http.StatusAccepted, Message: "backfill started"})
}

// Delete godoc
// @Summary Delete a tag and all its course links
// @Tags tags
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Tag ID"
// @Success 200 {object} util.Response
// @Router /api/admin/tags/{id} [delete]
func (c *TagController) Delete(ctx *gin.Context) {
	if err := c.TagService.DeleteTag(util.MustParseUint(ctx.Param("id"))); err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
