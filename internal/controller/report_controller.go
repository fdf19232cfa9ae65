package controller

import (
	"errors"

	"nura_backend/internal/model"
	"nura_backend/internal/service"
	"nura_backend/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ReportController struct {
	ReportService *service.ReportService
}

func NewReportController(reportService *service.ReportService) *ReportController {
	return &ReportController{ReportService: reportService}
}

// swagger:model GenerateReportRequest
type GenerateReportRequest struct {
	Type     string `json:"type" binding:"required,oneof=student course system quiz_feedback"`
	TargetID uint   `json:"targetId"`
}

// Generate godoc
// @Summary Generate and store an analysis report
// @Description Falls back to a metric-template report when generation is unavailable
// @Tags reports
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body GenerateReportRequest true "Report type and target"
// @Success 201 {object} util.Response{data=model.AIReport}
// @Router /api/reports [post]
func (c *ReportController) Generate(ctx *gin.Context) {
	var req GenerateReportRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	report, err := c.ReportService.Generate(ctx.Request.Context(), model.ReportType(req.Type), req.TargetID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, report)
}

// Get godoc
// @Summary One stored report
// @Tags reports
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Report ID"
// @Success 200 {object} util.Response{data=model.AIReport}
// @Router /api/reports/{id} [get]
func (c *ReportController) Get(ctx *gin.Context) {
	report, err := c.ReportService.Get(util.MustParseUint(ctx.Param("id")))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		util.NotFound(ctx)
		return
	}
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, report)
}

// List godoc
// @Summary Stored reports
// @Tags reports
// @Produce json
// @Security ApiKeyAuth
// @Param type query string false "Report type filter"
// @Param targetId query int false "Target filter"
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Router /api/reports [get]
func (c *ReportController) List(ctx *gin.Context) {
	page, limit := pageParams(ctx)
	reports, total, err := c.ReportService.List(model.ReportType(ctx.Query("type")), util.MustParseUint(ctx.Query("targetId")), page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, util.PageResponse{List: reports, Total: total, Page: page, Limit: limit})
}
