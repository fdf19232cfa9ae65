package controller

import (
	"nura_backend/internal/model"
	"nura_backend/internal/service"
	"nura_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AnalyticsController struct {
	AnalyticsService *service.AnalyticsService
}

func NewAnalyticsController(analyticsService *service.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{AnalyticsService: analyticsService}
}

func bindFilter(ctx *gin.Context) (model.AnalyticsFilter, bool) {
	var filter model.AnalyticsFilter
	if err := ctx.ShouldBindQuery(&filter); err != nil {
		util.BadRequest(ctx, err.Error())
		return filter, false
	}
	return filter, true
}

// EnrollmentStats godoc
// @Summary Enrollment aggregates
// @Tags analytics
// @Produce json
// @Security ApiKeyAuth
// @Param from query string false "Date lower bound (YYYY-MM-DD)"
// @Param to query string false "Date upper bound (YYYY-MM-DD)"
// @Param organizationId query int false "Organization filter"
// @Param courseId query int false "Course filter"
// @Param userId query int false "User filter"
// @Success 200 {object} util.Response{data=model.EnrollmentStats}
// @Router /api/analytics/enrollments [get]
func (c *AnalyticsController) EnrollmentStats(ctx *gin.Context) {
	filter, ok := bindFilter(ctx)
	if !ok {
		return
	}
	stats, err := c.AnalyticsService.EnrollmentStats(filter)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, stats)
}

// QuizStats godoc
// @Summary Quiz submission aggregates
// @Tags analytics
// @Produce json
// @Security ApiKeyAuth
// @Param from query string false "Date lower bound (YYYY-MM-DD)"
// @Param to query string false "Date upper bound (YYYY-MM-DD)"
// @Param organizationId query int false "Organization filter"
// @Param courseId query int false "Course filter"
// @Param quizId query int false "Quiz filter"
// @Param userId query int false "User filter"
// @Success 200 {object} util.Response{data=model.QuizStats}
// @Router /api/analytics/quizzes [get]
func (c *AnalyticsController) QuizStats(ctx *gin.Context) {
	filter, ok := bindFilter(ctx)
	if !ok {
		return
	}
	stats, err := c.AnalyticsService.QuizStats(filter)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, stats)
}

// Trend godoc
// @Summary Month-bucketed activity series
// @Description Real computed buckets; empty months appear as zeros
// @Tags analytics
// @Produce json
// @Security ApiKeyAuth
// @Param months query int false "Window size in months, default 12"
// @Success 200 {object} util.Response{data=[]model.TrendPoint}
// @Router /api/analytics/trend [get]
func (c *AnalyticsController) Trend(ctx *gin.Context) {
	filter, ok := bindFilter(ctx)
	if !ok {
		return
	}
	months := int(util.MustParseUint(ctx.DefaultQuery("months", "12")))
	trend, err := c.AnalyticsService.Trend(filter, months)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, trend)
}

// Overview godoc
// @Summary Combined dashboard numbers
// @Tags analytics
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=model.DashboardOverview}
// @Router /api/analytics/overview [get]
func (c *AnalyticsController) Overview(ctx *gin.Context) {
	filter, ok := bindFilter(ctx)
	if !ok {
		return
	}
	overview, err := c.AnalyticsService.Overview(filter)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, overview)
}
