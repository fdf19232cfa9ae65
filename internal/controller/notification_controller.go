package controller

import (
	"nura_backend/internal/service"
	"nura_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type NotificationController struct {
	NotificationService *service.NotificationService
}

func NewNotificationController(notificationService *service.NotificationService) *NotificationController {
	return &NotificationController{NotificationService: notificationService}
}

// List godoc
// @Summary Caller's notifications
// @Tags notifications
// @Produce json
// @Security ApiKeyAuth
// @Param unread query bool false "Unread only"
// @Success 200 {object} util.Response{data=[]model.Notification}
// @Router /api/notifications [get]
func (c *NotificationController) List(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}
	notifications, err := c.NotificationService.List(claims.UserID, ctx.Query("unread") == "true")
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, notifications)
}

// MarkRead godoc
// @Summary Mark one notification read
// @Tags notifications
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Notification ID"
// @Success 200 {object} util.Response
// @Router /api/notifications/{id}/read [put]
func (c *NotificationController) MarkRead(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}
	if err := c.NotificationService.MarkRead(util.MustParseUint(ctx.Param("id")), claims.UserID); err != nil {
		respondError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

type SendMessageRequest struct {
	RecipientID uint   `json:"recipientId" binding:"required"`
	Body        string `json:"body" binding:"required"`
}

// SendMessage godoc
// @Summary Send a direct message
// @Tags notifications
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body SendMessageRequest true "Recipient and text"
// @Success 201 {object} util.Response{data=model.Message}
// @Router /api/messages [post]
func (c *NotificationController) SendMessage(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req SendMessageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	message, err := c.NotificationService.SendMessage(claims.UserID, req.RecipientID, req.Body)
	if err != nil {
		respondError(ctx, err)
		return
	}
	util.Created(ctx, message)
}

// Conversation godoc
// @Summary Two-way message history with a peer
// @Tags notifications
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Peer user ID"
// @Success 200 {object} util.Response{data=[]model.Message}
// @Router /api/messages/{id} [get]
func (c *NotificationController) Conversation(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}
	messages, err := c.NotificationService.Conversation(claims.UserID, util.MustParseUint(ctx.Param("id")))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, messages)
}
