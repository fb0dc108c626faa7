package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "lingua/internal/errors"
	"lingua/internal/model"
	"lingua/internal/service"
)

// MessageHandler handles contact-form endpoints.
type MessageHandler struct {
	svc service.MessageService
}

// NewMessageHandler creates a new message handler.
func NewMessageHandler(svc service.MessageService) *MessageHandler {
	return &MessageHandler{svc: svc}
}

// CreateMessageRequest represents a contact-form submission.
type CreateMessageRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required"`
	Message string `json:"message" validate:"required"`
}

// CreateMessageResponse represents a stored contact message.
type CreateMessageResponse struct {
	Success bool          `json:"success"`
	Message model.Message `json:"message"`
}

// MessagesResponse wraps the message list.
type MessagesResponse struct {
	Messages []model.Message `json:"messages"`
}

// CreateMessage godoc
// @Summary Submit a contact message
// @Tags messages
// @Accept json
// @Produce json
// @Param request body CreateMessageRequest true "Message payload"
// @Success 200 {object} CreateMessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /messages [post]
func (h *MessageHandler) CreateMessage(c echo.Context) error {
	var req CreateMessageRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "Name, email, and message are required",
		})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "Name, email, and message are required",
		})
	}

	msg, err := h.svc.CreateMessage(c.Request().Context(), req.Name, req.Email, req.Message)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, apperrors.ErrorResponse{
			Error: "internal server error",
		})
	}

	return c.JSON(http.StatusOK, CreateMessageResponse{Success: true, Message: *msg})
}

// ListMessages godoc
// @Summary List contact messages, newest first
// @Tags messages
// @Produce json
// @Success 200 {object} MessagesResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /messages [get]
func (h *MessageHandler) ListMessages(c echo.Context) error {
	msgs, err := h.svc.ListMessages(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, apperrors.ErrorResponse{
			Error: "internal server error",
		})
	}
	if msgs == nil {
		msgs = []model.Message{}
	}
	return c.JSON(http.StatusOK, MessagesResponse{Messages: msgs})
}
