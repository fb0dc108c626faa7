package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "lingua/internal/errors"
	"lingua/internal/model"
	"lingua/internal/service"
)

// RegistrationHandler handles course-registration endpoints.
type RegistrationHandler struct {
	svc service.RegistrationService
}

// NewRegistrationHandler creates a new registration handler.
func NewRegistrationHandler(svc service.RegistrationService) *RegistrationHandler {
	return &RegistrationHandler{svc: svc}
}

// CreateRegistrationRequest represents a course registration. Phone,
// experience and goals are optional.
type CreateRegistrationRequest struct {
	UserName    string `json:"user_name" validate:"required"`
	Email       string `json:"email" validate:"required"`
	Phone       string `json:"phone"`
	CourseID    string `json:"course_id" validate:"required"`
	CourseTitle string `json:"course_title" validate:"required"`
	Experience  string `json:"experience"`
	Goals       string `json:"goals"`
}

// CreateRegistrationResponse represents a stored registration.
type CreateRegistrationResponse struct {
	Success      bool                     `json:"success"`
	Registration model.CourseRegistration `json:"registration"`
}

// RegistrationsResponse wraps the registration list.
type RegistrationsResponse struct {
	Registrations []model.CourseRegistration `json:"registrations"`
}

// CreateRegistration godoc
// @Summary Register for a course
// @Tags registrations
// @Accept json
// @Produce json
// @Param request body CreateRegistrationRequest true "Registration payload"
// @Success 200 {object} CreateRegistrationResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /registrations [post]
func (h *RegistrationHandler) CreateRegistration(c echo.Context) error {
	var req CreateRegistrationRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "Name, email, course_id, and course_title are required",
		})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "Name, email, course_id, and course_title are required",
		})
	}

	reg := &model.CourseRegistration{
		UserName:    req.UserName,
		Email:       req.Email,
		Phone:       req.Phone,
		CourseID:    req.CourseID,
		CourseTitle: req.CourseTitle,
		Experience:  req.Experience,
		Goals:       req.Goals,
	}
	created, err := h.svc.CreateRegistration(c.Request().Context(), reg)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, apperrors.ErrorResponse{
			Error: "internal server error",
		})
	}

	return c.JSON(http.StatusOK, CreateRegistrationResponse{Success: true, Registration: *created})
}

// ListRegistrations godoc
// @Summary List course registrations, newest first
// @Tags registrations
// @Produce json
// @Success 200 {object} RegistrationsResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /registrations [get]
func (h *RegistrationHandler) ListRegistrations(c echo.Context) error {
	regs, err := h.svc.ListRegistrations(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, apperrors.ErrorResponse{
			Error: "internal server error",
		})
	}
	if regs == nil {
		regs = []model.CourseRegistration{}
	}
	return c.JSON(http.StatusOK, RegistrationsResponse{Registrations: regs})
}
