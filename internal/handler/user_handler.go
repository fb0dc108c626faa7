package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "lingua/internal/errors"
	"lingua/internal/model"
	"lingua/internal/service"
)

// UserHandler handles user administration endpoints.
type UserHandler struct {
	svc service.UserService
}

// NewUserHandler creates a handler layer.
func NewUserHandler(svc service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// CreateUserRequest represents an administrative user creation request.
// No credential is taken on this path; such users cannot log in until one
// is backfilled.
type CreateUserRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required"`
	Role  string `json:"role"`
}

// CreateUserResponse represents a successful user creation.
type CreateUserResponse struct {
	Success bool       `json:"success"`
	User    model.User `json:"user"`
}

// UsersResponse wraps the user list.
type UsersResponse struct {
	Users []model.User `json:"users"`
}

// CreateUser godoc
// @Summary Create a user (administrative)
// @Tags users
// @Accept json
// @Produce json
// @Param request body CreateUserRequest true "User payload"
// @Success 200 {object} CreateUserResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /users [post]
func (h *UserHandler) CreateUser(c echo.Context) error {
	var req CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "Name and email are required",
		})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "Name and email are required",
		})
	}

	user, err := h.svc.CreateUser(c.Request().Context(), req.Name, req.Email, req.Role)
	if err != nil {
		if errors.Is(err, apperrors.ErrEmailTaken) {
			return c.JSON(http.StatusBadRequest, apperrors.ErrorResponse{
				Error: "Email already exists",
			})
		}
		httpErr := apperrors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, apperrors.ErrorResponse{Error: httpErr.Message})
	}

	return c.JSON(http.StatusOK, CreateUserResponse{Success: true, User: *user})
}

// ListUsers godoc
// @Summary List users, newest first
// @Tags users
// @Produce json
// @Success 200 {object} UsersResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /users [get]
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.svc.ListUsers(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, apperrors.ErrorResponse{
			Error: "internal server error",
		})
	}
	if users == nil {
		users = []model.User{}
	}
	return c.JSON(http.StatusOK, UsersResponse{Users: users})
}
