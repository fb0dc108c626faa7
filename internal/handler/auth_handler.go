package handler

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	apperrors "lingua/internal/errors"
	"lingua/internal/model"
	"lingua/internal/service"
)

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// SignupRequest represents a signup request.
type SignupRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginRequest represents a login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// SignupUser is the subset of the new user echoed back on signup. The
// credential is never part of any response.
type SignupUser struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// SignupResponse represents a successful signup.
type SignupResponse struct {
	Success bool       `json:"success"`
	User    SignupUser `json:"user"`
}

// LoginResponse represents a successful login.
type LoginResponse struct {
	Success bool       `json:"success"`
	User    model.User `json:"user"`
}

// AuthErrorResponse is the failure envelope used by the auth endpoints.
type AuthErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Signup godoc
// @Summary Sign up a new student account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body SignupRequest true "Signup data"
// @Success 200 {object} SignupResponse
// @Failure 400 {object} AuthErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /auth/signup [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	var req SignupRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, AuthErrorResponse{
			Message: "Name, email, and password are required",
		})
	}

	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, AuthErrorResponse{
			Message: signupValidationMessage(err),
		})
	}

	user, err := h.authService.Signup(c.Request().Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, apperrors.ErrEmailTaken) {
			return c.JSON(http.StatusBadRequest, AuthErrorResponse{
				Message: "User with this email already exists",
			})
		}
		return c.JSON(http.StatusInternalServerError, apperrors.ErrorResponse{
			Error: "internal server error",
		})
	}

	return c.JSON(http.StatusOK, SignupResponse{
		Success: true,
		User: SignupUser{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
			Role:  user.Role,
		},
	})
}

// Login godoc
// @Summary Log in with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} AuthErrorResponse
// @Failure 401 {object} AuthErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, AuthErrorResponse{
			Message: "Email and password are required",
		})
	}

	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, AuthErrorResponse{
			Message: "Email and password are required",
		})
	}

	user, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, AuthErrorResponse{
				Message: "Invalid credentials",
			})
		}
		return c.JSON(http.StatusInternalServerError, apperrors.ErrorResponse{
			Error: "internal server error",
		})
	}

	return c.JSON(http.StatusOK, LoginResponse{Success: true, User: *user})
}

// signupValidationMessage keeps the presence check ahead of the length check:
// a short password is only reported once all three fields are present.
func signupValidationMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		minOnly := true
		for _, fe := range verrs {
			if fe.Tag() != "min" {
				minOnly = false
			}
		}
		if minOnly {
			return "Password must be at least 6 characters"
		}
	}
	return "Name, email, and password are required"
}
