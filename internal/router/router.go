package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"lingua/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	messageHandler *handler.MessageHandler,
	registrationHandler *handler.RegistrationHandler,
	healthHandler *handler.HealthHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	api.POST("/auth/signup", authHandler.Signup)
	api.POST("/auth/login", authHandler.Login)

	api.GET("/users", userHandler.ListUsers)
	api.POST("/users", userHandler.CreateUser)

	api.GET("/messages", messageHandler.ListMessages)
	api.POST("/messages", messageHandler.CreateMessage)

	api.GET("/registrations", registrationHandler.ListRegistrations)
	api.POST("/registrations", registrationHandler.CreateRegistration)

	api.GET("/health", healthHandler.Health)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
