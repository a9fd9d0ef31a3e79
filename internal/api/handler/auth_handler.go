package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/house-hunter/server/internal/api/metrics"
	"github.com/house-hunter/server/internal/core/domain"
	"github.com/house-hunter/server/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
	activity    ports.ActivityRecorder
}

func NewAuthHandler(authService ports.AuthService, activity ports.ActivityRecorder) *AuthHandler {
	return &AuthHandler{authService: authService, activity: activity}
}

type registerRequest struct {
	Name     string `json:"name"     validate:"required"`
	Role     string `json:"role"`
	Phone    string `json:"phone"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type authResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

// Register creates a new user account and returns a bearer token.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "User registration details"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, user, err := h.authService.Register(c.Request().Context(), req.Name, req.Role, req.Phone, req.Email, req.Password)
	if err != nil {
		if err == domain.ErrUserExists {
			metrics.RegistrationsTotal.WithLabelValues("conflict").Inc()
		} else {
			metrics.RegistrationsTotal.WithLabelValues("error").Inc()
		}
		return err
	}

	metrics.RegistrationsTotal.WithLabelValues("created").Inc()
	h.record(c, user.Email, domain.ActionRegister)

	return c.JSON(http.StatusCreated, authResponse{Token: token, User: user})
}

// Login authenticates a user and returns a fresh bearer token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      429   {object}  map[string]string
// @Router       /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		switch err {
		case domain.ErrInvalidCredentials:
			metrics.LoginsTotal.WithLabelValues("unauthorized").Inc()
			h.record(c, req.Email, domain.ActionLoginFailed)
		case domain.ErrTooManyAttempts:
			metrics.LoginThrottledTotal.Inc()
		default:
			metrics.LoginsTotal.WithLabelValues("error").Inc()
		}
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	h.record(c, user.Email, domain.ActionLogin)

	return c.JSON(http.StatusOK, authResponse{Token: token, User: user})
}

func (h *AuthHandler) record(c echo.Context, email, action string) {
	h.activity.Record(domain.AuthEvent{
		Email:     email,
		Action:    action,
		At:        time.Now().UTC(),
		RequestID: c.Response().Header().Get(echo.HeaderXRequestID),
	})
}
