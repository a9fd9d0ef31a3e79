package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/house-hunter/server/internal/core/domain"
	"github.com/house-hunter/server/internal/core/ports"
)

// UserHandler handles read access to the users collection. Both routes sit
// behind the token gate; password hashes never appear in responses because
// domain.User excludes the hash from JSON.
type UserHandler struct {
	userService ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// List returns every registered user.
//
// @Summary      List all users
// @Tags         users
// @Produce      json
// @Security     ApiKeyAuth
// @Success      200  {array}   domain.User
// @Failure      403  {object}  map[string]string
// @Router       /users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.userService.List(c.Request().Context())
	if err != nil {
		return err
	}
	if users == nil {
		users = []*domain.User{}
	}
	return c.JSON(http.StatusOK, users)
}

// GetByEmail looks up a single user. A miss is not an error: the original
// contract returns an empty result, rendered here as a JSON null.
//
// @Summary      Get a user by email
// @Tags         users
// @Produce      json
// @Security     ApiKeyAuth
// @Param        email  path      string  true  "User email"
// @Success      200    {object}  domain.User
// @Failure      403    {object}  map[string]string
// @Router       /user/{email} [get]
func (h *UserHandler) GetByEmail(c echo.Context) error {
	user, err := h.userService.FindByEmail(c.Request().Context(), c.Param("email"))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.JSON(http.StatusOK, nil)
		}
		return err
	}
	return c.JSON(http.StatusOK, user)
}
