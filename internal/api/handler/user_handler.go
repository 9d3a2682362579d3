package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/interviewsim/interview-api/internal/api/middleware"
	"github.com/interviewsim/interview-api/internal/core/domain"
	"github.com/interviewsim/interview-api/internal/core/ports"
)

// UserHandler handles HTTP requests for user profiles. Password material is
// never part of any response.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

type updateUserRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type userResponse struct {
	ID       string   `json:"id"`
	Username string   `json:"username"`
	Email    string   `json:"email"`
	Roles    []string `json:"roles"`
}

type userListResponse struct {
	Data       []userResponse     `json:"data"`
	Pagination paginationResponse `json:"pagination"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Roles:    u.Roles,
	}
}

// List handles GET /api/users?page&size (admin only).
func (h *UserHandler) List(c echo.Context) error {
	page, size := pagingParams(c)
	list, err := h.service.List(c.Request().Context(), page, size)
	if err != nil {
		return err
	}

	users := make([]userResponse, len(list.Items))
	for i := range list.Items {
		users[i] = toUserResponse(&list.Items[i])
	}
	return c.JSON(http.StatusOK, userListResponse{
		Data: users,
		Pagination: paginationResponse{
			Total:      list.Total,
			Page:       list.Page,
			Size:       list.Size,
			TotalPages: list.TotalPages,
		},
	})
}

// Get handles GET /api/users/:id (admin or self).
func (h *UserHandler) Get(c echo.Context) error {
	user, err := h.service.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}

// GetByUsername handles GET /api/users/username/:username (admin or self).
func (h *UserHandler) GetByUsername(c echo.Context) error {
	user, err := h.service.GetByUsername(c.Request().Context(), c.Param("username"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}

// Me handles GET /api/users/me for the authenticated caller.
func (h *UserHandler) Me(c echo.Context) error {
	caller := middleware.Caller(c)
	if caller == nil {
		return domain.ErrUnauthorized
	}
	return c.JSON(http.StatusOK, toUserResponse(caller))
}

// Update handles PUT /api/users/:id (admin or self). Email is the only
// mutable field through this path.
func (h *UserHandler) Update(c echo.Context) error {
	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.service.UpdateEmail(c.Request().Context(), c.Param("id"), req.Email)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}

// Delete handles DELETE /api/users/:id (admin only).
func (h *UserHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
