package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/interviewsim/interview-api/internal/core/domain"
	"github.com/interviewsim/interview-api/internal/core/ports"
)

// SessionHandler handles HTTP requests for the interview session lifecycle.
type SessionHandler struct {
	service ports.SessionService
}

func NewSessionHandler(service ports.SessionService) *SessionHandler {
	return &SessionHandler{service: service}
}

type sessionResponse struct {
	ID              string     `json:"id"`
	UserID          string     `json:"user_id"`
	Username        string     `json:"username"`
	StartTime       time.Time  `json:"start_time"`
	EndTime         *time.Time `json:"end_time,omitempty"`
	Status          string     `json:"status"`
	DurationMinutes int64      `json:"duration_minutes"`
}

type sessionListResponse struct {
	Data       []sessionResponse  `json:"data"`
	Pagination paginationResponse `json:"pagination"`
}

func toSessionResponse(s *domain.InterviewSession) sessionResponse {
	return sessionResponse{
		ID:              s.ID,
		UserID:          s.UserID,
		Username:        s.Username,
		StartTime:       s.StartTime.UTC(),
		EndTime:         s.EndTime,
		Status:          string(s.Status),
		DurationMinutes: s.DurationMinutes(time.Now().UTC()),
	}
}

func toSessionResponses(sessions []domain.InterviewSession) []sessionResponse {
	out := make([]sessionResponse, len(sessions))
	for i := range sessions {
		out[i] = toSessionResponse(&sessions[i])
	}
	return out
}

// List handles GET /api/sessions?page&size (admin only).
func (h *SessionHandler) List(c echo.Context) error {
	page, size := pagingParams(c)
	list, err := h.service.List(c.Request().Context(), page, size)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sessionListResponse{
		Data: toSessionResponses(list.Items),
		Pagination: paginationResponse{
			Total:      list.Total,
			Page:       list.Page,
			Size:       list.Size,
			TotalPages: list.TotalPages,
		},
	})
}

// Get handles GET /api/sessions/:id (admin or owner).
func (h *SessionHandler) Get(c echo.Context) error {
	session, err := h.service.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toSessionResponse(session))
}

// GetUserSessions handles GET /api/sessions/user/:userId (admin or self).
func (h *SessionHandler) GetUserSessions(c echo.Context) error {
	sessions, err := h.service.GetUserSessions(c.Request().Context(), c.Param("userId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toSessionResponses(sessions))
}

// Start handles POST /api/sessions/start?userId=.
//
// @Summary      Start an interview session
// @Tags         sessions
// @Produce      json
// @Security     BearerAuth
// @Param        userId  query     string  true  "User id the session belongs to"
// @Success      200     {object}  sessionResponse
// @Failure      400     {object}  api.errorResponse  "user already has an active session"
// @Failure      404     {object}  api.errorResponse
// @Router       /api/sessions/start [post]
func (h *SessionHandler) Start(c echo.Context) error {
	userID := c.QueryParam("userId")
	if userID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "userId is required")
	}

	session, err := h.service.Start(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toSessionResponse(session))
}

// End handles POST /api/sessions/:id/end (admin or owner).
func (h *SessionHandler) End(c echo.Context) error {
	session, err := h.service.End(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toSessionResponse(session))
}

// Cancel handles POST /api/sessions/:id/cancel (admin or owner).
func (h *SessionHandler) Cancel(c echo.Context) error {
	session, err := h.service.Cancel(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toSessionResponse(session))
}
