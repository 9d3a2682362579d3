package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/interviewsim/interview-api/internal/core/domain"
	"github.com/interviewsim/interview-api/internal/core/ports"
)

// QuestionHandler handles HTTP requests for the question bank.
type QuestionHandler struct {
	service ports.QuestionService
}

func NewQuestionHandler(service ports.QuestionService) *QuestionHandler {
	return &QuestionHandler{service: service}
}

// List handles GET /api/questions?page&size.
//
// @Summary      List questions with pagination
// @Tags         questions
// @Produce      json
// @Security     BearerAuth
// @Param        page  query     int  false  "Page number (0-based)"
// @Param        size  query     int  false  "Page size"
// @Success      200   {object}  questionListResponse
// @Router       /api/questions [get]
func (h *QuestionHandler) List(c echo.Context) error {
	page, size := pagingParams(c)
	list, err := h.service.List(c.Request().Context(), page, size)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toQuestionListResponse(list))
}

// Get handles GET /api/questions/:id.
func (h *QuestionHandler) Get(c echo.Context) error {
	q, err := h.service.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toQuestionResponse(q))
}

// GetByCategory handles GET /api/questions/category/:category.
func (h *QuestionHandler) GetByCategory(c echo.Context) error {
	category, err := domain.ParseCategory(c.Param("category"))
	if err != nil {
		return err
	}

	questions, err := h.service.GetByCategory(c.Request().Context(), category)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toQuestionResponses(questions))
}

// GetByDifficulty handles GET /api/questions/difficulty/:difficulty.
func (h *QuestionHandler) GetByDifficulty(c echo.Context) error {
	difficulty, err := domain.ParseDifficulty(c.Param("difficulty"))
	if err != nil {
		return err
	}

	questions, err := h.service.GetByDifficulty(c.Request().Context(), difficulty)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toQuestionResponses(questions))
}

// Search handles GET /api/questions/search?q=.
func (h *QuestionHandler) Search(c echo.Context) error {
	keyword := c.QueryParam("q")
	if keyword == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "q is required")
	}

	questions, err := h.service.Search(c.Request().Context(), keyword)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toQuestionResponses(questions))
}

// Random handles GET /api/questions/random?category&difficulty&limit.
//
// @Summary      Sample random questions by category and difficulty
// @Tags         questions
// @Produce      json
// @Security     BearerAuth
// @Param        category    query     string  true   "Question category"
// @Param        difficulty  query     string  true   "Question difficulty"
// @Param        limit       query     int     false  "Maximum questions returned (default 5)"
// @Success      200         {array}   questionResponse
// @Failure      400         {object}  api.errorResponse
// @Router       /api/questions/random [get]
func (h *QuestionHandler) Random(c echo.Context) error {
	category, err := domain.ParseCategory(c.QueryParam("category"))
	if err != nil {
		return err
	}
	difficulty, err := domain.ParseDifficulty(c.QueryParam("difficulty"))
	if err != nil {
		return err
	}

	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	questions, err := h.service.GetRandom(c.Request().Context(), ports.QuestionFilter{
		Category:   category,
		Difficulty: difficulty,
	}, limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toQuestionResponses(questions))
}

// Create handles POST /api/questions (admin only).
func (h *QuestionHandler) Create(c echo.Context) error {
	var req createQuestionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	category, err := domain.ParseCategory(req.Category)
	if err != nil {
		return err
	}
	difficulty, err := domain.ParseDifficulty(req.Difficulty)
	if err != nil {
		return err
	}

	q, err := h.service.Create(c.Request().Context(), ports.CreateQuestionInput{
		Text:       req.Text,
		Category:   category,
		Difficulty: difficulty,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toQuestionResponse(q))
}

// Update handles PUT /api/questions/:id (admin only). Only non-empty fields
// overwrite existing values.
func (h *QuestionHandler) Update(c echo.Context) error {
	var req updateQuestionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	in := ports.UpdateQuestionInput{Text: req.Text}
	if req.Category != "" {
		category, err := domain.ParseCategory(req.Category)
		if err != nil {
			return err
		}
		in.Category = category
	}
	if req.Difficulty != "" {
		difficulty, err := domain.ParseDifficulty(req.Difficulty)
		if err != nil {
			return err
		}
		in.Difficulty = difficulty
	}

	q, err := h.service.Update(c.Request().Context(), c.Param("id"), in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toQuestionResponse(q))
}

// Delete handles DELETE /api/questions/:id (admin only).
func (h *QuestionHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// pagingParams extracts page/size query parameters; defaults are applied by
// the service layer.
func pagingParams(c echo.Context) (int, int) {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	size, _ := strconv.Atoi(c.QueryParam("size"))
	return page, size
}
