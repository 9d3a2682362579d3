package handler

import "time"

type createQuestionRequest struct {
	Text       string `json:"text"       validate:"required"`
	Category   string `json:"category"   validate:"required"`
	Difficulty string `json:"difficulty" validate:"required"`
}

// updateQuestionRequest carries a partial update. Empty fields leave the
// stored value untouched; clearing a field to empty is indistinguishable from
// omitting it.
type updateQuestionRequest struct {
	Text       string `json:"text"`
	Category   string `json:"category"`
	Difficulty string `json:"difficulty"`
}

type questionResponse struct {
	ID         string    `json:"id"`
	Text       string    `json:"text"`
	Category   string    `json:"category"`
	Difficulty string    `json:"difficulty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type paginationResponse struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Size       int   `json:"size"`
	TotalPages int   `json:"total_pages"`
}

type questionListResponse struct {
	Data       []questionResponse `json:"data"`
	Pagination paginationResponse `json:"pagination"`
}
