package handler

import (
	"github.com/interviewsim/interview-api/internal/core/domain"
	"github.com/interviewsim/interview-api/internal/core/ports"
)

func toQuestionResponse(q *domain.Question) questionResponse {
	return questionResponse{
		ID:         q.ID,
		Text:       q.Text,
		Category:   string(q.Category),
		Difficulty: string(q.Difficulty),
		CreatedAt:  q.CreatedAt.UTC(),
		UpdatedAt:  q.UpdatedAt.UTC(),
	}
}

func toQuestionResponses(questions []domain.Question) []questionResponse {
	out := make([]questionResponse, len(questions))
	for i := range questions {
		out[i] = toQuestionResponse(&questions[i])
	}
	return out
}

func toQuestionListResponse(list *ports.QuestionList) questionListResponse {
	return questionListResponse{
		Data: toQuestionResponses(list.Items),
		Pagination: paginationResponse{
			Total:      list.Total,
			Page:       list.Page,
			Size:       list.Size,
			TotalPages: list.TotalPages,
		},
	}
}
