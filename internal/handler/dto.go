package handler

import "lifecoach/internal/model"

// Pointer fields let "present but empty" through while rejecting missing keys.

type AnalyzeRequest struct {
	Feeling  *string `json:"feeling" binding:"required"`
	Troubles *string `json:"troubles" binding:"required"`
	Changes  *string `json:"changes" binding:"required"`
}

type AnalyzeResponse struct {
	Problems []model.Problem `json:"problems"`
}

type ProblemRequest struct {
	ID          *int    `json:"id" binding:"required"`
	Title       *string `json:"title" binding:"required"`
	Description *string `json:"description" binding:"required"`
}

type RecommendRequest struct {
	Problems []ProblemRequest `json:"problems" binding:"required,dive"`
}

type RecommendResponse struct {
	Recommendations []model.Recommendation `json:"recommendations"`
}

type ErrorResponse struct {
	Detail string `json:"detail"`
}

func (r RecommendRequest) toProblems() []model.Problem {
	problems := make([]model.Problem, len(r.Problems))
	for i, p := range r.Problems {
		problems[i] = model.Problem{
			ID:          *p.ID,
			Title:       *p.Title,
			Description: *p.Description,
		}
	}
	return problems
}
