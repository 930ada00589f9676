package request

import "nagoyameshi/internal/usecase/commands"

type ReviewRequest struct {
	Score   int    `json:"score"`
	Content string `json:"content"`
}

func (r ReviewRequest) ToCommand() commands.ReviewRequest {
	return commands.ReviewRequest{Score: r.Score, Content: r.Content}
}
