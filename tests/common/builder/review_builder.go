//go:build unit || e2e

package builder

import (
	"time"

	domreview "nagoyameshi/internal/domain/review"
	reqdto "nagoyameshi/internal/handler/dto/request"
	"nagoyameshi/internal/usecase/queries"
)

type ReviewBuilder struct {
	ID           int64
	RestaurantID int64
	UserID       int64
	UserName     string
	Score        int
	Content      string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func NewReviewBuilder() *ReviewBuilder {
	now := time.Now()
	return &ReviewBuilder{
		ID:           1,
		RestaurantID: 1,
		UserID:       1,
		UserName:     "名古屋 太郎",
		Score:        5,
		Content:      "とても美味しかったです。",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func (b *ReviewBuilder) With(mutate func(*ReviewBuilder)) *ReviewBuilder {
	mutate(b)
	return b
}

func (b *ReviewBuilder) BuildDomain() (*domreview.Review, error) {
	return domreview.NewReview(b.RestaurantID, b.UserID, b.Score, b.Content, b.CreatedAt)
}

func (b *ReviewBuilder) BuildView() *queries.ReviewView {
	return &queries.ReviewView{
		ID:           b.ID,
		RestaurantID: b.RestaurantID,
		UserID:       b.UserID,
		UserName:     b.UserName,
		Score:        b.Score,
		Content:      b.Content,
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
}

func (b *ReviewBuilder) BuildDTO() reqdto.ReviewRequest {
	return reqdto.ReviewRequest{Score: b.Score, Content: b.Content}
}

func (b *ReviewBuilder) WithID(id int64) *ReviewBuilder {
	b.ID = id
	return b
}

func (b *ReviewBuilder) WithRestaurantID(id int64) *ReviewBuilder {
	b.RestaurantID = id
	return b
}

func (b *ReviewBuilder) WithUserID(id int64) *ReviewBuilder {
	b.UserID = id
	return b
}

func (b *ReviewBuilder) WithScore(score int) *ReviewBuilder {
	b.Score = score
	return b
}

func (b *ReviewBuilder) WithContent(content string) *ReviewBuilder {
	b.Content = content
	return b
}
