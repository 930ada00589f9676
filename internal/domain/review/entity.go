package review

import (
	"time"

	"nagoyameshi/internal/pkg/errs"
)

type Review struct {
	id           int64
	restaurantID int64
	userID       int64
	score        Score
	content      Content
	createdAt    time.Time
	updatedAt    time.Time
}

func parse(scoreValue int, contentText string) (Score, Content, error) {
	fe := errs.FieldErrors{}
	score, err := NewScore(scoreValue)
	if err != nil {
		fe.Add("score", err.Error())
	}
	content, err := NewContent(contentText)
	if err != nil {
		fe.Add("content", err.Error())
	}
	return score, content, fe.Err()
}

func NewReview(restaurantID, userID int64, scoreValue int, contentText string, now time.Time) (*Review, error) {
	score, content, err := parse(scoreValue, contentText)
	if err != nil {
		return nil, err
	}

	return &Review{
		restaurantID: restaurantID,
		userID:       userID,
		score:        score,
		content:      content,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func Reconstruct(id, restaurantID, userID int64, score Score, content Content, createdAt, updatedAt time.Time) *Review {
	return &Review{
		id:           id,
		restaurantID: restaurantID,
		userID:       userID,
		score:        score,
		content:      content,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

// Edit rewrites score and content; the restaurant and author never change.
func (r *Review) Edit(scoreValue int, contentText string, now time.Time) error {
	score, content, err := parse(scoreValue, contentText)
	if err != nil {
		return err
	}
	r.score = score
	r.content = content
	r.updatedAt = now
	return nil
}

func (r *Review) ID() int64            { return r.id }
func (r *Review) RestaurantID() int64  { return r.restaurantID }
func (r *Review) UserID() int64        { return r.userID }
func (r *Review) Score() Score         { return r.score }
func (r *Review) Content() Content     { return r.content }
func (r *Review) CreatedAt() time.Time { return r.createdAt }
func (r *Review) UpdatedAt() time.Time { return r.updatedAt }

func (r *Review) SetID(id int64) { r.id = id }
