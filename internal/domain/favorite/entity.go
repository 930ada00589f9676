package favorite

import "time"

type Favorite struct {
	id           int64
	restaurantID int64
	userID       int64
	createdAt    time.Time
}

func NewFavorite(restaurantID, userID int64, now time.Time) *Favorite {
	return &Favorite{restaurantID: restaurantID, userID: userID, createdAt: now}
}

func Reconstruct(id, restaurantID, userID int64, createdAt time.Time) *Favorite {
	return &Favorite{id: id, restaurantID: restaurantID, userID: userID, createdAt: createdAt}
}

func (f *Favorite) ID() int64            { return f.id }
func (f *Favorite) RestaurantID() int64  { return f.restaurantID }
func (f *Favorite) UserID() int64        { return f.userID }
func (f *Favorite) CreatedAt() time.Time { return f.createdAt }

func (f *Favorite) SetID(id int64) { f.id = id }
