package reservation

import (
	"time"

	"nagoyameshi/internal/pkg/clock"
	"nagoyameshi/internal/pkg/errs"
)

type Reservation struct {
	id             int64
	restaurantID   int64
	userID         int64
	reservedAt     time.Time
	numberOfPeople int
	createdAt      time.Time
}

// RestaurantSpec is the slice of a restaurant a reservation depends on.
type RestaurantSpec struct {
	ID              int64
	SeatingCapacity int
}

type Input struct {
	UserID         int64
	Restaurant     RestaurantSpec
	Date           string
	Time           string
	NumberOfPeople int
	Location       *time.Location
}

// NewReservation validates the whole form and reports each failing field.
func NewReservation(in Input, clk clock.Clock) (*Reservation, error) {
	fe := errs.FieldErrors{}
	now := clk.Now()

	loc := in.Location
	if loc == nil {
		loc = time.UTC
	}
	reservedAt, err := CombineDateTime(in.Date, in.Time, loc)
	if err != nil {
		fe.Add("reservation_date", "reservation date and time are required")
		fe.Add("reservation_time", "reservation date and time are required")
	} else if !IsFarEnoughAhead(reservedAt, now) {
		fe.Add("reservation_date", "reservations must be made at least 2 hours in advance")
		fe.Add("reservation_time", "reservations must be made at least 2 hours in advance")
	}

	if in.NumberOfPeople < 1 {
		fe.Add("number_of_people", "number of people must be 1 or more")
	} else if in.Restaurant.SeatingCapacity > 0 && in.NumberOfPeople > in.Restaurant.SeatingCapacity {
		fe.Add("number_of_people", "number of people exceeds seating capacity")
	}

	if err := fe.Err(); err != nil {
		return nil, err
	}

	return &Reservation{
		restaurantID:   in.Restaurant.ID,
		userID:         in.UserID,
		reservedAt:     reservedAt,
		numberOfPeople: in.NumberOfPeople,
		createdAt:      now,
	}, nil
}

func Reconstruct(id, restaurantID, userID int64, reservedAt time.Time, numberOfPeople int, createdAt time.Time) *Reservation {
	return &Reservation{
		id:             id,
		restaurantID:   restaurantID,
		userID:         userID,
		reservedAt:     reservedAt,
		numberOfPeople: numberOfPeople,
		createdAt:      createdAt,
	}
}

func (r *Reservation) ID() int64             { return r.id }
func (r *Reservation) RestaurantID() int64   { return r.restaurantID }
func (r *Reservation) UserID() int64         { return r.userID }
func (r *Reservation) ReservedAt() time.Time { return r.reservedAt }
func (r *Reservation) NumberOfPeople() int   { return r.numberOfPeople }
func (r *Reservation) CreatedAt() time.Time  { return r.createdAt }

func (r *Reservation) SetID(id int64) { r.id = id }
