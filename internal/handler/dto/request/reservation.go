package request

import "nagoyameshi/internal/usecase/commands"

type CreateReservationRequest struct {
	// yyyy-MM-dd and HH:mm in the application time zone
	ReservationDate string `json:"reservation_date"`
	ReservationTime string `json:"reservation_time"`
	NumberOfPeople  int    `json:"number_of_people"`
}

func (r CreateReservationRequest) ToCommand(restaurantID int64) commands.CreateReservationRequest {
	return commands.CreateReservationRequest{
		RestaurantID:   restaurantID,
		Date:           r.ReservationDate,
		Time:           r.ReservationTime,
		NumberOfPeople: r.NumberOfPeople,
	}
}
