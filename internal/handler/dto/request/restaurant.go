package request

import (
	"nagoyameshi/internal/domain/restaurant"
	"nagoyameshi/internal/usecase/queries"
)

// RestaurantSearchQuery binds the public list query string.
type RestaurantSearchQuery struct {
	Keyword    *string `form:"keyword"`
	CategoryID *int64  `form:"category_id"`
	Price      *int    `form:"price"`
	Order      string  `form:"order"`
	Page       int     `form:"page"`
	Size       int     `form:"size"`
}

func (q RestaurantSearchQuery) ToSearch() queries.RestaurantSearch {
	return queries.RestaurantSearch{
		Keyword:    q.Keyword,
		CategoryID: q.CategoryID,
		Price:      q.Price,
		Order:      q.Order,
		Page:       q.Page,
		Size:       q.Size,
	}
}

// RestaurantForm is the admin multipart form; the image part is read separately.
type RestaurantForm struct {
	Name            string  `form:"name"`
	Description     string  `form:"description"`
	LowestPrice     int     `form:"lowest_price"`
	HighestPrice    int     `form:"highest_price"`
	PostalCode      string  `form:"postal_code"`
	Address         string  `form:"address"`
	OpeningTime     string  `form:"opening_time"`
	ClosingTime     string  `form:"closing_time"`
	SeatingCapacity int     `form:"seating_capacity"`
	CategoryIDs     []int64 `form:"category_ids"`
	HolidayIDs      []int64 `form:"regular_holiday_ids"`
}

func (f RestaurantForm) Attributes() restaurant.Attributes {
	return restaurant.Attributes{
		Name:            f.Name,
		Description:     f.Description,
		LowestPrice:     f.LowestPrice,
		HighestPrice:    f.HighestPrice,
		PostalCode:      f.PostalCode,
		Address:         f.Address,
		OpeningTime:     f.OpeningTime,
		ClosingTime:     f.ClosingTime,
		SeatingCapacity: f.SeatingCapacity,
	}
}

// PageQuery binds page and keyword for paginated lists.
type PageQuery struct {
	Page    int    `form:"page"`
	Size    int    `form:"size"`
	Keyword string `form:"keyword"`
}

func (q PageQuery) PageRequest() queries.PageRequest {
	return queries.PageRequest{Page: q.Page, Size: q.Size}
}
