//go:build unit || e2e

package builder

import (
	"time"

	"nagoyameshi/internal/domain/restaurant"
	"nagoyameshi/internal/usecase/queries"
)

type RestaurantBuilder struct {
	ID              int64
	Name            string
	ImageName       string
	Description     string
	LowestPrice     int
	HighestPrice    int
	PostalCode      string
	Address         string
	OpeningTime     string
	ClosingTime     string
	SeatingCapacity int
}

func NewRestaurantBuilder() *RestaurantBuilder {
	return &RestaurantBuilder{
		ID:              1,
		Name:            "味噌カツ 矢場",
		Description:     "名古屋名物の味噌カツ専門店です。",
		LowestPrice:     1000,
		HighestPrice:    3000,
		PostalCode:      "4600008",
		Address:         "愛知県名古屋市中区栄3-6-18",
		OpeningTime:     "11:00",
		ClosingTime:     "21:30",
		SeatingCapacity: 40,
	}
}

func (b *RestaurantBuilder) With(mutate func(*RestaurantBuilder)) *RestaurantBuilder {
	mutate(b)
	return b
}

func (b *RestaurantBuilder) Attributes() restaurant.Attributes {
	return restaurant.Attributes{
		Name:            b.Name,
		Description:     b.Description,
		LowestPrice:     b.LowestPrice,
		HighestPrice:    b.HighestPrice,
		PostalCode:      b.PostalCode,
		Address:         b.Address,
		OpeningTime:     b.OpeningTime,
		ClosingTime:     b.ClosingTime,
		SeatingCapacity: b.SeatingCapacity,
	}
}

func (b *RestaurantBuilder) BuildDomain() (*restaurant.Restaurant, error) {
	return restaurant.NewRestaurant(b.Attributes(), b.ImageName, time.Now())
}

func (b *RestaurantBuilder) BuildListItem() *queries.RestaurantListItem {
	return &queries.RestaurantListItem{
		ID:              b.ID,
		Name:            b.Name,
		ImageName:       b.ImageName,
		Description:     b.Description,
		LowestPrice:     b.LowestPrice,
		HighestPrice:    b.HighestPrice,
		PostalCode:      b.PostalCode,
		Address:         b.Address,
		OpeningTime:     b.OpeningTime,
		ClosingTime:     b.ClosingTime,
		SeatingCapacity: b.SeatingCapacity,
		CreatedAt:       time.Now(),
	}
}

func (b *RestaurantBuilder) WithID(id int64) *RestaurantBuilder {
	b.ID = id
	return b
}

func (b *RestaurantBuilder) WithName(name string) *RestaurantBuilder {
	b.Name = name
	return b
}

func (b *RestaurantBuilder) WithImageName(name string) *RestaurantBuilder {
	b.ImageName = name
	return b
}

func (b *RestaurantBuilder) WithPrices(lowest, highest int) *RestaurantBuilder {
	b.LowestPrice = lowest
	b.HighestPrice = highest
	return b
}

func (b *RestaurantBuilder) WithHours(opening, closing string) *RestaurantBuilder {
	b.OpeningTime = opening
	b.ClosingTime = closing
	return b
}

func (b *RestaurantBuilder) WithPostalCode(postalCode string) *RestaurantBuilder {
	b.PostalCode = postalCode
	return b
}

func (b *RestaurantBuilder) WithSeatingCapacity(n int) *RestaurantBuilder {
	b.SeatingCapacity = n
	return b
}
