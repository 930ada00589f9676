package restaurant

import (
	"regexp"
	"strings"
	"time"

	"nagoyameshi/internal/pkg/errs"
)

var postalCodeRegex = regexp.MustCompile(`^[0-9]{7}$`)

// Attributes is the editable part of a restaurant, as submitted by an admin.
type Attributes struct {
	Name            string
	Description     string
	LowestPrice     int
	HighestPrice    int
	PostalCode      string
	Address         string
	OpeningTime     string
	ClosingTime     string
	SeatingCapacity int
}

type Restaurant struct {
	id              int64
	name            string
	imageName       string
	description     string
	lowestPrice     int
	highestPrice    int
	postalCode      string
	address         string
	openingTime     TimeOfDay
	closingTime     TimeOfDay
	seatingCapacity int
	createdAt       time.Time
	updatedAt       time.Time
}

type validated struct {
	name, description, postalCode, address string
	lowest, highest, capacity              int
	opening, closing                       TimeOfDay
}

// validate collects every field problem; range errors mark both ends.
func validate(a Attributes) (validated, error) {
	fe := errs.FieldErrors{}
	v := validated{
		name:        strings.TrimSpace(a.Name),
		description: strings.TrimSpace(a.Description),
		postalCode:  strings.TrimSpace(a.PostalCode),
		address:     strings.TrimSpace(a.Address),
		lowest:      a.LowestPrice,
		highest:     a.HighestPrice,
		capacity:    a.SeatingCapacity,
	}

	if v.name == "" {
		fe.Add("name", "name is required")
	}
	if v.description == "" {
		fe.Add("description", "description is required")
	}
	if v.address == "" {
		fe.Add("address", "address is required")
	}
	if !postalCodeRegex.MatchString(v.postalCode) {
		fe.Add("postal_code", "postal code must be 7 digits")
	}
	if v.lowest < 0 {
		fe.Add("lowest_price", "lowest price must be 0 or more")
	}
	if v.highest < 0 {
		fe.Add("highest_price", "highest price must be 0 or more")
	}
	if v.capacity < 1 {
		fe.Add("seating_capacity", "seating capacity must be 1 or more")
	}
	if v.lowest >= 0 && v.highest >= 0 && v.lowest > v.highest {
		fe.Add("lowest_price", "lowest price must not exceed highest price")
		fe.Add("highest_price", "highest price must not be below lowest price")
	}

	var openErr, closeErr error
	if v.opening, openErr = ParseTimeOfDay(a.OpeningTime); openErr != nil {
		fe.Add("opening_time", "opening time is required (HH:MM)")
	}
	if v.closing, closeErr = ParseTimeOfDay(a.ClosingTime); closeErr != nil {
		fe.Add("closing_time", "closing time is required (HH:MM)")
	}
	if openErr == nil && closeErr == nil && v.opening >= v.closing {
		fe.Add("opening_time", "opening time must be before closing time")
		fe.Add("closing_time", "closing time must be after opening time")
	}

	return v, fe.Err()
}

func NewRestaurant(a Attributes, imageName string, now time.Time) (*Restaurant, error) {
	v, err := validate(a)
	if err != nil {
		return nil, err
	}
	r := &Restaurant{imageName: imageName, createdAt: now}
	r.apply(v, now)
	return r, nil
}

// Update keeps the id, created_at and, when imageName is nil, the stored image.
func (r *Restaurant) Update(a Attributes, imageName *string, now time.Time) error {
	v, err := validate(a)
	if err != nil {
		return err
	}
	if imageName != nil {
		r.imageName = *imageName
	}
	r.apply(v, now)
	return nil
}

func (r *Restaurant) apply(v validated, now time.Time) {
	r.name = v.name
	r.description = v.description
	r.lowestPrice = v.lowest
	r.highestPrice = v.highest
	r.postalCode = v.postalCode
	r.address = v.address
	r.openingTime = v.opening
	r.closingTime = v.closing
	r.seatingCapacity = v.capacity
	r.updatedAt = now
}

type Snapshot struct {
	ID              int64
	Name            string
	ImageName       string
	Description     string
	LowestPrice     int
	HighestPrice    int
	PostalCode      string
	Address         string
	OpeningTime     TimeOfDay
	ClosingTime     TimeOfDay
	SeatingCapacity int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func Reconstruct(s Snapshot) *Restaurant {
	return &Restaurant{
		id:              s.ID,
		name:            s.Name,
		imageName:       s.ImageName,
		description:     s.Description,
		lowestPrice:     s.LowestPrice,
		highestPrice:    s.HighestPrice,
		postalCode:      s.PostalCode,
		address:         s.Address,
		openingTime:     s.OpeningTime,
		closingTime:     s.ClosingTime,
		seatingCapacity: s.SeatingCapacity,
		createdAt:       s.CreatedAt,
		updatedAt:       s.UpdatedAt,
	}
}

func (r *Restaurant) ID() int64              { return r.id }
func (r *Restaurant) Name() string           { return r.name }
func (r *Restaurant) ImageName() string      { return r.imageName }
func (r *Restaurant) Description() string    { return r.description }
func (r *Restaurant) LowestPrice() int       { return r.lowestPrice }
func (r *Restaurant) HighestPrice() int      { return r.highestPrice }
func (r *Restaurant) PostalCode() string     { return r.postalCode }
func (r *Restaurant) Address() string        { return r.address }
func (r *Restaurant) OpeningTime() TimeOfDay { return r.openingTime }
func (r *Restaurant) ClosingTime() TimeOfDay { return r.closingTime }
func (r *Restaurant) SeatingCapacity() int   { return r.seatingCapacity }
func (r *Restaurant) CreatedAt() time.Time   { return r.createdAt }
func (r *Restaurant) UpdatedAt() time.Time   { return r.updatedAt }

func (r *Restaurant) SetID(id int64) { r.id = id }

// Validate reports the same field errors NewRestaurant would, without building anything.
func Validate(a Attributes) error {
	_, err := validate(a)
	return err
}

func (r *Restaurant) ChangeImage(name string) { r.imageName = name }
