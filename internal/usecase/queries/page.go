package queries

import "math"

const (
	MaxPageSize = 200
	// MaxPage keeps Page*Size within int for every size Normalize allows.
	MaxPage = math.MaxInt / MaxPageSize

	RestaurantPageSize  = 15
	ReservationPageSize = 15
	FavoritePageSize    = 10
	PaidReviewPageSize  = 5
	FreeReviewLimit     = 3
	AdminPageSize       = 15
)

type PageRequest struct {
	Page int
	Size int
}

// Normalize clamps a client-supplied page: negative pages become 0, huge ones
// MaxPage, and the size falls back to defaultSize or is capped at MaxPageSize.
func (p PageRequest) Normalize(defaultSize int) PageRequest {
	if p.Page < 0 {
		p.Page = 0
	}
	if p.Page > MaxPage {
		p.Page = MaxPage
	}
	if p.Size <= 0 {
		p.Size = defaultSize
	}
	if p.Size > MaxPageSize {
		p.Size = MaxPageSize
	}
	return p
}

func (p PageRequest) Offset() int {
	return p.Page * p.Size
}

// Page is a 0-based offset page.
type Page[T any] struct {
	Items      []T   `json:"items"`
	Page       int   `json:"page"`
	Size       int   `json:"size"`
	TotalItems int64 `json:"total_items"`
	TotalPages int   `json:"total_pages"`
}

func NewPage[T any](items []T, req PageRequest, total int64) Page[T] {
	if items == nil {
		items = []T{}
	}
	pages := 0
	if req.Size > 0 {
		pages = int((total + int64(req.Size) - 1) / int64(req.Size))
	}
	return Page[T]{
		Items:      items,
		Page:       req.Page,
		Size:       req.Size,
		TotalItems: total,
		TotalPages: pages,
	}
}
