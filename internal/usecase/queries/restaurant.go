//go:generate mockgen -source=restaurant.go -destination=../../../tests/mock/queries/restaurant_mock.go -package=queriesmock

package queries

import (
	"context"
	"strings"
	"time"

	"nagoyameshi/internal/domain/category"
	"nagoyameshi/internal/infra"
)

type RestaurantOrder string

const (
	OrderCreatedAtDesc  RestaurantOrder = "createdAtDesc"
	OrderLowestPriceAsc RestaurantOrder = "lowestPriceAsc"
	OrderRatingDesc     RestaurantOrder = "ratingDesc"
)

// ParseOrder falls back to newest first for anything unrecognised.
func ParseOrder(s string) RestaurantOrder {
	switch RestaurantOrder(s) {
	case OrderLowestPriceAsc, OrderRatingDesc:
		return RestaurantOrder(s)
	default:
		return OrderCreatedAtDesc
	}
}

type RestaurantSearch struct {
	Keyword    *string
	CategoryID *int64
	Price      *int
	Order      string
	Page       int
	Size       int
}

type FilterKind int

const (
	FilterNone FilterKind = iota
	FilterKeyword
	FilterCategory
	FilterPrice
)

// RestaurantFilter is the single filter that survives precedence resolution.
type RestaurantFilter struct {
	Kind       FilterKind
	Keyword    string
	CategoryID int64
	Price      int
}

// ResolveFilter applies keyword > category > price; a blank keyword is absent.
func ResolveFilter(s RestaurantSearch) RestaurantFilter {
	if s.Keyword != nil {
		if k := strings.TrimSpace(*s.Keyword); k != "" {
			return RestaurantFilter{Kind: FilterKeyword, Keyword: k}
		}
	}
	if s.CategoryID != nil {
		return RestaurantFilter{Kind: FilterCategory, CategoryID: *s.CategoryID}
	}
	if s.Price != nil {
		return RestaurantFilter{Kind: FilterPrice, Price: *s.Price}
	}
	return RestaurantFilter{Kind: FilterNone}
}

type RestaurantListItem struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	ImageName       string    `json:"image_name"`
	Description     string    `json:"description"`
	LowestPrice     int       `json:"lowest_price"`
	HighestPrice    int       `json:"highest_price"`
	PostalCode      string    `json:"postal_code"`
	Address         string    `json:"address"`
	OpeningTime     string    `json:"opening_time"`
	ClosingTime     string    `json:"closing_time"`
	SeatingCapacity int       `json:"seating_capacity"`
	AverageScore    *float64  `json:"average_score"`
	ReviewCount     int64     `json:"review_count"`
	CategoryNames   []string  `json:"category_names"`
	CreatedAt       time.Time `json:"created_at"`
}

type RestaurantDetail struct {
	RestaurantListItem
	Categories      []CategoryView            `json:"categories"`
	RegularHolidays []category.RegularHoliday `json:"regular_holidays"`
	// viewer-specific; false for anonymous callers
	IsFavorite  bool   `json:"is_favorite"`
	FavoriteID  *int64 `json:"favorite_id,omitempty"`
	HasReviewed bool   `json:"has_reviewed"`
}

type RestaurantReadStore interface {
	Search(ctx context.Context, f RestaurantFilter, order RestaurantOrder, limit, offset int) ([]*RestaurantListItem, int64, error)
	FindByID(ctx context.Context, id int64) (*RestaurantDetail, error)
	CategoryNames(ctx context.Context, restaurantIDs []int64) (map[int64][]string, error)
	Count(ctx context.Context) (int64, error)
}

type RestaurantQueries interface {
	Search(ctx context.Context, s RestaurantSearch) (Page[*RestaurantListItem], error)
	// Get fills the viewer flags when viewerID is non-nil.
	Get(ctx context.Context, id int64, viewerID *int64) (*RestaurantDetail, error)
	HighlyRated(ctx context.Context, limit int) ([]*RestaurantListItem, error)
	Newest(ctx context.Context, limit int) ([]*RestaurantListItem, error)
}

type restaurantQueriesImpl struct {
	store     RestaurantReadStore
	favorites FavoriteReadStore
	reviews   ReviewReadStore
}

func NewRestaurantQueries(store RestaurantReadStore, favorites FavoriteReadStore, reviews ReviewReadStore) RestaurantQueries {
	return &restaurantQueriesImpl{store: store, favorites: favorites, reviews: reviews}
}

func (q *restaurantQueriesImpl) Search(ctx context.Context, s RestaurantSearch) (Page[*RestaurantListItem], error) {
	req := PageRequest{Page: s.Page, Size: s.Size}.Normalize(RestaurantPageSize)

	items, total, err := q.store.Search(ctx, ResolveFilter(s), ParseOrder(s.Order), req.Size, req.Offset())
	if err != nil {
		return Page[*RestaurantListItem]{}, err
	}
	if err := q.attachCategoryNames(ctx, items); err != nil {
		return Page[*RestaurantListItem]{}, err
	}
	return NewPage(items, req, total), nil
}

func (q *restaurantQueriesImpl) Get(ctx context.Context, id int64, viewerID *int64) (*RestaurantDetail, error) {
	detail, err := q.store.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, ErrRestaurantNotFound)
	}
	if detail.CategoryNames == nil {
		detail.CategoryNames = make([]string, 0, len(detail.Categories))
		for _, c := range detail.Categories {
			detail.CategoryNames = append(detail.CategoryNames, c.Name)
		}
	}

	if viewerID == nil {
		return detail, nil
	}

	fav, err := q.favorites.FindFor(ctx, *viewerID, id)
	switch {
	case err == nil:
		detail.IsFavorite = true
		detail.FavoriteID = &fav.ID
	case !infra.IsKind(err, infra.KindNotFound):
		return nil, err
	}

	detail.HasReviewed, err = q.reviews.Exists(ctx, *viewerID, id)
	if err != nil {
		return nil, err
	}
	return detail, nil
}

func (q *restaurantQueriesImpl) HighlyRated(ctx context.Context, limit int) ([]*RestaurantListItem, error) {
	page, err := q.Search(ctx, RestaurantSearch{Order: string(OrderRatingDesc), Size: limit})
	return page.Items, err
}

func (q *restaurantQueriesImpl) Newest(ctx context.Context, limit int) ([]*RestaurantListItem, error) {
	page, err := q.Search(ctx, RestaurantSearch{Order: string(OrderCreatedAtDesc), Size: limit})
	return page.Items, err
}

// attachCategoryNames loads names for the whole page in one round trip.
func (q *restaurantQueriesImpl) attachCategoryNames(ctx context.Context, items []*RestaurantListItem) error {
	if len(items) == 0 {
		return nil
	}
	ids := make([]int64, len(items))
	for i, it := range items {
		ids[i] = it.ID
	}
	names, err := q.store.CategoryNames(ctx, ids)
	if err != nil {
		return err
	}
	for _, it := range items {
		it.CategoryNames = names[it.ID]
		if it.CategoryNames == nil {
			it.CategoryNames = []string{}
		}
	}
	return nil
}
