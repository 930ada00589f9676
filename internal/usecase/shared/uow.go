//go:generate mockgen -source=uow.go -destination=../../../tests/mock/shared/uow_mock.go -package=sharedmock

package shared

import (
	"context"
	"time"

	"nagoyameshi/internal/domain/association"
	"nagoyameshi/internal/domain/category"
	"nagoyameshi/internal/domain/content"
	"nagoyameshi/internal/domain/favorite"
	"nagoyameshi/internal/domain/reservation"
	"nagoyameshi/internal/domain/restaurant"
	"nagoyameshi/internal/domain/review"
	"nagoyameshi/internal/domain/user"
	"nagoyameshi/internal/infra"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only snapshot shared by every query fn runs
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db infra.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Restaurants() RestaurantRepository
	Categories() CategoryRepository
	Reservations() ReservationRepository
	Reviews() ReviewRepository
	Favorites() FavoriteRepository
	Users() UserRepository
	Contents() ContentRepository
	Reads() CommandReads
}

// CommandReads are the lookups commands need before deciding what to write.
type CommandReads interface {
	RestaurantByID(ctx context.Context, id int64) (*restaurant.Restaurant, error)
	CategoryByID(ctx context.Context, id int64) (*category.Category, error)
	CategoryNameTaken(ctx context.Context, name string, excludeID int64) (bool, error)
	KnownCategoryIDs(ctx context.Context, ids []int64) (association.IDSet, error)
	KnownHolidayIDs(ctx context.Context, ids []int64) (association.IDSet, error)
	ReservationByID(ctx context.Context, id int64) (*ReservationSnapshot, error)
	ReviewByID(ctx context.Context, id int64) (*review.Review, error)
	ReviewExists(ctx context.Context, userID, restaurantID int64) (bool, error)
	FavoriteByID(ctx context.Context, id int64) (*favorite.Favorite, error)
	FavoriteFor(ctx context.Context, userID, restaurantID int64) (*favorite.Favorite, error)
	UserByID(ctx context.Context, id int64) (*user.User, error)
	UserByEmail(ctx context.Context, email string) (*user.User, error)
	EmailTaken(ctx context.Context, email string, excludeID int64) (bool, error)
}

// Minimal snapshot for command read operations
type ReservationSnapshot struct {
	ID           int64
	RestaurantID int64
	UserID       int64
	ReservedAt   time.Time
}

type RestaurantRepository interface {
	Create(ctx context.Context, r *restaurant.Restaurant) (int64, error)
	Update(ctx context.Context, r *restaurant.Restaurant) error
	// Delete removes the restaurant with its links, reviews, reservations and favorites.
	Delete(ctx context.Context, id int64) error
	CategoryLinks(ctx context.Context, restaurantID int64) ([]association.Link, error)
	HolidayLinks(ctx context.Context, restaurantID int64) ([]association.Link, error)
	InsertCategoryLinks(ctx context.Context, restaurantID int64, categoryIDs []int64) error
	InsertHolidayLinks(ctx context.Context, restaurantID int64, holidayIDs []int64) error
	DeleteCategoryLinks(ctx context.Context, linkIDs []int64) error
	DeleteHolidayLinks(ctx context.Context, linkIDs []int64) error
}

type CategoryRepository interface {
	Create(ctx context.Context, c *category.Category) (int64, error)
	Update(ctx context.Context, c *category.Category) error
	// Delete removes the category and every restaurant link pointing at it.
	Delete(ctx context.Context, id int64) error
}

type ReservationRepository interface {
	Create(ctx context.Context, r *reservation.Reservation) (int64, error)
	Delete(ctx context.Context, id int64) error
}

type ReviewRepository interface {
	Create(ctx context.Context, r *review.Review) (int64, error)
	Update(ctx context.Context, r *review.Review) error
	Delete(ctx context.Context, id int64) error
}

type FavoriteRepository interface {
	// Create returns the id of the stored row, existing or new.
	Create(ctx context.Context, f *favorite.Favorite) (int64, error)
	Delete(ctx context.Context, id int64) error
}

type UserRepository interface {
	Create(ctx context.Context, u *user.User) (int64, error)
	UpdateProfile(ctx context.Context, u *user.User) error
	UpdateRole(ctx context.Context, userID int64, role user.Role) error
	SetBillingCustomerID(ctx context.Context, userID int64, customerID string) error
}

type ContentRepository interface {
	SaveTerm(ctx context.Context, body string) (*content.Term, error)
	SaveCompany(ctx context.Context, c content.Company) (*content.Company, error)
}
