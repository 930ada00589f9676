//go:generate mockgen -source=restaurant.go -destination=../../../tests/mock/commands/restaurant_mock.go -package=commandsmock

package commands

import (
	"context"
	"io"
	"log/slog"

	"nagoyameshi/internal/domain/association"
	"nagoyameshi/internal/domain/restaurant"
	"nagoyameshi/internal/pkg/clock"
	"nagoyameshi/internal/pkg/errs"
	"nagoyameshi/internal/usecase/shared"
)

type ImageUpload struct {
	Filename    string
	ContentType string
	Body        io.Reader
}

type RestaurantInput struct {
	Attributes  restaurant.Attributes
	CategoryIDs []int64
	HolidayIDs  []int64
	// Image is optional; on update a nil image keeps the stored one.
	Image *ImageUpload
}

type RestaurantCommands interface {
	CreateRestaurant(ctx context.Context, in RestaurantInput) (int64, error)
	UpdateRestaurant(ctx context.Context, id int64, in RestaurantInput) error
	DeleteRestaurant(ctx context.Context, id int64) error
}

type restaurantUseCaseImpl struct {
	uow    shared.UnitOfWork
	images ImageStore
	clock  clock.Clock
}

func NewRestaurantUseCase(uow shared.UnitOfWork, images ImageStore, clk clock.Clock) RestaurantCommands {
	return &restaurantUseCaseImpl{uow: uow, images: images, clock: clk}
}

func (uc *restaurantUseCaseImpl) CreateRestaurant(ctx context.Context, in RestaurantInput) (int64, error) {
	r, err := restaurant.NewRestaurant(in.Attributes, "", uc.clock.Now())
	if err != nil {
		return 0, err
	}

	imageName, err := uc.storeImage(ctx, in.Image)
	if err != nil {
		return 0, err
	}
	if imageName != nil {
		r.ChangeImage(*imageName)
	}

	var id int64
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		created, err := tx.Restaurants().Create(ctx, r)
		if err != nil {
			return err
		}
		id = created
		return syncLinks(ctx, tx, created, in.CategoryIDs, in.HolidayIDs)
	})
	if err != nil {
		return 0, err
	}

	slog.Info("restaurant created", "restaurant_id", id)
	return id, nil
}

func (uc *restaurantUseCaseImpl) UpdateRestaurant(ctx context.Context, id int64, in RestaurantInput) error {
	if err := restaurant.Validate(in.Attributes); err != nil {
		return err
	}

	if _, err := uc.uow.CommandReads().RestaurantByID(ctx, id); err != nil {
		return notFoundAs(err, ErrRestaurantNotFound)
	}

	imageName, err := uc.storeImage(ctx, in.Image)
	if err != nil {
		return err
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		r, err := tx.Reads().RestaurantByID(ctx, id)
		if err != nil {
			return notFoundAs(err, ErrRestaurantNotFound)
		}
		if err := r.Update(in.Attributes, imageName, uc.clock.Now()); err != nil {
			return err
		}
		if err := tx.Restaurants().Update(ctx, r); err != nil {
			return notFoundAs(err, ErrRestaurantNotFound)
		}
		return syncLinks(ctx, tx, id, in.CategoryIDs, in.HolidayIDs)
	})
}

func (uc *restaurantUseCaseImpl) DeleteRestaurant(ctx context.Context, id int64) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Restaurants().Delete(ctx, id)
	})
	if err != nil {
		return notFoundAs(err, ErrRestaurantNotFound)
	}
	slog.Info("restaurant deleted", "restaurant_id", id)
	return nil
}

func (uc *restaurantUseCaseImpl) storeImage(ctx context.Context, img *ImageUpload) (*string, error) {
	if img == nil || img.Body == nil {
		return nil, nil
	}
	name, err := uc.images.Save(ctx, img.Filename, img.ContentType, img.Body)
	if err != nil {
		return nil, errs.Mark(err, ErrImageUploadFailed)
	}
	return &name, nil
}

// syncLinks reconciles both link tables inside the caller's transaction.
func syncLinks(ctx context.Context, tx shared.Tx, restaurantID int64, categoryIDs, holidayIDs []int64) error {
	knownCategories, err := tx.Reads().KnownCategoryIDs(ctx, categoryIDs)
	if err != nil {
		return err
	}
	existingCategories, err := tx.Restaurants().CategoryLinks(ctx, restaurantID)
	if err != nil {
		return err
	}
	plan := association.Reconcile(categoryIDs, existingCategories, knownCategories)
	if len(plan.ToDelete) > 0 {
		if err := tx.Restaurants().DeleteCategoryLinks(ctx, plan.ToDelete); err != nil {
			return err
		}
	}
	if len(plan.ToInsert) > 0 {
		if err := tx.Restaurants().InsertCategoryLinks(ctx, restaurantID, plan.ToInsert); err != nil {
			return err
		}
	}

	knownHolidays, err := tx.Reads().KnownHolidayIDs(ctx, holidayIDs)
	if err != nil {
		return err
	}
	existingHolidays, err := tx.Restaurants().HolidayLinks(ctx, restaurantID)
	if err != nil {
		return err
	}
	plan = association.Reconcile(holidayIDs, existingHolidays, knownHolidays)
	if len(plan.ToDelete) > 0 {
		if err := tx.Restaurants().DeleteHolidayLinks(ctx, plan.ToDelete); err != nil {
			return err
		}
	}
	if len(plan.ToInsert) > 0 {
		if err := tx.Restaurants().InsertHolidayLinks(ctx, restaurantID, plan.ToInsert); err != nil {
			return err
		}
	}
	return nil
}
