//go:generate mockgen -source=category.go -destination=../../../tests/mock/commands/category_mock.go -package=commandsmock

package commands

import (
	"context"

	"nagoyameshi/internal/domain/category"
	"nagoyameshi/internal/usecase/shared"
)

type CategoryCommands interface {
	CreateCategory(ctx context.Context, name string) (int64, error)
	UpdateCategory(ctx context.Context, id int64, name string) error
	DeleteCategory(ctx context.Context, id int64) error
}

type categoryCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewCategoryCommands(uow shared.UnitOfWork) CategoryCommands {
	return &categoryCommandsImpl{uow: uow}
}

func (uc *categoryCommandsImpl) CreateCategory(ctx context.Context, name string) (int64, error) {
	c, err := category.NewCategory(name)
	if err != nil {
		return 0, err
	}

	var id int64
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		taken, err := tx.Reads().CategoryNameTaken(ctx, c.Name(), 0)
		if err != nil {
			return err
		}
		if taken {
			return ErrCategoryNameTaken
		}
		created, err := tx.Categories().Create(ctx, c)
		if err != nil {
			return duplicateAs(err, ErrCategoryNameTaken)
		}
		id = created
		return nil
	})
	return id, err
}

func (uc *categoryCommandsImpl) UpdateCategory(ctx context.Context, id int64, name string) error {
	if _, err := category.NewCategory(name); err != nil {
		return err
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		c, err := tx.Reads().CategoryByID(ctx, id)
		if err != nil {
			return notFoundAs(err, ErrCategoryNotFound)
		}
		if err := c.Rename(name); err != nil {
			return err
		}
		taken, err := tx.Reads().CategoryNameTaken(ctx, c.Name(), id)
		if err != nil {
			return err
		}
		if taken {
			return ErrCategoryNameTaken
		}
		return duplicateAs(tx.Categories().Update(ctx, c), ErrCategoryNameTaken)
	})
}

func (uc *categoryCommandsImpl) DeleteCategory(ctx context.Context, id int64) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Categories().Delete(ctx, id)
	})
	return notFoundAs(err, ErrCategoryNotFound)
}
