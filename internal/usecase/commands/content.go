//go:generate mockgen -source=content.go -destination=../../../tests/mock/commands/content_mock.go -package=commandsmock

package commands

import (
	"context"

	"nagoyameshi/internal/domain/content"
	"nagoyameshi/internal/usecase/shared"
)

type ContentCommands interface {
	UpdateTerm(ctx context.Context, body string) (*content.Term, error)
	UpdateCompany(ctx context.Context, c content.Company) (*content.Company, error)
}

type contentCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewContentCommands(uow shared.UnitOfWork) ContentCommands {
	return &contentCommandsImpl{uow: uow}
}

func (uc *contentCommandsImpl) UpdateTerm(ctx context.Context, body string) (*content.Term, error) {
	body, err := content.ValidateTerm(body)
	if err != nil {
		return nil, err
	}

	var saved *content.Term
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		saved, err = tx.Contents().SaveTerm(ctx, body)
		return err
	})
	return saved, err
}

func (uc *contentCommandsImpl) UpdateCompany(ctx context.Context, c content.Company) (*content.Company, error) {
	c, err := c.Normalize()
	if err != nil {
		return nil, err
	}

	var saved *content.Company
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		saved, err = tx.Contents().SaveCompany(ctx, c)
		return err
	})
	return saved, err
}
