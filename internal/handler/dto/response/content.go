package response

import (
	"time"

	"nagoyameshi/internal/domain/content"

	"github.com/jinzhu/copier"
)

type TermResponse struct {
	ID        int64     `json:"id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CompanyResponse struct {
	ID                int64  `json:"id"`
	Name              string `json:"name"`
	PostalCode        string `json:"postal_code"`
	Address           string `json:"address"`
	Representative    string `json:"representative"`
	EstablishmentDate string `json:"establishment_date"`
	Capital           string `json:"capital"`
	Business          string `json:"business"`
	NumberOfEmployees string `json:"number_of_employees"`
}

func FromTerm(t *content.Term) (*TermResponse, error) {
	var res TermResponse
	if err := copier.Copy(&res, t); err != nil {
		return nil, err
	}
	return &res, nil
}

func FromCompany(c *content.Company) (*CompanyResponse, error) {
	var res CompanyResponse
	if err := copier.Copy(&res, c); err != nil {
		return nil, err
	}
	return &res, nil
}
