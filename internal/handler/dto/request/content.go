package request

import (
	"nagoyameshi/internal/domain/content"

	"github.com/jinzhu/copier"
)

type TermRequest struct {
	Content string `json:"content"`
}

type CompanyRequest struct {
	Name              string `json:"name"`
	PostalCode        string `json:"postal_code"`
	Address           string `json:"address"`
	Representative    string `json:"representative"`
	EstablishmentDate string `json:"establishment_date"`
	Capital           string `json:"capital"`
	Business          string `json:"business"`
	NumberOfEmployees string `json:"number_of_employees"`
}

func (r CompanyRequest) ToDomain() (content.Company, error) {
	var c content.Company
	if err := copier.Copy(&c, &r); err != nil {
		return content.Company{}, err
	}
	return c, nil
}
