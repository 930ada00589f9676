package request

import "nagoyameshi/internal/domain/user"

// ProfileRequest leaves field rules to the domain so every failing field is
// reported at once.
type ProfileRequest struct {
	Name        string `json:"name"`
	Furigana    string `json:"furigana"`
	PostalCode  string `json:"postal_code"`
	Address     string `json:"address"`
	PhoneNumber string `json:"phone_number"`
	// yyyyMMdd, blank for none
	Birthday   string `json:"birthday"`
	Occupation string `json:"occupation"`
	Email      string `json:"email"`
}

func (r ProfileRequest) ToDomain() user.ProfileInput {
	return user.ProfileInput{
		Name:        r.Name,
		Furigana:    r.Furigana,
		PostalCode:  r.PostalCode,
		Address:     r.Address,
		PhoneNumber: r.PhoneNumber,
		Birthday:    r.Birthday,
		Occupation:  r.Occupation,
		Email:       r.Email,
	}
}
