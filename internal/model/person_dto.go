package model

import (
	"github.com/deppfellow/persons-api/internal/validation"
)

// PersonFields lists the JSON keys every create/update body must contain.
var PersonFields = []string{"full_name", "birth_date", "email", "country", "national_id"}

// PersonPayload is the body shared by register and update.
//
// BirthDate stays a string until validation succeeds so a malformed date
// becomes a field error instead of a decode failure.
type PersonPayload struct {
	FullName   string `json:"full_name" validate:"required"`
	BirthDate  string `json:"birth_date" validate:"required,datetime=2006-01-02"`
	Email      string `json:"email" validate:"required,person_email"`
	Country    string `json:"country" validate:"required"`
	NationalID string `json:"national_id" validate:"required"`
}

// RequiredFields implements validation.JSONBody.
func (p *PersonPayload) RequiredFields() []string {
	return PersonFields
}

// Validate implements validation.Validatable.
func (p *PersonPayload) Validate() error {
	return validation.Struct(p)
}

// ToPerson builds the entity from an already validated payload.
func (p *PersonPayload) ToPerson() (*Person, error) {
	birthDate, err := ParseDate(p.BirthDate)
	if err != nil {
		return nil, err
	}

	return &Person{
		FullName:   p.FullName,
		BirthDate:  birthDate,
		Email:      p.Email,
		Country:    p.Country,
		NationalID: p.NationalID,
	}, nil
}

// RegisterPersonRequest is the body of POST /persons/register.
type RegisterPersonRequest struct {
	PersonPayload
}

// UpdatePersonRequest is the body of PUT /persons/update.
// NationalID selects the record; it is never rewritten.
type UpdatePersonRequest struct {
	PersonPayload
}

// ListPersonsRequest carries no input; it exists so GET /persons goes
// through the same handler pipeline as every other route.
type ListPersonsRequest struct{}

func (r *ListPersonsRequest) Validate() error {
	return nil
}

// NationalIDParam binds the {national_id} path segment.
type NationalIDParam struct {
	NationalID string `param:"national_id" validate:"required"`
}

func (r *NationalIDParam) Validate() error {
	return validation.Struct(r)
}

// SearchPersonRequest is GET /persons/search/{national_id}.
type SearchPersonRequest struct {
	NationalIDParam
}

// DeletePersonRequest is DELETE /persons/delete/{national_id}.
type DeletePersonRequest struct {
	NationalIDParam
}
