package model

// Person is the single entity managed by the API.
//
// ID is assigned by the database and never changes. NationalID is the
// external key used by search, update and delete.
type Person struct {
	ID         int64  `json:"id"`
	FullName   string `json:"full_name"`
	BirthDate  Date   `json:"birth_date"`
	Email      string `json:"email"`
	Country    string `json:"country"`
	NationalID string `json:"national_id"`
}
