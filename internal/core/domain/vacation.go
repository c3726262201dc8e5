package domain

import "time"

const (
	MinPrice = 0
	MaxPrice = 10000
)

// Country is read-only reference data.
type Country struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Vacation is a bookable trip to a country. Invariants: EndDate >= StartDate
// and MinPrice <= Price <= MaxPrice, enforced by the service layer.
// StartDate and EndDate carry date precision only.
type Vacation struct {
	ID          int       `json:"id"`
	CountryID   int       `json:"country_id"`
	Description string    `json:"description"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	Price       float64   `json:"price"`
	ImageName   *string   `json:"image_name,omitempty"`
}

// Like is a user's endorsement of a vacation. The (UserID, VacationID) pair
// is the composite primary key; the store removes likes when their vacation
// is deleted.
type Like struct {
	UserID     int `json:"user_id"`
	VacationID int `json:"vacation_id"`
}
