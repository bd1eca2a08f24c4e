package domain

import "time"

// Timestamps holds creation/update times shared by most entities.
type Timestamps struct {
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// DateLayout is the wire format for business dates (no time component).
const DateLayout = "2006-01-02"
