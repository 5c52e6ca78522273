package models

import (
	"time"

	"github.com/google/uuid"
)

// User is one registered account. The password hash stays in the
// repository layer and never appears on this struct.
type User struct {
	ID          uuid.UUID  `json:"id"`
	Username    string     `json:"username"`
	Email       string     `json:"email,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty"`
}

// Favorite is one bookmarked parking lot for a user.
type Favorite struct {
	ID        uuid.UUID `json:"id"`
	UserID    string    `json:"userId"`
	DongName  string    `json:"dongName"`
	LotName   string    `json:"lotName"`
	CreatedAt time.Time `json:"createdAt"`
}

// ParkingSession records one entry into a lot. ExitedAt and Fee stay
// nil while the vehicle is still parked. A user has at most one
// session with a nil ExitedAt at any time.
type ParkingSession struct {
	ID        uuid.UUID  `json:"id"`
	UserID    string     `json:"userId"`
	DongName  string     `json:"dongName"`
	LotName   string     `json:"lotName"`
	FeeInfo   string     `json:"feeInfo"`
	EnteredAt time.Time  `json:"enteredAt"`
	ExitedAt  *time.Time `json:"exitedAt,omitempty"`
	Fee       *int       `json:"fee,omitempty"`
}
