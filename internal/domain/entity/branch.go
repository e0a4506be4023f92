package entity

import (
	"time"

	"github.com/google/uuid"
)

// Branch is a retail location. It is stored as a user account with role "branch".
type Branch struct {
	ID            uuid.UUID `json:"id"`
	FirstName     string    `json:"firstName"`
	LastName      string    `json:"lastName"`
	Email         string    `json:"email"`
	PasswordHash  string    `json:"-"` // bcrypt hash of the initial password, never serialized.
	Role          Role      `json:"role"`
	Status        string    `json:"status"`
	PaymentMethod string    `json:"paymentMethod,omitempty"`
	Address       Address   `json:"address"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
