package account

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrNotFound   = errors.New("account: not found")
	ErrEmailTaken = errors.New("account: email already registered")
)

// Account is a registered user. The password is stored only as a one-way hash
// and never serialized to clients.
type Account struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name         string             `json:"name" bson:"name"`
	Email        string             `json:"email" bson:"email"`
	PasswordHash string             `json:"-" bson:"password"`
	CreatedAt    time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// Public is the client-facing projection of an account.
type Public struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Public strips the password hash and flattens the id to its hex form.
func (a *Account) Public() Public {
	return Public{
		ID:    a.ID.Hex(),
		Name:  a.Name,
		Email: a.Email,
	}
}

// TokenClaims is the identity payload carried by a bearer token.
type TokenClaims struct {
	ID    string
	Email string
	Name  string
}

// IssuedToken is a signed credential plus its expiry, reported both as an
// absolute epoch timestamp and as a duration in seconds.
type IssuedToken struct {
	Token     string
	ExpiresAt int64
	ExpiresIn int64
}
