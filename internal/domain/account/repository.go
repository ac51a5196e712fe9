package account

import "context"

// Repository is the document store holding accounts. The store enforces email
// uniqueness; Insert returns ErrEmailTaken on a duplicate, which is the
// canonical duplicate-registration signal. Any pre-insert existence check is
// an optimization only.
type Repository interface {
	Insert(ctx context.Context, a *Account) error
	FindByEmail(ctx context.Context, email string) (*Account, error)
	FindByID(ctx context.Context, id string) (*Account, error)
	Ping(ctx context.Context) error
}
