package memory

import (
	"context"
	"sync"
	"time"

	domain "github.com/aromahub/perfumeshop/internal/domain/account"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AccountRepository is an in-memory stand-in for the Mongo account store.
// Email uniqueness is enforced under the write lock, so duplicate inserts
// fail atomically the way the unique index does.
type AccountRepository struct {
	mu       sync.RWMutex
	accounts map[string]*domain.Account
	byEmail  map[string]string
}

func NewAccountRepository() *AccountRepository {
	return &AccountRepository{
		accounts: make(map[string]*domain.Account),
		byEmail:  make(map[string]string),
	}
}

func (r *AccountRepository) Insert(ctx context.Context, a *domain.Account) error {
	_ = ctx

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byEmail[a.Email]; exists {
		return domain.ErrEmailTaken
	}

	now := time.Now().UTC()
	if a.ID.IsZero() {
		a.ID = primitive.NewObjectID()
	}
	a.CreatedAt = now
	a.UpdatedAt = now

	clone := *a
	r.accounts[a.ID.Hex()] = &clone
	r.byEmail[a.Email] = a.ID.Hex()
	return nil
}

func (r *AccountRepository) FindByEmail(ctx context.Context, email string) (*domain.Account, error) {
	_ = ctx

	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[email]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := *r.accounts[id]
	return &clone, nil
}

func (r *AccountRepository) FindByID(ctx context.Context, id string) (*domain.Account, error) {
	_ = ctx

	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.accounts[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := *a
	return &clone, nil
}

// Count reports the number of stored accounts. Tests use it to assert that a
// rejected duplicate registration left the store untouched.
func (r *AccountRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.accounts)
}

func (r *AccountRepository) Ping(ctx context.Context) error {
	_ = ctx
	return nil
}
