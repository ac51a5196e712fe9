package account

import (
	"context"
	"errors"
	"fmt"

	domain "github.com/aromahub/perfumeshop/internal/domain/account"
	"github.com/aromahub/perfumeshop/internal/pkg/logging"
	"go.uber.org/zap"
)

var (
	ErrMissingFields = errors.New("account: all fields required")
	// ErrInvalidCredentials covers both an unknown email and a failed hash
	// comparison; the two cases are indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("account: invalid credentials")
	ErrEmailTaken         = domain.ErrEmailTaken
	ErrInvalidToken       = errors.New("account: invalid token")
)

// PasswordHasher is the one-way password hashing capability.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// TokenIssuer signs and verifies bearer tokens.
type TokenIssuer interface {
	Issue(claims domain.TokenClaims) (domain.IssuedToken, error)
	Verify(token string) (*domain.TokenClaims, error)
}

// Service registers accounts, verifies credentials, and issues bearer tokens.
type Service struct {
	repo   domain.Repository
	hasher PasswordHasher
	tokens TokenIssuer
}

func NewService(repo domain.Repository, hasher PasswordHasher, tokens TokenIssuer) *Service {
	return &Service{repo: repo, hasher: hasher, tokens: tokens}
}

// AuthResult is the outcome of a successful registration or login.
type AuthResult struct {
	Account *domain.Account
	Token   domain.IssuedToken
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// Register creates an account and issues its first token. The existence
// pre-check is a fast path only; the store's uniqueness constraint is the
// authoritative duplicate signal, so a concurrent duplicate still fails
// without mutating state.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	if in.Name == "" || in.Email == "" || in.Password == "" {
		return nil, ErrMissingFields
	}

	if _, err := s.repo.FindByEmail(ctx, in.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, domain.ErrNotFound) {
		logging.FromContext(ctx).Error("account_lookup_failed", zap.Error(err))
		return nil, fmt.Errorf("account: lookup: %w", err)
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("account: hash password: %w", err)
	}

	acct := &domain.Account{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
	}
	if err := s.repo.Insert(ctx, acct); err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			return nil, ErrEmailTaken
		}
		logging.FromContext(ctx).Error("account_insert_failed", zap.Error(err))
		return nil, fmt.Errorf("account: insert: %w", err)
	}

	return s.issue(acct)
}

type LoginInput struct {
	Email    string
	Password string
}

// Login verifies credentials and issues a token identical in structure to the
// one issued at registration.
func (s *Service) Login(ctx context.Context, in LoginInput) (*AuthResult, error) {
	if in.Email == "" || in.Password == "" {
		return nil, ErrMissingFields
	}

	acct, err := s.repo.FindByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		logging.FromContext(ctx).Error("account_lookup_failed", zap.Error(err))
		return nil, fmt.Errorf("account: lookup: %w", err)
	}

	if err := s.hasher.Compare(acct.PasswordHash, in.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.issue(acct)
}

// VerifyToken validates a bearer token and returns its decoded claims.
func (s *Service) VerifyToken(token string) (*domain.TokenClaims, error) {
	claims, err := s.tokens.Verify(token)
	if err != nil {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// CurrentAccount loads the account behind a verified token payload. The
// account is assumed to exist since the token was valid, but the store call
// can still fail.
func (s *Service) CurrentAccount(ctx context.Context, id string) (*domain.Account, error) {
	acct, err := s.repo.FindByID(ctx, id)
	if err != nil {
		logging.FromContext(ctx).Error("account_fetch_failed", zap.String("account_id", id), zap.Error(err))
		return nil, fmt.Errorf("account: fetch: %w", err)
	}
	return acct, nil
}

// Ping reports store connectivity for the health endpoint.
func (s *Service) Ping(ctx context.Context) error {
	return s.repo.Ping(ctx)
}

func (s *Service) issue(acct *domain.Account) (*AuthResult, error) {
	token, err := s.tokens.Issue(domain.TokenClaims{
		ID:    acct.ID.Hex(),
		Email: acct.Email,
		Name:  acct.Name,
	})
	if err != nil {
		return nil, fmt.Errorf("account: issue token: %w", err)
	}
	return &AuthResult{Account: acct, Token: token}, nil
}
