package catalog

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	domain "github.com/aromahub/perfumeshop/internal/domain/catalog"
	"github.com/aromahub/perfumeshop/internal/pkg/logging"
	"go.uber.org/zap"
)

const (
	defaultPage  = 1
	defaultLimit = 100
	maxLimit     = 200
)

var (
	ErrForbidden     = errors.New("catalog: forbidden")
	ErrAdminKeyUnset = errors.New("catalog: admin api key not configured")
	ErrEmptyImport   = errors.New("catalog: provide an array of items")
)

// Authorizer is the admin capability check consumed before every mutating
// operation.
type Authorizer interface {
	AuthorizeAdmin(claimedKey string) error
}

type adminKeyAuthorizer struct {
	secret string
}

// NewAdminKeyAuthorizer authorizes callers that present the configured shared
// secret. An empty secret disables writes entirely rather than opening them.
func NewAdminKeyAuthorizer(secret string) Authorizer {
	return adminKeyAuthorizer{secret: secret}
}

func (a adminKeyAuthorizer) AuthorizeAdmin(claimedKey string) error {
	if a.secret == "" {
		return ErrAdminKeyUnset
	}
	if claimedKey != a.secret {
		return ErrForbidden
	}
	return nil
}

// Service is the catalog query engine: it normalizes request filters into
// store predicates, paginates, groups, and guards the write path.
type Service struct {
	repo domain.Repository
	auth Authorizer
}

func NewService(repo domain.Repository, auth Authorizer) *Service {
	return &Service{repo: repo, auth: auth}
}

// ListParams carries raw, untrusted query values. Popular and New are pointers
// because their mere presence is significant: "popular=false" filters on
// isPopular=false, while an absent flag applies no constraint.
type ListParams struct {
	Gender        string
	Concentration string
	Popular       *string
	New           *string
	Search        string
	Page          string
	Limit         string
}

// List returns one page of perfumes ordered by creation time descending.
// Unrecognized or invalid filter values are silently dropped, never rejected.
func (s *Service) List(ctx context.Context, params ListParams) ([]*domain.Perfume, error) {
	q := buildQuery(params)
	items, err := s.repo.Find(ctx, q)
	if err != nil {
		logging.FromContext(ctx).Error("catalog_find_failed", zap.Error(err))
		return nil, fmt.Errorf("catalog: find: %w", err)
	}
	return items, nil
}

func buildQuery(params ListParams) domain.Query {
	q := domain.Query{
		Search: params.Search,
		Page:   parsePage(params.Page),
		Limit:  parseLimit(params.Limit),
	}
	if domain.ValidGender(params.Gender) {
		g := domain.Gender(params.Gender)
		q.Gender = &g
	}
	if domain.ValidConcentration(params.Concentration) {
		c := domain.Concentration(params.Concentration)
		q.Concentration = &c
	}
	if params.Popular != nil {
		v := *params.Popular == "true"
		q.Popular = &v
	}
	if params.New != nil {
		v := *params.New == "true"
		q.NewArrival = &v
	}
	return q
}

func parsePage(raw string) int {
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return defaultPage
	}
	return page
}

func parseLimit(raw string) int {
	limit, err := strconv.Atoi(raw)
	if err != nil {
		return defaultLimit
	}
	if limit < 1 {
		return 1
	}
	if limit > maxLimit {
		return maxLimit
	}
	return limit
}

// GetByID returns a single perfume, or domain.ErrNotFound / domain.ErrInvalidID.
func (s *Service) GetByID(ctx context.Context, id string) (*domain.Perfume, error) {
	return s.repo.FindByID(ctx, id)
}

// Create validates the perfume shape and inserts it. The admin capability is
// checked before anything touches the store.
func (s *Service) Create(ctx context.Context, adminKey string, in CreateInput) (*domain.Perfume, error) {
	if err := s.auth.AuthorizeAdmin(adminKey); err != nil {
		return nil, err
	}
	p, err := in.perfume()
	if err != nil {
		return nil, err
	}
	if err := s.repo.Insert(ctx, p); err != nil {
		logging.FromContext(ctx).Error("catalog_insert_failed", zap.Error(err))
		return nil, fmt.Errorf("catalog: insert: %w", err)
	}
	return p, nil
}

// Update applies a partial update to an existing perfume.
func (s *Service) Update(ctx context.Context, adminKey, id string, patch domain.Patch) (*domain.Perfume, error) {
	if err := s.auth.AuthorizeAdmin(adminKey); err != nil {
		return nil, err
	}
	if err := patch.Validate(); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, id, patch)
}

// Delete removes a perfume by id.
func (s *Service) Delete(ctx context.Context, adminKey, id string) error {
	if err := s.auth.AuthorizeAdmin(adminKey); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// Import bulk-inserts perfumes; every item must pass shape validation.
func (s *Service) Import(ctx context.Context, adminKey string, items []CreateInput) ([]*domain.Perfume, error) {
	if err := s.auth.AuthorizeAdmin(adminKey); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrEmptyImport
	}
	perfumes := make([]*domain.Perfume, 0, len(items))
	for _, in := range items {
		p, err := in.perfume()
		if err != nil {
			return nil, err
		}
		perfumes = append(perfumes, p)
	}
	if err := s.repo.InsertMany(ctx, perfumes); err != nil {
		logging.FromContext(ctx).Error("catalog_import_failed", zap.Error(err))
		return nil, fmt.Errorf("catalog: import: %w", err)
	}
	return perfumes, nil
}

// Ping reports store connectivity for the health endpoint.
func (s *Service) Ping(ctx context.Context) error {
	return s.repo.Ping(ctx)
}

// CreateInput is the write-path payload. Price is a pointer so a missing price
// is rejected rather than defaulting to zero.
type CreateInput struct {
	Name          string   `json:"name"`
	Brand         string   `json:"brand"`
	Description   string   `json:"description"`
	Price         *float64 `json:"price"`
	Stock         int      `json:"stock"`
	Gender        string   `json:"gender"`
	Concentration string   `json:"concentration"`
	IsPopular     bool     `json:"isPopular"`
	IsNewArrival  bool     `json:"isNewArrival"`
	ImageURL      string   `json:"imageUrl"`
	Tags          []string `json:"tags"`
}

func (in CreateInput) perfume() (*domain.Perfume, error) {
	if in.Price == nil {
		return nil, domain.ErrInvalidPerfume
	}
	p := &domain.Perfume{
		Name:          in.Name,
		Brand:         in.Brand,
		Description:   in.Description,
		Price:         *in.Price,
		Stock:         in.Stock,
		Gender:        domain.Gender(in.Gender),
		Concentration: domain.Concentration(in.Concentration),
		IsPopular:     in.IsPopular,
		IsNewArrival:  in.IsNewArrival,
		ImageURL:      in.ImageURL,
		Tags:          in.Tags,
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}
