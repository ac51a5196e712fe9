package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	domain "github.com/aromahub/perfumeshop/internal/domain/catalog"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PerfumeRepository is an in-memory stand-in for the Mongo perfume store.
// It mirrors the store semantics the services depend on: ObjectID-shaped
// identifiers, creation-time-descending ordering, and clone-on-read.
type PerfumeRepository struct {
	mu       sync.RWMutex
	perfumes map[string]*domain.Perfume
}

func NewPerfumeRepository() *PerfumeRepository {
	return &PerfumeRepository{perfumes: make(map[string]*domain.Perfume)}
}

func (r *PerfumeRepository) Find(ctx context.Context, q domain.Query) ([]*domain.Perfume, error) {
	_ = ctx

	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := []*domain.Perfume{}
	for _, p := range r.sorted() {
		if q.Matches(p) {
			matched = append(matched, p.Clone())
		}
	}

	skip := q.Skip()
	if skip >= len(matched) {
		return []*domain.Perfume{}, nil
	}
	matched = matched[skip:]
	if len(matched) > q.Limit {
		matched = matched[:q.Limit]
	}
	return matched, nil
}

func (r *PerfumeRepository) FindAll(ctx context.Context) ([]*domain.Perfume, error) {
	_ = ctx

	r.mu.RLock()
	defer r.mu.RUnlock()

	all := []*domain.Perfume{}
	for _, p := range r.sorted() {
		all = append(all, p.Clone())
	}
	return all, nil
}

func (r *PerfumeRepository) FindByID(ctx context.Context, id string) (*domain.Perfume, error) {
	_ = ctx
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, domain.ErrInvalidID
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.perfumes[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return p.Clone(), nil
}

func (r *PerfumeRepository) Insert(ctx context.Context, p *domain.Perfume) error {
	_ = ctx

	r.mu.Lock()
	defer r.mu.Unlock()

	r.insertLocked(p)
	return nil
}

func (r *PerfumeRepository) InsertMany(ctx context.Context, perfumes []*domain.Perfume) error {
	_ = ctx

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range perfumes {
		r.insertLocked(p)
	}
	return nil
}

func (r *PerfumeRepository) insertLocked(p *domain.Perfume) {
	now := time.Now().UTC()
	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now
	if p.Tags == nil {
		p.Tags = []string{}
	}
	r.perfumes[p.ID.Hex()] = p.Clone()
}

func (r *PerfumeRepository) Update(ctx context.Context, id string, patch domain.Patch) (*domain.Perfume, error) {
	_ = ctx
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return nil, domain.ErrInvalidID
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.perfumes[id]
	if !ok {
		return nil, domain.ErrNotFound
	}

	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Brand != nil {
		p.Brand = *patch.Brand
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.Stock != nil {
		p.Stock = *patch.Stock
	}
	if patch.Gender != nil {
		p.Gender = *patch.Gender
	}
	if patch.Concentration != nil {
		p.Concentration = *patch.Concentration
	}
	if patch.IsPopular != nil {
		p.IsPopular = *patch.IsPopular
	}
	if patch.IsNewArrival != nil {
		p.IsNewArrival = *patch.IsNewArrival
	}
	if patch.ImageURL != nil {
		p.ImageURL = *patch.ImageURL
	}
	if patch.Tags != nil {
		p.Tags = append([]string(nil), (*patch.Tags)...)
	}
	p.UpdatedAt = time.Now().UTC()

	return p.Clone(), nil
}

func (r *PerfumeRepository) Delete(ctx context.Context, id string) error {
	_ = ctx
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return domain.ErrInvalidID
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.perfumes[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.perfumes, id)
	return nil
}

func (r *PerfumeRepository) Ping(ctx context.Context) error {
	_ = ctx
	return nil
}

// sorted returns the records newest-first. Ties on CreatedAt fall back to id
// so ordering stays deterministic under fast successive inserts.
func (r *PerfumeRepository) sorted() []*domain.Perfume {
	all := make([]*domain.Perfume, 0, len(r.perfumes))
	for _, p := range r.perfumes {
		all = append(all, p)
	}
	sort.Slice(all, func(i, j int) bool {
		if !all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].CreatedAt.After(all[j].CreatedAt)
		}
		return all[i].ID.Hex() > all[j].ID.Hex()
	})
	return all
}
