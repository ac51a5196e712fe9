package catalog

import "strings"

// Query is a normalized catalog query. Nil filter fields mean "no constraint".
// Page and Limit are already clamped by the time a Query reaches a repository.
type Query struct {
	Gender        *Gender
	Concentration *Concentration
	Popular       *bool
	NewArrival    *bool
	Search        string
	Page          int
	Limit         int
}

// Skip is the number of records to drop before the requested page.
func (q Query) Skip() int {
	return (q.Page - 1) * q.Limit
}

// Matches evaluates the categorical and text predicates against a single
// perfume. Repositories that cannot push the predicate down (the in-memory
// store) use this directly.
func (q Query) Matches(p *Perfume) bool {
	if q.Gender != nil && p.Gender != *q.Gender {
		return false
	}
	if q.Concentration != nil && p.Concentration != *q.Concentration {
		return false
	}
	if q.Popular != nil && p.IsPopular != *q.Popular {
		return false
	}
	if q.NewArrival != nil && p.IsNewArrival != *q.NewArrival {
		return false
	}
	if q.Search != "" && !matchesSearch(p, q.Search) {
		return false
	}
	return true
}

func matchesSearch(p *Perfume, term string) bool {
	term = strings.ToLower(term)
	if strings.Contains(strings.ToLower(p.Name), term) ||
		strings.Contains(strings.ToLower(p.Brand), term) ||
		strings.Contains(strings.ToLower(p.Description), term) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), term) {
			return true
		}
	}
	return false
}
