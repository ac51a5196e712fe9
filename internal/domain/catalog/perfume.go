package catalog

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrNotFound       = errors.New("catalog: perfume not found")
	ErrInvalidID      = errors.New("catalog: invalid perfume id")
	ErrInvalidPerfume = errors.New("catalog: name, price, gender, concentration are required")
)

// Gender is the target-audience axis of a perfume.
type Gender string

const (
	GenderMen    Gender = "men"
	GenderWomen  Gender = "women"
	GenderUnisex Gender = "unisex"
)

// Concentration is the fragrance-oil concentration class.
type Concentration string

const (
	ConcentrationEDT     Concentration = "EDT"
	ConcentrationEDP     Concentration = "EDP"
	ConcentrationParfum  Concentration = "PARFUM"
	ConcentrationExtrait Concentration = "EXTRAIT"
	ConcentrationCologne Concentration = "COLOGNE"
)

// ValidGender reports whether s is one of the enumerated gender values.
func ValidGender(s string) bool {
	switch Gender(s) {
	case GenderMen, GenderWomen, GenderUnisex:
		return true
	}
	return false
}

// ValidConcentration reports whether s is one of the enumerated concentration values.
func ValidConcentration(s string) bool {
	switch Concentration(s) {
	case ConcentrationEDT, ConcentrationEDP, ConcentrationParfum,
		ConcentrationExtrait, ConcentrationCologne:
		return true
	}
	return false
}

// Perfume is a catalog item. Timestamps are assigned by the repository.
type Perfume struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name          string             `json:"name" bson:"name"`
	Brand         string             `json:"brand" bson:"brand"`
	Description   string             `json:"description" bson:"description"`
	Price         float64            `json:"price" bson:"price"`
	Stock         int                `json:"stock" bson:"stock"`
	Gender        Gender             `json:"gender" bson:"gender"`
	Concentration Concentration      `json:"concentration" bson:"concentration"`
	IsPopular     bool               `json:"isPopular" bson:"isPopular"`
	IsNewArrival  bool               `json:"isNewArrival" bson:"isNewArrival"`
	ImageURL      string             `json:"imageUrl" bson:"imageUrl"`
	Tags          []string           `json:"tags" bson:"tags"`
	CreatedAt     time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// Validate checks the shape invariants required to admit a perfume into the
// store: non-empty name, non-negative price, enumerated gender and concentration.
func (p *Perfume) Validate() error {
	if p.Name == "" {
		return ErrInvalidPerfume
	}
	if p.Price < 0 {
		return ErrInvalidPerfume
	}
	if !ValidGender(string(p.Gender)) {
		return ErrInvalidPerfume
	}
	if !ValidConcentration(string(p.Concentration)) {
		return ErrInvalidPerfume
	}
	return nil
}

// Clone returns a deep copy, so repositories never hand out shared slices.
func (p *Perfume) Clone() *Perfume {
	if p == nil {
		return nil
	}
	clone := *p
	if p.Tags != nil {
		clone.Tags = append([]string(nil), p.Tags...)
	}
	return &clone
}
