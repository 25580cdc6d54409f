package domain

import (
	"fmt"
	"sort"

	"github.com/SscSPs/atm_backend/internal/apperrors"
	"github.com/shopspring/decimal"
)

// Denomination is the face value of one banknote, in the lowest currency unit.
type Denomination int64

// Value returns the face value as a decimal for balance arithmetic.
func (d Denomination) Value() decimal.Decimal {
	return decimal.NewFromInt(int64(d))
}

// DefaultFaceValues is the set of banknotes the dispenser accepts when the seed does not override it.
var DefaultFaceValues = []int64{10, 100, 500, 1000, 5000}

// Catalog is the fixed, ordered set of denominations a dispenser supports.
// It is built once at startup and never mutated afterwards.
type Catalog struct {
	descending []Denomination
	index      map[int64]Denomination
}

// NewCatalog builds a catalog from face values. Values must be positive and unique.
func NewCatalog(faceValues ...int64) (*Catalog, error) {
	if len(faceValues) == 0 {
		return nil, fmt.Errorf("%w: denomination catalog is empty", apperrors.ErrConfiguration)
	}

	c := &Catalog{
		descending: make([]Denomination, 0, len(faceValues)),
		index:      make(map[int64]Denomination, len(faceValues)),
	}
	for _, v := range faceValues {
		if v <= 0 {
			return nil, fmt.Errorf("%w: denomination %d must be positive", apperrors.ErrConfiguration, v)
		}
		if _, ok := c.index[v]; ok {
			return nil, fmt.Errorf("%w: denomination %d listed twice", apperrors.ErrConfiguration, v)
		}
		c.index[v] = Denomination(v)
		c.descending = append(c.descending, Denomination(v))
	}
	sort.Slice(c.descending, func(i, j int) bool { return c.descending[i] > c.descending[j] })
	return c, nil
}

// DefaultCatalog returns a catalog of DefaultFaceValues.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(DefaultFaceValues...)
	if err != nil {
		panic(err)
	}
	return c
}

// Descending returns the denominations ordered from the largest face value to the smallest.
func (c *Catalog) Descending() []Denomination {
	out := make([]Denomination, len(c.descending))
	copy(out, c.descending)
	return out
}

// Lookup translates a face value coming from outside the core into a Denomination.
func (c *Catalog) Lookup(faceValue int64) (Denomination, bool) {
	d, ok := c.index[faceValue]
	return d, ok
}

// Contains reports whether d belongs to the catalog.
func (c *Catalog) Contains(d Denomination) bool {
	_, ok := c.index[int64(d)]
	return ok
}

// Len returns the number of denominations in the catalog.
func (c *Catalog) Len() int { return len(c.descending) }
