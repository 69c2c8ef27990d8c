// Package catalog holds the immutable guideline catalog. A Catalog is built
// once, validated up front, and never mutated afterwards.
package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/wcagcheck/internal/domain"
)

// ErrInvalidCatalog is returned when catalog records fail validation.
var ErrInvalidCatalog = errors.New("invalid catalog")

// Catalog is an ordered, read-only collection of guidelines.
type Catalog struct {
	records []domain.Guideline
	byID    map[string]int
}

// New validates records and builds a Catalog. The input slice is copied.
// All validation problems are reported together.
func New(records []domain.Guideline) (*Catalog, error) {
	if errs := Validate(records); len(errs) > 0 {
		msgs := make([]string, len(errs))
		for i, e := range errs {
			msgs[i] = e.Error()
		}
		return nil, fmt.Errorf("%w: %s", ErrInvalidCatalog, strings.Join(msgs, "; "))
	}

	c := &Catalog{
		records: make([]domain.Guideline, len(records)),
		byID:    make(map[string]int, len(records)),
	}
	for i, r := range records {
		c.records[i] = cloneGuideline(r)
		c.byID[r.ID] = i
	}
	return c, nil
}

// MustNew is like New but panics on invalid input.
func MustNew(records []domain.Guideline) *Catalog {
	c, err := New(records)
	if err != nil {
		panic(err)
	}
	return c
}

var defaultCatalog = MustNew(wcag21)

// Default returns the compiled-in WCAG 2.1 catalog.
func Default() *Catalog { return defaultCatalog }

// Len returns the number of records.
func (c *Catalog) Len() int { return len(c.records) }

// All returns the records in catalog order. The slice is a copy; the
// records' maps are shared and must be treated as read-only.
func (c *Catalog) All() []domain.Guideline {
	out := make([]domain.Guideline, len(c.records))
	copy(out, c.records)
	return out
}

// Lookup returns the record with the given id.
func (c *Catalog) Lookup(id string) (domain.Guideline, bool) {
	i, ok := c.byID[id]
	if !ok {
		return domain.Guideline{}, false
	}
	return c.records[i], true
}

// Contains reports whether id is a catalog id.
func (c *Catalog) Contains(id string) bool {
	_, ok := c.byID[id]
	return ok
}

// Validate checks records and returns every problem found.
func Validate(records []domain.Guideline) []error {
	var errs []error
	ids := make(map[string]bool, len(records))
	refs := make(map[string]bool, len(records))

	for i, r := range records {
		where := fmt.Sprintf("record %d", i)
		if r.ID == "" {
			errs = append(errs, fmt.Errorf("%s: id is required", where))
		} else {
			where = fmt.Sprintf("record %q", r.ID)
			if ids[r.ID] {
				errs = append(errs, fmt.Errorf("%s: duplicate id", where))
			}
			ids[r.ID] = true
		}

		if r.RefID == "" {
			errs = append(errs, fmt.Errorf("%s: refId is required", where))
		} else if refs[r.RefID] {
			errs = append(errs, fmt.Errorf("%s: duplicate refId %q", where, r.RefID))
		}
		refs[r.RefID] = true

		if !r.Level.Valid() {
			errs = append(errs, fmt.Errorf("%s: invalid level %q", where, r.Level))
		}

		if len(r.Roles) == 0 {
			errs = append(errs, fmt.Errorf("%s: at least one role is required", where))
		}
		for _, role := range r.Roles {
			if !role.Valid() {
				errs = append(errs, fmt.Errorf("%s: invalid role %q", where, role))
			}
		}

		errs = append(errs, validateText(where, "title", r.Title)...)
		errs = append(errs, validateText(where, "descriptionSimplified", r.DescriptionSimplified)...)
		errs = append(errs, validateText(where, "descriptionOriginal", r.DescriptionOriginal)...)
	}
	return errs
}

func validateText(where, field string, txt domain.LocalizedText) []error {
	var errs []error
	for _, lang := range domain.Languages {
		if strings.TrimSpace(txt[lang]) == "" {
			errs = append(errs, fmt.Errorf("%s: %s missing %q translation", where, field, lang))
		}
	}
	return errs
}

func cloneGuideline(g domain.Guideline) domain.Guideline {
	g.Roles = append([]domain.Role(nil), g.Roles...)
	g.Title = cloneText(g.Title)
	g.DescriptionSimplified = cloneText(g.DescriptionSimplified)
	g.DescriptionOriginal = cloneText(g.DescriptionOriginal)
	return g
}

func cloneText(t domain.LocalizedText) domain.LocalizedText {
	out := make(domain.LocalizedText, len(t))
	for k, v := range t {
		out[k] = v
	}
	return out
}
