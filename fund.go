package fortress

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Category tags a Fund with the kind of asset it holds.
type Category string

const (
	// Unspecified is the category of funds registered before categories existed.
	Unspecified Category = ""
	// Debt funds make up the emergency buffer.
	Debt      Category = "debt"
	Equity    Category = "equity"
	Commodity Category = "commodity"
)

// Categories lists the categories a user can pick.
var Categories = []Category{Debt, Equity, Commodity}

func (c Category) String() string {
	if c == Unspecified {
		return "unspecified"
	}
	return string(c)
}

// ParseCategory parses a string into a Category.
func ParseCategory(s string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debt":
		return Debt, nil
	case "equity":
		return Equity, nil
	case "commodity":
		return Commodity, nil
	case "", "unspecified":
		return Unspecified, nil
	default:
		return Unspecified, fmt.Errorf("unknown category: %q", s)
	}
}

var (
	ErrBlankName     = errors.New("name cannot be blank")
	ErrDuplicateFund = errors.New("fund already registered")
	ErrUnknownFund   = errors.New("fund is not registered")
)

// Fund is a named investment vehicle.
type Fund struct {
	Name     string   `json:"name"`
	Category Category `json:"category,omitempty"`
}

// UnmarshalJSON accepts both the current object form and the legacy form
// where a fund is just its name. A fund without a name is rejected.
func (f *Fund) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil && string(data) != "null" {
		*f = Fund{Name: name}
	} else {
		type jfund Fund // drops the methods to avoid recursion
		var jf *jfund
		if err := json.Unmarshal(data, &jf); err != nil {
			return fmt.Errorf("fund must be a name or an object: %w", err)
		}
		if jf == nil {
			return fmt.Errorf("fund: %w", ErrBlankName)
		}
		*f = Fund(*jf)
	}
	if strings.TrimSpace(f.Name) == "" {
		return fmt.Errorf("fund: %w", ErrBlankName)
	}
	return nil
}

// Registry is the ordered list of registered funds.
type Registry []Fund

// Lookup returns the fund registered with this name.
func (r Registry) Lookup(name string) (Fund, bool) {
	for _, f := range r {
		if f.Name == name {
			return f, true
		}
	}
	return Fund{}, false
}

// Add appends a new fund to the registry.
func (r *Registry) Add(name string, c Category) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrBlankName
	}
	if _, exists := r.Lookup(name); exists {
		return fmt.Errorf("%w: %q", ErrDuplicateFund, name)
	}
	*r = append(*r, Fund{Name: name, Category: c})
	return nil
}

// Reclassify changes the category of a registered fund. History is not
// rewritten: analytics resolve categories against the registry, so past
// contributions follow the new category.
func (r Registry) Reclassify(name string, c Category) error {
	for i := range r {
		if r[i].Name == name {
			r[i].Category = c
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownFund, name)
}

// Suggest returns the registered name closest to name, if any is close
// enough to be a plausible typo.
func (r Registry) Suggest(name string) (string, bool) {
	best, bestDist := "", -1
	for _, f := range r {
		d := levenshtein.ComputeDistance(strings.ToUpper(name), strings.ToUpper(f.Name))
		if bestDist < 0 || d < bestDist {
			best, bestDist = f.Name, d
		}
	}
	// more than a third of the name changed is not a typo anymore.
	if bestDist < 0 || bestDist*3 > len(name) {
		return "", false
	}
	return best, true
}

// Clone returns an independent copy of the registry.
func (r Registry) Clone() Registry {
	if r == nil {
		return nil
	}
	return append(Registry(make([]Fund, 0, len(r))), r...)
}
