// Package criteria loads the fixed ESG scoring catalog. The catalog is read
// once at start-up and never mutated.
package criteria

import (
	_ "embed"
	"fmt"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"esgtracker/internal/domain"
)

//go:embed criteria.yaml
var defaultCatalog []byte

//go:embed criteria.cue
var schemaSource []byte

type Criterion struct {
	Index     int
	Dimension domain.Dimension
	Name      string
	Weight    decimal.Decimal
}

// Catalog is an ordered, read-only list of criteria. Index i of a RawScores
// map refers to All()[i].
type Catalog struct {
	items []Criterion
}

type catalogFile struct {
	Criteria []criterionEntry `yaml:"criteria" json:"criteria"`
}

type criterionEntry struct {
	Dimension string  `yaml:"dimension" json:"dimension"`
	Name      string  `yaml:"name" json:"name"`
	Weight    float64 `yaml:"weight" json:"weight"`
}

// Default returns the catalog embedded in the binary.
func Default() (*Catalog, error) {
	return Parse(defaultCatalog)
}

// Load reads a catalog file, or the embedded default when path is empty.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read criteria file: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML and validates it against the embedded CUE schema.
func Parse(data []byte) (*Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: parse criteria: %v", domain.ErrValidation, err)
	}
	if err := validate(f); err != nil {
		return nil, err
	}

	items := make([]Criterion, 0, len(f.Criteria))
	for i, c := range f.Criteria {
		items = append(items, Criterion{
			Index:     i,
			Dimension: domain.Dimension(c.Dimension),
			Name:      c.Name,
			Weight:    decimal.NewFromFloat(c.Weight),
		})
	}
	return &Catalog{items: items}, nil
}

func validate(f catalogFile) error {
	ctx := cuecontext.New()
	schema := ctx.CompileBytes(schemaSource, cue.Filename("criteria.cue"))
	if err := schema.Err(); err != nil {
		return fmt.Errorf("compile criteria schema: %w", err)
	}
	def := schema.LookupPath(cue.ParsePath("#Catalog"))
	if !def.Exists() {
		return fmt.Errorf("criteria schema has no #Catalog definition")
	}

	value := ctx.Encode(f)
	if err := value.Err(); err != nil {
		return fmt.Errorf("encode criteria: %w", err)
	}
	unified := def.Unify(value)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return fmt.Errorf("%w: criteria catalog: %v", domain.ErrValidation, err)
	}
	return nil
}

// All returns a copy of the criteria in catalog order.
func (c *Catalog) All() []Criterion {
	out := make([]Criterion, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Catalog) Len() int { return len(c.items) }

func (c *Catalog) ByDimension(d domain.Dimension) []Criterion {
	return lo.Filter(c.items, func(item Criterion, _ int) bool {
		return item.Dimension == d
	})
}

// WeightShare is a criterion's weight as a fraction of its dimension's total.
func (c *Catalog) WeightShare(index int) decimal.Decimal {
	if index < 0 || index >= len(c.items) {
		return decimal.Zero
	}
	item := c.items[index]
	total := decimal.Zero
	for _, other := range c.ByDimension(item.Dimension) {
		total = total.Add(other.Weight)
	}
	if total.IsZero() {
		return decimal.Zero
	}
	return item.Weight.Div(total)
}
