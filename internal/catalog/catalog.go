package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/danmuck/libnoise/internal/noise"
)

const symbolPrefix = "noise_"

var (
	ErrEntryExists     = errors.New("catalog: entry already exists")
	ErrInvalidEntry    = errors.New("catalog: invalid entry")
	ErrUnsupportedDims = errors.New("catalog: algorithm has no form in these dimensions")
	ErrArity           = errors.New("catalog: wrong number of coordinates")
)

// Entry binds one exported C symbol to an algorithm at a fixed arity.
type Entry struct {
	Symbol    string
	Algorithm noise.Algorithm
	Dims      int
	Group     string
}

// Eval evaluates e at p. len(p) must equal e.Dims.
func (e Entry) Eval(s *noise.Seed, p []float64) (float64, error) {
	if len(p) != e.Dims {
		return 0, fmt.Errorf("%w: %s takes %d, got %d", ErrArity, e.Symbol, e.Dims, len(p))
	}
	return e.Algorithm.Eval(s, p), nil
}

// Catalog stores entries by symbol and keeps declaration order, which is
// also the order of the generated header.
type Catalog struct {
	items map[string]Entry
	order []string
}

func New() *Catalog {
	return &Catalog{items: make(map[string]Entry)}
}

// ValidateEntry checks symbol format and that the algorithm exists at
// e.Dims.
func ValidateEntry(e Entry) error {
	if !isValidSymbol(e.Symbol) {
		return fmt.Errorf("%w: invalid symbol %q", ErrInvalidEntry, e.Symbol)
	}
	if e.Algorithm.Ident() == "" {
		return fmt.Errorf("%w: %s has no algorithm", ErrInvalidEntry, e.Symbol)
	}
	if !e.Algorithm.Supports(e.Dims) {
		return fmt.Errorf("%w: %s is %s at %dD", ErrUnsupportedDims, e.Symbol, e.Algorithm, e.Dims)
	}
	return nil
}

// Register appends e. Symbols are unique for the life of the ABI.
func (c *Catalog) Register(e Entry) error {
	e.Symbol = strings.TrimSpace(e.Symbol)
	if err := ValidateEntry(e); err != nil {
		return err
	}
	if _, ok := c.items[e.Symbol]; ok {
		return fmt.Errorf("%w: %s", ErrEntryExists, e.Symbol)
	}
	c.items[e.Symbol] = e
	c.order = append(c.order, e.Symbol)
	return nil
}

func (c *Catalog) Resolve(symbol string) (Entry, bool) {
	e, ok := c.items[strings.TrimSpace(symbol)]
	return e, ok
}

// Entries returns entries in declaration order.
func (c *Catalog) Entries() []Entry {
	out := make([]Entry, 0, len(c.order))
	for _, sym := range c.order {
		out = append(out, c.items[sym])
	}
	return out
}

func (c *Catalog) Len() int {
	return len(c.order)
}

// C identifiers: lower-case, digits, single underscores, fixed prefix.
func isValidSymbol(sym string) bool {
	if !strings.HasPrefix(sym, symbolPrefix) || len(sym) == len(symbolPrefix) {
		return false
	}
	lastSep := false
	for i := 0; i < len(sym); i++ {
		c := sym[i]
		isLower := c >= 'a' && c <= 'z'
		isDigit := c >= '0' && c <= '9'
		isSep := c == '_'
		if !(isLower || isDigit || isSep) {
			return false
		}
		if i == len(sym)-1 && isSep {
			return false
		}
		if isSep && lastSep {
			return false
		}
		lastSep = isSep
	}
	return true
}
