package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/danmuck/libnoise/internal/noise"
)

// DefaultSource is the repository path of the embedded table.
const DefaultSource = "internal/catalog/catalog.toml"

const tableVersion = 1

var ErrTable = errors.New("catalog: invalid table")

//go:embed catalog.toml
var defaultTable string

type fileTable struct {
	Version int         `toml:"version"`
	Entries []fileEntry `toml:"entry"`
}

type fileEntry struct {
	Symbol    string `toml:"symbol"`
	Algorithm string `toml:"algorithm"`
	Dims      int    `toml:"dims"`
	Group     string `toml:"group"`
}

// Default parses the embedded export table.
func Default() (*Catalog, error) {
	return Parse(defaultTable)
}

// Load parses the table at path.
func Load(path string) (*Catalog, error) {
	var raw fileTable
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return nil, fmt.Errorf("load catalog (%s): %w", path, err)
	}
	c, err := build(meta, raw)
	if err != nil {
		return nil, fmt.Errorf("load catalog (%s): %w", path, err)
	}
	return c, nil
}

func Parse(data string) (*Catalog, error) {
	var raw fileTable
	meta, err := toml.Decode(data, &raw)
	if err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	return build(meta, raw)
}

func build(meta toml.MetaData, raw fileTable) (*Catalog, error) {
	if !meta.IsDefined("version") {
		return nil, fmt.Errorf("%w: missing version", ErrTable)
	}
	if raw.Version != tableVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrTable, raw.Version)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return nil, fmt.Errorf("%w: unknown keys %s", ErrTable, strings.Join(keys, ", "))
	}
	if !meta.IsDefined("entry") {
		return nil, fmt.Errorf("%w: no entries", ErrTable)
	}

	c := New()
	for i, fe := range raw.Entries {
		alg, err := noise.ParseAlgorithm(fe.Algorithm)
		if err != nil {
			return nil, fmt.Errorf("entry[%d] %s: %w", i, fe.Symbol, err)
		}
		group := strings.TrimSpace(fe.Group)
		if group == "" {
			group = alg.Describe()
		}
		e := Entry{Symbol: fe.Symbol, Algorithm: alg, Dims: fe.Dims, Group: group}
		if err := c.Register(e); err != nil {
			return nil, fmt.Errorf("entry[%d]: %w", i, err)
		}
	}
	return c, nil
}
