// Package codegen renders the C boundary from the export catalog.
//
// One catalog row yields one fixed-arity //export wrapper in Go and one
// prototype in the public header. The wrappers share a single shape: borrow
// the seed, widen the coordinates, call the algorithm's EvalN, narrow the
// result.
package codegen

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"os"
	"strings"
	"text/template"

	"github.com/danmuck/libnoise/internal/catalog"
	"github.com/danmuck/libnoise/internal/logging"
)

var ErrStale = errors.New("codegen: generated file is stale")

var coordNames = [4]string{"x", "y", "z", "w"}

type exportView struct {
	Symbol       string
	Ident        string
	Method       string
	Describe     string
	Dims         int
	Coords       string
	Args         string
	HeaderParams string
	GroupStart   string
}

type fileView struct {
	Source  string
	Exports []exportView
}

var (
	goTmpl     = template.Must(template.New("go").Parse(goTemplate))
	headerTmpl = template.Must(template.New("header").Parse(headerTemplate))
)

func views(c *catalog.Catalog, source string) (fileView, error) {
	out := fileView{Source: source}
	group := ""
	for _, e := range c.Entries() {
		if err := catalog.ValidateEntry(e); err != nil {
			return fileView{}, err
		}
		coords := coordNames[:e.Dims]
		args := make([]string, e.Dims)
		params := make([]string, e.Dims)
		for i, name := range coords {
			args[i] = "float64(" + name + ")"
			params[i] = "double " + name
		}
		v := exportView{
			Symbol:       e.Symbol,
			Ident:        e.Algorithm.Ident(),
			Method:       fmt.Sprintf("Eval%d", e.Dims),
			Describe:     e.Algorithm.Describe(),
			Dims:         e.Dims,
			Coords:       strings.Join(coords, ", "),
			Args:         strings.Join(args, ", "),
			HeaderParams: strings.Join(params, ", "),
		}
		if e.Group != group {
			v.GroupStart = e.Group
			group = e.Group
		}
		out.Exports = append(out.Exports, v)
	}
	return out, nil
}

// RenderGo returns the gofmt'd export wrappers for c.
func RenderGo(c *catalog.Catalog, source string) ([]byte, error) {
	view, err := views(c, source)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := goTmpl.Execute(&buf, view); err != nil {
		return nil, fmt.Errorf("render go: %w", err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format go: %w", err)
	}
	return src, nil
}

// RenderHeader returns the public C header for c.
func RenderHeader(c *catalog.Catalog, source string) ([]byte, error) {
	view, err := views(c, source)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := headerTmpl.Execute(&buf, view); err != nil {
		return nil, fmt.Errorf("render header: %w", err)
	}
	return buf.Bytes(), nil
}

type Options struct {
	Catalog    *catalog.Catalog
	Source     string
	GoPath     string
	HeaderPath string
	// Check compares instead of writing and fails with ErrStale on drift.
	Check bool
}

func Generate(opts Options) error {
	if opts.Catalog == nil {
		return fmt.Errorf("codegen: catalog is required")
	}
	goSrc, err := RenderGo(opts.Catalog, opts.Source)
	if err != nil {
		return err
	}
	header, err := RenderHeader(opts.Catalog, opts.Source)
	if err != nil {
		return err
	}

	outputs := []struct {
		path string
		data []byte
	}{
		{opts.GoPath, goSrc},
		{opts.HeaderPath, header},
	}
	for _, out := range outputs {
		if out.path == "" {
			continue
		}
		if opts.Check {
			existing, err := os.ReadFile(out.path)
			if err != nil {
				return fmt.Errorf("%w: %s: %v", ErrStale, out.path, err)
			}
			if !bytes.Equal(existing, out.data) {
				return fmt.Errorf("%w: %s", ErrStale, out.path)
			}
			continue
		}
		if err := os.WriteFile(out.path, out.data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", out.path, err)
		}
	}
	logging.Infof(
		"codegen.Generate ok entries=%d go=%q header=%q check=%v",
		opts.Catalog.Len(), opts.GoPath, opts.HeaderPath, opts.Check,
	)
	return nil
}
