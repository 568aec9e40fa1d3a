package main

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/danmuck/libnoise/internal/catalog"
	"github.com/danmuck/libnoise/internal/config"
	"github.com/danmuck/libnoise/internal/handle"
	"github.com/danmuck/libnoise/internal/logging"
	"github.com/danmuck/libnoise/internal/noise"
	"github.com/danmuck/libnoise/internal/observability"
)

type gridOptions struct {
	width   int
	height  int
	step    float64
	workers int
	format  string
	metrics bool
}

func newGridCmd(a *app) *cobra.Command {
	var opts gridOptions
	cmd := &cobra.Command{
		Use:   "grid <symbol>",
		Short: "Evaluate an exported function over a 2D slice of its domain",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			if !flags.Changed("step") {
				opts.step = a.cfg.Step
			}
			if !flags.Changed("workers") {
				opts.workers = a.cfg.Workers
			}
			if !flags.Changed("format") {
				opts.format = a.cfg.Format
			}
			if opts.width < 1 || opts.height < 1 {
				return fmt.Errorf("grid needs positive --width and --height, got %dx%d", opts.width, opts.height)
			}
			if !(opts.step > 0) || opts.workers < 1 {
				return fmt.Errorf("grid needs positive --step and --workers")
			}
			if err := config.ValidateFormat(opts.format); err != nil {
				return err
			}
			e, err := a.resolve(args[0])
			if err != nil {
				return err
			}

			rows, err := sampleGrid(e, a.seed, a.cfg.OriginFor(e.Dims), opts)
			if err != nil {
				return err
			}
			if err := writeGrid(cmd.OutOrStdout(), opts.format, rows); err != nil {
				return err
			}
			if opts.metrics {
				return writeMetrics(cmd.ErrOrStderr())
			}
			return nil
		},
	}
	f := cmd.Flags()
	f.IntVar(&opts.width, "width", 16, "samples per row")
	f.IntVar(&opts.height, "height", 16, "rows")
	f.Float64Var(&opts.step, "step", 0.05, "distance between samples (defaults to the config step)")
	f.IntVar(&opts.workers, "workers", 4, "rows evaluated concurrently (defaults to the config workers)")
	f.StringVar(&opts.format, "format", "text", "output format: text|yaml|json")
	f.BoolVar(&opts.metrics, "metrics", false, "print evaluation metrics to stderr")
	return cmd
}

// sampleGrid walks x then y from origin. Coordinates beyond the second stay
// at the origin. Every row borrows the same handle, which is deleted once
// all rows have returned.
func sampleGrid(e catalog.Entry, seed uint32, origin []float64, opts gridOptions) ([][]float64, error) {
	s := handle.New(seed)
	defer handle.Delete(s)

	rows := make([][]float64, opts.height)
	var g errgroup.Group
	g.SetLimit(opts.workers)
	for y := 0; y < opts.height; y++ {
		g.Go(func() error {
			row, err := sampleRow(e, s, origin, y, opts)
			if err != nil {
				return err
			}
			rows[y] = row
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	logging.Infof(
		"noisectl.grid ok symbol=%s seed=%d size=%dx%d workers=%d",
		e.Symbol, seed, opts.width, opts.height, opts.workers,
	)
	return rows, nil
}

func sampleRow(e catalog.Entry, s *noise.Seed, origin []float64, y int, opts gridOptions) ([]float64, error) {
	timer := observability.StartTimer(*logging.Logger(), e.Symbol, e.Dims)
	p := make([]float64, len(origin))
	copy(p, origin)
	p[1] = origin[1] + float64(y)*opts.step

	row := make([]float64, opts.width)
	for x := range row {
		p[0] = origin[0] + float64(x)*opts.step
		v, err := e.Eval(s, p)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", y, err)
		}
		row[x] = v
	}
	timer.Done(opts.width)
	return row, nil
}

func writeGrid(w io.Writer, format string, rows [][]float64) error {
	switch format {
	case "json":
		return json.NewEncoder(w).Encode(rows)
	case "yaml":
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(rows)
	default:
		for _, row := range rows {
			cells := make([]string, len(row))
			for i, v := range row {
				cells[i] = strconv.FormatFloat(v, 'f', 6, 64)
			}
			if _, err := fmt.Fprintln(w, strings.Join(cells, " ")); err != nil {
				return err
			}
		}
		return nil
	}
}

func writeMetrics(w io.Writer) error {
	snap, err := observability.Snapshot()
	if err != nil {
		return err
	}
	names := make([]string, 0, len(snap))
	for name := range snap {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(w, "%s %g\n", name, snap[name])
	}
	return nil
}
