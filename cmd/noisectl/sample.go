package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/danmuck/libnoise/internal/handle"
)

func newSampleCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "sample <symbol> <coord>...",
		Short: "Evaluate one exported function at one point",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := a.resolve(args[0])
			if err != nil {
				return err
			}
			coords, err := parseCoords(args[1:])
			if err != nil {
				return err
			}

			s := handle.New(a.seed)
			defer handle.Delete(s)

			v, err := e.Eval(s, coords)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatFloat(v, 'g', -1, 64))
			return nil
		},
	}
}

func parseCoords(raw []string) ([]float64, error) {
	out := make([]float64, len(raw))
	for i, r := range raw {
		v, err := strconv.ParseFloat(r, 64)
		if err != nil {
			return nil, fmt.Errorf("coordinate %d: %w", i, err)
		}
		out[i] = v
	}
	return out, nil
}
