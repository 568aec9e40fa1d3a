package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/danmuck/libnoise/internal/config"
)

type catalogRow struct {
	Symbol    string `json:"symbol" yaml:"symbol"`
	Algorithm string `json:"algorithm" yaml:"algorithm"`
	Dims      int    `json:"dims" yaml:"dims"`
	Group     string `json:"group" yaml:"group"`
}

func newCatalogCmd(a *app) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List every exported noise function",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("format") {
				format = a.cfg.Format
			}
			if err := config.ValidateFormat(format); err != nil {
				return err
			}
			rows := make([]catalogRow, 0, a.catalog.Len())
			for _, e := range a.catalog.Entries() {
				rows = append(rows, catalogRow{
					Symbol:    e.Symbol,
					Algorithm: e.Algorithm.String(),
					Dims:      e.Dims,
					Group:     e.Group,
				})
			}
			return writeRows(cmd.OutOrStdout(), format, rows)
		},
	}
	cmd.Flags().StringVar(&format, "format", "text", "output format: text|yaml|json")
	return cmd
}

func writeRows(w io.Writer, format string, rows []catalogRow) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	case "yaml":
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(rows)
	default:
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "SYMBOL\tALGORITHM\tDIMS\tGROUP")
		for _, r := range rows {
			fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", r.Symbol, r.Algorithm, r.Dims, r.Group)
		}
		return tw.Flush()
	}
}
