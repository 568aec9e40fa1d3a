// Command noisectl inspects the libnoise export catalog and samples noise
// through the same seed lifecycle the C library uses.
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/danmuck/libnoise/internal/catalog"
	"github.com/danmuck/libnoise/internal/config"
	"github.com/danmuck/libnoise/internal/logging"
)

type app struct {
	configPath string
	seed       uint32
	cfg        config.NoisectlConfig
	catalog    *catalog.Catalog
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{cfg: config.DefaultNoisectlConfig()}

	root := &cobra.Command{
		Use:           "noisectl",
		Short:         "Inspect and sample the libnoise export catalog",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			logging.ConfigureRuntime()
			return a.load(cmd)
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", config.DefaultPath, "noisectl config path")
	root.PersistentFlags().Uint32Var(&a.seed, "seed", 0, "seed value (defaults to the config seed)")

	root.AddCommand(
		newCatalogCmd(a),
		newSampleCmd(a),
		newGridCmd(a),
		newConfigCmd(a),
	)
	return root
}

// load reads the config file and catalog. A missing file at the default
// path is not an error; an explicit --config must exist.
func (a *app) load(cmd *cobra.Command) error {
	explicit := cmd.Flags().Changed("config")
	cfg, err := config.LoadNoisectlConfig(a.configPath)
	switch {
	case err == nil:
		a.cfg = cfg
	case !explicit && errors.Is(err, fs.ErrNotExist):
		a.cfg = config.DefaultNoisectlConfig()
	default:
		return err
	}
	if !cmd.Flags().Changed("seed") {
		a.seed = a.cfg.Seed
	}

	c, err := catalog.Default()
	if err != nil {
		return err
	}
	a.catalog = c
	logging.Debugf("noisectl.load config=%q seed=%d entries=%d", a.configPath, a.seed, c.Len())
	return nil
}

func (a *app) resolve(symbol string) (catalog.Entry, error) {
	e, ok := a.catalog.Resolve(symbol)
	if !ok {
		return catalog.Entry{}, fmt.Errorf("unknown symbol %q (see noisectl catalog)", symbol)
	}
	return e, nil
}
