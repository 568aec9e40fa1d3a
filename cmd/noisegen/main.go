// Command noisegen renders the libnoise C boundary from the export catalog.
//
// It is run by go generate in cmd/libnoise and by CI with -check.
package main

import (
	"flag"
	"log"

	"github.com/danmuck/libnoise/internal/catalog"
	"github.com/danmuck/libnoise/internal/codegen"
	"github.com/danmuck/libnoise/internal/logging"
)

func main() {
	table := flag.String("catalog", "", "export catalog path (defaults to the embedded table)")
	goOut := flag.String("go", "exports_gen.go", "output path for the Go export wrappers")
	headerOut := flag.String("header", "noise.h", "output path for the C header")
	check := flag.Bool("check", false, "fail if the outputs are stale instead of writing them")
	flag.Parse()

	logging.ConfigureRuntime()

	source := catalog.DefaultSource
	var (
		c   *catalog.Catalog
		err error
	)
	if *table == "" {
		c, err = catalog.Default()
	} else {
		source = *table
		c, err = catalog.Load(*table)
	}
	if err != nil {
		log.Fatal(err)
	}

	if err := codegen.Generate(codegen.Options{
		Catalog:    c,
		Source:     source,
		GoPath:     *goOut,
		HeaderPath: *headerOut,
		Check:      *check,
	}); err != nil {
		log.Fatal(err)
	}
	if *check {
		log.Printf("Checked %d exports against %s and %s", c.Len(), *goOut, *headerOut)
		return
	}
	log.Printf("Wrote %d exports to %s and %s", c.Len(), *goOut, *headerOut)
}
