// Command genbodies regenerates the bodies package constant tables from
// SPICE text kernels: a gravitational-parameter kernel (gm_de440.tpc) and
// a planetary-constants kernel (pck00011.tpc). Bodies without a name
// entry in the catalog list are skipped with a warning.
//
// Usage:
//
//	genbodies -gm gm_de440.tpc -pck pck00011.tpc -o bodies/tables.go
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

func main() {
	gmPath := flag.String("gm", "gm_de440.tpc", "gravitational parameter kernel")
	pckPath := flag.String("pck", "pck00011.tpc", "planetary constants kernel")
	outPath := flag.String("o", "", "output file (default stdout)")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	gmVars, err := parseKernelFile(*gmPath, logger)
	if err != nil {
		logger.Error("parsing GM kernel", "path", *gmPath, "error", err)
		os.Exit(1)
	}
	pckVars, err := parseKernelFile(*pckPath, logger)
	if err != nil {
		logger.Error("parsing PCK kernel", "path", *pckPath, "error", err)
		os.Exit(1)
	}

	records := buildRecords(gmVars, pckVars, logger)
	src := emit(records, filepath.Base(*gmPath), filepath.Base(*pckPath))

	if *outPath == "" {
		fmt.Print(src)
		return
	}
	if err := os.WriteFile(*outPath, []byte(src), 0o644); err != nil {
		logger.Error("writing output", "path", *outPath, "error", err)
		os.Exit(1)
	}
	logger.Info("tables written", "path", *outPath, "bodies", len(records))
}

func parseKernelFile(path string, logger *slog.Logger) (map[string][]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return parsePCK(f, logger)
}
