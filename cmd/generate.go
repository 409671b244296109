package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/robertgumeny/icongen/internal/config"
	"github.com/robertgumeny/icongen/internal/icon"
	"github.com/robertgumeny/icongen/internal/log"
	"github.com/robertgumeny/icongen/internal/metrics"
)

func runGenerate(cmd *cobra.Command, args []string) error {
	dir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}
	cfg, err := config.LoadConfig(filepath.Join(dir, config.FileName))
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	return generateIcons(dir, cfg)
}

// generateIcons is the testable core of the root command. It creates the
// output directory under dir and emits every catalog icon into it, in order.
// The first failure stops the run; files already written are left in place.
func generateIcons(dir string, cfg *config.Config) error {
	outDir := cfg.OutputDir
	if !filepath.IsAbs(outDir) {
		outDir = filepath.Join(dir, outDir)
	}

	specs, err := icon.Catalog()
	if err != nil {
		return err
	}

	log.Section("Generating icons")

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create directory %s: %w", outDir, err)
	}

	var run metrics.Run
	for _, spec := range specs {
		path := filepath.Join(outDir, spec.Name+cfg.Extension)
		if err := spec.Emit(path); err != nil {
			return err
		}
		run.Record(spec.Name, path, len(spec.Document()))
	}

	log.Success("all icons created")
	metrics.PrintSummary(log.Output, &run)
	log.Info("these files contain SVG markup, not raster images; convert them with an image tool if real PNGs are needed")
	return nil
}
