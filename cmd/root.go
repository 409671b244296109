package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "v0.1.0"

var rootCmd = &cobra.Command{
	Use:   "icongen",
	Short: "icongen writes the GNSS viewer's toolbar icons",
	Long: "Write the fixed toolbar icon set into icons/ under the working directory.\n" +
		"The files contain SVG markup. Output location and file extension can be\n" +
		"changed in icongen.yaml or with ICONGEN_OUTPUT_DIR / ICONGEN_EXTENSION.",
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runGenerate,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = version
}
