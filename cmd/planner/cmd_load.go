package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"courseplanner/internal/catalog"
	"courseplanner/internal/loader"
)

// loadCmd loads a course file once and reports the outcome. Useful for
// checking a data file without entering the interactive menu.
var loadCmd = &cobra.Command{
	Use:   "load [file]",
	Short: "Load a course data file and report the result",
	Long: `Parses a comma-delimited course file and reports how many courses
were loaded, along with a diagnostic for every skipped line. Defaults to
the data file named in the config when no argument is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLoad,
}

func runLoad(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	path := cfg.DataFile
	if len(args) > 0 {
		path = args[0]
	}
	if path == "" {
		return fmt.Errorf("no course data file given and none configured")
	}

	tree := catalog.New()
	res, err := loader.New(logger).Load(path, tree)
	if err != nil {
		return err
	}

	fmt.Printf("Courses successfully loaded from file: %s\n", path)
	fmt.Printf("%d courses loaded, %d lines skipped.\n", res.Loaded, res.Skipped)
	for _, d := range res.Diagnostics {
		fmt.Printf("  line %d: %s: %s\n", d.Line, d.Message, d.Raw)
	}
	return nil
}
