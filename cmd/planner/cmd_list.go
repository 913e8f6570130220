package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"courseplanner/internal/catalog"
	"courseplanner/internal/loader"
	"courseplanner/internal/report"
)

var listFile string

// listCmd prints the full course list in alphanumeric order.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print all courses in alphanumeric order",
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	tree, err := loadTree(listFile)
	if err != nil {
		return err
	}

	fmt.Println(report.Listing(tree))
	return nil
}

// loadTree loads the given file (or the configured default) into a fresh
// catalog tree. Shared by the one-shot list and show commands.
func loadTree(path string) (*catalog.Tree, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	if path == "" {
		path = cfg.DataFile
	}
	if path == "" {
		return nil, fmt.Errorf("no course data file given and none configured")
	}

	tree := catalog.New()
	if _, err := loader.New(logger).Load(path, tree); err != nil {
		return nil, err
	}
	return tree, nil
}

func init() {
	listCmd.Flags().StringVarP(&listFile, "file", "f", "", "course data file (defaults to config)")
}
