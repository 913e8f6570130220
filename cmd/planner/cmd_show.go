package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"courseplanner/internal/report"
)

var showFile string

// showCmd prints one course's details, including prerequisites.
var showCmd = &cobra.Command{
	Use:   "show [course-number]",
	Short: "Print one course's title and prerequisites",
	Long: `Looks up a course by number (case-insensitive) and prints its title
and prerequisite list. Prerequisites present in the data file resolve to
their titles; missing ones are flagged as not found in data.`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	tree, err := loadTree(showFile)
	if err != nil {
		return err
	}

	fmt.Println(report.Describe(tree, args[0]))
	return nil
}

func init() {
	showCmd.Flags().StringVarP(&showFile, "file", "f", "", "course data file (defaults to config)")
}
