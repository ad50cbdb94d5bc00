package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/cv-builder/internal/observability"
)

var (
	showInputFile string
	showSection   string
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print an outline of a CV document",
	Long:  "Prints the personal info and section outline of a CvData file, or the entries of one section when --section is given.",
	RunE:  runShow,
}

func init() {
	showCmd.Flags().StringVarP(&showInputFile, "in", "i", "", "Path to CvData JSON file (required)")
	showCmd.Flags().StringVarP(&showSection, "section", "s", "", "Section id or name to print in full")
	mustRequire(showCmd, "in")
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, _ []string) error {
	cv, err := readDocument(showInputFile)
	if err != nil {
		return err
	}

	printer := observability.NewPrinter(cmd.OutOrStdout())
	if showSection == "" {
		printer.PrintDocument(&cv)
		return nil
	}

	for _, section := range cv.Sections {
		if section.ID == showSection || strings.EqualFold(section.Name, showSection) {
			printer.PrintSection(&section)
			return nil
		}
	}
	return fmt.Errorf("section %q not found", showSection)
}
