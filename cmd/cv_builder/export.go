package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/cv-builder/internal/document"
	"github.com/jonathan/cv-builder/internal/export"
	"github.com/jonathan/cv-builder/internal/types"
)

var (
	exportInputFile  string
	exportOutputFile string
	exportFormat     string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a CV document as csv, txt or json",
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportInputFile, "in", "i", "", "Path to CvData JSON file (required)")
	exportCmd.Flags().StringVarP(&exportOutputFile, "out", "o", "", "Path to output file (default stdout)")
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", string(types.FormatText), "Export format: pdf, csv, txt or json")
	mustRequire(exportCmd, "in")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	format := types.ExportFormat(exportFormat)
	if !format.Valid() {
		return fmt.Errorf("unknown export format %q", exportFormat)
	}

	cv, err := readDocument(exportInputFile)
	if err != nil {
		return err
	}

	result, err := export.Export(format, document.Clean(cv))
	if err != nil {
		return err
	}
	return writeOutput(cmd, exportOutputFile, result.Data)
}
