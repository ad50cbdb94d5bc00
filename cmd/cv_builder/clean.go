package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/cv-builder/internal/document"
)

var (
	cleanInputFile  string
	cleanOutputFile string
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Write the clean projection of a CV document",
	Long:  "Drops the document id, theme and section ids, producing the payload sent to the AI and export endpoints.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cv, err := readDocument(cleanInputFile)
		if err != nil {
			return err
		}
		return writeJSON(cmd, cleanOutputFile, document.Clean(cv))
	},
}

func init() {
	cleanCmd.Flags().StringVarP(&cleanInputFile, "in", "i", "", "Path to CvData JSON file (required)")
	cleanCmd.Flags().StringVarP(&cleanOutputFile, "out", "o", "", "Path to output CleanCv JSON file (default stdout)")
	mustRequire(cleanCmd, "in")
	rootCmd.AddCommand(cleanCmd)
}
