package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/cv-builder/internal/document"
)

var seedOutputFile string

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Write the document a new session starts from",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return writeJSON(cmd, seedOutputFile, document.Seed(document.NewID))
	},
}

func init() {
	seedCmd.Flags().StringVarP(&seedOutputFile, "out", "o", "", "Path to output CvData JSON file (default stdout)")
	rootCmd.AddCommand(seedCmd)
}
