package main

import (
	"fmt"
	"net/url"

	"github.com/spf13/cobra"

	"github.com/jonathan/cv-builder/internal/document"
)

var (
	shareInputFile string
	shareBaseURL   string
)

var shareCmd = &cobra.Command{
	Use:   "share",
	Short: "Print the read-only share link of a CV document",
	RunE:  runShare,
}

func init() {
	shareCmd.Flags().StringVarP(&shareInputFile, "in", "i", "", "Path to CvData JSON file (required)")
	shareCmd.Flags().StringVar(&shareBaseURL, "base-url", "", "Public origin of the server (overrides server.base_url)")
	mustRequire(shareCmd, "in")
	rootCmd.AddCommand(shareCmd)
}

func runShare(cmd *cobra.Command, _ []string) error {
	cv, err := readDocument(shareInputFile)
	if err != nil {
		return err
	}

	base, err := cfg.PublicURL()
	if shareBaseURL != "" {
		base, err = url.Parse(shareBaseURL)
	}
	if err != nil {
		return fmt.Errorf("invalid base URL: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), document.ShareLink(base, cv.ID))
	return err
}
