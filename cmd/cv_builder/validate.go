package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/cv-builder/internal/observability"
	"github.com/jonathan/cv-builder/internal/schemas"
	rootschemas "github.com/jonathan/cv-builder/schemas"
)

var (
	validateInputFile string
	validateSchema    string
)

// ErrInvalidDocument is returned when the file does not match the schema
var ErrInvalidDocument = errors.New("document does not match schema")

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a JSON file against an embedded schema",
	Long:  fmt.Sprintf("Validates a JSON file against one of the embedded schemas: %s.", strings.Join(schemaNames(), ", ")),
	RunE:  runValidate,
}

func init() {
	validateCmd.Flags().StringVarP(&validateInputFile, "in", "i", "", "Path to JSON file (required)")
	validateCmd.Flags().StringVar(&validateSchema, "schema", "cv", "Schema name: "+strings.Join(schemaNames(), ", "))
	mustRequire(validateCmd, "in")
	rootCmd.AddCommand(validateCmd)
}

func schemaNames() []string {
	names := make([]string, 0, len(rootschemas.All))
	for _, file := range rootschemas.All {
		names = append(names, strings.TrimSuffix(file, ".schema.json"))
	}
	return names
}

func runValidate(cmd *cobra.Command, _ []string) error {
	file := validateSchema + ".schema.json"
	known := false
	for _, name := range rootschemas.All {
		known = known || name == file
	}
	if !known {
		return fmt.Errorf("unknown schema %q (want one of %s)", validateSchema, strings.Join(schemaNames(), ", "))
	}

	if _, err := os.Stat(validateInputFile); err != nil {
		return fmt.Errorf("failed to read JSON file: %w", err)
	}

	list, err := problems(schemas.ValidateFile(file, validateInputFile))
	if err != nil {
		return err
	}
	observability.NewPrinter(cmd.OutOrStdout()).PrintValidation(validateSchema, list)
	if len(list) > 0 {
		return ErrInvalidDocument
	}
	return nil
}
