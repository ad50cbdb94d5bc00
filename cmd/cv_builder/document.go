package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/cv-builder/internal/schemas"
	"github.com/jonathan/cv-builder/internal/types"
	rootschemas "github.com/jonathan/cv-builder/schemas"
)

// readDocument loads a CvData JSON file after checking it against the cv schema
func readDocument(path string) (types.CvData, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.CvData{}, fmt.Errorf("failed to read document file: %w", err)
	}
	if err := schemas.Validate(rootschemas.CV, data); err != nil {
		return types.CvData{}, err
	}

	var cv types.CvData
	if err := json.Unmarshal(data, &cv); err != nil {
		return types.CvData{}, fmt.Errorf("failed to unmarshal document JSON: %w", err)
	}
	return cv, nil
}

// writeJSON writes v as indented JSON to path, or to the command output when path is empty
func writeJSON(cmd *cobra.Command, path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return writeOutput(cmd, path, append(data, '\n'))
}

func writeOutput(cmd *cobra.Command, path string, data []byte) error {
	if path == "" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %s\n", path)
	return nil
}

// problems flattens a schema validation error into printable lines
func problems(err error) ([]string, error) {
	var ve *schemas.ValidationError
	if !errors.As(err, &ve) {
		return nil, err
	}
	out := make([]string, 0, len(ve.Errors))
	for _, fe := range ve.Errors {
		out = append(out, fe.Field+": "+fe.Message)
	}
	return out, nil
}

// mustRequire marks flags as required on cmd
func mustRequire(cmd *cobra.Command, names ...string) {
	for _, name := range names {
		if err := cmd.MarkFlagRequired(name); err != nil {
			panic(fmt.Sprintf("failed to mark %s flag as required: %v", name, err))
		}
	}
}
