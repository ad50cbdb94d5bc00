package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/cv-builder/internal/document"
	"github.com/jonathan/cv-builder/internal/types"
)

// execute runs the root command in-process with flags reset to their defaults
func execute(t *testing.T, args ...string) (stdout string, stderr string, err error) {
	t.Helper()
	resetFlags(rootCmd)

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err = rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, child := range cmd.Commands() {
		resetFlags(child)
	}
}

// writeDocument writes a seeded document with sequential ids and returns its path
func writeDocument(t *testing.T) (string, types.CvData) {
	t.Helper()
	n := 0
	cv := document.Seed(func() string {
		n++
		return "id-" + string(rune('0'+n))
	})
	cv.PersonalInfo.FullName = "Ada Lovelace"
	cv.PersonalInfo.Email = "ada@example.com"

	data, err := json.Marshal(cv)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "cv.json")
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path, cv
}
