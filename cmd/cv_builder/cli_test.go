package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/cv-builder/internal/document"
	"github.com/jonathan/cv-builder/internal/types"
)

func TestSeedCommand(t *testing.T) {
	out := filepath.Join(t.TempDir(), "seed.json")

	_, stderr, err := execute(t, "seed", "--out", out)
	require.NoError(t, err)
	assert.Contains(t, stderr, "Wrote "+out)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	var cv types.CvData
	require.NoError(t, json.Unmarshal(data, &cv))
	assert.NotEmpty(t, cv.ID)
	assert.Len(t, cv.Sections, len(document.DefaultSectionNames))
}

func TestShowCommand(t *testing.T) {
	path, _ := writeDocument(t)

	stdout, _, err := execute(t, "show", "--in", path)
	require.NoError(t, err)
	assert.Contains(t, stdout, "CV DOCUMENT")
	assert.Contains(t, stdout, "Ada Lovelace")

	stdout, _, err = execute(t, "show", "--in", path, "--section", "experience")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Company A")

	_, _, err = execute(t, "show", "--in", path, "--section", "Hobbies")
	assert.ErrorContains(t, err, `section "Hobbies" not found`)
}

func TestShowCommand_MissingInFlag(t *testing.T) {
	_, _, err := execute(t, "show")
	assert.ErrorContains(t, err, `required flag(s) "in" not set`)
}

func TestCleanCommand(t *testing.T) {
	path, _ := writeDocument(t)

	stdout, _, err := execute(t, "clean", "--in", path)
	require.NoError(t, err)

	var clean map[string]any
	require.NoError(t, json.Unmarshal([]byte(stdout), &clean))
	assert.NotContains(t, clean, "id")
	assert.NotContains(t, clean, "theme")
	assert.Contains(t, clean, "personalInfo")
}

func TestValidateCommand(t *testing.T) {
	path, _ := writeDocument(t)

	stdout, _, err := execute(t, "validate", "--in", path)
	require.NoError(t, err)
	assert.Contains(t, stdout, "VALID cv")

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"id":"x"}`), 0644))
	stdout, _, err = execute(t, "validate", "--in", bad)
	assert.ErrorIs(t, err, ErrInvalidDocument)
	assert.Contains(t, stdout, "SCHEMA VIOLATIONS")

	_, _, err = execute(t, "validate", "--in", path, "--schema", "resume")
	assert.ErrorContains(t, err, "unknown schema")
}

func TestShareCommand(t *testing.T) {
	path, cv := writeDocument(t)

	stdout, _, err := execute(t, "share", "--in", path, "--base-url", "https://cv.example.com")
	require.NoError(t, err)
	assert.Equal(t, "https://cv.example.com/share/"+cv.ID+"\n", stdout)
}

func TestExportCommand(t *testing.T) {
	path, _ := writeDocument(t)

	stdout, _, err := execute(t, "export", "--in", path, "--format", "csv")
	require.NoError(t, err)
	assert.Contains(t, stdout, "section,type,entry,field,value")

	_, _, err = execute(t, "export", "--in", path, "--format", "pdf")
	assert.ErrorContains(t, err, "unsupported export format")

	_, _, err = execute(t, "export", "--in", path, "--format", "docx")
	assert.ErrorContains(t, err, "unknown export format")
}

func TestReviewCommand_AppliesSuggestions(t *testing.T) {
	path, _ := writeDocument(t)
	out := filepath.Join(t.TempDir(), "reviewed.json")

	_, stderr, err := execute(t, "review", "--in", path, "--target", "Experience", "--apply", "--out", out)
	require.NoError(t, err)
	assert.Contains(t, stderr, "REVIEW")

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	var cv types.CvData
	require.NoError(t, json.Unmarshal(data, &cv))
	assert.Equal(t, "Built UI/UX design and implementation.", cv.Sections[0].Entries[1].GetString("description"))
}

func TestReviewCommand_EmptySummary(t *testing.T) {
	dir := t.TempDir()
	path, cv := writeDocument(t)
	cv.PersonalInfo.Summary = ""
	data, err := json.Marshal(cv)
	require.NoError(t, err)
	path = filepath.Join(dir, "empty.json")
	require.NoError(t, os.WriteFile(path, data, 0644))

	_, _, err = execute(t, "review", "--in", path)
	assert.ErrorContains(t, err, "Your summary is empty. Please add one first.")
}

func TestAnalyzeAndAdaptCommands(t *testing.T) {
	path, _ := writeDocument(t)

	stdout, _, err := execute(t, "analyze", "--in", path, "--service", "openai")
	require.NoError(t, err)
	assert.Contains(t, stdout, "CV ANALYSIS")
	assert.Contains(t, stdout, "gpt-4o")

	_, _, err = execute(t, "analyze", "--in", path, "--service", "llama")
	assert.ErrorContains(t, err, "invalid analyze request")

	stdout, _, err = execute(t, "adapt", "--in", path)
	require.NoError(t, err)
	assert.Contains(t, stdout, "JOB ADAPTATION")
	assert.Contains(t, stdout, "Matched:")
}

func TestRootCommand_BadConfig(t *testing.T) {
	_, _, err := execute(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"), "seed")
	assert.ErrorContains(t, err, "failed to read config file")
}
