package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/cv-builder/internal/assistant"
	"github.com/jonathan/cv-builder/internal/document"
	"github.com/jonathan/cv-builder/internal/llm"
	"github.com/jonathan/cv-builder/internal/observability"
	"github.com/jonathan/cv-builder/internal/panels"
	"github.com/jonathan/cv-builder/internal/types"
)

var (
	analyzeInputFile      string
	analyzeService        string
	analyzeTargetPosition string

	adaptInputFile string
	adaptJobFile   string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Score the completeness of a CV document",
	RunE:  runAnalyze,
}

var adaptCmd = &cobra.Command{
	Use:   "adapt",
	Short: "Compare a CV document against a job description",
	Long:  "Reports the job description keywords the CV mentions and the ones it lacks. Without --job the built-in example job description is used.",
	RunE:  runAdapt,
}

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeInputFile, "in", "i", "", "Path to CvData JSON file (required)")
	analyzeCmd.Flags().StringVar(&analyzeService, "service", string(types.ServiceClaude), "AI service: claude, openai or gemini")
	analyzeCmd.Flags().StringVar(&analyzeTargetPosition, "target-position", "", "Position the CV is aimed at")
	mustRequire(analyzeCmd, "in")
	rootCmd.AddCommand(analyzeCmd)

	adaptCmd.Flags().StringVarP(&adaptInputFile, "in", "i", "", "Path to CvData JSON file (required)")
	adaptCmd.Flags().StringVarP(&adaptJobFile, "job", "j", "", "Path to a plain text job description")
	mustRequire(adaptCmd, "in")
	rootCmd.AddCommand(adaptCmd)
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	cv, err := readDocument(analyzeInputFile)
	if err != nil {
		return err
	}

	req := types.AnalyzeRequest{
		Service:        types.AIService(analyzeService),
		TargetPosition: analyzeTargetPosition,
		Cv:             document.Clean(cv),
	}
	if err := types.Validate(&req); err != nil {
		return fmt.Errorf("invalid analyze request: %w", err)
	}

	result, err := assistant.NewAnalyzer(llm.NewRegistry()).Analyze(req)
	if err != nil {
		return err
	}
	observability.NewPrinter(cmd.OutOrStdout()).PrintAnalysis(&result)
	return nil
}

func runAdapt(cmd *cobra.Command, _ []string) error {
	cv, err := readDocument(adaptInputFile)
	if err != nil {
		return err
	}

	job := panels.ExampleJobDescription
	if adaptJobFile != "" {
		data, err := os.ReadFile(adaptJobFile)
		if err != nil {
			return fmt.Errorf("failed to read job description: %w", err)
		}
		job = string(data)
	}

	req := types.AdaptRequest{JobDescription: job, Cv: document.Clean(cv)}
	if err := types.Validate(&req); err != nil {
		return fmt.Errorf("invalid adapt request: %w", err)
	}

	result := assistant.NewAdapter().Adapt(req)
	observability.NewPrinter(cmd.OutOrStdout()).PrintAdaptation(&result)
	return nil
}
