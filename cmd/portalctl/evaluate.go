package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"alfredoptarigan/hiring-portal/internal/app"
	"alfredoptarigan/hiring-portal/internal/config"
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate <application-id>",
	Short: "Evaluate an application's resume against its job",
	Long:  "Evaluate an application and persist the result. The stored resume is used unless --resume-file is given.",
	Args:  cobra.ExactArgs(1),
	RunE:  runEvaluate,
}

var evaluateResumeFile string

func init() {
	evaluateCmd.Flags().StringVar(&evaluateResumeFile, "resume-file", "", "Local PDF or DOCX to evaluate instead of the stored resume")

	rootCmd.AddCommand(evaluateCmd)
}

func runEvaluate(cmd *cobra.Command, args []string) error {
	applicationID, err := uuid.Parse(args[0])
	if err != nil {
		return fmt.Errorf("invalid application id %q: %w", args[0], err)
	}

	ctx := cmd.Context()
	container, cleanup, err := app.Bootstrap(ctx, config.Load())
	if err != nil {
		return err
	}
	defer cleanup()

	var resumeText string
	if evaluateResumeFile != "" {
		data, err := os.ReadFile(evaluateResumeFile)
		if err != nil {
			return fmt.Errorf("failed to read resume file: %w", err)
		}
		resumeText, err = container.Extractor.ExtractText(data, filepath.Base(evaluateResumeFile))
		if err != nil {
			return err
		}
	}

	ack, err := container.Evaluator.EvaluateApplication(ctx, applicationID, resumeText)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "relevance_score\t%d\nverdict\t%s\n", ack.RelevanceScore, ack.Verdict)
	return nil
}
