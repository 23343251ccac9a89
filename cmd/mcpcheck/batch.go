package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/quantmind-br/mcpcheck-go/internal/app"
	"github.com/quantmind-br/mcpcheck-go/internal/domain"
	"github.com/quantmind-br/mcpcheck-go/internal/output"
	"github.com/quantmind-br/mcpcheck-go/internal/utils"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Check a list of origins and export results as CSV",
	Long: `Batch checks every origin in the input file, one at a time in input
order, and writes one CSV row per origin. Failures are recorded per row;
only file-system errors abort the run.`,
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().StringP("input", "i", "", "Input file with origins (.csv, .yaml, .yml)")
	batchCmd.Flags().StringP("output", "o", "", "Output CSV file")
	_ = batchCmd.MarkFlagRequired("input")
}

func runBatch(cmd *cobra.Command, args []string) error {
	cfg, err := setup()
	if err != nil {
		return err
	}

	inputFile, _ := cmd.Flags().GetString("input")
	outputFile, _ := cmd.Flags().GetString("output")
	if outputFile == "" {
		outputFile = cfg.Output.File
	}

	origins, err := output.ReadOriginsFile(inputFile)
	if err != nil {
		return err
	}

	checker, err := newChecker(cfg)
	if err != nil {
		return err
	}
	defer checker.Close()

	runner := app.NewRunner(checker, log)

	bar := utils.NewProgressBar(len(origins), utils.DescChecking)
	result := runner.Run(context.Background(), origins, func(o domain.CheckOutcome) {
		bar.Add(1)
	})
	bar.Finish()
	fmt.Fprintln(os.Stderr)

	if err := output.WriteFile(outputFile, result.Outcomes); err != nil {
		return err
	}

	fmt.Printf("Checked %d origin(s): %d valid manifest(s) detected\n",
		len(result.Outcomes), result.DetectedCount)
	fmt.Printf("Results written to %s\n", outputFile)

	if code := batchExitCode(result); code != 0 {
		os.Exit(code)
	}
	return nil
}
