package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	uniquelines "github.com/CHUKEPC/unique-lines"
)

func newBatchCmd() *cobra.Command {
	var (
		suffix     string
		outDir     string
		workers    int
		force      bool
		progress   bool
		reportPath string
	)

	cmd := &cobra.Command{
		Use:   "batch [files...]",
		Short: "Deduplicate several files concurrently",
		Long: `Run an independent deduplication pass over each input file, processing
up to --workers files at a time. Lines repeated across different files
are not duplicates of each other. Output paths are derived from the
inputs, so every pair is checked before any work starts and the whole
batch is refused on the first conflict.`,
		Example: `  unique-lines batch logs/*.txt
  unique-lines batch --out-dir cleaned --suffix .txt data1.log data2.log
  unique-lines batch -w 2 --force *.csv`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := loadOptions(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("force") {
				opts.Force = force
			}
			if cmd.Flags().Changed("progress") {
				opts.Progress = progress
			}
			if cmd.Flags().Changed("workers") {
				opts.Workers = workers
			}
			if cmd.Flags().Changed("report") {
				opts.Report = reportPath
			}

			return runBatch(cmd, args, outDir, suffix, opts)
		},
	}

	cmd.Flags().StringVar(&suffix, "suffix", ".uniq", "Suffix appended to each input name to form the output name")
	cmd.Flags().StringVar(&outDir, "out-dir", "", "Directory to write outputs into (default: next to each input)")
	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "Number of files to process concurrently (default: number of CPUs)")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing output files")
	cmd.Flags().BoolVar(&progress, "progress", false, "Show a progress bar while processing")
	cmd.Flags().StringVar(&reportPath, "report", "", "Path to save JSON report (optional)")

	return cmd
}

func runBatch(cmd *cobra.Command, inputs []string, outDir, suffix string, opts options) error {
	out := cmd.OutOrStdout()

	jobs, totalSize, err := planJobs(inputs, outDir, suffix, opts.Force)
	if err != nil {
		return err
	}
	if outDir != "" {
		if err := os.MkdirAll(outDir, 0755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}

	fmt.Fprintf(out, "Processing %d files...\n", len(jobs))

	cfg := opts.libConfig()
	var bar *progressbar.ProgressBar
	if opts.Progress {
		bar = newByteBar(totalSize, "Deduplicating...")
		cfg.Progress = bar
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	start := time.Now()
	results, err := uniquelines.ProcessFiles(ctx, jobs, cfg)
	if bar != nil {
		bar.Finish()
	}
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	var totals uniquelines.Result
	reports := make([]fileReport, 0, len(results))
	fmt.Fprintln(out)
	for _, r := range results {
		fmt.Fprintf(out, "  %s -> %s (unique: %d, duplicates: %d)\n", r.Input, r.Output, r.Unique, r.Duplicates)
		totals.Unique += r.Unique
		totals.Duplicates += r.Duplicates
		reports = append(reports, newFileReport(r.Input, r.Output, r.Result))
	}

	green := color.New(color.FgGreen)
	green.Fprintf(out, "\n✓ Done! Kept %d unique lines and removed %d duplicates across %d files.\n",
		totals.Unique, totals.Duplicates, len(results))
	fmt.Fprintf(out, "  Elapsed: %s\n", elapsed.Round(time.Millisecond))

	if opts.Report != "" {
		writeReport(out, opts.Report, newReport(start, elapsed, reports))
	}
	return nil
}

// planJobs derives an output path for every input and validates the whole
// set before any file is touched. It returns the jobs along with the total
// input size for progress reporting.
func planJobs(inputs []string, outDir, suffix string, force bool) ([]uniquelines.Job, int64, error) {
	jobs := make([]uniquelines.Job, 0, len(inputs))
	outputs := make(map[string]string)
	var totalSize int64

	for _, input := range inputs {
		info, err := os.Stat(input)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, 0, &uniquelines.NotFoundError{Path: input, Err: err}
			}
			return nil, 0, err
		}
		if info.IsDir() {
			return nil, 0, fmt.Errorf("input %q is a directory", input)
		}
		totalSize += info.Size()

		output := input + suffix
		if outDir != "" {
			output = filepath.Join(outDir, filepath.Base(input)+suffix)
		}
		if samePath(input, output) {
			return nil, 0, fmt.Errorf("input and output are the same file: %s", input)
		}
		if prev, ok := outputs[output]; ok {
			return nil, 0, fmt.Errorf("inputs %q and %q map to the same output %q", prev, input, output)
		}
		outputs[output] = input

		if !force {
			if _, err := os.Stat(output); err == nil {
				return nil, 0, fmt.Errorf("output file %q already exists (use --force to overwrite)", output)
			}
		}

		jobs = append(jobs, uniquelines.Job{Input: input, Output: output})
	}
	return jobs, totalSize, nil
}
