package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	uniquelines "github.com/CHUKEPC/unique-lines"
)

func newRunCmd() *cobra.Command {
	var (
		inputFlag  string
		outputFlag string
		force      bool
		progress   bool
		reportPath string
	)

	cmd := &cobra.Command{
		Use:   "run [input] [output]",
		Short: "Deduplicate a single file",
		Long: `Read the input file line by line and write each line to the output
file the first time it appears. Later repeats are dropped, so the
output holds every distinct line in its original order.`,
		Example: `  unique-lines run input.txt output.txt
  unique-lines run -i data.txt -o cleaned.txt
  unique-lines run --input large_file.txt --output unique_lines.txt`,
		Args: cobra.MaximumNArgs(2),
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
			if cmd.Flags().Changed("report") {
				opts.Report = reportPath
			}

			// Flags win over positional arguments when both are given.
			input := inputFlag
			if input == "" && len(args) > 0 {
				input = args[0]
			}
			output := outputFlag
			if output == "" && len(args) > 1 {
				output = args[1]
			}
			if input == "" {
				return errors.New("input file required (positional argument or -i/--input)")
			}
			if output == "" {
				return errors.New("output file required (positional argument or -o/--output)")
			}

			return runDedup(cmd, input, output, opts)
		},
	}

	cmd.Flags().StringVarP(&inputFlag, "input", "i", "", "Input file path (alternative to the positional argument)")
	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Output file path (alternative to the positional argument)")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite the output file without asking")
	cmd.Flags().BoolVar(&progress, "progress", false, "Show a progress bar while processing")
	cmd.Flags().StringVar(&reportPath, "report", "", "Path to save JSON report (optional)")

	return cmd
}

func runDedup(cmd *cobra.Command, input, output string, opts options) error {
	out := cmd.OutOrStdout()

	info, err := os.Stat(input)
	if err != nil {
		if os.IsNotExist(err) {
			return &uniquelines.NotFoundError{Path: input, Err: err}
		}
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("input %q is a directory", input)
	}
	if samePath(input, output) {
		return fmt.Errorf("input and output are the same file: %s", input)
	}

	if !opts.Force {
		if _, err := os.Stat(output); err == nil {
			if !confirmOverwrite(cmd.InOrStdin(), out, output) {
				fmt.Fprintln(out, "Operation cancelled.")
				return nil
			}
		}
	}

	fmt.Fprintf(out, "Processing file: %s\n", input)

	cfg := opts.libConfig()
	var bar *progressbar.ProgressBar
	if opts.Progress {
		bar = newByteBar(info.Size(), "Deduplicating...")
		cfg.Progress = bar
	}

	start := time.Now()
	res, err := uniquelines.ProcessFile(input, output, cfg)
	if bar != nil {
		bar.Finish()
	}
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	printRunSummary(out, output, res, elapsed)

	if opts.Report != "" {
		rep := newReport(start, elapsed, []fileReport{newFileReport(input, output, res)})
		writeReport(out, opts.Report, rep)
	}
	return nil
}

func printRunSummary(w io.Writer, output string, res uniquelines.Result, elapsed time.Duration) {
	green := color.New(color.FgGreen)
	green.Fprintf(w, "\n✓ Done! Deduplicated output saved to: %s\n", output)
	fmt.Fprintf(w, "  Unique lines: %d\n", res.Unique)
	fmt.Fprintf(w, "  Duplicates removed: %d\n", res.Duplicates)
	fmt.Fprintf(w, "  Total processed: %d\n", res.Total())
	fmt.Fprintf(w, "  Elapsed: %s\n", elapsed.Round(time.Millisecond))
}

// samePath reports whether two paths name the same file. Inodes are
// compared when both paths exist, otherwise the cleaned absolute paths.
func samePath(a, b string) bool {
	ai, errA := os.Stat(a)
	bi, errB := os.Stat(b)
	if errA == nil && errB == nil {
		return os.SameFile(ai, bi)
	}
	aa, errA := filepath.Abs(a)
	bb, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return a == b
	}
	return aa == bb
}
