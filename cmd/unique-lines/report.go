package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	uniquelines "github.com/CHUKEPC/unique-lines"
)

type fileReport struct {
	Input      string `json:"input"`
	Output     string `json:"output"`
	Unique     uint64 `json:"unique_lines"`
	Duplicates uint64 `json:"duplicates_removed"`
	Total      uint64 `json:"total_processed"`
}

type report struct {
	StartedAt  time.Time    `json:"started_at"`
	ElapsedMS  int64        `json:"elapsed_ms"`
	Files      []fileReport `json:"files"`
	Unique     uint64       `json:"total_unique_lines"`
	Duplicates uint64       `json:"total_duplicates_removed"`
}

func newFileReport(input, output string, res uniquelines.Result) fileReport {
	return fileReport{
		Input:      input,
		Output:     output,
		Unique:     res.Unique,
		Duplicates: res.Duplicates,
		Total:      res.Total(),
	}
}

func newReport(start time.Time, elapsed time.Duration, files []fileReport) report {
	rep := report{
		StartedAt: start,
		ElapsedMS: elapsed.Milliseconds(),
		Files:     files,
	}
	for _, f := range files {
		rep.Unique += f.Unique
		rep.Duplicates += f.Duplicates
	}
	return rep
}

// writeReport saves the report and reports the outcome without failing
// the run: the deduplicated output already exists at this point.
func writeReport(out io.Writer, path string, rep report) {
	if err := saveReport(path, rep); err != nil {
		fmt.Fprintln(out, "Failed to save report:", err)
	} else {
		fmt.Fprintln(out, "Report saved to:", path)
	}
}

func saveReport(filename string, r report) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filename, data, 0644)
}
