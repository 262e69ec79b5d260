package uniquelines

import (
	"errors"
	"io"
	"os"
)

// ProcessFile runs a deduplication pass from the file at inputPath to the
// file at outputPath. The output file is created, or truncated if it already
// exists, before the pass begins, and is written incrementally rather than
// buffered whole. Both files are closed on every return path; when the pass
// fails the output is left behind partially written.
//
// Open faults are classified: a missing input reports NotFoundError, access
// faults report PermissionError, and anything else reports IOError. Counters
// from a failed pass are discarded; the Result is only meaningful when the
// returned error is nil.
func ProcessFile(inputPath, outputPath string, config *Config) (res Result, err error) {
	cfg := mergeConfig(config)

	in, err := os.Open(inputPath)
	if err != nil {
		return Result{}, classifyInputError(inputPath, err)
	}
	defer in.Close()

	out, err := os.Create(outputPath)
	if err != nil {
		return Result{}, classifyOutputError(outputPath, err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil {
			err = errors.Join(err, &IOError{Op: "close", Path: outputPath, Err: cerr})
		}
		if err != nil {
			res = Result{}
		}
	}()

	var r io.Reader = in
	if cfg.Progress != nil {
		r = io.TeeReader(in, cfg.Progress)
	}

	return Process(r, out, cfg)
}
