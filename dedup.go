// Package uniquelines removes duplicate lines from text streams in a single pass.
//
// A deduplication pass reads its input line by line and writes only the
// first occurrence of every distinct line to the output, preserving input
// order. Lines are tracked by a compact 16-byte digest instead of their
// full contents, which bounds memory use to roughly 16 bytes per distinct
// line and keeps the pass practical for corpora far too large for a set
// of full strings.
package uniquelines

import (
	"bufio"
	"crypto/md5"
	"io"
)

// Process reads lines from r and writes the first occurrence of every
// distinct line to w, in input order. A line's identity is the MD5 digest of
// its exact bytes, terminator included: two lines that differ only in
// line-ending style are distinct, and a final line without a terminator is
// still a line of its own.
//
// Distinct lines whose digests collide are merged as duplicates. With a
// 16-byte digest this is an accepted probabilistic risk of the design;
// Process does not detect or correct collisions.
//
// config can be nil to use the defaults, or only set the non-default values
// desired. On any read or write fault the pass aborts: the returned Result
// is zero, the error describes the fault, and w may be left partially
// written.
func Process(r io.Reader, w io.Writer, config *Config) (Result, error) {
	cfg := mergeConfig(config)

	var res Result
	seen := make(map[[md5.Size]byte]struct{})

	in := bufio.NewReaderSize(r, cfg.ReadBufferSize)
	out := bufio.NewWriterSize(w, cfg.WriteBufferSize)

	for {
		line, err := in.ReadBytes('\n')
		if err != nil && err != io.EOF {
			return Result{}, &IOError{Op: "read", Err: err}
		}
		if len(line) > 0 {
			sum := md5.Sum(line)
			if _, ok := seen[sum]; ok {
				res.Duplicates++
			} else {
				if _, werr := out.Write(line); werr != nil {
					return Result{}, &IOError{Op: "write", Err: werr}
				}
				seen[sum] = struct{}{}
				res.Unique++
			}
		}
		if err == io.EOF {
			break
		}
	}

	if err := out.Flush(); err != nil {
		return Result{}, &IOError{Op: "write", Err: err}
	}
	return res, nil
}
