package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// confirmOverwrite asks whether an existing output file may be replaced.
// Anything other than an explicit yes, including a closed input, declines.
func confirmOverwrite(in io.Reader, out io.Writer, path string) bool {
	fmt.Fprintf(out, "Output file '%s' already exists. Overwrite? (y/n): ", path)

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	switch strings.TrimSpace(strings.ToLower(line)) {
	case "y", "yes":
		return true
	}
	return false
}
